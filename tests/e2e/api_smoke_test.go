//go:build e2e

package e2e_test

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/zestagio/spa-server/internal/api"
)

var _ = ginkgo.Describe("API Smoke", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	ginkgo.BeforeEach(func() {
		ctx, cancel = context.WithCancel(suiteCtx)
	})

	ginkgo.AfterEach(func() {
		cancel()
	})

	ginkgo.DescribeTable("fixed payload for any method under the prefix",
		func(method, path string) {
			var msg api.Message

			resp, err := apiClient.R().SetContext(ctx).SetResult(&msg).Execute(method, path)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
			gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.HavePrefix("application/json"))
			gomega.Expect(msg.Message).Should(gomega.Equal(api.HelloMessage))
		},
		ginkgo.Entry("GET /api", http.MethodGet, "/api"),
		ginkgo.Entry("GET /api/status", http.MethodGet, "/api/status"),
		ginkgo.Entry("POST /api/users", http.MethodPost, "/api/users"),
		ginkgo.Entry("DELETE /api/a/b/c", http.MethodDelete, "/api/a/b/c"),
	)

	ginkgo.It("responds byte-identically on repeats", func() {
		first, err := apiClient.R().SetContext(ctx).Get("/api/status")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		for i := 0; i < 5; i++ {
			resp, err := apiClient.R().SetContext(ctx).Get("/api/status")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.Body()).Should(gomega.Equal(first.Body()))
		}
	})
})
