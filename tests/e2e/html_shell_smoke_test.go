//go:build e2e

package e2e_test

import (
	"context"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("HTML Shell Smoke", func() {
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

	ginkgo.It("serves the shell for client-side routes", func() {
		resp, err := apiClient.R().SetContext(ctx).
			SetHeader("Accept", "text/html").
			Get("/nonexistent-page")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.HavePrefix("text/html"))
		gomega.Expect(resp.String()).Should(gomega.ContainSubstring("<html"))
	})

	ginkgo.It("does not treat similar prefixes as API", func() {
		resp, err := apiClient.R().SetContext(ctx).
			SetHeader("Accept", "text/html").
			Get("/apiary")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.HavePrefix("text/html"))
	})

	ginkgo.It("injects the dev client in development mode only", func() {
		resp, err := apiClient.R().SetContext(ctx).
			SetHeader("Accept", "text/html").
			Get("/")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))

		if appMode.IsProduction() {
			gomega.Expect(resp.String()).ShouldNot(gomega.ContainSubstring("@vite/client"))
		} else {
			gomega.Expect(resp.String()).Should(gomega.ContainSubstring("@vite/client"))
		}
	})
})
