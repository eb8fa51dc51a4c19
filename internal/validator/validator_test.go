package validator_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/spa-server/internal/validator"
)

type options struct {
	Handler http.Handler `validate:"required"`
	Prefix  string       `validate:"url_prefix"`
}

func TestValidate_TrickyNils(t *testing.T) {
	cases := []struct {
		in      options
		wantErr bool
	}{
		// Negative.
		{
			in:      options{Handler: nil, Prefix: "/api"},
			wantErr: true,
		},
		{
			in:      options{Handler: http.HandlerFunc(nil), Prefix: "/api"},
			wantErr: true,
		},
		{
			in:      options{Handler: (*handlerMock)(nil), Prefix: "/api"},
			wantErr: true,
		},

		// Positive.
		{
			in:      options{Handler: new(handlerMock), Prefix: "/api"},
			wantErr: false,
		},
		{
			in: options{
				Handler: http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}),
				Prefix:  "/api",
			},
			wantErr: false,
		},
	}

	for _, tt := range cases {
		t.Run("", func(t *testing.T) {
			err := validator.Validator.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_URLPrefix(t *testing.T) {
	cases := []struct {
		prefix  string
		wantErr bool
	}{
		{prefix: "/api", wantErr: false},
		{prefix: "/api/v1", wantErr: false},
		{prefix: "", wantErr: true},
		{prefix: "/", wantErr: true},
		{prefix: "api", wantErr: true},
		{prefix: "/api/", wantErr: true},
		{prefix: "/api?x=1", wantErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.prefix, func(t *testing.T) {
			err := validator.Validator.Struct(options{Handler: new(handlerMock), Prefix: tt.prefix})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

var _ http.Handler = (*handlerMock)(nil)

type handlerMock struct{}

func (h *handlerMock) ServeHTTP(_ http.ResponseWriter, _ *http.Request) {
}
