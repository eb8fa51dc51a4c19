package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// HelloMessage is the payload of every API response.
const HelloMessage = "Hello from Express API!"

//go:embed api.yaml
var spec []byte

type Message struct {
	Message string `json:"message"`
}

// Hello answers any request below the API prefix.
func Hello(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, Message{Message: HelloMessage})
}

// GetSwagger returns the OpenAPI description of the API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load api spec: %v", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate api spec: %v", err)
	}

	return doc, nil
}
