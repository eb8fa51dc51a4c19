package errhandler

import (
	"github.com/zestagio/spa-server/pkg/pointer"
)

type Response struct {
	Error Error `json:"error"`
}

type Error struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

var ResponseBuilder = func(code int, msg string, details string) any {
	return Response{
		Error: Error{
			Code:    code,
			Message: msg,
			Details: pointer.PtrWithZeroAsNil(details),
		},
	}
}
