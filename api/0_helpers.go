package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/datagrid/api/apigridv1"
	"github.com/fulldump/datagrid/record"
	"github.com/fulldump/datagrid/view"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

var badRequestErrors = []error{
	apigridv1.ErrBadRequest,
	record.ErrTypeMismatch,
	record.ErrUnknownField,
	view.ErrInvalidQuery,
}

// describeError picks the status code and the human description for err.
func describeError(ctx context.Context, err error) (int, string) {

	if err == box.ErrResourceNotFound {
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	}

	if err == box.ErrMethodNotAllowed {
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &syntaxError) || errors.As(err, &typeError) ||
		err == io.EOF || err == io.ErrUnexpectedEOF {
		return http.StatusBadRequest, "Malformed JSON"
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, "Invalid input"
		}
	}

	if errors.Is(err, apigridv1.ErrNotFound) {
		return http.StatusNotFound, "Position out of range"
	}

	if errors.Is(err, view.ErrUnsupported) {
		return http.StatusConflict, "Clear the filter and the sort first"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		status, description := describeError(ctx, err)

		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}
