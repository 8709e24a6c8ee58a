package apigridv1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

func positionParam(ctx context.Context, name string) (int, error) {
	raw := box.GetUrlParameter(ctx, name)
	p, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s '%s', must be an integer", ErrBadRequest, name, raw)
	}
	return p, nil
}

type moveRequest struct {
	To int `json:"to"`
}

// writeLine writes v as one line of newline delimited JSON.
func writeLine(w http.ResponseWriter, v any) error {
	err := json2.MarshalWrite(w, v)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
