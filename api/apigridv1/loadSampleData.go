package apigridv1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type loadSampleDataResponse struct {
	Total int `json:"total"`
}

// loadSampleData accepts an optional body like {"rows":25}.
func loadSampleData(ctx context.Context, r *http.Request) (*loadSampleDataResponse, error) {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	input := struct {
		Rows int `json:"rows"`
	}{}
	if len(requestBody) > 0 {
		err = json.Unmarshal(requestBody, &input)
		if err != nil {
			return nil, err
		}
	}
	if input.Rows < 0 {
		return nil, fmt.Errorf("%w: rows must not be negative", ErrBadRequest)
	}

	total := GetServicer(ctx).LoadSampleData(input.Rows)

	return &loadSampleDataResponse{
		Total: total,
	}, nil
}
