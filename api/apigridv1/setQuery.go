package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

type setQueryRequest struct {
	Query map[string]interface{} `json:"query"`
}

// setQuery installs a structured filter, e.g.
// {"query":{"salary":{"$gt":50000},"remoteWork":true}}.
// An empty query removes it.
func setQuery(ctx context.Context, input *setQueryRequest) (*service.State, error) {

	s := GetServicer(ctx)

	err := s.SetQuery(input.Query)
	if err != nil {
		return nil, err
	}

	state := s.State()
	return &state, nil
}
