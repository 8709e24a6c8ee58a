package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

type setFilterTextRequest struct {
	Text string `json:"text"`
}

func setFilterText(ctx context.Context, input *setFilterTextRequest) *service.State {

	s := GetServicer(ctx)
	s.SetFilterText(input.Text)

	state := s.State()
	return &state
}
