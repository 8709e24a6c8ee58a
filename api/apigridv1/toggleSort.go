package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

type toggleSortRequest struct {
	Role string `json:"role"`
}

func toggleSort(ctx context.Context, input *toggleSortRequest) *service.State {

	s := GetServicer(ctx)
	s.ToggleSort(input.Role)

	state := s.State()
	return &state
}
