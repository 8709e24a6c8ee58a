package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

func clearFilters(ctx context.Context) *service.State {

	s := GetServicer(ctx)
	s.ClearFilters()

	state := s.State()
	return &state
}
