package apigridv1

import (
	"context"
	"fmt"

	"github.com/fulldump/datagrid/service"
	"github.com/fulldump/datagrid/view"
)

type sortByRoleRequest struct {
	Role  string `json:"role"`
	Order string `json:"order"`
}

func sortByRole(ctx context.Context, input *sortByRoleRequest) (*service.State, error) {

	order, err := view.ParseOrder(input.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	s := GetServicer(ctx)
	s.SortByRole(input.Role, order)

	state := s.State()
	return &state, nil
}
