package apigridv1

import (
	"context"
	"fmt"

	"github.com/fulldump/datagrid/service"
)

func getRow(ctx context.Context) (*service.Row, error) {

	p, err := positionParam(ctx, "row")
	if err != nil {
		return nil, err
	}

	row, ok := GetServicer(ctx).Row(p)
	if !ok {
		return nil, fmt.Errorf("%w: row %d", ErrNotFound, p)
	}

	return &row, nil
}
