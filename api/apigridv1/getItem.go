package apigridv1

import (
	"context"
	"fmt"

	"github.com/fulldump/datagrid/service"
)

func getItem(ctx context.Context) (*service.Item, error) {

	position, err := positionParam(ctx, "position")
	if err != nil {
		return nil, err
	}

	item, ok := GetServicer(ctx).Item(position)
	if !ok {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, position)
	}

	return &item, nil
}
