package apigridv1

import (
	"context"
)

func removeRow(ctx context.Context) error {

	p, err := positionParam(ctx, "row")
	if err != nil {
		return err
	}

	return GetServicer(ctx).RemoveRow(p)
}
