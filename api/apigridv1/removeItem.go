package apigridv1

import (
	"context"
)

func removeItem(ctx context.Context) error {

	position, err := positionParam(ctx, "position")
	if err != nil {
		return err
	}

	return GetServicer(ctx).RemoveItem(position)
}
