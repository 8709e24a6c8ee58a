package apigridv1

import (
	"context"
)

func moveItem(ctx context.Context, input *moveRequest) error {

	from, err := positionParam(ctx, "position")
	if err != nil {
		return err
	}

	return GetServicer(ctx).MoveItem(from, input.To)
}
