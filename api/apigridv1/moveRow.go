package apigridv1

import (
	"context"
)

// moveRow only works while the view shows items in their own order,
// otherwise it fails with view.ErrUnsupported.
func moveRow(ctx context.Context, input *moveRequest) error {

	from, err := positionParam(ctx, "row")
	if err != nil {
		return err
	}

	return GetServicer(ctx).MoveRow(from, input.To)
}
