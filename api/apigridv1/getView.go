package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

func getView(ctx context.Context) service.State {
	return GetServicer(ctx).State()
}
