package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

func listItems(ctx context.Context) []service.Item {
	return GetServicer(ctx).Items()
}
