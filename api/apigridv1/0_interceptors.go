package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/service"
)

const ContextServicerKey = "0c6a2f3e-9f5d-11f0-8de9-325096b39f47"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}
