package apigridv1

import (
	"context"
)

func listRoles(ctx context.Context) []string {
	return GetServicer(ctx).RoleNames()
}
