package apigridv1

import (
	"context"

	"github.com/fulldump/datagrid/record"
	"github.com/fulldump/datagrid/service"
)

// updateItem overwrites the fields present in the body, for example
// {"name":"Ann","role":"QA","department":"QA"}.
func updateItem(ctx context.Context, input map[string]interface{}) (*service.Item, error) {

	position, err := positionParam(ctx, "position")
	if err != nil {
		return nil, err
	}

	patch, err := record.ParsePatch(input)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)

	err = s.PatchItem(position, patch)
	if err != nil {
		return nil, err
	}

	item, ok := s.Item(position)
	if !ok {
		return nil, nil
	}
	return &item, nil
}
