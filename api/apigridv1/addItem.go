package apigridv1

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fulldump/datagrid/record"
	"github.com/fulldump/datagrid/service"
)

// addItem appends a record. Every field must be present in the body.
func addItem(ctx context.Context, w http.ResponseWriter, input map[string]interface{}) (*service.Item, error) {

	patch, err := record.ParsePatch(input)
	if err != nil {
		return nil, err
	}

	missing := []string{}
	for _, f := range record.Fields() {
		if _, ok := patch[f]; !ok {
			missing = append(missing, f.Key())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %s", ErrBadRequest, strings.Join(missing, ", "))
	}

	r := record.Record{}
	err = patch.Apply(&r)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)

	item := s.AddItem(r)

	w.WriteHeader(http.StatusCreated)
	return &item, nil
}
