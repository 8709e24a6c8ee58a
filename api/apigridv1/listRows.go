package apigridv1

import (
	"context"
	"net/http"
)

func listRows(ctx context.Context, w http.ResponseWriter) error {

	rows := GetServicer(ctx).Rows()

	w.Header().Set("Content-Type", "application/x-ndjson")
	for _, row := range rows {
		err := writeLine(w, row)
		if err != nil {
			return err
		}
	}

	return nil
}
