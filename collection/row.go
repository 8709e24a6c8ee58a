package collection

import (
	"github.com/google/uuid"

	"github.com/fulldump/datagrid/record"
)

type Row struct {
	ID     uuid.UUID // stable across moves, never reused
	I      int       // position in Rows
	Record record.Record
}
