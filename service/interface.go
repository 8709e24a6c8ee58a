package service

import (
	"github.com/fulldump/datagrid/record"
	"github.com/fulldump/datagrid/view"
)

type Servicer interface { // todo: split items and view?
	AddItem(r record.Record) Item
	RemoveItem(position int) error
	UpdateItem(position int, name, role, department string) error
	PatchItem(position int, p record.Patch) error
	MoveItem(from, to int) error
	LoadSampleData(n int) int
	Items() []Item
	Item(position int) (Item, bool)
	ActiveCount() int
	RoleNames() []string

	SortByRole(role string, order view.Order)
	ToggleSort(role string)
	SetFilterText(text string)
	ClearFilters()
	SetQuery(query map[string]interface{}) error
	RemoveRow(row int) error
	MoveRow(from, to int) error
	Rows() []Row
	Row(p int) (Row, bool)
	State() State

	Subscribe(buffer int) (events <-chan *Event, unsubscribe func())
}
