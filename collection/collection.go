// Package collection holds the ordered record store backing the grid.
//
// Rows are addressed by position. Each row also carries a uuid that
// survives moves, so derived views can keep track of rows across
// structural changes. Every mutation is announced to observers
// synchronously, in order. A Collection is not safe for concurrent use.
package collection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fulldump/datagrid/record"
)

var ErrOutOfRange = errors.New("position out of range")

type Collection struct {
	Rows        RowContainer
	activeCount int
	notifier    Notifier
}

func New(records ...record.Record) *Collection {
	c := &Collection{
		Rows: NewSliceContainer(),
	}
	for _, r := range records {
		c.Rows.Append(newRow(r))
	}
	c.activeCount = c.countActive()
	return c
}

func newRow(r record.Record) *Row {
	return &Row{
		ID:     uuid.New(),
		Record: r,
	}
}

func (c *Collection) Subscribe(o Observer) (unsubscribe func()) {
	return c.notifier.Subscribe(o)
}

func (c *Collection) Len() int {
	return c.Rows.Len()
}

// Get returns a copy of the row at position i.
func (c *Collection) Get(i int) (Row, bool) {
	row, ok := c.Rows.Get(i)
	if !ok {
		return Row{}, false
	}
	return *row, true
}

// Value returns the value of f at position i. ok is false when i is out of
// range or f is not a field.
func (c *Collection) Value(i int, f record.Field) (v record.Value, ok bool) {
	row, exists := c.Rows.Get(i)
	if !exists {
		return record.Value{}, false
	}
	v = row.Record.Get(f)
	return v, v.Valid()
}

// FieldValue is Value addressed by field key.
func (c *Collection) FieldValue(i int, key string) (record.Value, bool) {
	f, ok := record.ParseField(key)
	if !ok {
		return record.Value{}, false
	}
	return c.Value(i, f)
}

func (c *Collection) PositionOf(id uuid.UUID) (int, bool) {
	row, ok := c.Rows.Find(id)
	if !ok {
		return -1, false
	}
	return row.I, true
}

// Traverse visits rows in position order. Rows must not be modified.
func (c *Collection) Traverse(f func(row *Row) bool) {
	c.Rows.Traverse(f)
}

func (c *Collection) Records() []record.Record {
	records := make([]record.Record, 0, c.Rows.Len())
	c.Rows.Traverse(func(row *Row) bool {
		records = append(records, row.Record)
		return true
	})
	return records
}

// ActiveCount is the number of records with IsActive set.
func (c *Collection) ActiveCount() int {
	return c.activeCount
}

func (c *Collection) countActive() int {
	n := 0
	c.Rows.Traverse(func(row *Row) bool {
		if row.Record.IsActive {
			n++
		}
		return true
	})
	return n
}

func (c *Collection) refreshActiveCount(always bool) {
	n := c.countActive()
	if n == c.activeCount && !always {
		return
	}
	c.activeCount = n

	e := NewEvent(EventActiveCount)
	e.Count = n
	c.notifier.Notify(e)
}

// Insert appends r and returns a copy of the new row.
func (c *Collection) Insert(r record.Record) Row {
	row := newRow(r)
	c.Rows.Append(row)

	e := NewEvent(EventInsert)
	e.Position = row.I
	e.RowID = row.ID.String()
	c.notifier.Notify(e)

	c.refreshActiveCount(true)

	return *row
}

func (c *Collection) Remove(i int) error {
	row, ok := c.Rows.Remove(i)
	if !ok {
		return fmt.Errorf("remove %d: %w", i, ErrOutOfRange)
	}

	e := NewEvent(EventRemove)
	e.Position = i
	e.RowID = row.ID.String()
	c.notifier.Notify(e)

	c.refreshActiveCount(true)

	return nil
}

// Update overwrites the fields in p at position i, leaving the rest as they
// are. Nothing is written when i is out of range or p is invalid.
func (c *Collection) Update(i int, p record.Patch) error {
	row, ok := c.Rows.Get(i)
	if !ok {
		return fmt.Errorf("update %d: %w", i, ErrOutOfRange)
	}

	err := p.Apply(&row.Record)
	if err != nil {
		return fmt.Errorf("update %d: %w", i, err)
	}

	if len(p) == 0 {
		return nil
	}

	e := NewEvent(EventUpdate)
	e.Position = i
	e.Fields = p.Fields()
	e.RowID = row.ID.String()
	c.notifier.Notify(e)

	if _, touched := p[record.FieldIsActive]; touched {
		c.refreshActiveCount(false)
	}

	return nil
}

// UpdateItem rewrites name, role and department at position i.
func (c *Collection) UpdateItem(i int, name, role, department string) error {
	return c.Update(i, record.Patch{
		record.FieldName:       record.String(name),
		record.FieldRole:       record.String(role),
		record.FieldDepartment: record.String(department),
	})
}

// Move relocates the row at from to position to. Moving a row onto itself
// does nothing.
func (c *Collection) Move(from, to int) error {
	l := c.Rows.Len()
	if from < 0 || from >= l || to < 0 || to >= l {
		return fmt.Errorf("move %d to %d: %w", from, to, ErrOutOfRange)
	}
	if from == to {
		return nil
	}

	row, _ := c.Rows.Get(from)
	c.Rows.Move(from, to)

	e := NewEvent(EventMove)
	e.Position = from
	e.To = to
	e.RowID = row.ID.String()
	c.notifier.Notify(e)

	return nil
}

// Reset replaces every row. All previous row ids become unknown.
func (c *Collection) Reset(records []record.Record) {
	rows := make([]*Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, newRow(r))
	}
	c.Rows.Reset(rows)

	e := NewEvent(EventReset)
	e.Count = len(rows)
	c.notifier.Notify(e)

	c.refreshActiveCount(true)
}
