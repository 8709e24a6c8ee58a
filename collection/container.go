package collection

import (
	"github.com/google/uuid"
)

// RowContainer keeps rows in positional order and can find a row by id.
// Implementations keep Row.I equal to the row's current position.
type RowContainer interface {
	Append(row *Row)
	Remove(i int) (*Row, bool)
	Move(from, to int) bool
	Get(i int) (*Row, bool)
	Find(id uuid.UUID) (*Row, bool)
	Len() int
	Reset(rows []*Row)
	Traverse(iterator func(row *Row) bool)
}

// --- Slice Implementation ---

type SliceContainer struct {
	rows []*Row
	byID map[uuid.UUID]*Row
}

func NewSliceContainer() *SliceContainer {
	return &SliceContainer{
		rows: []*Row{},
		byID: map[uuid.UUID]*Row{},
	}
}

func (s *SliceContainer) Append(row *Row) {
	row.I = len(s.rows)
	s.rows = append(s.rows, row)
	s.byID[row.ID] = row
}

func (s *SliceContainer) Remove(i int) (*Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return nil, false
	}

	row := s.rows[i]
	copy(s.rows[i:], s.rows[i+1:])
	s.rows[len(s.rows)-1] = nil
	s.rows = s.rows[:len(s.rows)-1]
	delete(s.byID, row.ID)

	s.renumber(i, len(s.rows)-1)
	return row, true
}

// Move relocates the row at from so that it ends up at to, shifting the rows
// in between by one.
func (s *SliceContainer) Move(from, to int) bool {
	l := len(s.rows)
	if from < 0 || from >= l || to < 0 || to >= l {
		return false
	}
	if from == to {
		return true
	}

	row := s.rows[from]
	if from < to {
		copy(s.rows[from:to], s.rows[from+1:to+1])
		s.rows[to] = row
		s.renumber(from, to)
	} else {
		copy(s.rows[to+1:from+1], s.rows[to:from])
		s.rows[to] = row
		s.renumber(to, from)
	}

	return true
}

func (s *SliceContainer) renumber(first, last int) {
	for i := first; i <= last && i < len(s.rows); i++ {
		s.rows[i].I = i
	}
}

func (s *SliceContainer) Get(i int) (*Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return nil, false
	}
	return s.rows[i], true
}

func (s *SliceContainer) Find(id uuid.UUID) (*Row, bool) {
	row, ok := s.byID[id]
	return row, ok
}

func (s *SliceContainer) Len() int {
	return len(s.rows)
}

func (s *SliceContainer) Reset(rows []*Row) {
	s.rows = make([]*Row, 0, len(rows))
	s.byID = make(map[uuid.UUID]*Row, len(rows))
	for _, row := range rows {
		s.Append(row)
	}
}

func (s *SliceContainer) Traverse(iterator func(row *Row) bool) {
	for _, row := range s.rows {
		if !iterator(row) {
			break
		}
	}
}
