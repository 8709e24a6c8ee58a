// Package view implements a filtered and sorted projection over a
// collection. The projection is derived state: it never changes the
// collection except through the explicit pass-through mutations, and it is
// rebuilt lazily on the first read after anything it depends on changes.
package view

import (
	"errors"
	"fmt"
	"log"

	"github.com/SierraSoftworks/connor"
	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/fulldump/datagrid/collection"
	"github.com/fulldump/datagrid/record"
)

const DefaultSortKey = "name"

const (
	EventReset      = collection.EventReset
	EventSortKey    = "sort_key"
	EventFilterText = "filter_text"
	EventQuery      = "query"
)

var (
	ErrUnsupported  = errors.New("operation not supported while filter or sort is active")
	ErrInvalidQuery = errors.New("invalid query")
)

// View is a read-mostly projection over a Collection. It holds a non-owning
// reference to the collection and must be closed before the collection goes
// away. A View is not safe for concurrent use.
type View struct {
	source *collection.Collection
	logger *log.Logger

	sortKey    string
	order      Order
	filterText string
	query      map[string]interface{}

	stale   bool
	mapping []uuid.UUID       // projected position -> row id
	reverse map[uuid.UUID]int // row id -> projected position

	notifier    collection.Notifier
	unsubscribe func()
}

func New(source *collection.Collection, logger *log.Logger) *View {
	if logger == nil {
		logger = log.Default()
	}

	v := &View{
		source:  source,
		logger:  logger,
		sortKey: DefaultSortKey,
		order:   Ascending,
		stale:   true,
	}
	v.unsubscribe = source.Subscribe(v)

	return v
}

// Close detaches the view from its collection.
func (v *View) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func (v *View) Subscribe(o collection.Observer) (unsubscribe func()) {
	return v.notifier.Subscribe(o)
}

// OnEvent receives collection changes.
func (v *View) OnEvent(e *collection.Event) {
	if e.Name == collection.EventActiveCount {
		return
	}
	v.invalidate()
}

func (v *View) invalidate() {
	v.stale = true
	v.notifier.Notify(collection.NewEvent(EventReset))
}

func (v *View) SortKey() string {
	return v.sortKey
}

func (v *View) SortOrder() Order {
	return v.order
}

func (v *View) FilterText() string {
	return v.filterText
}

func (v *View) Query() map[string]interface{} {
	return v.query
}

// SetSortKey sorts by the field named key. A key that names no field leaves
// rows in collection order.
func (v *View) SetSortKey(key string, order Order) {
	keyChanged := key != v.sortKey
	if !keyChanged && order == v.order {
		return
	}

	v.sortKey = key
	v.order = order

	if keyChanged {
		e := collection.NewEvent(EventSortKey)
		if f, ok := record.ParseField(key); ok {
			e.Fields = []record.Field{f}
		}
		v.notifier.Notify(e)
	}

	v.invalidate()
}

// ToggleSort flips the order when key is already the sort key, otherwise
// sorts ascending by key.
func (v *View) ToggleSort(key string) {
	if key == v.sortKey {
		v.SetSortKey(key, v.order.Flip())
		return
	}
	v.SetSortKey(key, Ascending)
}

func (v *View) SetFilterText(text string) {
	if text == v.filterText {
		return
	}
	v.filterText = text
	v.notifier.Notify(collection.NewEvent(EventFilterText))
	v.invalidate()
}

// SetQuery installs a structured filter such as {"salary":{"$gt":50000}}.
// Rows must match both the query and the filter text. An empty query
// removes it. A query that cannot be evaluated is rejected and the previous
// one stays in place.
func (v *View) SetQuery(query map[string]interface{}) error {
	if len(query) == 0 {
		query = nil
	}
	if query == nil && v.query == nil {
		return nil
	}

	if query != nil {
		probe := record.Record{}
		_, err := connor.Match(query, probe.Map())
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
		}
	}

	v.query = query
	v.notifier.Notify(collection.NewEvent(EventQuery))
	v.invalidate()
	return nil
}

// ClearFilters removes the filter text and the query.
func (v *View) ClearFilters() {
	v.SetFilterText("")
	v.SetQuery(nil)
}

func (v *View) sortField() (record.Field, bool) {
	return record.ParseField(v.sortKey)
}

// identity reports whether projected positions equal collection positions.
func (v *View) identity() bool {
	_, sorted := v.sortField()
	return v.filterText == "" && v.query == nil && !sorted
}

func (v *View) Len() int {
	v.ensure()
	return len(v.mapping)
}

// MapToSource translates a projected position into a collection position.
func (v *View) MapToSource(p int) (int, bool) {
	v.ensure()
	if p < 0 || p >= len(v.mapping) {
		return -1, false
	}
	return v.source.PositionOf(v.mapping[p])
}

// MapFromSource translates a collection position into a projected position.
// ok is false when the row is filtered out.
func (v *View) MapFromSource(position int) (int, bool) {
	v.ensure()
	row, ok := v.source.Get(position)
	if !ok {
		return -1, false
	}
	p, ok := v.reverse[row.ID]
	if !ok {
		return -1, false
	}
	return p, true
}

func (v *View) Get(p int) (collection.Row, bool) {
	position, ok := v.MapToSource(p)
	if !ok {
		return collection.Row{}, false
	}
	return v.source.Get(position)
}

func (v *View) Value(p int, f record.Field) (record.Value, bool) {
	position, ok := v.MapToSource(p)
	if !ok {
		return record.Value{}, false
	}
	return v.source.Value(position, f)
}

// FieldValue reads a field by key at a projected position.
func (v *View) FieldValue(p int, key string) (record.Value, bool) {
	position, ok := v.MapToSource(p)
	if !ok {
		return record.Value{}, false
	}
	return v.source.FieldValue(position, key)
}

// Rows returns copies of the projected rows in projected order.
func (v *View) Rows() []collection.Row {
	v.ensure()
	rows := make([]collection.Row, 0, len(v.mapping))
	for p := range v.mapping {
		row, ok := v.Get(p)
		if ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// RemoveAt removes the row shown at projected position p from the
// collection.
func (v *View) RemoveAt(p int) error {
	position, ok := v.MapToSource(p)
	if !ok {
		return fmt.Errorf("remove row %d: %w", p, collection.ErrOutOfRange)
	}
	return v.source.Remove(position)
}

// MoveAt moves a row between projected positions. Only an unfiltered,
// unsorted projection maps moves back onto the collection unambiguously.
// Any other state fails with ErrUnsupported and changes nothing.
//
// The default sort by name counts as sorted, so a fresh view rejects moves
// until the sort key is set to "" with no filter text and no query.
func (v *View) MoveAt(from, to int) error {
	v.ensure()
	l := len(v.mapping)
	if from < 0 || from >= l || to < 0 || to >= l {
		return fmt.Errorf("move row %d to %d: %w", from, to, collection.ErrOutOfRange)
	}
	if from == to {
		return nil
	}

	if !v.identity() {
		v.logger.Printf("move row from %d to %d ignored: filter or sort is active", from, to)
		return ErrUnsupported
	}

	return v.source.Move(from, to)
}

func (v *View) ensure() {
	if !v.stale {
		return
	}
	v.recompute()
}

type entry struct {
	id       uuid.UUID
	position int
	value    record.Value
}

func (v *View) recompute() {
	folder := record.NewFolder()
	needle := folder.Fold(v.filterText)
	field, sorted := v.sortField()
	descending := v.order == Descending

	tree := btree.NewG(32, func(a, b *entry) bool {
		c := folder.Compare(a.value, b.value)
		if descending {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.position < b.position
	})

	v.source.Traverse(func(row *collection.Row) bool {
		if !v.accepts(row, folder, needle) {
			return true
		}
		e := &entry{id: row.ID, position: row.I}
		if sorted {
			e.value = row.Record.Get(field)
		}
		tree.ReplaceOrInsert(e)
		return true
	})

	mapping := make([]uuid.UUID, 0, tree.Len())
	reverse := make(map[uuid.UUID]int, tree.Len())
	tree.Ascend(func(e *entry) bool {
		reverse[e.id] = len(mapping)
		mapping = append(mapping, e.id)
		return true
	})

	v.mapping = mapping
	v.reverse = reverse
	v.stale = false
}

func (v *View) accepts(row *collection.Row, folder *record.Folder, needle string) bool {
	if v.query != nil {
		match, err := connor.Match(v.query, row.Record.Map())
		if err != nil || !match {
			return false
		}
	}

	if needle == "" {
		return true
	}

	for _, f := range record.Fields() {
		if folder.Contains(row.Record.Get(f).Text(), needle) {
			return true
		}
	}
	return false
}
