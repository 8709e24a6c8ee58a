package service

import (
	"errors"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fulldump/datagrid/collection"
	"github.com/fulldump/datagrid/record"
	"github.com/fulldump/datagrid/seed"
	"github.com/fulldump/datagrid/view"
)

const (
	SourceItems = "items"
	SourceView  = "view"
)

// Event is a change coming from the items or from the view, tagged with
// its Source.
type Event struct {
	Source string `json:"source"`
	*collection.Event
}

type Item struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	record.Record
}

type Row struct {
	Row int `json:"row"`
	Item
}

type State struct {
	SortRole    string                 `json:"sortRole"`
	SortOrder   view.Order             `json:"sortOrder"`
	FilterText  string                 `json:"filterText"`
	Query       map[string]interface{} `json:"query,omitempty"`
	Count       int                    `json:"count"`
	Total       int                    `json:"total"`
	ActiveCount int                    `json:"activeCount"`
}

type Config struct {
	SampleRows int
	Seed       uint64
	Logger     *log.Logger
	Today      func() time.Time
}

// Grid serializes every call onto the items and their view, the way a UI
// thread would.
type Grid struct {
	mutex sync.Mutex

	items *collection.Collection
	view  *view.View

	config *Config
	rand   *rand.Rand

	lastSubscriber int
	subscribers    map[int]chan *Event
}

func NewGrid(c *Config) *Grid {
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.Today == nil {
		c.Today = time.Now
	}
	seedValue := c.Seed
	if seedValue == 0 {
		seedValue = uint64(time.Now().UnixNano())
	}

	g := &Grid{
		items:       collection.New(),
		config:      c,
		rand:        seed.NewRand(seedValue),
		subscribers: map[int]chan *Event{},
	}
	g.view = view.New(g.items, c.Logger)

	g.items.Subscribe(collection.ObserverFunc(func(e *collection.Event) {
		g.broadcast(SourceItems, e)
	}))
	g.view.Subscribe(collection.ObserverFunc(func(e *collection.Event) {
		g.broadcast(SourceView, e)
	}))

	if c.SampleRows > 0 {
		g.items.Reset(g.sample(c.SampleRows))
	}

	return g
}

func (g *Grid) sample(n int) []record.Record {
	return seed.Generate(n, g.rand, record.DateOf(g.config.Today()))
}

func (g *Grid) Close() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.view.Close()
	for id, ch := range g.subscribers {
		close(ch)
		delete(g.subscribers, id)
	}
}

// swallow turns out of range positions into silent no-ops.
func swallow(err error) error {
	if errors.Is(err, collection.ErrOutOfRange) {
		return nil
	}
	return err
}

func newItem(row collection.Row) Item {
	return Item{
		Position: row.I,
		ID:       row.ID.String(),
		Record:   row.Record,
	}
}

func (g *Grid) AddItem(r record.Record) Item {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return newItem(g.items.Insert(r))
}

func (g *Grid) RemoveItem(position int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.items.Remove(position))
}

func (g *Grid) UpdateItem(position int, name, role, department string) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.items.UpdateItem(position, name, role, department))
}

// PatchItem overwrites any subset of fields at position.
func (g *Grid) PatchItem(position int, p record.Patch) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.items.Update(position, p))
}

func (g *Grid) MoveItem(from, to int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.items.Move(from, to))
}

// LoadSampleData replaces every item with n generated ones. A non positive
// n uses the configured amount of sample rows.
func (g *Grid) LoadSampleData(n int) int {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if n <= 0 {
		n = g.config.SampleRows
	}
	g.items.Reset(g.sample(n))
	return g.items.Len()
}

func (g *Grid) Items() []Item {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	result := make([]Item, 0, g.items.Len())
	g.items.Traverse(func(row *collection.Row) bool {
		result = append(result, newItem(*row))
		return true
	})
	return result
}

func (g *Grid) Item(position int) (Item, bool) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	row, ok := g.items.Get(position)
	if !ok {
		return Item{}, false
	}
	return newItem(row), true
}

func (g *Grid) ActiveCount() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.items.ActiveCount()
}

func (g *Grid) RoleNames() []string {
	return record.Keys()
}

func (g *Grid) SortByRole(role string, order view.Order) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.view.SetSortKey(role, order)
}

func (g *Grid) ToggleSort(role string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.view.ToggleSort(role)
}

func (g *Grid) SetFilterText(text string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.view.SetFilterText(text)
}

func (g *Grid) ClearFilters() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.view.ClearFilters()
}

func (g *Grid) SetQuery(query map[string]interface{}) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return g.view.SetQuery(query)
}

func (g *Grid) RemoveRow(row int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.view.RemoveAt(row))
}

func (g *Grid) MoveRow(from, to int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return swallow(g.view.MoveAt(from, to))
}

func (g *Grid) Rows() []Row {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	rows := g.view.Rows()
	result := make([]Row, 0, len(rows))
	for p, row := range rows {
		result = append(result, Row{Row: p, Item: newItem(row)})
	}
	return result
}

func (g *Grid) Row(p int) (Row, bool) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	row, ok := g.view.Get(p)
	if !ok {
		return Row{}, false
	}
	return Row{Row: p, Item: newItem(row)}, true
}

func (g *Grid) State() State {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return State{
		SortRole:    g.view.SortKey(),
		SortOrder:   g.view.SortOrder(),
		FilterText:  g.view.FilterText(),
		Query:       g.view.Query(),
		Count:       g.view.Len(),
		Total:       g.items.Len(),
		ActiveCount: g.items.ActiveCount(),
	}
}

// Subscribe returns a channel with every change from now on. When the
// channel is full, events for that subscriber are dropped. The channel is
// closed by unsubscribe or by Close.
func (g *Grid) Subscribe(buffer int) (events <-chan *Event, unsubscribe func()) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.lastSubscriber++
	id := g.lastSubscriber
	ch := make(chan *Event, buffer)
	g.subscribers[id] = ch

	return ch, func() {
		g.mutex.Lock()
		defer g.mutex.Unlock()

		if _, exists := g.subscribers[id]; exists {
			close(ch)
			delete(g.subscribers, id)
		}
	}
}

// broadcast runs with the mutex already held by the mutating call.
func (g *Grid) broadcast(source string, e *collection.Event) {
	event := &Event{Source: source, Event: e}
	for _, ch := range g.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
