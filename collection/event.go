package collection

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/datagrid/record"
)

const (
	EventReset       = "reset"
	EventInsert      = "insert"
	EventRemove      = "remove"
	EventMove        = "move"
	EventUpdate      = "update"
	EventActiveCount = "active_count"
)

// Event describes one change. Position is the row affected (source of a
// move), To is the destination of a move and Count carries counters such as
// the active count.
type Event struct {
	Name      string         `json:"name"`
	Uuid      string         `json:"uuid"`
	Timestamp int64          `json:"timestamp"`
	Position  int            `json:"position"`
	To        int            `json:"to"`
	Count     int            `json:"count"`
	Fields    []record.Field `json:"fields,omitempty"`
	RowID     string         `json:"row_id,omitempty"`
}

func NewEvent(name string) *Event {
	return &Event{
		Name:      name,
		Uuid:      uuid.New().String(),
		Timestamp: time.Now().UnixNano(),
	}
}

type Observer interface {
	OnEvent(e *Event)
}

type ObserverFunc func(e *Event)

func (f ObserverFunc) OnEvent(e *Event) {
	f(e)
}

type subscription struct {
	id       int
	observer Observer
}

// Notifier delivers events synchronously to observers in subscription order.
// The zero value is ready to use.
type Notifier struct {
	lastID        int
	subscriptions []subscription
}

// Subscribe registers o and returns the func that removes it.
func (n *Notifier) Subscribe(o Observer) (unsubscribe func()) {
	n.lastID++
	id := n.lastID
	n.subscriptions = append(n.subscriptions, subscription{id: id, observer: o})

	return func() {
		for i, s := range n.subscriptions {
			if s.id == id {
				n.subscriptions = append(n.subscriptions[:i:i], n.subscriptions[i+1:]...)
				return
			}
		}
	}
}

func (n *Notifier) Notify(e *Event) {
	// observers may unsubscribe while being notified
	subscriptions := n.subscriptions
	for _, s := range subscriptions {
		s.observer.OnEvent(e)
	}
}

func (n *Notifier) Len() int {
	return len(n.subscriptions)
}
