package collection

import (
	"errors"
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/datagrid/record"
)

func newRecord(name string, salary float64, active bool) record.Record {
	return record.Record{
		Name:         name,
		Role:         "Developer",
		Department:   "Engineering",
		Salary:       salary,
		IsActive:     active,
		HireDate:     record.NewDate(2022, time.May, 17),
		Status:       record.StatusActive,
		RemoteWork:   true,
		ContractType: record.ContractFullTime,
	}
}

func names(c *Collection) []string {
	result := []string{}
	for _, r := range c.Records() {
		result = append(result, r.Name)
	}
	return result
}

// recorder keeps every event it receives
type recorder struct {
	events []*Event
}

func (r *recorder) OnEvent(e *Event) {
	r.events = append(r.events, e)
}

func (r *recorder) names() []string {
	result := []string{}
	for _, e := range r.events {
		result = append(result, e.Name)
	}
	return result
}

func TestCollection(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		c := New(
			newRecord("Bob", 50000, true),
			newRecord("Ann", 70000, false),
			newRecord("Cid", 50000, true),
		)
		events := &recorder{}
		c.Subscribe(events)

		biff.AssertEqual(c.Len(), 3)
		biff.AssertEqual(c.ActiveCount(), 2)

		a.Alternative("FieldValue", func(a *biff.A) {
			v, ok := c.FieldValue(1, "name")
			biff.AssertTrue(ok)
			biff.AssertEqual(v.Str(), "Ann")

			v, ok = c.FieldValue(1, "salary")
			biff.AssertTrue(ok)
			biff.AssertEqual(v.Num(), 70000.0)

			_, ok = c.FieldValue(3, "name")
			biff.AssertFalse(ok)

			_, ok = c.FieldValue(-1, "name")
			biff.AssertFalse(ok)

			_, ok = c.FieldValue(0, "age")
			biff.AssertFalse(ok)
		})

		a.Alternative("Insert", func(a *biff.A) {
			row := c.Insert(newRecord("Dee", 90000, true))

			biff.AssertEqual(row.I, 3)
			biff.AssertEqual(c.Len(), 4)
			biff.AssertEqual(c.ActiveCount(), 3)
			biff.AssertEqual(events.names(), []string{EventInsert, EventActiveCount})
			biff.AssertEqual(events.events[0].Position, 3)
			biff.AssertEqual(events.events[0].RowID, row.ID.String())
			biff.AssertEqual(events.events[1].Count, 3)

			a.Alternative("Remove restores previous state", func(a *biff.A) {
				err := c.Remove(3)
				biff.AssertNil(err)
				biff.AssertEqual(c.Len(), 3)
				biff.AssertEqual(names(c), []string{"Bob", "Ann", "Cid"})
				biff.AssertEqual(c.ActiveCount(), 2)

				_, ok := c.PositionOf(row.ID)
				biff.AssertFalse(ok)
			})
		})

		a.Alternative("Remove", func(a *biff.A) {
			err := c.Remove(0)
			biff.AssertNil(err)
			biff.AssertEqual(names(c), []string{"Ann", "Cid"})
			biff.AssertEqual(c.ActiveCount(), 1)
			biff.AssertEqual(events.names(), []string{EventRemove, EventActiveCount})
			biff.AssertEqual(events.events[0].Position, 0)

			row, _ := c.Get(1)
			biff.AssertEqual(row.I, 1)
			biff.AssertEqual(row.Record.Name, "Cid")
		})

		a.Alternative("Remove out of range", func(a *biff.A) {
			err := c.Remove(3)
			biff.AssertTrue(errors.Is(err, ErrOutOfRange))
			err = c.Remove(-1)
			biff.AssertTrue(errors.Is(err, ErrOutOfRange))

			biff.AssertEqual(names(c), []string{"Bob", "Ann", "Cid"})
			biff.AssertEqual(len(events.events), 0)
		})

		a.Alternative("UpdateItem", func(a *biff.A) {
			before, _ := c.Get(1)

			err := c.UpdateItem(1, "Anna", "Manager", "Management")
			biff.AssertNil(err)

			after, _ := c.Get(1)
			expected := before.Record
			expected.Name = "Anna"
			expected.Role = "Manager"
			expected.Department = "Management"
			biff.AssertEqual(after.Record, expected)
			biff.AssertEqual(after.ID, before.ID)

			biff.AssertEqual(events.names(), []string{EventUpdate})
			biff.AssertEqual(events.events[0].Position, 1)
			biff.AssertEqual(events.events[0].Fields, []record.Field{
				record.FieldName, record.FieldRole, record.FieldDepartment,
			})
		})

		a.Alternative("Update every field round trips", func(a *biff.A) {
			values := map[record.Field]record.Value{
				record.FieldName:         record.String("Zed"),
				record.FieldRole:         record.String("QA"),
				record.FieldDepartment:   record.String("QA"),
				record.FieldSalary:       record.Number(1),
				record.FieldIsActive:     record.Bool(false),
				record.FieldHireDate:     record.DateValue(record.NewDate(1999, time.December, 31)),
				record.FieldStatus:       record.String(record.StatusPending),
				record.FieldRemoteWork:   record.Bool(false),
				record.FieldContractType: record.String(record.ContractIntern),
			}
			for f, v := range values {
				before, _ := c.Get(2)

				err := c.Update(2, record.Patch{f: v})
				biff.AssertNil(err)

				got, ok := c.Value(2, f)
				biff.AssertTrue(ok)
				biff.AssertEqual(got, v)

				after, _ := c.Get(2)
				for _, other := range record.Fields() {
					if other == f {
						continue
					}
					biff.AssertEqual(after.Record.Get(other), before.Record.Get(other))
				}
			}
		})

		a.Alternative("Update isActive refreshes active count", func(a *biff.A) {
			err := c.Update(1, record.Patch{record.FieldIsActive: record.Bool(true)})
			biff.AssertNil(err)
			biff.AssertEqual(c.ActiveCount(), 3)
			biff.AssertEqual(events.names(), []string{EventUpdate, EventActiveCount})
		})

		a.Alternative("Update with wrong kind", func(a *biff.A) {
			err := c.Update(1, record.Patch{
				record.FieldName:   record.String("Anna"),
				record.FieldSalary: record.String("many"),
			})
			biff.AssertTrue(errors.Is(err, record.ErrTypeMismatch))
			biff.AssertEqual(names(c), []string{"Bob", "Ann", "Cid"})
			biff.AssertEqual(len(events.events), 0)
		})

		a.Alternative("Update out of range", func(a *biff.A) {
			err := c.UpdateItem(7, "x", "y", "z")
			biff.AssertTrue(errors.Is(err, ErrOutOfRange))
			biff.AssertEqual(len(events.events), 0)
		})

		a.Alternative("Move", func(a *biff.A) {
			bob, _ := c.Get(0)

			err := c.Move(0, 2)
			biff.AssertNil(err)
			biff.AssertEqual(names(c), []string{"Ann", "Cid", "Bob"})
			biff.AssertEqual(events.names(), []string{EventMove})
			biff.AssertEqual(events.events[0].Position, 0)
			biff.AssertEqual(events.events[0].To, 2)

			position, ok := c.PositionOf(bob.ID)
			biff.AssertTrue(ok)
			biff.AssertEqual(position, 2)

			a.Alternative("Move back", func(a *biff.A) {
				err := c.Move(2, 0)
				biff.AssertNil(err)
				biff.AssertEqual(names(c), []string{"Bob", "Ann", "Cid"})
			})
		})

		a.Alternative("Move no-ops", func(a *biff.A) {
			biff.AssertNil(c.Move(1, 1))
			biff.AssertTrue(errors.Is(c.Move(0, 3), ErrOutOfRange))
			biff.AssertTrue(errors.Is(c.Move(-1, 0), ErrOutOfRange))
			biff.AssertEqual(names(c), []string{"Bob", "Ann", "Cid"})
			biff.AssertEqual(len(events.events), 0)
		})

		a.Alternative("Reset", func(a *biff.A) {
			c.Reset([]record.Record{newRecord("Eve", 1, false)})
			biff.AssertEqual(names(c), []string{"Eve"})
			biff.AssertEqual(c.ActiveCount(), 0)
			biff.AssertEqual(events.names(), []string{EventReset, EventActiveCount})
		})
	})
}

func TestNotifier_Unsubscribe(t *testing.T) {

	n := &Notifier{}
	first := &recorder{}
	second := &recorder{}

	var unsubscribeFirst func()
	unsubscribeFirst = n.Subscribe(ObserverFunc(func(e *Event) {
		first.OnEvent(e)
		unsubscribeFirst()
	}))
	n.Subscribe(second)

	n.Notify(NewEvent(EventReset))
	n.Notify(NewEvent(EventReset))

	biff.AssertEqual(len(first.events), 1)
	biff.AssertEqual(len(second.events), 2)
	biff.AssertEqual(n.Len(), 1)
}
