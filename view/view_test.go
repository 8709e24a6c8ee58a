package view

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/datagrid/collection"
	"github.com/fulldump/datagrid/record"
)

func newRecord(name string, salary float64) record.Record {
	return record.Record{
		Name:         name,
		Role:         "Developer",
		Department:   "Engineering",
		Salary:       salary,
		IsActive:     true,
		HireDate:     record.NewDate(2020, time.January, 1),
		Status:       record.StatusActive,
		RemoteWork:   false,
		ContractType: record.ContractFullTime,
	}
}

func projectedNames(v *View) []string {
	result := []string{}
	for p := 0; p < v.Len(); p++ {
		value, _ := v.FieldValue(p, "name")
		result = append(result, value.Str())
	}
	return result
}

func storeNames(c *collection.Collection) []string {
	result := []string{}
	for _, r := range c.Records() {
		result = append(result, r.Name)
	}
	return result
}

type recorder struct {
	names []string
}

func (r *recorder) OnEvent(e *collection.Event) {
	r.names = append(r.names, e.Name)
}

func TestView(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		c := collection.New(
			newRecord("Bob", 50000),
			newRecord("Ann", 70000),
			newRecord("Cid", 50000),
		)
		logs := &bytes.Buffer{}
		v := New(c, log.New(logs, "", 0))
		defer v.Close()

		events := &recorder{}
		v.Subscribe(events)

		a.Alternative("Defaults", func(a *biff.A) {
			biff.AssertEqual(v.SortKey(), "name")
			biff.AssertEqual(v.SortOrder(), Ascending)
			biff.AssertEqual(v.FilterText(), "")
			biff.AssertEqual(projectedNames(v), []string{"Ann", "Bob", "Cid"})
		})

		a.Alternative("Sort by salary is stable", func(a *biff.A) {
			v.SetSortKey("salary", Ascending)
			biff.AssertEqual(projectedNames(v), []string{"Bob", "Cid", "Ann"})
			biff.AssertEqual(events.names, []string{EventSortKey, EventReset})

			a.Alternative("Descending keeps tie order", func(a *biff.A) {
				v.SetSortKey("salary", Descending)
				biff.AssertEqual(projectedNames(v), []string{"Ann", "Bob", "Cid"})
			})

			a.Alternative("Filter text", func(a *biff.A) {
				v.SetFilterText("an")
				biff.AssertEqual(projectedNames(v), []string{"Ann"})
				biff.AssertEqual(v.Len(), 1)

				a.Alternative("Filter twice is idempotent", func(a *biff.A) {
					v.SetFilterText("an")
					biff.AssertEqual(projectedNames(v), []string{"Ann"})
				})

				a.Alternative("Clear filters", func(a *biff.A) {
					v.ClearFilters()
					biff.AssertEqual(projectedNames(v), []string{"Bob", "Cid", "Ann"})
				})
			})
		})

		a.Alternative("Same key and order is a no-op", func(a *biff.A) {
			v.SetSortKey("name", Ascending)
			biff.AssertEqual(len(events.names), 0)
		})

		a.Alternative("Toggle sort twice", func(a *biff.A) {
			v.ToggleSort("name")
			biff.AssertEqual(v.SortOrder(), Descending)
			biff.AssertEqual(projectedNames(v), []string{"Cid", "Bob", "Ann"})

			v.ToggleSort("name")
			biff.AssertEqual(v.SortOrder(), Ascending)
			biff.AssertEqual(projectedNames(v), []string{"Ann", "Bob", "Cid"})
		})

		a.Alternative("Toggle sort on another key", func(a *biff.A) {
			v.ToggleSort("name")
			v.ToggleSort("salary")
			biff.AssertEqual(v.SortKey(), "salary")
			biff.AssertEqual(v.SortOrder(), Ascending)
		})

		a.Alternative("Unknown sort key keeps store order", func(a *biff.A) {
			v.SetSortKey("age", Descending)
			biff.AssertEqual(projectedNames(v), []string{"Bob", "Ann", "Cid"})
		})

		a.Alternative("Filter matches any field", func(a *biff.A) {
			v.SetFilterText("70000")
			biff.AssertEqual(projectedNames(v), []string{"Ann"})

			v.SetFilterText("ENGINEER")
			biff.AssertEqual(v.Len(), 3)

			v.SetFilterText("2020-01-01")
			biff.AssertEqual(v.Len(), 3)

			v.SetFilterText("nobody")
			biff.AssertEqual(v.Len(), 0)
			_, ok := v.FieldValue(0, "name")
			biff.AssertFalse(ok)
		})

		a.Alternative("Query", func(a *biff.A) {
			err := v.SetQuery(map[string]interface{}{
				"salary": map[string]interface{}{"$gt": 60000.0},
			})
			biff.AssertNil(err)
			biff.AssertEqual(projectedNames(v), []string{"Ann"})

			a.Alternative("Query and filter text combine", func(a *biff.A) {
				v.SetFilterText("bob")
				biff.AssertEqual(v.Len(), 0)
			})

			a.Alternative("Invalid query keeps previous one", func(a *biff.A) {
				err := v.SetQuery(map[string]interface{}{
					"salary": map[string]interface{}{"$nope": 1.0},
				})
				biff.AssertTrue(errors.Is(err, ErrInvalidQuery))
				biff.AssertEqual(projectedNames(v), []string{"Ann"})
			})

			a.Alternative("Clear filters drops the query", func(a *biff.A) {
				v.ClearFilters()
				biff.AssertNil(v.Query())
				biff.AssertEqual(v.Len(), 3)
			})
		})

		a.Alternative("Projection follows store changes", func(a *biff.A) {
			c.Insert(newRecord("Aaron", 10))
			biff.AssertEqual(projectedNames(v), []string{"Aaron", "Ann", "Bob", "Cid"})
			biff.AssertEqual(events.names, []string{EventReset})

			c.UpdateItem(0, "Zoe", "Developer", "Engineering")
			biff.AssertEqual(projectedNames(v), []string{"Aaron", "Ann", "Cid", "Zoe"})
		})

		a.Alternative("Map positions", func(a *biff.A) {
			position, ok := v.MapToSource(0)
			biff.AssertTrue(ok)
			biff.AssertEqual(position, 1)

			p, ok := v.MapFromSource(2)
			biff.AssertTrue(ok)
			biff.AssertEqual(p, 2)

			_, ok = v.MapToSource(3)
			biff.AssertFalse(ok)

			v.SetFilterText("cid")
			_, ok = v.MapFromSource(0)
			biff.AssertFalse(ok)
		})

		a.Alternative("RemoveAt removes the projected record", func(a *biff.A) {
			v.SetFilterText("cid")

			err := v.RemoveAt(0)
			biff.AssertNil(err)

			v.ClearFilters()
			biff.AssertEqual(storeNames(c), []string{"Bob", "Ann"})
			biff.AssertEqual(projectedNames(v), []string{"Ann", "Bob"})
		})

		a.Alternative("RemoveAt under sort", func(a *biff.A) {
			// projected 0 is Ann, stored at position 1
			err := v.RemoveAt(0)
			biff.AssertNil(err)
			biff.AssertEqual(storeNames(c), []string{"Bob", "Cid"})
		})

		a.Alternative("RemoveAt out of range", func(a *biff.A) {
			err := v.RemoveAt(3)
			biff.AssertTrue(errors.Is(err, collection.ErrOutOfRange))
			biff.AssertEqual(c.Len(), 3)
		})

		a.Alternative("MoveAt under the default sort", func(a *biff.A) {
			err := v.MoveAt(0, 1)
			biff.AssertEqual(err, ErrUnsupported)
			biff.AssertEqual(storeNames(c), []string{"Bob", "Ann", "Cid"})
		})

		a.Alternative("MoveAt while sorted", func(a *biff.A) {
			err := v.MoveAt(0, 2)
			biff.AssertEqual(err, ErrUnsupported)
			biff.AssertEqual(storeNames(c), []string{"Bob", "Ann", "Cid"})
			biff.AssertTrue(strings.Contains(logs.String(), "move row from 0 to 2"))
		})

		a.Alternative("MoveAt out of range", func(a *biff.A) {
			err := v.MoveAt(0, 3)
			biff.AssertTrue(errors.Is(err, collection.ErrOutOfRange))
			biff.AssertEqual(logs.String(), "")
		})

		a.Alternative("MoveAt unsorted and unfiltered", func(a *biff.A) {
			v.SetSortKey("", Ascending)
			biff.AssertEqual(projectedNames(v), []string{"Bob", "Ann", "Cid"})

			err := v.MoveAt(0, 2)
			biff.AssertNil(err)
			biff.AssertEqual(storeNames(c), []string{"Ann", "Cid", "Bob"})
			biff.AssertEqual(projectedNames(v), []string{"Ann", "Cid", "Bob"})

			a.Alternative("Filtered again", func(a *biff.A) {
				v.SetFilterText("b")
				err := v.MoveAt(0, 0)
				biff.AssertNil(err)
				biff.AssertEqual(storeNames(c), []string{"Ann", "Cid", "Bob"})
			})
		})

		a.Alternative("Close detaches", func(a *biff.A) {
			biff.AssertEqual(v.Len(), 3)
			v.Close()
			c.Insert(newRecord("Dee", 1))
			biff.AssertEqual(v.Len(), 3)
		})
	})
}

func TestView_Reversal(t *testing.T) {

	c := collection.New(
		newRecord("e", 5),
		newRecord("b", 2),
		newRecord("d", 4),
		newRecord("a", 1),
		newRecord("c", 3),
	)
	v := New(c, nil)

	v.SetSortKey("salary", Ascending)
	ascending := projectedNames(v)

	v.SetSortKey("salary", Descending)
	descending := projectedNames(v)

	biff.AssertEqual(ascending, []string{"a", "b", "c", "d", "e"})
	for i := range ascending {
		biff.AssertEqual(descending[i], ascending[len(ascending)-1-i])
	}
}

func TestOrder(t *testing.T) {

	o, err := ParseOrder("descending")
	biff.AssertNil(err)
	biff.AssertEqual(o, Descending)
	biff.AssertEqual(o.Flip(), Ascending)

	o, err = ParseOrder("")
	biff.AssertNil(err)
	biff.AssertEqual(o, Ascending)

	_, err = ParseOrder("sideways")
	biff.AssertNotNil(err)
}
