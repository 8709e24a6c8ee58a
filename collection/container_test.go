package collection

import (
	"testing"

	"github.com/fulldump/biff"
	"github.com/google/uuid"
)

func positions(c *SliceContainer) []int {
	result := []int{}
	c.Traverse(func(row *Row) bool {
		result = append(result, row.I)
		return true
	})
	return result
}

func TestSliceContainer(t *testing.T) {

	biff.Alternative("SliceContainer", func(a *biff.A) {

		c := NewSliceContainer()

		row1 := &Row{ID: uuid.New(), I: -1}
		row2 := &Row{ID: uuid.New(), I: -1}
		row3 := &Row{ID: uuid.New(), I: -1}
		c.Append(row1)
		c.Append(row2)
		c.Append(row3)

		biff.AssertEqual(row1.I, 0)
		biff.AssertEqual(row3.I, 2)
		biff.AssertEqual(c.Len(), 3)

		a.Alternative("Get", func(a *biff.A) {
			r, ok := c.Get(1)
			biff.AssertTrue(ok)
			biff.AssertEqual(r, row2)

			_, ok = c.Get(3)
			biff.AssertFalse(ok)
		})

		a.Alternative("Find", func(a *biff.A) {
			r, ok := c.Find(row3.ID)
			biff.AssertTrue(ok)
			biff.AssertEqual(r, row3)

			_, ok = c.Find(uuid.New())
			biff.AssertFalse(ok)
		})

		a.Alternative("Remove keeps order", func(a *biff.A) {
			r, ok := c.Remove(0)
			biff.AssertTrue(ok)
			biff.AssertEqual(r, row1)
			biff.AssertEqual(c.Len(), 2)
			biff.AssertEqual(row2.I, 0)
			biff.AssertEqual(row3.I, 1)
			biff.AssertEqual(positions(c), []int{0, 1})

			_, ok = c.Find(row1.ID)
			biff.AssertFalse(ok)
		})

		a.Alternative("Move forward", func(a *biff.A) {
			biff.AssertTrue(c.Move(0, 2))
			first, _ := c.Get(0)
			last, _ := c.Get(2)
			biff.AssertEqual(first, row2)
			biff.AssertEqual(last, row1)
			biff.AssertEqual(positions(c), []int{0, 1, 2})
		})

		a.Alternative("Move backward", func(a *biff.A) {
			biff.AssertTrue(c.Move(2, 0))
			first, _ := c.Get(0)
			second, _ := c.Get(1)
			biff.AssertEqual(first, row3)
			biff.AssertEqual(second, row1)
			biff.AssertEqual(row2.I, 2)
		})

		a.Alternative("Move out of range", func(a *biff.A) {
			biff.AssertFalse(c.Move(0, 3))
			biff.AssertEqual(row1.I, 0)
		})

		a.Alternative("Reset", func(a *biff.A) {
			c.Reset([]*Row{row3})
			biff.AssertEqual(c.Len(), 1)
			biff.AssertEqual(row3.I, 0)
			_, ok := c.Find(row1.ID)
			biff.AssertFalse(ok)
		})
	})
}
