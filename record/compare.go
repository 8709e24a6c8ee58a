package record

import (
	"cmp"
	"strings"

	"golang.org/x/text/cases"
)

// Folder performs Unicode case folding. It keeps caser state, so each
// goroutine needs its own.
type Folder struct {
	caser cases.Caser
}

func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// Contains reports whether substr occurs in s ignoring case. needle must
// already be folded.
func (f *Folder) Contains(s, needle string) bool {
	return strings.Contains(f.Fold(s), needle)
}

// Compare orders two values of the same field. Numbers compare numerically,
// booleans as false < true, everything else (strings and dates) by their
// case-folded text. Absent or mismatched values fall back to the folded
// text of both sides.
func (f *Folder) Compare(a, b Value) int {
	if !a.Valid() || !b.Valid() || a.Kind() != b.Kind() {
		return strings.Compare(f.Fold(a.Text()), f.Fold(b.Text()))
	}

	switch a.Kind() {
	case KindNumber:
		return cmp.Compare(a.n, b.n)
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	}

	return strings.Compare(f.Fold(a.Text()), f.Fold(b.Text()))
}
