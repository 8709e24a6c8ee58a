package view

import "fmt"

type Order int

const (
	Ascending Order = iota
	Descending
)

func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("bad order '%s', must be [ascending|descending]", s)
}

func (o Order) Flip() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
