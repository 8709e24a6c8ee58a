// Package record defines the fixed-shape row stored by the grid and the
// typed field access used by the store and its views.
package record

import (
	"fmt"
)

const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

const (
	ContractFullTime   = "Full-time"
	ContractPartTime   = "Part-time"
	ContractFreelancer = "Freelancer"
	ContractIntern     = "Intern"
)

var Statuses = []string{StatusActive, StatusPending, StatusInactive}

var ContractTypes = []string{ContractFullTime, ContractPartTime, ContractFreelancer, ContractIntern}

type Record struct {
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Department   string  `json:"department"`
	Salary       float64 `json:"salary"`
	IsActive     bool    `json:"isActive"`
	HireDate     Date    `json:"hireDate"`
	Status       string  `json:"status"`
	RemoteWork   bool    `json:"remoteWork"`
	ContractType string  `json:"contractType"`
}

// Get returns the value of f, or an absent Value for an unknown field.
func (r *Record) Get(f Field) Value {
	switch f {
	case FieldName:
		return String(r.Name)
	case FieldRole:
		return String(r.Role)
	case FieldDepartment:
		return String(r.Department)
	case FieldSalary:
		return Number(r.Salary)
	case FieldIsActive:
		return Bool(r.IsActive)
	case FieldHireDate:
		return DateValue(r.HireDate)
	case FieldStatus:
		return String(r.Status)
	case FieldRemoteWork:
		return Bool(r.RemoteWork)
	case FieldContractType:
		return String(r.ContractType)
	}
	return Value{}
}

// Set overwrites one field. The value kind must match the field kind.
func (r *Record) Set(f Field, v Value) error {
	if !f.Valid() {
		return ErrUnknownField
	}
	if v.Kind() != f.Kind() {
		return fmt.Errorf("field '%s': %w", f.Key(), ErrTypeMismatch)
	}

	switch f {
	case FieldName:
		r.Name = v.s
	case FieldRole:
		r.Role = v.s
	case FieldDepartment:
		r.Department = v.s
	case FieldSalary:
		r.Salary = v.n
	case FieldIsActive:
		r.IsActive = v.b
	case FieldHireDate:
		r.HireDate = v.d
	case FieldStatus:
		r.Status = v.s
	case FieldRemoteWork:
		r.RemoteWork = v.b
	case FieldContractType:
		r.ContractType = v.s
	}
	return nil
}

// Map renders the record with the same keys and value shapes as its JSON
// encoding, which is what query matching works on.
func (r *Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(fieldKeys))
	for _, f := range Fields() {
		m[f.Key()] = r.Get(f).Interface()
	}
	return m
}

// Patch is a partial update keyed by field.
type Patch map[Field]Value

// Validate checks every entry before anything is written.
func (p Patch) Validate() error {
	for f, v := range p {
		if !f.Valid() {
			return ErrUnknownField
		}
		if v.Kind() != f.Kind() {
			return fmt.Errorf("field '%s': %w", f.Key(), ErrTypeMismatch)
		}
	}
	return nil
}

// Apply writes the patch into r. Nothing is written if validation fails.
func (p Patch) Apply(r *Record) error {
	err := p.Validate()
	if err != nil {
		return err
	}
	for f, v := range p {
		r.Set(f, v)
	}
	return nil
}

// Fields returns the patched fields in column order.
func (p Patch) Fields() []Field {
	fields := make([]Field, 0, len(p))
	for _, f := range Fields() {
		if _, ok := p[f]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// ParsePatch builds a Patch from decoded JSON keyed by field key.
func ParsePatch(raw map[string]interface{}) (Patch, error) {
	p := make(Patch, len(raw))
	for key, value := range raw {
		f, ok := ParseField(key)
		if !ok {
			return nil, fmt.Errorf("field '%s': %w", key, ErrUnknownField)
		}
		v, err := ValueOf(f, value)
		if err != nil {
			return nil, fmt.Errorf("field '%s': %w", key, err)
		}
		p[f] = v
	}
	return p, nil
}
