package record

import "errors"

var ErrUnknownField = errors.New("unknown field key")

// Field identifies one column of a Record. The set is closed.
type Field int

const (
	FieldName Field = iota
	FieldRole
	FieldDepartment
	FieldSalary
	FieldIsActive
	FieldHireDate
	FieldStatus
	FieldRemoteWork
	FieldContractType
)

// Kind is the native type of a field.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
)

var fieldKeys = [...]string{
	FieldName:         "name",
	FieldRole:         "role",
	FieldDepartment:   "department",
	FieldSalary:       "salary",
	FieldIsActive:     "isActive",
	FieldHireDate:     "hireDate",
	FieldStatus:       "status",
	FieldRemoteWork:   "remoteWork",
	FieldContractType: "contractType",
}

var fieldKinds = [...]Kind{
	FieldName:         KindString,
	FieldRole:         KindString,
	FieldDepartment:   KindString,
	FieldSalary:       KindNumber,
	FieldIsActive:     KindBool,
	FieldHireDate:     KindDate,
	FieldStatus:       KindString,
	FieldRemoteWork:   KindBool,
	FieldContractType: KindString,
}

var fieldsByKey = func() map[string]Field {
	m := make(map[string]Field, len(fieldKeys))
	for f, key := range fieldKeys {
		m[key] = Field(f)
	}
	return m
}()

// Fields returns every field in column order.
func Fields() []Field {
	fields := make([]Field, len(fieldKeys))
	for i := range fieldKeys {
		fields[i] = Field(i)
	}
	return fields
}

// Keys returns the role names used to bind columns, in column order.
func Keys() []string {
	keys := make([]string, len(fieldKeys))
	copy(keys, fieldKeys[:])
	return keys
}

// ParseField looks a field up by its key. Keys are case sensitive.
func ParseField(key string) (Field, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

func (f Field) Valid() bool {
	return f >= 0 && int(f) < len(fieldKeys)
}

func (f Field) Key() string {
	if !f.Valid() {
		return ""
	}
	return fieldKeys[f]
}

func (f Field) Kind() Kind {
	if !f.Valid() {
		return KindInvalid
	}
	return fieldKinds[f]
}

func (f Field) String() string {
	return f.Key()
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, ErrUnknownField
	}
	return []byte(f.Key()), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, ok := ParseField(string(text))
	if !ok {
		return ErrUnknownField
	}
	*f = parsed
	return nil
}
