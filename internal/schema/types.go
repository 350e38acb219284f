package schema

import "strings"

// DataType is the literal SQL type string written into CREATE TABLE.
type DataType string

// Supported column data types, in the order they are offered to the user.
const (
	TypeInt     DataType = "INT"
	TypeVarchar DataType = "VARCHAR(255)"
	TypeDate    DataType = "DATE"
	TypeText    DataType = "TEXT"
	TypeFloat   DataType = "FLOAT"
)

var dataTypes = []DataType{TypeInt, TypeVarchar, TypeDate, TypeText, TypeFloat}

// DataTypes returns the supported data types in menu order.
func DataTypes() []DataType {
	out := make([]DataType, len(dataTypes))
	copy(out, dataTypes)
	return out
}

// DataTypeLabels returns the supported data types as menu labels.
func DataTypeLabels() []string {
	labels := make([]string, len(dataTypes))
	for i, dt := range dataTypes {
		labels[i] = string(dt)
	}
	return labels
}

// ParseDataType resolves s (case-insensitive) to a supported data type.
func ParseDataType(s string) (DataType, error) {
	for _, dt := range dataTypes {
		if strings.EqualFold(string(dt), strings.TrimSpace(s)) {
			return dt, nil
		}
	}
	return "", &UnknownTypeError{Type: s}
}

// Valid reports whether dt is one of the supported data types.
func (dt DataType) Valid() bool {
	for _, known := range dataTypes {
		if dt == known {
			return true
		}
	}
	return false
}

func (dt DataType) String() string {
	return string(dt)
}
