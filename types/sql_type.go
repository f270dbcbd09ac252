// Package types implements the SQL type system: the closed set of scalar
// and compound SqlType variants, the coercion lattice, and common-supertype
// unification used by the analyzer's type checker.
//
// Grounded on _examples/original_source/src/types/sql_type.rs. The teacher's
// own AST favors tagged-union-via-interface (see ast.Expr / ast.Statement),
// so SqlType follows the same idiom here rather than a single discriminated
// struct.
package types

import "fmt"

// SqlType is implemented by every member of the closed SQL type lattice.
type SqlType interface {
	fmt.Stringer
	sqlType()
}

// Scalar kinds with no parameters.
type (
	BoolType      struct{}
	Int32Type     struct{}
	Int64Type     struct{}
	Uint32Type    struct{}
	Uint64Type    struct{}
	Float32Type   struct{}
	Float64Type   struct{}
	VarcharType   struct{}
	VarbinaryType struct{}
	DateType      struct{}
	TimeType      struct{}
	DatetimeType  struct{}
	TimestampType struct{}
	IntervalType  struct{}
	JsonType      struct{}
	UuidType      struct{}
	UnknownType   struct{}
	AnyType       struct{}
)

func (BoolType) sqlType()      {}
func (Int32Type) sqlType()     {}
func (Int64Type) sqlType()     {}
func (Uint32Type) sqlType()    {}
func (Uint64Type) sqlType()    {}
func (Float32Type) sqlType()   {}
func (Float64Type) sqlType()   {}
func (VarcharType) sqlType()   {}
func (VarbinaryType) sqlType() {}
func (DateType) sqlType()      {}
func (TimeType) sqlType()      {}
func (DatetimeType) sqlType()  {}
func (TimestampType) sqlType() {}
func (IntervalType) sqlType()  {}
func (JsonType) sqlType()      {}
func (UuidType) sqlType()      {}
func (UnknownType) sqlType()   {}
func (AnyType) sqlType()       {}

func (BoolType) String() string      { return "BOOLEAN" }
func (Int32Type) String() string     { return "INTEGER" }
func (Int64Type) String() string     { return "BIGINT" }
func (Uint32Type) String() string    { return "INTEGER UNSIGNED" }
func (Uint64Type) String() string    { return "BIGINT UNSIGNED" }
func (Float32Type) String() string   { return "REAL" }
func (Float64Type) String() string   { return "DOUBLE PRECISION" }
func (VarcharType) String() string   { return "VARCHAR" }
func (VarbinaryType) String() string { return "VARBINARY" }
func (DateType) String() string      { return "DATE" }
func (TimeType) String() string      { return "TIME" }
func (DatetimeType) String() string  { return "TIMESTAMP" }
func (TimestampType) String() string { return "TIMESTAMP WITH TIME ZONE" }
func (IntervalType) String() string  { return "INTERVAL" }
func (JsonType) String() string      { return "JSON" }
func (UuidType) String() string      { return "UUID" }
func (UnknownType) String() string   { return "UNKNOWN" }
func (AnyType) String() string       { return "ANY" }

// NumericType is a fixed-point decimal with optional precision/scale.
type NumericType struct {
	Precision *uint8
	Scale     *uint8
}

func (NumericType) sqlType() {}

func (n NumericType) String() string {
	if n.Precision != nil && n.Scale != nil {
		return fmt.Sprintf("NUMERIC(%d,%d)", *n.Precision, *n.Scale)
	}
	if n.Precision != nil {
		return fmt.Sprintf("NUMERIC(%d)", *n.Precision)
	}
	return "NUMERIC"
}

// ArrayType is an array of elements of a single type.
type ArrayType struct {
	Elem SqlType
}

func (ArrayType) sqlType() {}

func (a ArrayType) String() string { return fmt.Sprintf("%s ARRAY", a.Elem.String()) }

// StructField is one field of a StructType; Name is nil for unnamed fields.
type StructField struct {
	Name     *string
	DataType SqlType
}

// StructType is a tuple of named or unnamed fields.
type StructType struct {
	Fields []StructField
}

func (StructType) sqlType() {}

func (s StructType) String() string {
	out := "STRUCT<"
	for i, f := range s.Fields {
		if i > 0 {
			out += ", "
		}
		if f.Name != nil {
			out += *f.Name + " "
		}
		out += f.DataType.String()
	}
	return out + ">"
}

// RangeType is a contiguous range over an orderable element type.
type RangeType struct {
	Elem SqlType
}

func (RangeType) sqlType() {}

func (r RangeType) String() string { return fmt.Sprintf("RANGE<%s>", r.Elem.String()) }

// IsNumeric reports whether t is any numeric type (integer, unsigned,
// floating point, or fixed-point decimal).
func IsNumeric(t SqlType) bool {
	switch t.(type) {
	case Int32Type, Int64Type, Uint32Type, Uint64Type, Float32Type, Float64Type, NumericType:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is a signed or unsigned integer type.
func IsInteger(t SqlType) bool {
	switch t.(type) {
	case Int32Type, Int64Type, Uint32Type, Uint64Type:
		return true
	default:
		return false
	}
}

// IsSignedInteger reports whether t is a signed integer type.
func IsSignedInteger(t SqlType) bool {
	switch t.(type) {
	case Int32Type, Int64Type:
		return true
	default:
		return false
	}
}

// IsUnsignedInteger reports whether t is an unsigned integer type.
func IsUnsignedInteger(t SqlType) bool {
	switch t.(type) {
	case Uint32Type, Uint64Type:
		return true
	default:
		return false
	}
}

// IsFloatingPoint reports whether t is a binary floating-point type.
func IsFloatingPoint(t SqlType) bool {
	switch t.(type) {
	case Float32Type, Float64Type:
		return true
	default:
		return false
	}
}

// IsString reports whether t is a character string type. Matches the
// original implementation: only Varchar counts, not Varbinary/Json.
func IsString(t SqlType) bool {
	_, ok := t.(VarcharType)
	return ok
}

// IsDatetime reports whether t is one of the date/time family types.
func IsDatetime(t SqlType) bool {
	switch t.(type) {
	case DateType, TimeType, DatetimeType, TimestampType:
		return true
	default:
		return false
	}
}

// ElementType returns the element type of an Array or Range, and ok=true.
// For any other type it returns (nil, false).
func ElementType(t SqlType) (SqlType, bool) {
	switch v := t.(type) {
	case ArrayType:
		return v.Elem, true
	case RangeType:
		return v.Elem, true
	default:
		return nil, false
	}
}

// StructFields returns the fields of a StructType, and ok=true. For any
// other type it returns (nil, false).
func StructFields(t SqlType) ([]StructField, bool) {
	if v, ok := t.(StructType); ok {
		return v.Fields, true
	}
	return nil, false
}

func typeRank(t SqlType) int {
	switch t.(type) {
	case UnknownType:
		return 0
	case Int32Type:
		return 1
	case Uint32Type:
		return 2
	case Int64Type:
		return 3
	case Uint64Type:
		return 4
	case Float32Type:
		return 5
	case Float64Type:
		return 6
	default:
		return -1
	}
}

// IsComparableWith reports whether values of type a and b can appear on
// either side of a comparison operator: identical types, any two numeric
// types, any two datetime types, or either side is Unknown/Any.
func IsComparableWith(a, b SqlType) bool {
	if sameType(a, b) {
		return true
	}
	if _, ok := a.(UnknownType); ok {
		return true
	}
	if _, ok := b.(UnknownType); ok {
		return true
	}
	if _, ok := a.(AnyType); ok {
		return true
	}
	if _, ok := b.(AnyType); ok {
		return true
	}
	if IsNumeric(a) && IsNumeric(b) {
		return true
	}
	if IsDatetime(a) && IsDatetime(b) {
		return true
	}
	return false
}

func sameType(a, b SqlType) bool {
	return a.String() == b.String() && fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}

// CanCoerceTo reports whether a value of type from can be implicitly
// coerced to type to: Unknown coerces to anything, any type coerces to
// itself or Any, integers widen to wider integers and to floating point,
// floating point widens float32->float64, and anything coerces to Varchar
// for display purposes only when from is already a string.
func CanCoerceTo(from, to SqlType) bool {
	if _, ok := from.(UnknownType); ok {
		return true
	}
	if _, ok := to.(AnyType); ok {
		return true
	}
	if sameType(from, to) {
		return true
	}
	if IsInteger(from) && IsInteger(to) {
		return typeRank(from) <= typeRank(to)
	}
	if IsInteger(from) && IsFloatingPoint(to) {
		return true
	}
	if IsFloatingPoint(from) && IsFloatingPoint(to) {
		return typeRank(from) <= typeRank(to)
	}
	if _, ok := from.(NumericType); ok {
		if IsFloatingPoint(to) {
			return true
		}
		if _, ok := to.(NumericType); ok {
			return true
		}
	}
	if arr, ok := from.(ArrayType); ok {
		if toArr, ok := to.(ArrayType); ok {
			return CanCoerceTo(arr.Elem, toArr.Elem)
		}
	}
	return false
}

// CommonSupertype computes the narrowest type both a and b can be coerced
// to, matching the original implementation's match arms exactly (including
// the Int64/Uint64 "no safe common integer type" case, which falls back to
// Float64).
func CommonSupertype(a, b SqlType) (SqlType, bool) {
	if sameType(a, b) {
		return a, true
	}
	if _, ok := a.(UnknownType); ok {
		return b, true
	}
	if _, ok := b.(UnknownType); ok {
		return a, true
	}
	if _, ok := a.(AnyType); ok {
		return AnyType{}, true
	}
	if _, ok := b.(AnyType); ok {
		return AnyType{}, true
	}

	if IsInteger(a) && IsInteger(b) {
		ar, br := typeRank(a), typeRank(b)
		// Int64 vs Uint64 (or vice versa): no integer type can represent
		// the full range of both, fall back to Float64.
		_, aIsI64 := a.(Int64Type)
		_, bIsU64 := b.(Uint64Type)
		_, aIsU64 := a.(Uint64Type)
		_, bIsI64 := b.(Int64Type)
		if (aIsI64 && bIsU64) || (aIsU64 && bIsI64) {
			return Float64Type{}, true
		}
		if ar >= br {
			return a, true
		}
		return b, true
	}

	if IsNumeric(a) && IsNumeric(b) {
		return Float64Type{}, true
	}

	if IsDatetime(a) && IsDatetime(b) {
		// Widen to the more general of the two; Timestamp is the most
		// general (carries a time zone), Datetime next, then Date/Time
		// are only compatible with themselves or each other's siblings.
		if _, ok := a.(TimestampType); ok {
			return a, true
		}
		if _, ok := b.(TimestampType); ok {
			return b, true
		}
		if _, ok := a.(DatetimeType); ok {
			return a, true
		}
		if _, ok := b.(DatetimeType); ok {
			return b, true
		}
		return nil, false
	}

	if aArr, ok := a.(ArrayType); ok {
		if bArr, ok := b.(ArrayType); ok {
			elem, ok := CommonSupertype(aArr.Elem, bArr.Elem)
			if !ok {
				return nil, false
			}
			return ArrayType{Elem: elem}, true
		}
	}

	return nil, false
}
