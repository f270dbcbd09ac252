package types

import "testing"

func u8(v uint8) *uint8 { return &v }

func TestNumericClassification(t *testing.T) {
	if !IsNumeric(Int32Type{}) || !IsNumeric(Float64Type{}) || !IsNumeric(NumericType{Precision: u8(10), Scale: u8(2)}) {
		t.Fatal("expected numeric types to classify as numeric")
	}
	if IsNumeric(VarcharType{}) || IsNumeric(BoolType{}) {
		t.Fatal("non-numeric types misclassified as numeric")
	}
}

func TestIsInteger(t *testing.T) {
	for _, ty := range []SqlType{Int32Type{}, Int64Type{}, Uint32Type{}, Uint64Type{}} {
		if !IsInteger(ty) {
			t.Fatalf("%s should be an integer type", ty)
		}
	}
	if IsInteger(Float32Type{}) || IsInteger(NumericType{}) {
		t.Fatal("non-integer types misclassified as integer")
	}
}

func TestIsSignedUnsignedInteger(t *testing.T) {
	if !IsSignedInteger(Int32Type{}) || !IsSignedInteger(Int64Type{}) {
		t.Fatal("Int32/Int64 should be signed")
	}
	if IsSignedInteger(Uint32Type{}) || IsSignedInteger(Uint64Type{}) {
		t.Fatal("Uint32/Uint64 should not be signed")
	}
	if !IsUnsignedInteger(Uint32Type{}) || !IsUnsignedInteger(Uint64Type{}) {
		t.Fatal("Uint32/Uint64 should be unsigned")
	}
	if IsUnsignedInteger(Int32Type{}) || IsUnsignedInteger(Int64Type{}) {
		t.Fatal("Int32/Int64 should not be unsigned")
	}
}

func TestIsFloatingPoint(t *testing.T) {
	if !IsFloatingPoint(Float32Type{}) || !IsFloatingPoint(Float64Type{}) {
		t.Fatal("Float32/Float64 should be floating point")
	}
	if IsFloatingPoint(NumericType{}) || IsFloatingPoint(Int64Type{}) {
		t.Fatal("non float types misclassified")
	}
}

func TestIsString(t *testing.T) {
	if !IsString(VarcharType{}) {
		t.Fatal("Varchar should be a string type")
	}
	if IsString(VarbinaryType{}) || IsString(JsonType{}) {
		t.Fatal("Varbinary/Json should not be string types")
	}
}

func TestIsDatetime(t *testing.T) {
	for _, ty := range []SqlType{DateType{}, TimeType{}, DatetimeType{}, TimestampType{}} {
		if !IsDatetime(ty) {
			t.Fatalf("%s should be a datetime type", ty)
		}
	}
	if IsDatetime(IntervalType{}) {
		t.Fatal("Interval should not classify as datetime")
	}
}

func TestIsComparableWith(t *testing.T) {
	if !IsComparableWith(Int32Type{}, Float64Type{}) {
		t.Fatal("numeric types should be comparable with each other")
	}
	if !IsComparableWith(DateType{}, TimestampType{}) {
		t.Fatal("datetime types should be comparable with each other")
	}
	if !IsComparableWith(UnknownType{}, VarcharType{}) {
		t.Fatal("Unknown should be comparable with anything")
	}
	if IsComparableWith(VarcharType{}, BoolType{}) {
		t.Fatal("Varchar and Bool should not be comparable")
	}
}

func TestCoercion(t *testing.T) {
	if !CanCoerceTo(Int32Type{}, Int64Type{}) {
		t.Fatal("Int32 should coerce to Int64")
	}
	if CanCoerceTo(Int64Type{}, Int32Type{}) {
		t.Fatal("Int64 should not narrow-coerce to Int32")
	}
	if !CanCoerceTo(Int32Type{}, Float64Type{}) {
		t.Fatal("integers should coerce to floating point")
	}
	if !CanCoerceTo(UnknownType{}, VarcharType{}) {
		t.Fatal("Unknown should coerce to anything")
	}
	if !CanCoerceTo(BoolType{}, AnyType{}) {
		t.Fatal("anything should coerce to Any")
	}
}

func TestCommonSupertype(t *testing.T) {
	got, ok := CommonSupertype(Int32Type{}, Int64Type{})
	if !ok || got.String() != (Int64Type{}).String() {
		t.Fatalf("expected Int64, got %v ok=%v", got, ok)
	}

	got, ok = CommonSupertype(Int64Type{}, Uint64Type{})
	if !ok || got.String() != (Float64Type{}).String() {
		t.Fatalf("Int64+Uint64 should fall back to Float64, got %v", got)
	}

	got, ok = CommonSupertype(Int32Type{}, Float32Type{})
	if !ok || got.String() != (Float64Type{}).String() {
		t.Fatalf("mixed integer/float should widen to Float64, got %v", got)
	}

	got, ok = CommonSupertype(UnknownType{}, BoolType{})
	if !ok || got.String() != (BoolType{}).String() {
		t.Fatalf("Unknown+T should resolve to T, got %v", got)
	}

	_, ok = CommonSupertype(VarcharType{}, BoolType{})
	if ok {
		t.Fatal("Varchar and Bool should have no common supertype")
	}
}

func TestElementType(t *testing.T) {
	arr := ArrayType{Elem: Int32Type{}}
	elem, ok := ElementType(arr)
	if !ok || elem.String() != (Int32Type{}).String() {
		t.Fatalf("expected array element Int32, got %v", elem)
	}
	if _, ok := ElementType(BoolType{}); ok {
		t.Fatal("scalar types should have no element type")
	}
}

func TestStructFields(t *testing.T) {
	name := "id"
	st := StructType{Fields: []StructField{{Name: &name, DataType: Int64Type{}}}}
	fields, ok := StructFields(st)
	if !ok || len(fields) != 1 || *fields[0].Name != "id" {
		t.Fatalf("unexpected struct fields: %+v", fields)
	}
	if _, ok := StructFields(Int32Type{}); ok {
		t.Fatal("scalar types should have no struct fields")
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		ty   SqlType
		want string
	}{
		{BoolType{}, "BOOLEAN"},
		{Int32Type{}, "INTEGER"},
		{Int64Type{}, "BIGINT"},
		{Float64Type{}, "DOUBLE PRECISION"},
		{VarcharType{}, "VARCHAR"},
		{NumericType{Precision: u8(10), Scale: u8(2)}, "NUMERIC(10,2)"},
		{ArrayType{Elem: Int32Type{}}, "INTEGER ARRAY"},
	}
	for _, c := range cases {
		if got := c.ty.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
