package catalog

import (
	"strings"

	"github.com/loamquery/sqlfront/types"
)

// FunctionParameter describes one parameter of a FunctionSignature.
type FunctionParameter struct {
	Name       string
	HasName    bool
	DataType   types.SqlType
	HasType    bool
	Optional   bool
	Variadic   bool
}

// NewFunctionParameter builds a named, required parameter of a fixed type.
func NewFunctionParameter(name string, dataType types.SqlType) FunctionParameter {
	return FunctionParameter{Name: name, HasName: true, DataType: dataType, HasType: true}
}

// AnyFunctionParameter builds a named parameter that accepts any type.
func AnyFunctionParameter(name string) FunctionParameter {
	return FunctionParameter{Name: name, HasName: true}
}

// UnnamedFunctionParameter builds an unnamed, required parameter of a fixed type.
func UnnamedFunctionParameter(dataType types.SqlType) FunctionParameter {
	return FunctionParameter{DataType: dataType, HasType: true}
}

// AsOptional returns a copy of p marked optional.
func (p FunctionParameter) AsOptional() FunctionParameter {
	p.Optional = true
	return p
}

// AsVariadic returns a copy of p marked variadic.
func (p FunctionParameter) AsVariadic() FunctionParameter {
	p.Variadic = true
	return p
}

// FunctionSignature describes a built-in or user-registered SQL function.
type FunctionSignature struct {
	Name            string
	Parameters      []FunctionParameter
	ReturnType      types.SqlType
	IsAggregate     bool
	IsWindow        bool
	IsDeterministic bool
	MinArgs         int
	MaxArgs         int
	HasMaxArgs      bool
}

// ScalarFunction builds a deterministic scalar function signature.
func ScalarFunction(name string, returnType types.SqlType) FunctionSignature {
	return FunctionSignature{
		Name:            strings.ToUpper(name),
		ReturnType:      returnType,
		IsDeterministic: true,
	}
}

// AggregateFunction builds a deterministic aggregate function signature.
func AggregateFunction(name string, returnType types.SqlType) FunctionSignature {
	f := ScalarFunction(name, returnType)
	f.IsAggregate = true
	return f
}

// WindowFunction builds a deterministic window function signature.
func WindowFunction(name string, returnType types.SqlType) FunctionSignature {
	f := ScalarFunction(name, returnType)
	f.IsWindow = true
	return f
}

// WithMinArgs returns a copy of f with the minimum argument count set.
func (f FunctionSignature) WithMinArgs(min int) FunctionSignature {
	f.MinArgs = min
	return f
}

// WithMaxArgs returns a copy of f with the maximum argument count set.
func (f FunctionSignature) WithMaxArgs(max int) FunctionSignature {
	f.MaxArgs = max
	f.HasMaxArgs = true
	return f
}

// WithArgs returns a copy of f requiring exactly count arguments.
func (f FunctionSignature) WithArgs(count int) FunctionSignature {
	f.MinArgs = count
	f.MaxArgs = count
	f.HasMaxArgs = true
	return f
}

// WithParam returns a copy of f with an additional parameter appended.
func (f FunctionSignature) WithParam(p FunctionParameter) FunctionSignature {
	f.Parameters = append(append([]FunctionParameter{}, f.Parameters...), p)
	return f
}

// NonDeterministic returns a copy of f marked non-deterministic (e.g. RAND,
// CURRENT_TIMESTAMP).
func (f FunctionSignature) NonDeterministic() FunctionSignature {
	f.IsDeterministic = false
	return f
}

// AcceptsArgCount reports whether count falls within [MinArgs, MaxArgs].
func (f FunctionSignature) AcceptsArgCount(count int) bool {
	if count < f.MinArgs {
		return false
	}
	if f.HasMaxArgs {
		return count <= f.MaxArgs
	}
	return true
}

// CanBeWindow reports whether the function may appear with an OVER clause:
// true for both genuine window functions and aggregates used as window
// functions.
func (f FunctionSignature) CanBeWindow() bool {
	return f.IsWindow || f.IsAggregate
}
