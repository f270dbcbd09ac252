package analyzer

import (
	"fmt"
	"strings"

	"github.com/loamquery/sqlfront/types"
)

// Kind tags the variety of semantic error Error reports.
//
// Grounded on _examples/original_source/src/analyzer/error.rs's
// AnalyzerErrorKind.
type Kind int

const (
	TableNotFound Kind = iota
	ColumnNotFound
	AmbiguousColumn
	FunctionNotFound
	WrongArgumentCount
	TypeMismatch
	TypesNotComparable
	InvalidAggregateUse
	InvalidWindowUse
	DuplicateAlias
	DuplicateGroupByColumn
	NonAggregatedColumn
	OrderByNotInSelect
	HavingWithoutGroupBy
	InvalidSubquery
	DivisionByZero
	InvalidCast
	InvalidDateTimeLiteral
	DuplicateCte
	InvalidRecursiveCte
	StarNotAllowed
	SetOperationColumnMismatch
	Other
)

// Error is a semantic-analysis failure: a missing table or column, a type
// mismatch, an invalid aggregate/window use, and so on. One struct carries
// the fields for every Kind; only the fields relevant to Kind are set.
type Error struct {
	Kind Kind

	Name     string // table/column/function/alias/CTE name, depending on Kind
	Table    string
	HasTable bool

	Tables []string // AmbiguousColumn

	Function       string
	ExpectedMin    int
	ExpectedMax    int
	HasExpectedMax bool
	Actual         int

	ExpectedType types.SqlType
	ActualType   types.SqlType
	Context      string

	Left  types.SqlType
	Right types.SqlType

	Reason string
	Column string

	Value        string
	ExpectedKind string // InvalidDateTimeLiteral's "expected_type"

	LeftCount  int
	RightCount int

	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case TableNotFound:
		return fmt.Sprintf("table '%s' not found", e.Name)
	case ColumnNotFound:
		if e.HasTable {
			return fmt.Sprintf("column '%s' not found in table '%s'", e.Name, e.Table)
		}
		return fmt.Sprintf("column '%s' not found", e.Name)
	case AmbiguousColumn:
		return fmt.Sprintf("ambiguous column '%s' found in tables: %s", e.Name, strings.Join(e.Tables, ", "))
	case FunctionNotFound:
		return fmt.Sprintf("function '%s' not found", e.Name)
	case WrongArgumentCount:
		if e.HasExpectedMax {
			if e.ExpectedMin == e.ExpectedMax {
				return fmt.Sprintf("function '%s' expects %d arguments, got %d", e.Function, e.ExpectedMin, e.Actual)
			}
			return fmt.Sprintf("function '%s' expects %d-%d arguments, got %d", e.Function, e.ExpectedMin, e.ExpectedMax, e.Actual)
		}
		return fmt.Sprintf("function '%s' expects at least %d arguments, got %d", e.Function, e.ExpectedMin, e.Actual)
	case TypeMismatch:
		return fmt.Sprintf("type mismatch in %s: expected %s, got %s", e.Context, e.ExpectedType, e.ActualType)
	case TypesNotComparable:
		return fmt.Sprintf("cannot compare %s with %s", e.Left, e.Right)
	case InvalidAggregateUse:
		return fmt.Sprintf("invalid use of aggregate function '%s': %s", e.Function, e.Reason)
	case InvalidWindowUse:
		return fmt.Sprintf("invalid use of window function '%s': %s", e.Function, e.Reason)
	case DuplicateAlias:
		return fmt.Sprintf("duplicate alias '%s'", e.Name)
	case DuplicateGroupByColumn:
		return fmt.Sprintf("duplicate column '%s' in GROUP BY", e.Name)
	case NonAggregatedColumn:
		return fmt.Sprintf("column '%s' must appear in GROUP BY clause or be used in an aggregate function", e.Column)
	case OrderByNotInSelect:
		return fmt.Sprintf("ORDER BY column '%s' must appear in SELECT list when DISTINCT is used", e.Column)
	case HavingWithoutGroupBy:
		return "HAVING clause requires GROUP BY clause"
	case InvalidSubquery:
		return fmt.Sprintf("invalid subquery: %s", e.Reason)
	case DivisionByZero:
		return "division by zero"
	case InvalidCast:
		return fmt.Sprintf("cannot cast %s to %s", e.Left, e.Right)
	case InvalidDateTimeLiteral:
		return fmt.Sprintf("invalid %s literal: '%s'", e.ExpectedKind, e.Value)
	case DuplicateCte:
		return fmt.Sprintf("duplicate CTE name '%s'", e.Name)
	case InvalidRecursiveCte:
		return fmt.Sprintf("invalid recursive CTE: %s", e.Reason)
	case StarNotAllowed:
		return fmt.Sprintf("* not allowed in %s", e.Context)
	case SetOperationColumnMismatch:
		return fmt.Sprintf("set operations require the same number of columns (%d vs %d)", e.LeftCount, e.RightCount)
	case Other:
		return e.Message
	default:
		return "analyzer error"
	}
}

// TableNotFoundErr reports that name could not be resolved against the catalog.
func TableNotFoundErr(name string) *Error {
	return &Error{Kind: TableNotFound, Name: name}
}

// ColumnNotFoundErr reports that name could not be resolved, optionally
// scoped to a specific table.
func ColumnNotFoundErr(name, table string, hasTable bool) *Error {
	return &Error{Kind: ColumnNotFound, Name: name, Table: table, HasTable: hasTable}
}

// AmbiguousColumnErr reports name resolving to more than one table.
func AmbiguousColumnErr(name string, tables []string) *Error {
	return &Error{Kind: AmbiguousColumn, Name: name, Tables: tables}
}

// FunctionNotFoundErr reports that name has no catalog signature.
func FunctionNotFoundErr(name string) *Error {
	return &Error{Kind: FunctionNotFound, Name: name}
}

// WrongArgumentCountErr reports a call whose argument count sig doesn't accept.
func WrongArgumentCountErr(function string, expectedMin, expectedMax int, hasMax bool, actual int) *Error {
	return &Error{
		Kind:           WrongArgumentCount,
		Function:       function,
		ExpectedMin:    expectedMin,
		ExpectedMax:    expectedMax,
		HasExpectedMax: hasMax,
		Actual:         actual,
	}
}

// TypeMismatchErr reports expected vs actual type disagreement in context.
func TypeMismatchErr(expected, actual types.SqlType, context string) *Error {
	return &Error{Kind: TypeMismatch, ExpectedType: expected, ActualType: actual, Context: context}
}

// TypesNotComparableErr reports left and right having no comparison semantics.
func TypesNotComparableErr(left, right types.SqlType) *Error {
	return &Error{Kind: TypesNotComparable, Left: left, Right: right}
}

// NonAggregatedColumnErr reports column appearing outside GROUP BY/aggregate
// context in an aggregated query.
func NonAggregatedColumnErr(column string) *Error {
	return &Error{Kind: NonAggregatedColumn, Column: column}
}

// InvalidAggregateUseErr reports function used somewhere aggregates can't go.
func InvalidAggregateUseErr(function, reason string) *Error {
	return &Error{Kind: InvalidAggregateUse, Function: function, Reason: reason}
}

// SetOperationColumnMismatchErr reports a UNION/INTERSECT/EXCEPT arity mismatch.
func SetOperationColumnMismatchErr(left, right int) *Error {
	return &Error{Kind: SetOperationColumnMismatch, LeftCount: left, RightCount: right}
}

// DuplicateAliasErr reports a repeated alias or column name.
func DuplicateAliasErr(name string) *Error {
	return &Error{Kind: DuplicateAlias, Name: name}
}

// DuplicateCteErr reports a WITH clause naming the same CTE twice.
func DuplicateCteErr(name string) *Error {
	return &Error{Kind: DuplicateCte, Name: name}
}

// HavingWithoutGroupByErr reports a HAVING clause with no GROUP BY or aggregate.
func HavingWithoutGroupByErr() *Error {
	return &Error{Kind: HavingWithoutGroupBy}
}

// OtherErr wraps an ad-hoc message that doesn't fit a structured Kind.
func OtherErr(message string) *Error {
	return &Error{Kind: Other, Message: message}
}
