package analyzer

import (
	"strings"

	"github.com/loamquery/sqlfront/ast"
	"github.com/loamquery/sqlfront/catalog"
	"github.com/loamquery/sqlfront/token"
	"github.com/loamquery/sqlfront/types"
)

// TypedExpr is the result of type-checking an expression.
type TypedExpr struct {
	DataType          types.SqlType
	Nullable          bool
	ContainsAggregate bool
	ContainsWindow    bool
}

// NonNull builds a TypedExpr that can never be NULL.
func NonNull(dataType types.SqlType) TypedExpr {
	return TypedExpr{DataType: dataType}
}

// Nullable builds a TypedExpr that may be NULL.
func Nullable(dataType types.SqlType) TypedExpr {
	return TypedExpr{DataType: dataType, Nullable: true}
}

// TypeChecker resolves the type of an ast.Expr against a Scope, consulting
// catalog for table/function metadata and registry for CAST target types.
//
// Grounded on
// _examples/original_source/src/analyzer/type_checker.rs.
type TypeChecker struct {
	Catalog  catalog.Catalog
	Registry *catalog.TypeRegistry
}

// NewTypeChecker builds a TypeChecker. A nil registry falls back to the
// standard type-name aliases.
func NewTypeChecker(cat catalog.Catalog, registry *catalog.TypeRegistry) *TypeChecker {
	if registry == nil {
		registry = catalog.NewTypeRegistry()
	}
	return &TypeChecker{Catalog: cat, Registry: registry}
}

// CheckExpr resolves the type of expr within scope.
func (c *TypeChecker) CheckExpr(expr ast.Expr, scope *Scope) (TypedExpr, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return c.checkLiteral(e)
	case *ast.ColName:
		return c.checkColName(e, scope)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(e, scope)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(e, scope)
	case *ast.ParenExpr:
		return c.CheckExpr(e.Expr, scope)
	case *ast.BetweenExpr:
		if _, err := c.CheckExpr(e.Expr, scope); err != nil {
			return TypedExpr{}, err
		}
		if _, err := c.CheckExpr(e.Low, scope); err != nil {
			return TypedExpr{}, err
		}
		if _, err := c.CheckExpr(e.High, scope); err != nil {
			return TypedExpr{}, err
		}
		return NonNull(types.BoolType{}), nil
	case *ast.InExpr:
		if _, err := c.CheckExpr(e.Expr, scope); err != nil {
			return TypedExpr{}, err
		}
		for _, v := range e.Values {
			if _, err := c.CheckExpr(v, scope); err != nil {
				return TypedExpr{}, err
			}
		}
		return NonNull(types.BoolType{}), nil
	case *ast.LikeExpr:
		if _, err := c.CheckExpr(e.Expr, scope); err != nil {
			return TypedExpr{}, err
		}
		if _, err := c.CheckExpr(e.Pattern, scope); err != nil {
			return TypedExpr{}, err
		}
		return NonNull(types.BoolType{}), nil
	case *ast.IsExpr:
		return NonNull(types.BoolType{}), nil
	case *ast.FuncExpr:
		return c.checkFuncExpr(e, scope)
	case *ast.CastExpr:
		return Nullable(c.convertDataType(e.Type)), nil
	case *ast.ExtractExpr:
		return Nullable(types.Int64Type{}), nil
	case *ast.CaseExpr:
		return c.checkCaseExpr(e, scope)
	case *ast.ArrayExpr:
		return c.checkArrayExpr(e, scope)
	case *ast.StructExpr:
		return c.checkStructExpr(e, scope)
	case *ast.SubscriptExpr:
		typed, err := c.CheckExpr(e.Expr, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		elem, ok := types.ElementType(typed.DataType)
		if !ok {
			elem = types.UnknownType{}
		}
		return Nullable(elem), nil
	case *ast.Subquery:
		return Nullable(types.UnknownType{}), nil
	case *ast.ExistsExpr:
		return NonNull(types.BoolType{}), nil
	case *ast.Param:
		return Nullable(types.UnknownType{}), nil
	case *ast.IntervalExpr:
		return NonNull(types.IntervalType{}), nil
	case *ast.TrimExpr:
		typed, err := c.CheckExpr(e.Expr, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		return Nullable(types.VarcharType{}).withFlags(typed), nil
	case *ast.SubstringExpr:
		typed, err := c.CheckExpr(e.Expr, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		return Nullable(types.VarcharType{}).withFlags(typed), nil
	case *ast.PositionExpr:
		if _, err := c.CheckExpr(e.Needle, scope); err != nil {
			return TypedExpr{}, err
		}
		if _, err := c.CheckExpr(e.Haystack, scope); err != nil {
			return TypedExpr{}, err
		}
		return Nullable(types.Int64Type{}), nil
	case *ast.CollateExpr:
		return c.CheckExpr(e.Expr, scope)
	case *ast.StarExpr:
		return Nullable(types.UnknownType{}), nil
	default:
		return Nullable(types.UnknownType{}), nil
	}
}

// withFlags copies the aggregate/window flags of src onto t, leaving t's own
// data type and nullability untouched. Used by expressions that wrap a
// single inner expr and want to propagate its aggregate/window-ness.
func (t TypedExpr) withFlags(src TypedExpr) TypedExpr {
	t.ContainsAggregate = src.ContainsAggregate
	t.ContainsWindow = src.ContainsWindow
	return t
}

func (c *TypeChecker) checkLiteral(l *ast.Literal) (TypedExpr, error) {
	switch l.Type {
	case ast.LiteralNull:
		return Nullable(types.UnknownType{}), nil
	case ast.LiteralBool:
		return NonNull(types.BoolType{}), nil
	case ast.LiteralInt:
		return NonNull(types.Int64Type{}), nil
	case ast.LiteralFloat:
		return NonNull(types.Float64Type{}), nil
	case ast.LiteralString:
		return NonNull(types.VarcharType{}), nil
	case ast.LiteralBlob:
		return NonNull(types.VarbinaryType{}), nil
	default:
		return Nullable(types.UnknownType{}), nil
	}
}

func (c *TypeChecker) checkColName(col *ast.ColName, scope *Scope) (TypedExpr, error) {
	name := col.Name()
	if table := col.Table(); table != "" {
		resolved, ok := scope.LookupQualifiedColumn(table, name)
		if !ok {
			return TypedExpr{}, ColumnNotFoundErr(name, table, true)
		}
		return TypedExpr{DataType: resolved.DataType, Nullable: resolved.Nullable}, nil
	}

	result := scope.LookupColumn(name)
	switch result.Kind {
	case ColumnFoundResult:
		return TypedExpr{DataType: result.Column.DataType, Nullable: result.Column.Nullable}, nil
	case ColumnAmbiguousResult:
		return TypedExpr{}, AmbiguousColumnErr(name, result.Tables)
	default:
		return TypedExpr{}, ColumnNotFoundErr(name, "", false)
	}
}

func (c *TypeChecker) checkBinaryExpr(b *ast.BinaryExpr, scope *Scope) (TypedExpr, error) {
	left, err := c.CheckExpr(b.Left, scope)
	if err != nil {
		return TypedExpr{}, err
	}
	right, err := c.CheckExpr(b.Right, scope)
	if err != nil {
		return TypedExpr{}, err
	}

	var resultType types.SqlType
	switch b.Op {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE:
		resultType = types.BoolType{}
	case token.AND, token.OR, token.XOR:
		resultType = types.BoolType{}
	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT:
		if common, ok := types.CommonSupertype(left.DataType, right.DataType); ok {
			resultType = common
		} else {
			resultType = types.Float64Type{}
		}
	case token.CONCAT:
		resultType = types.VarcharType{}
	case token.BITAND, token.BITOR, token.BITXOR:
		resultType = types.Int64Type{}
	default:
		resultType = types.UnknownType{}
	}

	return TypedExpr{
		DataType:          resultType,
		Nullable:          left.Nullable || right.Nullable,
		ContainsAggregate: left.ContainsAggregate || right.ContainsAggregate,
		ContainsWindow:    left.ContainsWindow || right.ContainsWindow,
	}, nil
}

func (c *TypeChecker) checkUnaryExpr(u *ast.UnaryExpr, scope *Scope) (TypedExpr, error) {
	typed, err := c.CheckExpr(u.Operand, scope)
	if err != nil {
		return TypedExpr{}, err
	}

	var resultType types.SqlType
	switch u.Op {
	case token.NOT:
		resultType = types.BoolType{}
	case token.PLUS, token.MINUS:
		resultType = typed.DataType
	default:
		resultType = types.Int64Type{} // bitwise NOT (~)
	}

	return TypedExpr{
		DataType:          resultType,
		Nullable:          typed.Nullable,
		ContainsAggregate: typed.ContainsAggregate,
		ContainsWindow:    typed.ContainsWindow,
	}, nil
}

func (c *TypeChecker) checkFuncExpr(f *ast.FuncExpr, scope *Scope) (TypedExpr, error) {
	funcName := strings.ToUpper(f.Name)

	sig, ok, err := c.Catalog.ResolveFunction([]string{f.Name})
	if err != nil || !ok {
		return TypedExpr{}, FunctionNotFoundErr(funcName)
	}

	if !sig.AcceptsArgCount(len(f.Args)) {
		return TypedExpr{}, WrongArgumentCountErr(funcName, sig.MinArgs, sig.MaxArgs, sig.HasMaxArgs, len(f.Args))
	}

	for _, arg := range f.Args {
		if _, isStar := arg.(*ast.StarExpr); isStar {
			continue
		}
		if _, err := c.CheckExpr(arg, scope); err != nil {
			return TypedExpr{}, err
		}
	}

	if f.Over != nil {
		return TypedExpr{DataType: sig.ReturnType, Nullable: true, ContainsWindow: true}, nil
	}

	return TypedExpr{
		DataType:          sig.ReturnType,
		Nullable:          true,
		ContainsAggregate: sig.IsAggregate,
		ContainsWindow:    sig.IsWindow,
	}, nil
}

func (c *TypeChecker) checkCaseExpr(ce *ast.CaseExpr, scope *Scope) (TypedExpr, error) {
	if ce.Operand != nil {
		if _, err := c.CheckExpr(ce.Operand, scope); err != nil {
			return TypedExpr{}, err
		}
	}

	var resultType types.SqlType = types.UnknownType{}
	hasAggregate, hasWindow := false, false
	for _, when := range ce.Whens {
		if _, err := c.CheckExpr(when.Cond, scope); err != nil {
			return TypedExpr{}, err
		}
		typed, err := c.CheckExpr(when.Result, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		hasAggregate = hasAggregate || typed.ContainsAggregate
		hasWindow = hasWindow || typed.ContainsWindow
		if _, isUnknown := resultType.(types.UnknownType); isUnknown {
			resultType = typed.DataType
		} else if common, ok := types.CommonSupertype(resultType, typed.DataType); ok {
			resultType = common
		}
	}
	if ce.Else != nil {
		typed, err := c.CheckExpr(ce.Else, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		hasAggregate = hasAggregate || typed.ContainsAggregate
		hasWindow = hasWindow || typed.ContainsWindow
		if common, ok := types.CommonSupertype(resultType, typed.DataType); ok {
			resultType = common
		}
	}

	return TypedExpr{DataType: resultType, Nullable: true, ContainsAggregate: hasAggregate, ContainsWindow: hasWindow}, nil
}

func (c *TypeChecker) checkArrayExpr(a *ast.ArrayExpr, scope *Scope) (TypedExpr, error) {
	var elemType types.SqlType = types.UnknownType{}
	var hasAggregate, hasWindow bool
	for i, el := range a.Elements {
		typed, err := c.CheckExpr(el, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		if i == 0 {
			elemType = typed.DataType
		}
		hasAggregate = hasAggregate || typed.ContainsAggregate
		hasWindow = hasWindow || typed.ContainsWindow
	}
	result := NonNull(types.ArrayType{Elem: elemType})
	result.ContainsAggregate = hasAggregate
	result.ContainsWindow = hasWindow
	return result, nil
}

func (c *TypeChecker) checkStructExpr(s *ast.StructExpr, scope *Scope) (TypedExpr, error) {
	fields := make([]types.StructField, 0, len(s.Fields))
	for _, f := range s.Fields {
		typed, err := c.CheckExpr(f.Value, scope)
		if err != nil {
			return TypedExpr{}, err
		}
		field := types.StructField{DataType: typed.DataType}
		if f.HasName {
			name := f.Name
			field.Name = &name
		}
		fields = append(fields, field)
	}
	return NonNull(types.StructType{Fields: fields}), nil
}

// convertDataType maps a parsed ast.DataType onto the analyzer's SqlType
// lattice, resolving named types (and NUMERIC precision/scale) through
// Registry.
func (c *TypeChecker) convertDataType(dt *ast.DataType) types.SqlType {
	if dt == nil {
		return types.UnknownType{}
	}

	name := strings.ToUpper(dt.Name)
	if name == "NUMERIC" || name == "DECIMAL" || name == "BIGNUMERIC" {
		var t types.NumericType
		if dt.Precision != nil {
			p := uint8(*dt.Precision)
			t.Precision = &p
		}
		if dt.Scale != nil {
			s := uint8(*dt.Scale)
			t.Scale = &s
		}
		return wrapArray(t, dt.Array)
	}

	if resolved, ok := c.Registry.Resolve(name); ok {
		return wrapArray(resolved, dt.Array)
	}
	return wrapArray(types.UnknownType{}, dt.Array)
}

func wrapArray(t types.SqlType, isArray bool) types.SqlType {
	if isArray {
		return types.ArrayType{Elem: t}
	}
	return t
}
