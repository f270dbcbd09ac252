package analyzer

import (
	"fmt"
	"strings"

	"github.com/loamquery/sqlfront/ast"
	"github.com/loamquery/sqlfront/catalog"
	"github.com/loamquery/sqlfront/types"
)

// OutputColumn is one column of a query's projected result.
type OutputColumn struct {
	Name     string
	DataType types.SqlType
	Nullable bool
}

// AnalyzedQuery is the result of analyzing a query: its output shape plus
// whether it aggregates or uses window functions.
type AnalyzedQuery struct {
	Columns            []OutputColumn
	HasAggregation     bool
	HasWindowFunctions bool
}

// Analyzer performs semantic analysis (name resolution, type checking) over
// parsed statements.
//
// Grounded on _examples/original_source/src/analyzer/mod.rs's Analyzer.
type Analyzer struct {
	Catalog  catalog.Catalog
	Registry *catalog.TypeRegistry

	scopes []*Scope
}

// NewAnalyzer builds an Analyzer over cat, using the standard type-name
// aliases for CAST target resolution.
func NewAnalyzer(cat catalog.Catalog) *Analyzer {
	return NewAnalyzerWithRegistry(cat, nil)
}

// NewAnalyzerWithRegistry builds an Analyzer over cat, resolving CAST
// target types through registry. A nil registry falls back to the
// standard aliases.
func NewAnalyzerWithRegistry(cat catalog.Catalog, registry *catalog.TypeRegistry) *Analyzer {
	if registry == nil {
		registry = catalog.NewTypeRegistry()
	}
	return &Analyzer{
		Catalog:  cat,
		Registry: registry,
		scopes:   []*Scope{NewScope()},
	}
}

// NewDefaultAnalyzer builds an Analyzer over a fresh MemoryCatalog
// pre-loaded with the standard function library.
func NewDefaultAnalyzer() *Analyzer {
	mc := catalog.NewMemoryCatalog()
	mc.RegisterBuiltins()
	return NewAnalyzer(mc)
}

// Analyze validates stmt, returning the first semantic error encountered.
func (a *Analyzer) Analyze(stmt ast.Statement) error {
	return a.analyzeStatement(stmt)
}

// AnalyzeQueryResult analyzes a query statement (SELECT or set operation)
// and reports its projected output shape.
func (a *Analyzer) AnalyzeQueryResult(stmt ast.Statement) (AnalyzedQuery, error) {
	return a.analyzeQueryInternal(stmt)
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.SelectStmt:
		_, err := a.analyzeQueryInternal(s)
		return err
	case *ast.SetOp:
		_, err := a.analyzeQueryInternal(s)
		return err
	case *ast.InsertStmt:
		return a.analyzeInsert(s)
	case *ast.UpdateStmt:
		return a.analyzeUpdate(s)
	case *ast.DeleteStmt:
		return a.analyzeDelete(s)
	case *ast.MergeStmt:
		return a.analyzeMerge(s)
	case *ast.CreateTableStmt:
		return a.analyzeCreateTable(s)
	case *ast.CreateViewStmt:
		return a.analyzeCreateView(s)
	default:
		return nil // DDL/utility statements need no deep analysis
	}
}

// analyzeQueryInternal handles the parts common to SELECT and set
// operations: WITH clause, the query body, ORDER BY, and LIMIT/OFFSET.
func (a *Analyzer) analyzeQueryInternal(stmt ast.Statement) (AnalyzedQuery, error) {
	var with *ast.WithClause
	var orderBy []*ast.OrderByExpr
	var limit *ast.Limit

	switch s := stmt.(type) {
	case *ast.SelectStmt:
		with, orderBy, limit = s.With, s.OrderBy, s.Limit
	case *ast.SetOp:
		with, orderBy, limit = s.With, s.OrderBy, s.Limit
	}

	if with != nil {
		if err := a.analyzeWithClause(with); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	result, err := a.analyzeQueryBody(stmt)
	if err != nil {
		return AnalyzedQuery{}, err
	}

	for _, ob := range orderBy {
		if _, err := a.analyzeExpr(ob.Expr); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	if limit != nil {
		if limit.Count != nil {
			if err := a.analyzeExprExpectInt(limit.Count); err != nil {
				return AnalyzedQuery{}, err
			}
		}
		if limit.Offset != nil {
			if err := a.analyzeExprExpectInt(limit.Offset); err != nil {
				return AnalyzedQuery{}, err
			}
		}
	}

	return result, nil
}

func (a *Analyzer) analyzeWithClause(with *ast.WithClause) error {
	for _, cte := range with.CTEs {
		if a.currentScope().HasCTE(cte.Name) {
			return DuplicateCteErr(cte.Name)
		}

		cteResult, err := a.analyzeQueryInternal(cte.Query)
		if err != nil {
			return err
		}

		columns := make([]ScopeColumn, len(cteResult.Columns))
		for i, col := range cteResult.Columns {
			columns[i] = NewScopeColumn(col.Name, col.DataType, col.Nullable, cte.Name, i)
		}

		a.currentScope().AddCTE(CteRef{Name: cte.Name, Columns: columns, IsRecursive: with.Recursive})
	}
	return nil
}

// analyzeQueryBody dispatches on the query-body shape: a plain SELECT, or a
// UNION/INTERSECT/EXCEPT whose sides must agree on column count.
func (a *Analyzer) analyzeQueryBody(stmt ast.Statement) (AnalyzedQuery, error) {
	switch s := stmt.(type) {
	case *ast.SelectStmt:
		return a.analyzeSelect(s)
	case *ast.SetOp:
		left, err := a.analyzeQueryBody(s.Left)
		if err != nil {
			return AnalyzedQuery{}, err
		}
		right, err := a.analyzeQueryBody(s.Right)
		if err != nil {
			return AnalyzedQuery{}, err
		}
		if len(left.Columns) != len(right.Columns) {
			return AnalyzedQuery{}, SetOperationColumnMismatchErr(len(left.Columns), len(right.Columns))
		}
		return left, nil
	default:
		return AnalyzedQuery{}, OtherErr("expected a query")
	}
}

func (a *Analyzer) analyzeSelect(sel *ast.SelectStmt) (AnalyzedQuery, error) {
	a.pushScope()
	defer a.popScope()

	if sel.From != nil {
		if err := a.analyzeTableExpr(sel.From); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	hasGroupBy := len(sel.GroupBy) > 0 || len(sel.GroupingSets) > 0
	a.currentScope().HasGroupBy = hasGroupBy
	for _, item := range sel.GroupBy {
		if col, ok := item.(*ast.ColName); ok && len(col.Parts) == 1 {
			a.currentScope().GroupByColumns = append(a.currentScope().GroupByColumns, col.Name())
		}
	}
	for _, set := range sel.GroupingSets {
		for _, item := range set {
			if col, ok := item.(*ast.ColName); ok && len(col.Parts) == 1 {
				a.currentScope().GroupByColumns = append(a.currentScope().GroupByColumns, col.Name())
			}
		}
	}

	if sel.Where != nil {
		if err := a.analyzeExprExpectBool(sel.Where); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	var columns []OutputColumn
	hasAggregation, hasWindowFunctions := false, false

	for _, item := range sel.Columns {
		switch col := item.(type) {
		case *ast.AliasedExpr:
			typed, err := a.analyzeExpr(col.Expr)
			if err != nil {
				return AnalyzedQuery{}, err
			}
			hasAggregation = hasAggregation || typed.ContainsAggregate
			hasWindowFunctions = hasWindowFunctions || typed.ContainsWindow

			name := col.Alias
			if name == "" {
				if derived, ok := exprToName(col.Expr); ok {
					name = derived
				} else {
					name = fmt.Sprintf("_col%d", len(columns))
				}
			}
			columns = append(columns, OutputColumn{Name: name, DataType: typed.DataType, Nullable: typed.Nullable})

		case *ast.StarExpr:
			expanded, err := a.expandStar(col)
			if err != nil {
				return AnalyzedQuery{}, err
			}
			columns = append(columns, expanded...)
		}
	}

	if sel.Having != nil {
		if !hasGroupBy && !hasAggregation {
			return AnalyzedQuery{}, HavingWithoutGroupByErr()
		}
		if err := a.analyzeExprExpectBool(sel.Having); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	// QUALIFY filters on the result of a window function, so unlike HAVING
	// it doesn't require GROUP BY or aggregation to be present.
	if sel.Qualify != nil {
		if err := a.analyzeExprExpectBool(sel.Qualify); err != nil {
			return AnalyzedQuery{}, err
		}
	}

	return AnalyzedQuery{Columns: columns, HasAggregation: hasAggregation, HasWindowFunctions: hasWindowFunctions}, nil
}

// expandStar expands a StarExpr (bare *, table.*, or either narrowed by
// EXCEPT/REPLACE) into concrete output columns.
func (a *Analyzer) expandStar(star *ast.StarExpr) ([]OutputColumn, error) {
	var tables []ScopeTable
	if star.HasQualifier {
		table, ok := a.currentScope().LookupTable(star.TableName)
		if !ok {
			return nil, TableNotFoundErr(star.TableName)
		}
		tables = []ScopeTable{table}
	} else {
		tables = a.currentScope().AllTables()
	}

	except := make(map[string]bool, len(star.Except))
	for _, name := range star.Except {
		except[strings.ToLower(name)] = true
	}
	replace := make(map[string]*ast.AliasedExpr, len(star.Replace))
	for _, r := range star.Replace {
		replace[strings.ToLower(r.Alias)] = r
	}

	var out []OutputColumn
	for _, table := range tables {
		for _, col := range table.Columns {
			lower := strings.ToLower(col.Name)
			if except[lower] {
				continue
			}
			if repl, ok := replace[lower]; ok {
				typed, err := a.analyzeExpr(repl.Expr)
				if err != nil {
					return nil, err
				}
				out = append(out, OutputColumn{Name: col.Name, DataType: typed.DataType, Nullable: typed.Nullable})
				continue
			}
			out = append(out, OutputColumn{Name: col.Name, DataType: col.DataType, Nullable: col.Nullable})
		}
	}
	return out, nil
}

// analyzeTableExpr walks a FROM-clause expression, registering every table,
// subquery, and CTE reference it contains into the current scope.
func (a *Analyzer) analyzeTableExpr(te ast.TableExpr) error {
	switch t := te.(type) {
	case *ast.TableName:
		return a.analyzeTableName(t, "")

	case *ast.AliasedTableExpr:
		switch inner := t.Expr.(type) {
		case *ast.TableName:
			return a.analyzeTableName(inner, t.Alias)
		case *ast.Subquery:
			return a.analyzeSubqueryTable(inner, t.Alias)
		default:
			return a.analyzeTableExpr(t.Expr)
		}

	case *ast.Subquery:
		return a.analyzeSubqueryTable(t, "")

	case *ast.Unnest:
		return a.analyzeUnnestTable(t)

	case *ast.JoinExpr:
		if err := a.analyzeTableExpr(t.Left); err != nil {
			return err
		}
		if err := a.analyzeTableExpr(t.Right); err != nil {
			return err
		}
		if t.On != nil {
			return a.analyzeExprExpectBool(t.On)
		}
		return nil

	case *ast.ParenTableExpr:
		return a.analyzeTableExpr(t.Expr)

	case *ast.TableList:
		for _, tbl := range t.Tables {
			if err := a.analyzeTableExpr(tbl); err != nil {
				return err
			}
		}
		return nil

	case *ast.ValuesStmt:
		for _, row := range t.Rows {
			for _, expr := range row {
				if _, err := a.analyzeExpr(expr); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return nil
	}
}

func (a *Analyzer) analyzeTableName(name *ast.TableName, explicitAlias string) error {
	nameParts := name.Parts
	baseName := name.Name()

	if cte, ok := a.lookupCTE(baseName); ok {
		alias := explicitAlias
		if alias == "" {
			alias = baseName
		}
		columns := make([]ScopeColumn, len(cte.Columns))
		for i, c := range cte.Columns {
			columns[i] = NewScopeColumn(c.Name, c.DataType, c.Nullable, alias, c.ColumnIndex)
		}
		a.currentScope().AddTable(NewScopeTable(alias, nameParts, columns))
		return nil
	}

	schema, ok, err := a.Catalog.ResolveTable(nameParts)
	if err != nil || !ok {
		return TableNotFoundErr(baseName)
	}

	alias := explicitAlias
	if alias == "" {
		alias = schema.Name
	}
	columns := a.tableSchemaToColumns(schema, alias)
	a.currentScope().AddTable(NewScopeTable(alias, nameParts, columns))
	return nil
}

func (a *Analyzer) analyzeSubqueryTable(sub *ast.Subquery, explicitAlias string) error {
	result, err := a.analyzeQueryInternal(sub.Select)
	if err != nil {
		return err
	}
	alias := explicitAlias
	if alias == "" {
		alias = "_subquery"
	}
	columns := make([]ScopeColumn, len(result.Columns))
	for i, col := range result.Columns {
		columns[i] = NewScopeColumn(col.Name, col.DataType, col.Nullable, alias, i)
	}
	a.currentScope().AddTable(NewScopeTable(alias, []string{"_subquery"}, columns))
	return nil
}

// analyzeUnnestTable types UNNEST(expr) [WITH OFFSET [AS alias]]: the
// argument must type as Array(T), exposing a single "value" column of type
// T, plus an "offset" column of type INT64 when WITH OFFSET is present.
func (a *Analyzer) analyzeUnnestTable(u *ast.Unnest) error {
	typed, err := a.analyzeExpr(u.Expr)
	if err != nil {
		return err
	}

	elem, ok := types.ElementType(typed.DataType)
	if !ok {
		elem = types.UnknownType{}
	}

	alias := u.Alias
	if alias == "" {
		alias = "value"
	}

	columns := []ScopeColumn{NewScopeColumn("value", elem, true, alias, 0)}
	if u.WithOffset {
		offsetAlias := u.OffsetAlias
		if offsetAlias == "" {
			offsetAlias = "offset"
		}
		columns = append(columns, NewScopeColumn(offsetAlias, types.Int64Type{}, false, alias, 1))
	}

	a.currentScope().AddTable(NewScopeTable(alias, []string{alias}, columns))
	return nil
}

func (a *Analyzer) analyzeInsert(ins *ast.InsertStmt) error {
	nameParts := ins.Table.Parts
	tableName := ins.Table.Name()

	schema, ok, err := a.Catalog.ResolveTable(nameParts)
	if err != nil || !ok {
		return TableNotFoundErr(tableName)
	}

	for _, col := range ins.Columns {
		if !schema.HasColumn(col.Name()) {
			return ColumnNotFoundErr(col.Name(), tableName, true)
		}
	}

	for _, row := range ins.Values {
		for _, expr := range row {
			if _, err := a.analyzeExpr(expr); err != nil {
				return err
			}
		}
	}

	if ins.Select != nil {
		if _, err := a.analyzeQueryInternal(ins.Select); err != nil {
			return err
		}
	}

	return nil
}

func (a *Analyzer) analyzeUpdate(u *ast.UpdateStmt) error {
	a.pushScope()
	defer a.popScope()

	nameParts, tableName, explicitAlias, err := extractTableInfo(u.Table)
	if err != nil {
		return err
	}

	schema, ok, err := a.Catalog.ResolveTable(nameParts)
	if err != nil || !ok {
		return TableNotFoundErr(tableName)
	}

	alias := explicitAlias
	if alias == "" {
		alias = tableName
	}
	columns := a.tableSchemaToColumns(schema, alias)
	a.currentScope().AddTable(NewScopeTable(alias, nameParts, columns))

	for _, assign := range u.Set {
		if !schema.HasColumn(assign.Column.Name()) {
			return ColumnNotFoundErr(assign.Column.Name(), tableName, true)
		}
		if _, err := a.analyzeExpr(assign.Expr); err != nil {
			return err
		}
	}

	if u.Where != nil {
		return a.analyzeExprExpectBool(u.Where)
	}
	return nil
}

func (a *Analyzer) analyzeDelete(d *ast.DeleteStmt) error {
	a.pushScope()
	defer a.popScope()

	nameParts, tableName, explicitAlias, err := extractTableInfo(d.Table)
	if err != nil {
		return err
	}

	schema, ok, err := a.Catalog.ResolveTable(nameParts)
	if err != nil || !ok {
		return TableNotFoundErr(tableName)
	}

	alias := explicitAlias
	if alias == "" {
		alias = tableName
	}
	columns := a.tableSchemaToColumns(schema, alias)
	a.currentScope().AddTable(NewScopeTable(alias, nameParts, columns))

	if d.Where != nil {
		return a.analyzeExprExpectBool(d.Where)
	}
	return nil
}

// extractTableInfo pulls the catalog name parts, base name, and optional
// alias out of a single-table TableExpr (as used by UPDATE/DELETE targets).
func extractTableInfo(te ast.TableExpr) (nameParts []string, tableName string, alias string, err error) {
	switch t := te.(type) {
	case *ast.TableName:
		return t.Parts, t.Name(), "", nil
	case *ast.AliasedTableExpr:
		if inner, ok := t.Expr.(*ast.TableName); ok {
			return inner.Parts, inner.Name(), t.Alias, nil
		}
		return nil, "", "", OtherErr("expected table reference")
	default:
		return nil, "", "", OtherErr("expected table reference")
	}
}

func (a *Analyzer) analyzeMerge(m *ast.MergeStmt) error {
	a.pushScope()
	defer a.popScope()

	if err := a.analyzeTableExpr(m.Target); err != nil {
		return err
	}
	if err := a.analyzeTableExpr(m.Source); err != nil {
		return err
	}
	if err := a.analyzeExprExpectBool(m.On); err != nil {
		return err
	}

	for _, when := range m.Whens {
		if when.Condition != nil {
			if err := a.analyzeExprExpectBool(when.Condition); err != nil {
				return err
			}
		}
		switch action := when.Action.(type) {
		case *ast.MergeUpdate:
			for _, assign := range action.Set {
				if _, err := a.analyzeExpr(assign.Expr); err != nil {
					return err
				}
			}
		case *ast.MergeInsert:
			for _, v := range action.Values {
				if _, err := a.analyzeExpr(v); err != nil {
					return err
				}
			}
		case *ast.MergeDelete:
			// nothing to check
		}
	}

	return nil
}

func (a *Analyzer) analyzeCreateTable(create *ast.CreateTableStmt) error {
	if !create.IfNotExists {
		if _, ok, _ := a.Catalog.ResolveTable(create.Table.Parts); ok {
			return OtherErr(fmt.Sprintf("table '%s' already exists", create.Table.Name()))
		}
	}

	seen := make(map[string]bool, len(create.Columns))
	for _, col := range create.Columns {
		key := strings.ToLower(col.Name)
		if seen[key] {
			return DuplicateAliasErr(col.Name)
		}
		seen[key] = true
	}
	return nil
}

func (a *Analyzer) analyzeCreateView(create *ast.CreateViewStmt) error {
	_, err := a.analyzeQueryInternal(create.Query)
	return err
}

// === helpers ===

func (a *Analyzer) analyzeExpr(expr ast.Expr) (TypedExpr, error) {
	checker := NewTypeChecker(a.Catalog, a.Registry)
	return checker.CheckExpr(expr, a.currentScope())
}

func (a *Analyzer) analyzeExprExpectBool(expr ast.Expr) error {
	typed, err := a.analyzeExpr(expr)
	if err != nil {
		return err
	}
	switch typed.DataType.(type) {
	case types.BoolType, types.UnknownType, types.AnyType:
		return nil
	default:
		return TypeMismatchErr(types.BoolType{}, typed.DataType, "condition")
	}
}

func (a *Analyzer) analyzeExprExpectInt(expr ast.Expr) error {
	typed, err := a.analyzeExpr(expr)
	if err != nil {
		return err
	}
	if types.IsInteger(typed.DataType) {
		return nil
	}
	switch typed.DataType.(type) {
	case types.UnknownType, types.AnyType:
		return nil
	default:
		return TypeMismatchErr(types.Int64Type{}, typed.DataType, "LIMIT/OFFSET")
	}
}

func (a *Analyzer) tableSchemaToColumns(schema catalog.TableSchema, alias string) []ScopeColumn {
	columns := make([]ScopeColumn, len(schema.Columns))
	for i, col := range schema.Columns {
		columns[i] = NewScopeColumn(col.Name, col.DataType, col.Nullable, alias, i)
	}
	return columns
}

// exprToName derives a default output column name from an unaliased select
// expression (e.g. a bare column reference or function call).
func exprToName(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.ColName:
		return e.Name(), true
	case *ast.FuncExpr:
		return e.Name, true
	default:
		return "", false
	}
}

func (a *Analyzer) pushScope()           { a.scopes = append(a.scopes, NewScope()) }
func (a *Analyzer) popScope()            { a.scopes = a.scopes[:len(a.scopes)-1] }
func (a *Analyzer) currentScope() *Scope { return a.scopes[len(a.scopes)-1] }

func (a *Analyzer) lookupCTE(name string) (CteRef, bool) {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if cte, ok := a.scopes[i].LookupCTE(name); ok {
			return cte, true
		}
	}
	return CteRef{}, false
}
