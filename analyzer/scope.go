// Package analyzer performs semantic analysis over parsed SQL: name
// resolution, type checking, and the validations a query planner expects
// to have already happened (GROUP BY/HAVING shape, set-operation arity,
// aggregate usage).
package analyzer

import (
	"strings"

	"github.com/loamquery/sqlfront/types"
)

// ScopeColumn is a column visible in a Scope, tagged with the table alias
// and ordinal it came from.
type ScopeColumn struct {
	Name        string
	DataType    types.SqlType
	Nullable    bool
	TableAlias  string
	ColumnIndex int
}

// NewScopeColumn builds a ScopeColumn.
func NewScopeColumn(name string, dataType types.SqlType, nullable bool, tableAlias string, columnIndex int) ScopeColumn {
	return ScopeColumn{
		Name:        name,
		DataType:    dataType,
		Nullable:    nullable,
		TableAlias:  tableAlias,
		ColumnIndex: columnIndex,
	}
}

// ScopeTable is a table (or subquery/CTE masquerading as one) visible in a
// Scope, keyed by its alias.
type ScopeTable struct {
	Alias        string
	OriginalName []string
	Columns      []ScopeColumn
}

// NewScopeTable builds a ScopeTable.
func NewScopeTable(alias string, originalName []string, columns []ScopeColumn) ScopeTable {
	return ScopeTable{Alias: alias, OriginalName: originalName, Columns: columns}
}

// Column looks up a column by name, case-insensitively.
func (t ScopeTable) Column(name string) (ScopeColumn, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ScopeColumn{}, false
}

// CteRef is a common table expression visible to the scopes that follow its
// WITH clause.
type CteRef struct {
	Name        string
	Columns     []ScopeColumn
	IsRecursive bool
}

// ExprRef is a SELECT-list alias entry of a scope's named-expression map.
// The analyzer does not add ExprRefs, so later clauses (ORDER BY, GROUP BY)
// do not resolve select-list aliases through this map.
type ExprRef struct {
	Name     string
	DataType types.SqlType
	Nullable bool
	Ordinal  int
}

// ColumnLookupKind tags the outcome of Scope.LookupColumn.
type ColumnLookupKind int

const (
	ColumnNotFoundResult ColumnLookupKind = iota
	ColumnFoundResult
	ColumnAmbiguousResult
)

// ColumnLookupResult is the result of an unqualified column lookup across
// every table in a Scope: found uniquely, not found, or ambiguous across
// more than one table.
type ColumnLookupResult struct {
	Kind   ColumnLookupKind
	Table  ScopeTable
	Column ScopeColumn
	Tables []string // populated only when Kind == ColumnAmbiguousResult
}

// Scope is a single level of lexical name resolution: the tables, CTEs, and
// select-list aliases visible at one point in a query, plus aggregate/window
// bookkeeping used while type-checking its projection.
type Scope struct {
	tables     map[string]ScopeTable
	ctes       map[string]CteRef
	namedExprs map[string]ExprRef

	AllowsAggregates bool
	InAggregate      bool
	InWindow         bool
	GroupByColumns   []string
	HasGroupBy       bool
}

// NewScope creates an empty scope that allows aggregates.
func NewScope() *Scope {
	return &Scope{
		tables:           make(map[string]ScopeTable),
		ctes:             make(map[string]CteRef),
		namedExprs:       make(map[string]ExprRef),
		AllowsAggregates: true,
	}
}

// AddTable registers table under its alias, case-insensitively.
func (s *Scope) AddTable(table ScopeTable) {
	s.tables[strings.ToLower(table.Alias)] = table
}

// AddCTE registers cte under its name, case-insensitively.
func (s *Scope) AddCTE(cte CteRef) {
	s.ctes[strings.ToLower(cte.Name)] = cte
}

// AddNamedExpr registers a SELECT-list alias.
func (s *Scope) AddNamedExpr(ref ExprRef) {
	s.namedExprs[strings.ToLower(ref.Name)] = ref
}

// LookupTable looks up a table by alias, case-insensitively.
func (s *Scope) LookupTable(name string) (ScopeTable, bool) {
	t, ok := s.tables[strings.ToLower(name)]
	return t, ok
}

// LookupCTE looks up a CTE by name, case-insensitively.
func (s *Scope) LookupCTE(name string) (CteRef, bool) {
	c, ok := s.ctes[strings.ToLower(name)]
	return c, ok
}

// LookupNamedExpr looks up a SELECT-list alias, case-insensitively.
func (s *Scope) LookupNamedExpr(name string) (ExprRef, bool) {
	e, ok := s.namedExprs[strings.ToLower(name)]
	return e, ok
}

// LookupColumn scans every table in scope for an unqualified column name,
// reporting whether the match was unique, missing, or ambiguous.
func (s *Scope) LookupColumn(name string) ColumnLookupResult {
	nameLower := strings.ToLower(name)

	var matchTables []ScopeTable
	var matchColumns []ScopeColumn
	for _, table := range s.tables {
		for _, col := range table.Columns {
			if strings.ToLower(col.Name) == nameLower {
				matchTables = append(matchTables, table)
				matchColumns = append(matchColumns, col)
			}
		}
	}

	switch len(matchColumns) {
	case 0:
		return ColumnLookupResult{Kind: ColumnNotFoundResult}
	case 1:
		return ColumnLookupResult{Kind: ColumnFoundResult, Table: matchTables[0], Column: matchColumns[0]}
	default:
		tables := make([]string, len(matchTables))
		for i, t := range matchTables {
			tables[i] = t.Alias
		}
		return ColumnLookupResult{Kind: ColumnAmbiguousResult, Tables: tables}
	}
}

// LookupQualifiedColumn resolves table.column, case-insensitively.
func (s *Scope) LookupQualifiedColumn(tableName, columnName string) (ScopeColumn, bool) {
	table, ok := s.LookupTable(tableName)
	if !ok {
		return ScopeColumn{}, false
	}
	return table.Column(columnName)
}

// AllTables returns every table currently in scope, in unspecified order.
func (s *Scope) AllTables() []ScopeTable {
	out := make([]ScopeTable, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t)
	}
	return out
}

// AllColumns returns every column across every table in scope.
func (s *Scope) AllColumns() []ScopeColumn {
	var out []ScopeColumn
	for _, t := range s.tables {
		out = append(out, t.Columns...)
	}
	return out
}

// HasTable reports whether a table alias is registered, case-insensitively.
func (s *Scope) HasTable(name string) bool {
	_, ok := s.tables[strings.ToLower(name)]
	return ok
}

// HasCTE reports whether a CTE name is registered, case-insensitively.
func (s *Scope) HasCTE(name string) bool {
	_, ok := s.ctes[strings.ToLower(name)]
	return ok
}
