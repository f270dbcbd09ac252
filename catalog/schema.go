// Package catalog provides the pluggable schema-metadata abstraction the
// analyzer resolves tables, columns, and functions against.
//
// Grounded on _examples/original_source/src/catalog/{mod,builder,function,
// schema,type_registry}.rs, adapted to the teacher's pluggable-interface
// idiom (see the dolthub-go-mysql-server sql.Catalog/sql.Database/sql.Table
// family surveyed in DESIGN.md) rather than a single monolithic struct.
package catalog

import (
	"strings"

	"github.com/loamquery/sqlfront/types"
)

// TableSchema describes the columns of a single table.
type TableSchema struct {
	Name    string
	Columns []ColumnSchema
}

// NewTableSchema builds a TableSchema from a name and column list.
func NewTableSchema(name string, columns []ColumnSchema) TableSchema {
	return TableSchema{Name: name, Columns: columns}
}

// Column returns the column named name (case-insensitive), if any.
func (t TableSchema) Column(name string) (ColumnSchema, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ColumnSchema{}, false
}

// ColumnIndex returns the position of the column named name (case-insensitive).
func (t TableSchema) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether the table has a column named name.
func (t TableSchema) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns every column's name, in declaration order.
func (t TableSchema) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnSchema describes a single column of a table.
type ColumnSchema struct {
	Name         string
	DataType     types.SqlType
	Nullable     bool
	IsPrimaryKey bool
	DefaultValue string
	HasDefault   bool
	Description  string
}

// NewColumnSchema builds a nullable ColumnSchema with no default or
// description set.
func NewColumnSchema(name string, dataType types.SqlType) ColumnSchema {
	return ColumnSchema{Name: name, DataType: dataType, Nullable: true}
}

// NotNull returns a copy of c marked non-nullable.
func (c ColumnSchema) NotNull() ColumnSchema {
	c.Nullable = false
	return c
}

// PrimaryKey returns a copy of c marked as a non-nullable primary key.
func (c ColumnSchema) PrimaryKey() ColumnSchema {
	c.IsPrimaryKey = true
	c.Nullable = false
	return c
}

// WithDefault returns a copy of c with the given default value expression.
func (c ColumnSchema) WithDefault(expr string) ColumnSchema {
	c.DefaultValue = expr
	c.HasDefault = true
	return c
}

// WithDescription returns a copy of c annotated with a description.
func (c ColumnSchema) WithDescription(desc string) ColumnSchema {
	c.Description = desc
	return c
}

// TableSchemaBuilder fluently assembles a TableSchema.
type TableSchemaBuilder struct {
	name    string
	columns []ColumnSchema
}

// NewTableSchemaBuilder starts building a table named name.
func NewTableSchemaBuilder(name string) *TableSchemaBuilder {
	return &TableSchemaBuilder{name: name}
}

// Column appends a fully constructed column.
func (b *TableSchemaBuilder) Column(col ColumnSchema) *TableSchemaBuilder {
	b.columns = append(b.columns, col)
	return b
}

// AddColumn appends a plain nullable column with name and type.
func (b *TableSchemaBuilder) AddColumn(name string, dataType types.SqlType) *TableSchemaBuilder {
	b.columns = append(b.columns, NewColumnSchema(name, dataType))
	return b
}

// Build finalizes the TableSchema.
func (b *TableSchemaBuilder) Build() TableSchema {
	return TableSchema{Name: b.name, Columns: b.columns}
}

// ResolvedColumn is a column reference the analyzer has bound to a concrete
// table position during scope resolution.
type ResolvedColumn struct {
	TableRef    string
	HasTableRef bool
	ColumnName  string
	ColumnIndex int
	DataType    types.SqlType
	Nullable    bool
}

// QualifiedName renders "table.column", or just "column" when unqualified.
func (r ResolvedColumn) QualifiedName() string {
	if r.HasTableRef {
		return r.TableRef + "." + r.ColumnName
	}
	return r.ColumnName
}
