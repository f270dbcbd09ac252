package catalog

import "github.com/loamquery/sqlfront/types"

// CatalogBuilder fluently assembles a MemoryCatalog, mirroring the
// original implementation's builder.rs.
type CatalogBuilder struct {
	catalog         *MemoryCatalog
	typeRegistry    *TypeRegistry
	includeBuiltins bool
}

// NewCatalogBuilder starts a new catalog build.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		catalog:      NewMemoryCatalog(),
		typeRegistry: NewTypeRegistry(),
	}
}

// WithBuiltins includes the standard built-in function library.
func (b *CatalogBuilder) WithBuiltins() *CatalogBuilder {
	b.includeBuiltins = true
	return b
}

// AddTypeAlias registers a custom type alias on the builder's registry.
func (b *CatalogBuilder) AddTypeAlias(alias string, t types.SqlType) *CatalogBuilder {
	b.typeRegistry.AddAlias(alias, t)
	return b
}

// AddScalarFunction registers a scalar function with the given return type.
func (b *CatalogBuilder) AddScalarFunction(name string, returnType types.SqlType) *CatalogBuilder {
	b.catalog.AddFunction(ScalarFunction(name, returnType))
	return b
}

// AddAggregateFunction registers an aggregate function with the given
// return type.
func (b *CatalogBuilder) AddAggregateFunction(name string, returnType types.SqlType) *CatalogBuilder {
	b.catalog.AddFunction(AggregateFunction(name, returnType))
	return b
}

// AddWindowFunction registers a window function with the given return type.
func (b *CatalogBuilder) AddWindowFunction(name string, returnType types.SqlType) *CatalogBuilder {
	b.catalog.AddFunction(WindowFunction(name, returnType))
	return b
}

// AddFunction registers a fully constructed FunctionSignature.
func (b *CatalogBuilder) AddFunction(sig FunctionSignature) *CatalogBuilder {
	b.catalog.AddFunction(sig)
	return b
}

// AddTable builds a table via a TableBuilder callback and registers it in
// the default schema.
func (b *CatalogBuilder) AddTable(name string, build func(*TableBuilder) *TableBuilder) *CatalogBuilder {
	tb := build(NewTableBuilder(name))
	b.catalog.AddTable(tb.Build())
	return b
}

// AddTableSchema registers a pre-built TableSchema in the default schema.
func (b *CatalogBuilder) AddTableSchema(table TableSchema) *CatalogBuilder {
	b.catalog.AddTable(table)
	return b
}

// AddSchema ensures a schema named name exists.
func (b *CatalogBuilder) AddSchema(name string) *CatalogBuilder {
	b.catalog.AddSchema(name)
	return b
}

// TypeRegistry returns the builder's type registry for advanced
// customization.
func (b *CatalogBuilder) TypeRegistry() *TypeRegistry { return b.typeRegistry }

// Build finalizes the MemoryCatalog.
func (b *CatalogBuilder) Build() *MemoryCatalog {
	if b.includeBuiltins {
		b.catalog.RegisterBuiltins()
	}
	return b.catalog
}

// BuildWithRegistry finalizes the MemoryCatalog and also returns its
// TypeRegistry.
func (b *CatalogBuilder) BuildWithRegistry() (*MemoryCatalog, *TypeRegistry) {
	if b.includeBuiltins {
		b.catalog.RegisterBuiltins()
	}
	return b.catalog, b.typeRegistry
}

// TableBuilder fluently assembles a TableSchema for use with
// CatalogBuilder.AddTable.
type TableBuilder struct {
	name    string
	columns []ColumnSchema
}

// NewTableBuilder starts building a table named name.
func NewTableBuilder(name string) *TableBuilder {
	return &TableBuilder{name: name}
}

// Column appends a plain nullable column.
func (t *TableBuilder) Column(name string, dataType types.SqlType) *TableBuilder {
	t.columns = append(t.columns, NewColumnSchema(name, dataType))
	return t
}

// ColumnNotNull appends a non-nullable column.
func (t *TableBuilder) ColumnNotNull(name string, dataType types.SqlType) *TableBuilder {
	t.columns = append(t.columns, NewColumnSchema(name, dataType).NotNull())
	return t
}

// PrimaryKey appends a non-nullable primary-key column.
func (t *TableBuilder) PrimaryKey(name string, dataType types.SqlType) *TableBuilder {
	t.columns = append(t.columns, NewColumnSchema(name, dataType).PrimaryKey())
	return t
}

// AddColumn appends a fully constructed column.
func (t *TableBuilder) AddColumn(col ColumnSchema) *TableBuilder {
	t.columns = append(t.columns, col)
	return t
}

// Build finalizes the TableSchema.
func (t *TableBuilder) Build() TableSchema {
	return NewTableSchema(t.name, t.columns)
}
