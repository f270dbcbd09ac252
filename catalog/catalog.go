package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/juju/errors"

	"github.com/loamquery/sqlfront/types"
)

// Catalog provides access to database schema information. Storage backends
// implement this to supply table, column, and function metadata to the
// analyzer.
//
// Grounded on _examples/original_source/src/catalog/mod.rs's Catalog trait.
type Catalog interface {
	ResolveTable(name []string) (TableSchema, bool, error)
	ResolveFunction(name []string) (FunctionSignature, bool, error)
	ListTables(schema string) ([]string, error)
	ListSchemas() ([]string, error)
	TableExists(name []string) (bool, error)
	DefaultSchema() string
}

// SchemaDefinition is a named collection of tables.
type SchemaDefinition struct {
	Name   string
	Tables map[string]TableSchema
}

// MemoryCatalog is an in-memory Catalog implementation, suitable for tests,
// CLI tools, and as the base every loader (YAML, builder) populates.
type MemoryCatalog struct {
	// ID uniquely identifies this catalog instance; useful for correlating
	// analyzer diagnostics with the catalog snapshot that produced them
	// when a process holds more than one (e.g. comparing a live catalog
	// against a staged YAML reload).
	ID string

	mu        sync.RWMutex
	schemas   map[string]*SchemaDefinition
	functions map[string]FunctionSignature
}

// NewMemoryCatalog builds an empty catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		ID:        uuid.New().String(),
		schemas:   make(map[string]*SchemaDefinition),
		functions: make(map[string]FunctionSignature),
	}
}

// AddSchema ensures a schema named name exists and returns it.
func (c *MemoryCatalog) AddSchema(name string) *SchemaDefinition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addSchemaLocked(name)
}

func (c *MemoryCatalog) addSchemaLocked(name string) *SchemaDefinition {
	s, ok := c.schemas[name]
	if !ok {
		s = &SchemaDefinition{Name: name, Tables: make(map[string]TableSchema)}
		c.schemas[name] = s
	}
	return s
}

// AddTable registers table under the "default" schema.
func (c *MemoryCatalog) AddTable(table TableSchema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.addSchemaLocked("default")
	s.Tables[table.Name] = table
}

// AddTableToSchema registers table under the named schema.
func (c *MemoryCatalog) AddTableToSchema(schema string, table TableSchema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.addSchemaLocked(schema)
	s.Tables[table.Name] = table
}

// AddFunction registers (or overwrites) a function signature by its
// upper-cased name.
func (c *MemoryCatalog) AddFunction(fn FunctionSignature) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.functions[strings.ToUpper(fn.Name)] = fn
}

// RegisterBuiltins installs the standard library of scalar, aggregate, and
// window functions.
//
// Note: some aggregates (ARRAY_AGG, ARRAY_CONCAT_AGG) return Array<Any>;
// the type checker uses a signature's return type as-is, so ARRAY_AGG on
// an INT64 argument is typed Array<Any>, not Array<Int64>.
func (c *MemoryCatalog) RegisterBuiltins() {
	for _, fn := range builtinFunctions() {
		c.AddFunction(fn)
	}
}

func (c *MemoryCatalog) ResolveTable(name []string) (TableSchema, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var schemaName, tableName string
	switch len(name) {
	case 1:
		schemaName, tableName = "default", name[0]
	case 2:
		schemaName, tableName = name[0], name[1]
	case 3:
		// name[0] is the catalog component; ignored for now.
		schemaName, tableName = name[1], name[2]
	default:
		return TableSchema{}, false, nil
	}

	s, ok := c.schemas[schemaName]
	if !ok {
		return TableSchema{}, false, nil
	}
	t, ok := s.Tables[tableName]
	return t, ok, nil
}

func (c *MemoryCatalog) ResolveFunction(name []string) (FunctionSignature, bool, error) {
	if len(name) == 0 {
		return FunctionSignature{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.functions[strings.ToUpper(name[len(name)-1])]
	return fn, ok, nil
}

func (c *MemoryCatalog) ListTables(schema string) ([]string, error) {
	if schema == "" {
		schema = "default"
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemas[schema]
	if !ok {
		return nil, nil
	}
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	return names, nil
}

func (c *MemoryCatalog) ListSchemas() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		names = append(names, name)
	}
	return names, nil
}

func (c *MemoryCatalog) TableExists(name []string) (bool, error) {
	_, ok, err := c.ResolveTable(name)
	if err != nil {
		return false, errors.Trace(err)
	}
	return ok, nil
}

func (c *MemoryCatalog) DefaultSchema() string { return "default" }
