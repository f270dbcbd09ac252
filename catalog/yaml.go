package catalog

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"

	"github.com/loamquery/sqlfront/types"
)

// yamlSchema is the on-disk shape of a catalog definition file: a list of
// schemas, each with a list of tables, each with a list of columns.
type yamlSchema struct {
	Schemas []yamlSchemaDef `yaml:"schemas"`
}

type yamlSchemaDef struct {
	Name   string         `yaml:"name"`
	Tables []yamlTableDef `yaml:"tables"`
}

type yamlTableDef struct {
	Name    string          `yaml:"name"`
	Columns []yamlColumnDef `yaml:"columns"`
}

type yamlColumnDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Nullable defaults to false (NOT NULL) when omitted; set explicitly
	// to true to allow NULLs.
	Nullable    bool   `yaml:"nullable"`
	PrimaryKey  bool   `yaml:"primary_key"`
	Default     string `yaml:"default"`
	Description string `yaml:"description"`
}

// LoadYAMLFile reads a catalog definition from path and merges it into a
// fresh MemoryCatalog, resolving column type names through registry.
func LoadYAMLFile(path string, registry *TypeRegistry) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading catalog file %q", path)
	}
	return LoadYAML(data, registry)
}

// LoadYAML parses a catalog definition from data and merges it into a
// fresh MemoryCatalog, resolving column type names through registry. If
// registry is nil, the standard type aliases are used.
func LoadYAML(data []byte, registry *TypeRegistry) (*MemoryCatalog, error) {
	if registry == nil {
		registry = NewTypeRegistry()
	}

	var doc yamlSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Annotate(err, "parsing catalog YAML")
	}

	cat := NewMemoryCatalog()
	for _, schemaDef := range doc.Schemas {
		schemaName := schemaDef.Name
		if schemaName == "" {
			schemaName = "default"
		}
		cat.AddSchema(schemaName)
		for _, tableDef := range schemaDef.Tables {
			table, err := buildTableFromYAML(tableDef, registry)
			if err != nil {
				return nil, errors.Annotatef(err, "table %q in schema %q", tableDef.Name, schemaName)
			}
			cat.AddTableToSchema(schemaName, table)
		}
	}
	return cat, nil
}

func buildTableFromYAML(def yamlTableDef, registry *TypeRegistry) (TableSchema, error) {
	columns := make([]ColumnSchema, 0, len(def.Columns))
	for _, colDef := range def.Columns {
		dataType, ok := registry.Resolve(colDef.Type)
		if !ok {
			dataType = types.UnknownType{}
		}
		col := NewColumnSchema(colDef.Name, dataType)
		col.Nullable = colDef.Nullable
		if colDef.PrimaryKey {
			col = col.PrimaryKey()
		}
		if colDef.Default != "" {
			col = col.WithDefault(colDef.Default)
		}
		if colDef.Description != "" {
			col = col.WithDescription(colDef.Description)
		}
		columns = append(columns, col)
	}
	return NewTableSchema(def.Name, columns), nil
}
