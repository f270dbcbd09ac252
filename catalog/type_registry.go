package catalog

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/loamquery/sqlfront/types"
)

var upper = cases.Upper(language.Und)

// TypeRegistry resolves type-name aliases (e.g. "TEXT", "SERIAL") to
// canonical SqlType values, and optionally overrides how a type is
// rendered back into SQL text.
//
// Grounded on _examples/original_source/src/catalog/type_registry.rs.
type TypeRegistry struct {
	mu           sync.RWMutex
	aliases      map[string]types.SqlType
	displayNames map[string]string
}

// NewTypeRegistry builds a registry pre-populated with the standard SQL
// type aliases.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{
		aliases:      make(map[string]types.SqlType),
		displayNames: make(map[string]string),
	}
	r.registerStandardAliases()
	return r
}

// NewEmptyTypeRegistry builds a registry with no aliases pre-registered.
func NewEmptyTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		aliases:      make(map[string]types.SqlType),
		displayNames: make(map[string]string),
	}
}

func (r *TypeRegistry) registerStandardAliases() {
	std := map[string]types.SqlType{
		"BOOL":    types.BoolType{},
		"BOOLEAN": types.BoolType{},

		"INT":      types.Int32Type{},
		"INT32":    types.Int32Type{},
		"INTEGER":  types.Int32Type{},
		"SMALLINT": types.Int32Type{},
		"TINYINT":  types.Int32Type{},

		"INT64":  types.Int64Type{},
		"BIGINT": types.Int64Type{},

		"UINT32":   types.Uint32Type{},
		"UINTEGER": types.Uint32Type{},

		"UINT64":  types.Uint64Type{},
		"UBIGINT": types.Uint64Type{},

		"FLOAT":   types.Float32Type{},
		"FLOAT32": types.Float32Type{},
		"REAL":    types.Float32Type{},

		"FLOAT64":          types.Float64Type{},
		"DOUBLE":           types.Float64Type{},
		"DOUBLE PRECISION": types.Float64Type{},

		"VARCHAR": types.VarcharType{},
		"STRING":  types.VarcharType{},
		"TEXT":    types.VarcharType{},
		"CHAR":    types.VarcharType{},

		"VARBINARY": types.VarbinaryType{},
		"BYTES":     types.VarbinaryType{},
		"BYTEA":     types.VarbinaryType{},
		"BLOB":      types.VarbinaryType{},

		"DATE":      types.DateType{},
		"TIME":      types.TimeType{},
		"DATETIME":  types.DatetimeType{},
		"TIMESTAMP": types.TimestampType{},
		"INTERVAL":  types.IntervalType{},

		"JSON": types.JsonType{},
		"UUID": types.UuidType{},
	}
	for alias, t := range std {
		r.aliases[alias] = t
	}
}

// AddAlias registers a custom type alias, uppercasing the name.
func (r *TypeRegistry) AddAlias(alias string, t types.SqlType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[upper.String(alias)] = t
}

// RemoveAlias removes a type alias, returning the type it used to resolve
// to, if any.
func (r *TypeRegistry) RemoveAlias(alias string) (types.SqlType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := upper.String(alias)
	t, ok := r.aliases[key]
	delete(r.aliases, key)
	return t, ok
}

// Resolve looks up a type name, case-insensitively.
func (r *TypeRegistry) Resolve(typeName string) (types.SqlType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.aliases[upper.String(typeName)]
	return t, ok
}

// HasAlias reports whether alias is registered.
func (r *TypeRegistry) HasAlias(alias string) bool {
	_, ok := r.Resolve(alias)
	return ok
}

// SetDisplayName overrides how t is rendered by DisplayName.
func (r *TypeRegistry) SetDisplayName(t types.SqlType, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.displayNames[t.String()] = name
}

// DisplayName returns the overridden display name for t, or its default
// String() rendering.
func (r *TypeRegistry) DisplayName(t types.SqlType) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.displayNames[t.String()]; ok {
		return name
	}
	return t.String()
}

// Len returns the number of registered aliases.
func (r *TypeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aliases)
}

// IsEmpty reports whether the registry has no aliases.
func (r *TypeRegistry) IsEmpty() bool { return r.Len() == 0 }
