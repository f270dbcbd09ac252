package analyzer

import (
	"testing"

	"github.com/loamquery/sqlfront/types"
)

func TestScopeTableLookup(t *testing.T) {
	scope := NewScope()

	table := NewScopeTable("users", []string{"users"}, []ScopeColumn{
		NewScopeColumn("id", types.Int64Type{}, false, "users", 0),
		NewScopeColumn("name", types.VarcharType{}, true, "users", 1),
	})
	scope.AddTable(table)

	if !scope.HasTable("users") {
		t.Error("expected HasTable(\"users\") to be true")
	}
	if !scope.HasTable("USERS") {
		t.Error("expected case-insensitive HasTable(\"USERS\") to be true")
	}
	if scope.HasTable("orders") {
		t.Error("expected HasTable(\"orders\") to be false")
	}

	if _, ok := scope.LookupQualifiedColumn("users", "id"); !ok {
		t.Error("expected users.id to resolve")
	}
}

func TestScopeAmbiguousColumn(t *testing.T) {
	scope := NewScope()

	scope.AddTable(NewScopeTable("t1", []string{"table1"}, []ScopeColumn{
		NewScopeColumn("id", types.Int64Type{}, false, "t1", 0),
	}))
	scope.AddTable(NewScopeTable("t2", []string{"table2"}, []ScopeColumn{
		NewScopeColumn("id", types.Int64Type{}, false, "t2", 0),
	}))

	result := scope.LookupColumn("id")
	if result.Kind != ColumnAmbiguousResult {
		t.Fatalf("expected ambiguous result, got %v", result.Kind)
	}
	if len(result.Tables) != 2 {
		t.Errorf("expected 2 ambiguous tables, got %d", len(result.Tables))
	}
}
