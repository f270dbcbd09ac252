package catalog

import (
	"testing"

	"github.com/loamquery/sqlfront/types"
)

func TestTableSchema(t *testing.T) {
	table := NewTableSchemaBuilder("users").
		Column(NewColumnSchema("id", types.Int64Type{}).PrimaryKey()).
		Column(NewColumnSchema("email", types.VarcharType{}).NotNull()).
		Column(NewColumnSchema("nickname", types.VarcharType{})).
		Build()

	if table.Name != "users" {
		t.Errorf("expected table name %q, got %q", "users", table.Name)
	}
	if len(table.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(table.Columns))
	}

	col, ok := table.Column("EMAIL")
	if !ok {
		t.Fatal("expected case-insensitive lookup of \"EMAIL\" to succeed")
	}
	if col.Nullable {
		t.Error("expected email to be non-nullable")
	}

	id, ok := table.Column("id")
	if !ok {
		t.Fatal("expected \"id\" to resolve")
	}
	if !id.IsPrimaryKey {
		t.Error("expected id to be a primary key")
	}
	if id.Nullable {
		t.Error("expected a primary key column to be non-nullable")
	}

	if !table.HasColumn("nickname") {
		t.Error("expected HasColumn(\"nickname\") to be true")
	}
	if table.HasColumn("missing") {
		t.Error("expected HasColumn(\"missing\") to be false")
	}

	if _, ok := table.Column("missing"); ok {
		t.Error("expected lookup of a missing column to fail")
	}
}
