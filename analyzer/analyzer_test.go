package analyzer

import (
	"strings"
	"testing"

	"github.com/loamquery/sqlfront/catalog"
	"github.com/loamquery/sqlfront/parser"
	"github.com/loamquery/sqlfront/types"
)

// setupTestCatalog builds the users/orders pair shared by every test below.
//
// Grounded on _examples/original_source/src/analyzer/mod.rs's
// setup_test_catalog.
func setupTestCatalog() *catalog.MemoryCatalog {
	mc := catalog.NewMemoryCatalog()
	mc.RegisterBuiltins()

	mc.AddTable(catalog.NewTableBuilder("users").
		AddColumn(catalog.NewColumnSchema("id", types.Int64Type{}).NotNull()).
		Column("name", types.VarcharType{}).
		Column("age", types.Int64Type{}).
		Column("email", types.VarcharType{}).
		Build())

	mc.AddTable(catalog.NewTableBuilder("orders").
		AddColumn(catalog.NewColumnSchema("id", types.Int64Type{}).NotNull()).
		Column("user_id", types.Int64Type{}).
		Column("amount", types.Float64Type{}).
		Column("created_at", types.TimestampType{}).
		Build())

	return mc
}

func parseAndAnalyze(t *testing.T, sql string, cat catalog.Catalog) (AnalyzedQuery, error) {
	t.Helper()
	stmt, err := parser.New(sql).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if stmt == nil {
		t.Fatalf("expected a statement, got none")
	}
	a := NewAnalyzer(cat)
	return a.AnalyzeQueryResult(stmt)
}

func TestSimpleSelect(t *testing.T) {
	result, err := parseAndAnalyze(t, "SELECT id, name FROM users", setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
	if result.Columns[0].Name != "id" {
		t.Errorf("expected first column 'id', got %q", result.Columns[0].Name)
	}
	if _, ok := result.Columns[0].DataType.(types.Int64Type); !ok {
		t.Errorf("expected id column to be Int64Type, got %s", result.Columns[0].DataType)
	}
	if result.Columns[1].Name != "name" {
		t.Errorf("expected second column 'name', got %q", result.Columns[1].Name)
	}
	if _, ok := result.Columns[1].DataType.(types.VarcharType); !ok {
		t.Errorf("expected name column to be VarcharType, got %s", result.Columns[1].DataType)
	}
}

func TestSelectStar(t *testing.T) {
	result, err := parseAndAnalyze(t, "SELECT * FROM users", setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(result.Columns))
	}
}

func TestSelectWithAlias(t *testing.T) {
	result, err := parseAndAnalyze(t, "SELECT id AS user_id, name AS username FROM users", setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Columns[0].Name != "user_id" {
		t.Errorf("expected 'user_id', got %q", result.Columns[0].Name)
	}
	if result.Columns[1].Name != "username" {
		t.Errorf("expected 'username', got %q", result.Columns[1].Name)
	}
}

func TestJoin(t *testing.T) {
	result, err := parseAndAnalyze(t,
		"SELECT u.id, u.name, o.amount FROM users u JOIN orders o ON u.id = o.user_id",
		setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(result.Columns))
	}
	if _, ok := result.Columns[2].DataType.(types.Float64Type); !ok {
		t.Errorf("expected amount column to be Float64Type, got %s", result.Columns[2].DataType)
	}
}

func TestAggregate(t *testing.T) {
	result, err := parseAndAnalyze(t, "SELECT COUNT(*), AVG(age) FROM users", setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasAggregation {
		t.Error("expected HasAggregation to be true")
	}
	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
}

func TestTableNotFound(t *testing.T) {
	_, err := parseAndAnalyze(t, "SELECT * FROM nonexistent", setupTestCatalog())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' in error, got %q", err.Error())
	}
}

func TestColumnNotFound(t *testing.T) {
	_, err := parseAndAnalyze(t, "SELECT nonexistent FROM users", setupTestCatalog())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected 'not found' in error, got %q", err.Error())
	}
}

func TestAmbiguousColumn(t *testing.T) {
	_, err := parseAndAnalyze(t, "SELECT id FROM users, orders", setupTestCatalog())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected 'ambiguous' in error, got %q", err.Error())
	}
}

func TestWhereClauseTypeCheck(t *testing.T) {
	if _, err := parseAndAnalyze(t, "SELECT * FROM users WHERE age > 21", setupTestCatalog()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnion(t *testing.T) {
	result, err := parseAndAnalyze(t,
		"SELECT id, name FROM users UNION SELECT id, name FROM users",
		setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
}

func TestCTE(t *testing.T) {
	result, err := parseAndAnalyze(t,
		"WITH active_users AS (SELECT id, name FROM users WHERE age > 18) SELECT * FROM active_users",
		setupTestCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
}

func TestHavingWithoutGroupBy(t *testing.T) {
	_, err := parseAndAnalyze(t, "SELECT name FROM users HAVING age > 21", setupTestCatalog())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "HAVING") {
		t.Errorf("expected HAVING error, got %q", err.Error())
	}
}

func TestSetOperationColumnMismatch(t *testing.T) {
	_, err := parseAndAnalyze(t,
		"SELECT id, name FROM users UNION SELECT id FROM users",
		setupTestCatalog())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "same number of columns") {
		t.Errorf("expected column-count mismatch error, got %q", err.Error())
	}
}
