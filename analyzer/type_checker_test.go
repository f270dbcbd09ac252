package analyzer

import (
	"testing"

	"github.com/loamquery/sqlfront/ast"
	"github.com/loamquery/sqlfront/catalog"
	"github.com/loamquery/sqlfront/token"
	"github.com/loamquery/sqlfront/types"
)

func TestLiteralTypes(t *testing.T) {
	cat := catalog.NewMemoryCatalog()
	checker := NewTypeChecker(cat, catalog.NewTypeRegistry())
	scope := NewScope()

	intLit := &ast.Literal{Type: ast.LiteralInt, Value: "42"}
	typed, err := checker.CheckExpr(intLit, scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := typed.DataType.(types.Int64Type); !ok {
		t.Errorf("expected Int64Type, got %s", typed.DataType)
	}
	if typed.Nullable {
		t.Error("expected integer literal to be non-null")
	}

	strLit := &ast.Literal{Type: ast.LiteralString, Value: "hello"}
	typed, err = checker.CheckExpr(strLit, scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := typed.DataType.(types.VarcharType); !ok {
		t.Errorf("expected VarcharType, got %s", typed.DataType)
	}

	nullLit := &ast.Literal{Type: ast.LiteralNull}
	typed, err = checker.CheckExpr(nullLit, scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !typed.Nullable {
		t.Error("expected NULL literal to be nullable")
	}
}

func TestBinaryOpTypes(t *testing.T) {
	cat := catalog.NewMemoryCatalog()
	checker := NewTypeChecker(cat, catalog.NewTypeRegistry())
	scope := NewScope()

	plus := &ast.BinaryExpr{
		Op:    token.PLUS,
		Left:  &ast.Literal{Type: ast.LiteralInt, Value: "1"},
		Right: &ast.Literal{Type: ast.LiteralInt, Value: "2"},
	}
	typed, err := checker.CheckExpr(plus, scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := typed.DataType.(types.Int64Type); !ok {
		t.Errorf("expected int + int = Int64Type, got %s", typed.DataType)
	}

	lt := &ast.BinaryExpr{
		Op:    token.LT,
		Left:  &ast.Literal{Type: ast.LiteralInt, Value: "1"},
		Right: &ast.Literal{Type: ast.LiteralInt, Value: "2"},
	}
	typed, err = checker.CheckExpr(lt, scope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := typed.DataType.(types.BoolType); !ok {
		t.Errorf("expected int < int = BoolType, got %s", typed.DataType)
	}
}
