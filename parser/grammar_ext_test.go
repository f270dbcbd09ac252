package parser

import (
	"testing"

	"github.com/loamquery/sqlfront/ast"
)

func TestParseGroupByExtensions(t *testing.T) {
	tests := []struct {
		input    string
		wantMode ast.GroupByMode
	}{
		{"SELECT a, b, SUM(c) FROM t GROUP BY a, b", ast.GroupByPlain},
		{"SELECT a, b, SUM(c) FROM t GROUP BY ROLLUP(a, b)", ast.GroupByRollup},
		{"SELECT a, b, SUM(c) FROM t GROUP BY CUBE(a, b)", ast.GroupByCube},
		{"SELECT a, b, SUM(c) FROM t GROUP BY GROUPING SETS((a, b), (a), ())", ast.GroupByGroupingSets},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			stmt, err := p.Parse()
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			sel, ok := stmt.(*ast.SelectStmt)
			if !ok {
				t.Fatalf("Expected SelectStmt, got %T", stmt)
			}
			if sel.GroupByMode != tt.wantMode {
				t.Errorf("GroupByMode = %v, want %v", sel.GroupByMode, tt.wantMode)
			}
		})
	}
}

func TestParseGroupingSetsShape(t *testing.T) {
	p := New("SELECT a, b FROM t GROUP BY GROUPING SETS((a, b), (a), ())")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	if len(sel.GroupingSets) != 3 {
		t.Fatalf("expected 3 grouping sets, got %d", len(sel.GroupingSets))
	}
	if len(sel.GroupingSets[0]) != 2 || len(sel.GroupingSets[1]) != 1 || len(sel.GroupingSets[2]) != 0 {
		t.Errorf("unexpected grouping set shapes: %v", sel.GroupingSets)
	}
}

func TestParseQualify(t *testing.T) {
	p := New("SELECT a, ROW_NUMBER() OVER (ORDER BY a) AS rn FROM t QUALIFY rn = 1")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	if sel.Qualify == nil {
		t.Fatal("expected Qualify clause to be parsed")
	}
}

func TestParseUnnest(t *testing.T) {
	tests := []struct {
		input          string
		wantAlias      string
		wantWithOffset bool
		wantOffsetName string
	}{
		{"SELECT v FROM UNNEST(arr) AS v", "v", false, ""},
		{"SELECT x FROM UNNEST(arr) WITH OFFSET", "", true, ""},
		{"SELECT x FROM UNNEST(arr) AS x WITH OFFSET AS pos", "x", true, "pos"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			stmt, err := p.Parse()
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			sel := stmt.(*ast.SelectStmt)
			unnest, ok := sel.From.(*ast.Unnest)
			if !ok {
				t.Fatalf("Expected *ast.Unnest, got %T", sel.From)
			}
			if unnest.Alias != tt.wantAlias {
				t.Errorf("Alias = %q, want %q", unnest.Alias, tt.wantAlias)
			}
			if unnest.WithOffset != tt.wantWithOffset {
				t.Errorf("WithOffset = %v, want %v", unnest.WithOffset, tt.wantWithOffset)
			}
			if unnest.OffsetAlias != tt.wantOffsetName {
				t.Errorf("OffsetAlias = %q, want %q", unnest.OffsetAlias, tt.wantOffsetName)
			}
		})
	}
}

func TestParseSemiAntiJoins(t *testing.T) {
	tests := []struct {
		input    string
		wantType ast.JoinType
	}{
		{"SELECT a.x FROM a LEFT SEMI JOIN b ON a.id = b.id", ast.JoinLeftSemi},
		{"SELECT a.x FROM a RIGHT SEMI JOIN b ON a.id = b.id", ast.JoinRightSemi},
		{"SELECT a.x FROM a LEFT ANTI JOIN b ON a.id = b.id", ast.JoinLeftAnti},
		{"SELECT a.x FROM a RIGHT ANTI JOIN b ON a.id = b.id", ast.JoinRightAnti},
		{"SELECT a.x FROM a LEFT JOIN b ON a.id = b.id", ast.JoinLeft},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			stmt, err := p.Parse()
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			sel := stmt.(*ast.SelectStmt)
			join, ok := sel.From.(*ast.JoinExpr)
			if !ok {
				t.Fatalf("Expected *ast.JoinExpr, got %T", sel.From)
			}
			if join.Type != tt.wantType {
				t.Errorf("JoinType = %v, want %v", join.Type, tt.wantType)
			}
		})
	}
}

func TestParseStructLiteral(t *testing.T) {
	p := New("SELECT STRUCT(1 AS x, 'a' AS y) FROM t")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	ae, ok := sel.Columns[0].(*ast.AliasedExpr)
	if !ok {
		t.Fatalf("Expected *ast.AliasedExpr, got %T", sel.Columns[0])
	}
	st, ok := ae.Expr.(*ast.StructExpr)
	if !ok {
		t.Fatalf("Expected *ast.StructExpr, got %T", ae.Expr)
	}
	if len(st.Fields) != 2 {
		t.Fatalf("expected 2 struct fields, got %d", len(st.Fields))
	}
	if !st.Fields[0].HasName || st.Fields[0].Name != "x" {
		t.Errorf("field 0 = %+v, want name x", st.Fields[0])
	}
	if !st.Fields[1].HasName || st.Fields[1].Name != "y" {
		t.Errorf("field 1 = %+v, want name y", st.Fields[1])
	}
}

func TestParseStructLiteralBareFields(t *testing.T) {
	p := New("SELECT STRUCT(a, b) FROM t")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	ae := sel.Columns[0].(*ast.AliasedExpr)
	st, ok := ae.Expr.(*ast.StructExpr)
	if !ok {
		t.Fatalf("Expected *ast.StructExpr, got %T", ae.Expr)
	}
	for i, f := range st.Fields {
		if f.HasName {
			t.Errorf("field %d unexpectedly named %q", i, f.Name)
		}
	}
}

func TestParseSafeCast(t *testing.T) {
	p := New("SELECT SAFE_CAST(x AS INT64) FROM t")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	ae := sel.Columns[0].(*ast.AliasedExpr)
	cast, ok := ae.Expr.(*ast.CastExpr)
	if !ok {
		t.Fatalf("Expected *ast.CastExpr, got %T", ae.Expr)
	}
	if !cast.Safe {
		t.Error("expected Safe to be true for SAFE_CAST")
	}
}

func TestParseCastNotSafe(t *testing.T) {
	p := New("SELECT CAST(x AS INT64) FROM t")
	stmt, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel := stmt.(*ast.SelectStmt)
	ae := sel.Columns[0].(*ast.AliasedExpr)
	cast := ae.Expr.(*ast.CastExpr)
	if cast.Safe {
		t.Error("expected Safe to be false for plain CAST")
	}
}

func TestParseArraySubscriptForms(t *testing.T) {
	tests := []struct {
		input    string
		wantKind ast.SubscriptKind
	}{
		{"SELECT arr[0] FROM t", ast.SubscriptIndex},
		{"SELECT arr[OFFSET(0)] FROM t", ast.SubscriptOffset},
		{"SELECT arr[ORDINAL(1)] FROM t", ast.SubscriptOrdinal},
		{"SELECT arr[SAFE_OFFSET(0)] FROM t", ast.SubscriptSafeOffset},
		{"SELECT arr[SAFE_ORDINAL(1)] FROM t", ast.SubscriptSafeOrdinal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(tt.input)
			stmt, err := p.Parse()
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			sel := stmt.(*ast.SelectStmt)
			ae := sel.Columns[0].(*ast.AliasedExpr)
			sub, ok := ae.Expr.(*ast.SubscriptExpr)
			if !ok {
				t.Fatalf("Expected *ast.SubscriptExpr, got %T", ae.Expr)
			}
			if sub.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", sub.Kind, tt.wantKind)
			}
		})
	}
}
