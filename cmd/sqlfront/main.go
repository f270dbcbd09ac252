// Command sqlfront parses and semantically analyzes a SQL file against a
// YAML catalog definition, reporting the analyzed output shape or the
// analysis error of each statement; on a parse error it reports the first
// one and stops.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/loamquery/sqlfront/analyzer"
	"github.com/loamquery/sqlfront/ast"
	"github.com/loamquery/sqlfront/catalog"
	"github.com/loamquery/sqlfront/parser"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a YAML catalog definition (required)")
	sqlPath := flag.String("sql", "", "path to a .sql file; defaults to stdin")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s -catalog schema.yaml [-sql query.sql]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *catalogPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cat, err := catalog.LoadYAMLFile(*catalogPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading catalog %q: %v\n", *catalogPath, err)
		os.Exit(1)
	}

	sql, err := readSQL(*sqlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading SQL: %v\n", err)
		os.Exit(1)
	}

	if err := run(cat, sql); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readSQL(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(cat catalog.Catalog, sql []byte) error {
	stmts, err := parser.New(string(sql)).ParseAll()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	a := analyzer.NewAnalyzer(cat)
	for i, stmt := range stmts {
		switch stmt.(type) {
		case *ast.SelectStmt, *ast.SetOp:
			// handled below
		default:
			if err := a.Analyze(stmt); err != nil {
				fmt.Printf("statement %d: %v\n", i+1, err)
				continue
			}
			fmt.Printf("statement %d: ok (no output shape)\n", i+1)
			continue
		}

		result, err := a.AnalyzeQueryResult(stmt)
		if err != nil {
			fmt.Printf("statement %d: %v\n", i+1, err)
			continue
		}

		fmt.Printf("statement %d: %d columns", i+1, len(result.Columns))
		if result.HasAggregation {
			fmt.Print(", aggregated")
		}
		if result.HasWindowFunctions {
			fmt.Print(", windowed")
		}
		fmt.Println()
		for _, col := range result.Columns {
			nullability := "NOT NULL"
			if col.Nullable {
				nullability = "NULL"
			}
			fmt.Printf("  %-20s %-20s %s\n", col.Name, col.DataType, nullability)
		}
	}
	return nil
}
