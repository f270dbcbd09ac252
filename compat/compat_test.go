// Package compat differentially tests sqlfront's parser against
// vitess-sqlparser, the MySQL-dialect parser extracted from Vitess. Both
// parsers accept a shared corpus of queries; a query vitess accepts but
// sqlfront rejects is a real parser gap worth tracking, while the reverse
// is expected (sqlfront also speaks PostgreSQL/SQLite syntax vitess does
// not).
//
// Grounded on _examples/freeeve-machparse/compat_test.go's query corpus and
// compare_test.go's use of vitess.Parse as a reference parser, merged into
// a genuine cross-parser oracle instead of a same-parser round-trip check.
package compat

import (
	"testing"

	vitess "github.com/blastrain/vitess-sqlparser/sqlparser"

	"github.com/loamquery/sqlfront"
)

// mysqlDialectQueries is the subset of the corpus vitess-sqlparser (a
// MySQL-only grammar) is expected to accept, used to catch real sqlfront
// regressions against a second implementation of the same dialect.
var mysqlDialectQueries = []struct {
	name  string
	query string
}{
	{"simple select", "select 1 from t"},
	{"select list", "select 1, 2 from t"},
	{"select star", "select * from t"},
	{"select qualified star", "select a.* from t"},
	{"column alias", "select a as b from t"},
	{"where equals", "select * from t where a = 1"},
	{"where and", "select * from t where a = 1 and b = 2"},
	{"where in", "select * from t where a in (1, 2, 3)"},
	{"where between", "select * from t where a between 1 and 10"},
	{"where like", "select * from t where a like '%test%'"},
	{"where is null", "select * from t where a is null"},
	{"join", "select * from t1 join t2 on t1.id = t2.id"},
	{"left join", "select * from t1 left join t2 on t1.id = t2.id"},
	{"group by", "select a, count(*) from t group by a"},
	{"having", "select a, count(*) from t group by a having count(*) > 5"},
	{"order by", "select * from t order by a"},
	{"limit", "select * from t limit 10"},
	{"count star", "select count(*) from t"},
	{"sum", "select sum(a) from t"},
	{"union", "select 1 from t union select 2 from t"},
	{"union all", "select 1 from t union all select 2 from t"},
	{"insert values", "insert into t (a, b) values (1, 2)"},
	{"update", "update t set a = 1 where b = 2"},
	{"delete", "delete from t where a = 1"},
	{"subquery in where", "select * from t where id in (select id from t2)"},
	{"case when", "select case when a = 1 then 'one' else 'other' end from t"},
	{"arithmetic", "select (a + b) * c / d from t"},
}

// TestVitessParseAgreement checks that every query vitess-sqlparser accepts
// also parses under sqlfront. A failure here means sqlfront has regressed
// on baseline MySQL syntax, not just declined to support a wider dialect.
func TestVitessParseAgreement(t *testing.T) {
	for _, tt := range mysqlDialectQueries {
		t.Run(tt.name, func(t *testing.T) {
			vitessStmt, vitessErr := vitess.Parse(tt.query)
			if vitessErr != nil || vitessStmt == nil {
				t.Skipf("vitess-sqlparser rejected %q: %v", tt.query, vitessErr)
			}

			stmt, err := sqlfront.Parse(tt.query)
			if err != nil {
				t.Fatalf("sqlfront rejected a query vitess-sqlparser accepts: %q: %v", tt.query, err)
			}
			if stmt == nil {
				t.Fatalf("sqlfront.Parse returned a nil statement for %q", tt.query)
			}
		})
	}
}

// TestVitessRoundTripAgreement checks that sqlfront's formatter produces SQL
// that both parsers can still parse, using vitess.String as a second
// pretty-printer to sanity-check sqlfront's own round-trip.
func TestVitessRoundTripAgreement(t *testing.T) {
	for _, tt := range mysqlDialectQueries {
		t.Run(tt.name, func(t *testing.T) {
			vitessStmt, vitessErr := vitess.Parse(tt.query)
			if vitessErr != nil || vitessStmt == nil {
				t.Skipf("vitess-sqlparser rejected %q: %v", tt.query, vitessErr)
			}
			vitessFormatted := vitess.String(vitessStmt)
			if _, err := vitess.Parse(vitessFormatted); err != nil {
				t.Fatalf("vitess-sqlparser's own formatted output failed to re-parse: %q -> %q: %v", tt.query, vitessFormatted, err)
			}

			stmt, err := sqlfront.Parse(tt.query)
			if err != nil {
				t.Fatalf("sqlfront rejected %q: %v", tt.query, err)
			}
			formatted := sqlfront.String(stmt)
			if formatted == "" {
				t.Fatalf("sqlfront.String returned empty output for %q", tt.query)
			}
			if _, err := sqlfront.Parse(formatted); err != nil {
				t.Fatalf("sqlfront's own formatted output failed to re-parse: %q -> %q: %v", tt.query, formatted, err)
			}
		})
	}
}
