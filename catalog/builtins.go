package catalog

import "github.com/loamquery/sqlfront/types"

// builtinFunctions returns the standard library of scalar, aggregate, and
// window functions, ported from
// _examples/original_source/src/catalog/mod.rs's register_builtins.
func builtinFunctions() []FunctionSignature {
	arrayOf := func(elem types.SqlType) types.SqlType { return types.ArrayType{Elem: elem} }
	rangeOf := func(elem types.SqlType) types.SqlType { return types.RangeType{Elem: elem} }

	return []FunctionSignature{
		// Aggregate functions
		AggregateFunction("COUNT", types.Int64Type{}),
		AggregateFunction("COUNTIF", types.Int64Type{}),
		AggregateFunction("SUM", types.Float64Type{}),
		AggregateFunction("AVG", types.Float64Type{}),
		AggregateFunction("MIN", types.AnyType{}),
		AggregateFunction("MAX", types.AnyType{}),
		AggregateFunction("ANY_VALUE", types.AnyType{}),
		AggregateFunction("ARRAY_AGG", arrayOf(types.AnyType{})),
		AggregateFunction("ARRAY_CONCAT_AGG", arrayOf(types.AnyType{})),
		AggregateFunction("STRING_AGG", types.VarcharType{}),
		AggregateFunction("BIT_AND", types.Int64Type{}),
		AggregateFunction("BIT_OR", types.Int64Type{}),
		AggregateFunction("BIT_XOR", types.Int64Type{}),
		AggregateFunction("LOGICAL_AND", types.BoolType{}),
		AggregateFunction("LOGICAL_OR", types.BoolType{}),
		AggregateFunction("GROUPING", types.Int64Type{}),
		AggregateFunction("STDDEV", types.Float64Type{}),
		AggregateFunction("STDDEV_POP", types.Float64Type{}),
		AggregateFunction("STDDEV_SAMP", types.Float64Type{}),
		AggregateFunction("VARIANCE", types.Float64Type{}),
		AggregateFunction("VAR_POP", types.Float64Type{}),
		AggregateFunction("VAR_SAMP", types.Float64Type{}),
		AggregateFunction("CORR", types.Float64Type{}),
		AggregateFunction("COVAR_POP", types.Float64Type{}),
		AggregateFunction("COVAR_SAMP", types.Float64Type{}),

		// Window functions
		WindowFunction("ROW_NUMBER", types.Int64Type{}),
		WindowFunction("RANK", types.Int64Type{}),
		WindowFunction("DENSE_RANK", types.Int64Type{}),
		WindowFunction("NTILE", types.Int64Type{}),
		WindowFunction("LAG", types.AnyType{}),
		WindowFunction("LEAD", types.AnyType{}),
		WindowFunction("FIRST_VALUE", types.AnyType{}),
		WindowFunction("LAST_VALUE", types.AnyType{}),
		WindowFunction("NTH_VALUE", types.AnyType{}),
		WindowFunction("CUME_DIST", types.Float64Type{}),
		WindowFunction("PERCENT_RANK", types.Float64Type{}),
		WindowFunction("PERCENTILE_CONT", types.Float64Type{}),
		WindowFunction("PERCENTILE_DISC", types.AnyType{}),

		// String functions
		ScalarFunction("CONCAT", types.VarcharType{}),
		ScalarFunction("LENGTH", types.Int64Type{}),
		ScalarFunction("CHAR_LENGTH", types.Int64Type{}),
		ScalarFunction("CHARACTER_LENGTH", types.Int64Type{}),
		ScalarFunction("BYTE_LENGTH", types.Int64Type{}),
		ScalarFunction("UPPER", types.VarcharType{}),
		ScalarFunction("LOWER", types.VarcharType{}),
		ScalarFunction("TRIM", types.VarcharType{}),
		ScalarFunction("LTRIM", types.VarcharType{}),
		ScalarFunction("RTRIM", types.VarcharType{}),
		ScalarFunction("LPAD", types.VarcharType{}),
		ScalarFunction("RPAD", types.VarcharType{}),
		ScalarFunction("SUBSTR", types.VarcharType{}),
		ScalarFunction("SUBSTRING", types.VarcharType{}),
		ScalarFunction("LEFT", types.VarcharType{}),
		ScalarFunction("RIGHT", types.VarcharType{}),
		ScalarFunction("REPLACE", types.VarcharType{}),
		ScalarFunction("REVERSE", types.VarcharType{}),
		ScalarFunction("REPEAT", types.VarcharType{}),
		ScalarFunction("SPLIT", arrayOf(types.VarcharType{})),
		ScalarFunction("STRPOS", types.Int64Type{}),
		ScalarFunction("INSTR", types.Int64Type{}),
		ScalarFunction("STARTS_WITH", types.BoolType{}),
		ScalarFunction("ENDS_WITH", types.BoolType{}),
		ScalarFunction("CONTAINS_SUBSTR", types.BoolType{}),
		ScalarFunction("REGEXP_CONTAINS", types.BoolType{}),
		ScalarFunction("REGEXP_EXTRACT", types.VarcharType{}),
		ScalarFunction("REGEXP_EXTRACT_ALL", arrayOf(types.VarcharType{})),
		ScalarFunction("REGEXP_REPLACE", types.VarcharType{}),
		ScalarFunction("REGEXP_INSTR", types.Int64Type{}),
		ScalarFunction("FORMAT", types.VarcharType{}),
		ScalarFunction("NORMALIZE", types.VarcharType{}),
		ScalarFunction("NORMALIZE_AND_CASEFOLD", types.VarcharType{}),
		ScalarFunction("TO_BASE32", types.VarcharType{}),
		ScalarFunction("TO_BASE64", types.VarcharType{}),
		ScalarFunction("FROM_BASE32", types.VarbinaryType{}),
		ScalarFunction("FROM_BASE64", types.VarbinaryType{}),
		ScalarFunction("TO_HEX", types.VarcharType{}),
		ScalarFunction("FROM_HEX", types.VarbinaryType{}),
		ScalarFunction("ASCII", types.Int64Type{}),
		ScalarFunction("CHR", types.VarcharType{}),
		ScalarFunction("UNICODE", types.Int64Type{}),
		ScalarFunction("TO_CODE_POINTS", arrayOf(types.Int64Type{})),
		ScalarFunction("CODE_POINTS_TO_STRING", types.VarcharType{}),
		ScalarFunction("CODE_POINTS_TO_BYTES", types.VarbinaryType{}),
		ScalarFunction("SOUNDEX", types.VarcharType{}),
		ScalarFunction("TRANSLATE", types.VarcharType{}),
		ScalarFunction("INITCAP", types.VarcharType{}),

		// Math functions
		ScalarFunction("ABS", types.Float64Type{}),
		ScalarFunction("SIGN", types.Int64Type{}),
		ScalarFunction("CEIL", types.Float64Type{}),
		ScalarFunction("CEILING", types.Float64Type{}),
		ScalarFunction("FLOOR", types.Float64Type{}),
		ScalarFunction("ROUND", types.Float64Type{}),
		ScalarFunction("TRUNC", types.Float64Type{}),
		ScalarFunction("TRUNCATE", types.Float64Type{}),
		ScalarFunction("DIV", types.Int64Type{}),
		ScalarFunction("MOD", types.Int64Type{}),
		ScalarFunction("SQRT", types.Float64Type{}),
		ScalarFunction("CBRT", types.Float64Type{}),
		ScalarFunction("POW", types.Float64Type{}),
		ScalarFunction("POWER", types.Float64Type{}),
		ScalarFunction("EXP", types.Float64Type{}),
		ScalarFunction("LN", types.Float64Type{}),
		ScalarFunction("LOG", types.Float64Type{}),
		ScalarFunction("LOG10", types.Float64Type{}),
		ScalarFunction("LOG2", types.Float64Type{}),
		ScalarFunction("GREATEST", types.AnyType{}),
		ScalarFunction("LEAST", types.AnyType{}),
		ScalarFunction("SIN", types.Float64Type{}),
		ScalarFunction("COS", types.Float64Type{}),
		ScalarFunction("TAN", types.Float64Type{}),
		ScalarFunction("ASIN", types.Float64Type{}),
		ScalarFunction("ACOS", types.Float64Type{}),
		ScalarFunction("ATAN", types.Float64Type{}),
		ScalarFunction("ATAN2", types.Float64Type{}),
		ScalarFunction("SINH", types.Float64Type{}),
		ScalarFunction("COSH", types.Float64Type{}),
		ScalarFunction("TANH", types.Float64Type{}),
		ScalarFunction("ASINH", types.Float64Type{}),
		ScalarFunction("ACOSH", types.Float64Type{}),
		ScalarFunction("ATANH", types.Float64Type{}),
		ScalarFunction("COT", types.Float64Type{}),
		ScalarFunction("CSC", types.Float64Type{}),
		ScalarFunction("SEC", types.Float64Type{}),
		ScalarFunction("COTH", types.Float64Type{}),
		ScalarFunction("CSCH", types.Float64Type{}),
		ScalarFunction("SECH", types.Float64Type{}),
		ScalarFunction("IEEE_DIVIDE", types.Float64Type{}),
		ScalarFunction("IS_INF", types.BoolType{}),
		ScalarFunction("IS_NAN", types.BoolType{}),
		ScalarFunction("RAND", types.Float64Type{}).NonDeterministic(),
		ScalarFunction("RANDOM", types.Float64Type{}).NonDeterministic(),
		ScalarFunction("RANGE_BUCKET", types.Int64Type{}),
		ScalarFunction("BIT_COUNT", types.Int64Type{}),

		// Date/time functions
		ScalarFunction("CURRENT_DATE", types.DateType{}).NonDeterministic(),
		ScalarFunction("CURRENT_TIME", types.TimeType{}).NonDeterministic(),
		ScalarFunction("CURRENT_DATETIME", types.DatetimeType{}).NonDeterministic(),
		ScalarFunction("CURRENT_TIMESTAMP", types.TimestampType{}).NonDeterministic(),
		ScalarFunction("DATE", types.DateType{}),
		ScalarFunction("DATE_ADD", types.DateType{}),
		ScalarFunction("DATE_SUB", types.DateType{}),
		ScalarFunction("DATE_DIFF", types.Int64Type{}),
		ScalarFunction("DATE_TRUNC", types.DateType{}),
		ScalarFunction("DATE_FROM_UNIX_DATE", types.DateType{}),
		ScalarFunction("FORMAT_DATE", types.VarcharType{}),
		ScalarFunction("PARSE_DATE", types.DateType{}),
		ScalarFunction("UNIX_DATE", types.Int64Type{}),
		ScalarFunction("LAST_DAY", types.DateType{}),
		ScalarFunction("TIME", types.TimeType{}),
		ScalarFunction("TIME_ADD", types.TimeType{}),
		ScalarFunction("TIME_SUB", types.TimeType{}),
		ScalarFunction("TIME_DIFF", types.Int64Type{}),
		ScalarFunction("TIME_TRUNC", types.TimeType{}),
		ScalarFunction("FORMAT_TIME", types.VarcharType{}),
		ScalarFunction("PARSE_TIME", types.TimeType{}),
		ScalarFunction("DATETIME", types.DatetimeType{}),
		ScalarFunction("DATETIME_ADD", types.DatetimeType{}),
		ScalarFunction("DATETIME_SUB", types.DatetimeType{}),
		ScalarFunction("DATETIME_DIFF", types.Int64Type{}),
		ScalarFunction("DATETIME_TRUNC", types.DatetimeType{}),
		ScalarFunction("FORMAT_DATETIME", types.VarcharType{}),
		ScalarFunction("PARSE_DATETIME", types.DatetimeType{}),
		ScalarFunction("TIMESTAMP", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_ADD", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_SUB", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_DIFF", types.Int64Type{}),
		ScalarFunction("TIMESTAMP_TRUNC", types.TimestampType{}),
		ScalarFunction("FORMAT_TIMESTAMP", types.VarcharType{}),
		ScalarFunction("PARSE_TIMESTAMP", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_SECONDS", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_MILLIS", types.TimestampType{}),
		ScalarFunction("TIMESTAMP_MICROS", types.TimestampType{}),
		ScalarFunction("UNIX_SECONDS", types.Int64Type{}),
		ScalarFunction("UNIX_MILLIS", types.Int64Type{}),
		ScalarFunction("UNIX_MICROS", types.Int64Type{}),
		ScalarFunction("STRING", types.VarcharType{}),
		ScalarFunction("MAKE_INTERVAL", types.IntervalType{}),
		ScalarFunction("JUSTIFY_DAYS", types.IntervalType{}),
		ScalarFunction("JUSTIFY_HOURS", types.IntervalType{}),
		ScalarFunction("JUSTIFY_INTERVAL", types.IntervalType{}),
		ScalarFunction("EXTRACT", types.Int64Type{}),
		ScalarFunction("DATE_BUCKET", types.DateType{}),
		ScalarFunction("DATETIME_BUCKET", types.DatetimeType{}),
		ScalarFunction("TIMESTAMP_BUCKET", types.TimestampType{}),

		// Type conversion
		ScalarFunction("CAST", types.AnyType{}),
		ScalarFunction("TRY_CAST", types.AnyType{}),
		ScalarFunction("PARSE_NUMERIC", types.NumericType{}),

		// Conditional functions
		ScalarFunction("IF", types.AnyType{}),
		ScalarFunction("IFNULL", types.AnyType{}),
		ScalarFunction("NULLIF", types.AnyType{}),
		ScalarFunction("COALESCE", types.AnyType{}),
		ScalarFunction("NVL", types.AnyType{}),
		ScalarFunction("ZEROIFNULL", types.AnyType{}),

		// Array functions
		ScalarFunction("ARRAY_LENGTH", types.Int64Type{}),
		ScalarFunction("ARRAY_TO_STRING", types.VarcharType{}),
		ScalarFunction("ARRAY_CONCAT", arrayOf(types.AnyType{})),
		ScalarFunction("ARRAY_REVERSE", arrayOf(types.AnyType{})),
		ScalarFunction("ARRAY_FILTER", arrayOf(types.AnyType{})),
		ScalarFunction("ARRAY_TRANSFORM", arrayOf(types.AnyType{})),
		ScalarFunction("ARRAY_SLICE", arrayOf(types.AnyType{})),
		ScalarFunction("ARRAY_FIRST", types.AnyType{}),
		ScalarFunction("ARRAY_LAST", types.AnyType{}),
		ScalarFunction("ARRAY_INCLUDES", types.BoolType{}),
		ScalarFunction("ARRAY_INCLUDES_ANY", types.BoolType{}),
		ScalarFunction("ARRAY_INCLUDES_ALL", types.BoolType{}),
		ScalarFunction("GENERATE_ARRAY", arrayOf(types.Int64Type{})),
		ScalarFunction("GENERATE_DATE_ARRAY", arrayOf(types.DateType{})),
		ScalarFunction("GENERATE_TIMESTAMP_ARRAY", arrayOf(types.TimestampType{})),
		ScalarFunction("FLATTEN", arrayOf(types.AnyType{})),

		// JSON functions
		ScalarFunction("JSON_QUERY", types.JsonType{}),
		ScalarFunction("JSON_VALUE", types.VarcharType{}),
		ScalarFunction("JSON_QUERY_ARRAY", arrayOf(types.JsonType{})),
		ScalarFunction("JSON_VALUE_ARRAY", arrayOf(types.VarcharType{})),
		ScalarFunction("JSON_ARRAY", types.JsonType{}),
		ScalarFunction("JSON_OBJECT", types.JsonType{}),
		ScalarFunction("JSON_SET", types.JsonType{}),
		ScalarFunction("JSON_REMOVE", types.JsonType{}),
		ScalarFunction("JSON_ARRAY_APPEND", types.JsonType{}),
		ScalarFunction("JSON_ARRAY_INSERT", types.JsonType{}),
		ScalarFunction("JSON_STRIP_NULLS", types.JsonType{}),
		ScalarFunction("PARSE_JSON", types.JsonType{}),
		ScalarFunction("TO_JSON", types.JsonType{}),
		ScalarFunction("TO_JSON_STRING", types.VarcharType{}),
		ScalarFunction("JSON_TYPE", types.VarcharType{}),

		// Range functions
		ScalarFunction("RANGE", rangeOf(types.AnyType{})),
		ScalarFunction("RANGE_START", types.AnyType{}),
		ScalarFunction("RANGE_END", types.AnyType{}),
		ScalarFunction("RANGE_CONTAINS", types.BoolType{}),
		ScalarFunction("RANGE_OVERLAPS", types.BoolType{}),
		ScalarFunction("RANGE_INTERSECT", rangeOf(types.AnyType{})),
		ScalarFunction("GENERATE_RANGE_ARRAY", arrayOf(rangeOf(types.AnyType{}))),

		// Hash functions
		ScalarFunction("MD5", types.VarbinaryType{}),
		ScalarFunction("SHA1", types.VarbinaryType{}),
		ScalarFunction("SHA256", types.VarbinaryType{}),
		ScalarFunction("SHA512", types.VarbinaryType{}),

		// UUID functions
		ScalarFunction("GENERATE_UUID", types.UuidType{}).NonDeterministic(),

		// Error handling
		ScalarFunction("ERROR", types.UnknownType{}),
		ScalarFunction("IFERROR", types.AnyType{}),
		ScalarFunction("ISERROR", types.BoolType{}),
	}
}
