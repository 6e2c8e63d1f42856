package sqlite

import (
	"database/sql/driver"
	"strings"

	msqlite "modernc.org/sqlite"
)

// foldCaseFunc is the SQL name of foldCase. SQLite's LOWER only folds ASCII.
const foldCaseFunc = "fold_case"

func init() {
	msqlite.MustRegisterDeterministicScalarFunction(foldCaseFunc, 1,
		func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return foldCase(v), nil
			case []byte:
				return foldCase(string(v)), nil
			default:
				return v, nil
			}
		},
	)
}

// foldCase lowercases s the same way the client filters flavor names.
func foldCase(s string) string {
	return strings.ToLower(s)
}
