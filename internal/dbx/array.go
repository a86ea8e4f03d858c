package dbx

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgtype"
)

// ArrayScanner adapts a pointer to a Go slice (for example *[]string) so
// database/sql can scan a PostgreSQL array column into it. pgtype.Map is not
// safe for concurrent use, so each call gets its own.
func ArrayScanner(dst any) sql.Scanner {
	return pgtype.NewMap().SQLScanner(dst)
}
