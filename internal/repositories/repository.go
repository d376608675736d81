// Package repositories provides MySQL data access for the enrollment
// and booking ledgers and the catalog.
package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique key violation.
// Uniqueness is enforced by the database at insert time, so concurrent
// check-then-insert races collapse into this error.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
