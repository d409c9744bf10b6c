package gormtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm session whose statements all execute on tx instead of
// the pool db was opened with. The session owns its own statement, so the
// parent db keeps running on the pool.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	// A non-nil Context forces Session to clone the statement before we
	// swap its ConnPool; gorm's own Begin installs transactions the same way.
	session := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return session
}
