package repomanager

import (
	"context"
	"database/sql"

	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/repositories/checkins"
	"github.com/lifeos/lifeos/internal/server/repositories/documents"
	"github.com/lifeos/lifeos/internal/server/repositories/expenses"
	"github.com/lifeos/lifeos/internal/server/repositories/habits"
	"github.com/lifeos/lifeos/internal/server/repositories/notes"
	"github.com/lifeos/lifeos/internal/server/repositories/tasks"
	"github.com/lifeos/lifeos/internal/server/repositories/upgrades"
	"github.com/lifeos/lifeos/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code runs
// against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	CheckIns(db dbx.DBTX) checkins.Repository
	Documents(db dbx.DBTX) documents.Repository
	Notes(db dbx.DBTX) notes.Repository
	Habits(db dbx.DBTX) habits.Repository
	Upgrades(db dbx.DBTX) upgrades.Repository
}
