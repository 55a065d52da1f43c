package repomanager

import (
	"context"
	"database/sql"

	"github.com/Decolo/translate-note-web/internal/dbx"
	"github.com/Decolo/translate-note-web/internal/server/repositories/notes"
	"github.com/Decolo/translate-note-web/internal/server/repositories/sessions"
	"github.com/Decolo/translate-note-web/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Notes(db dbx.DBTX) notes.Repository
}
