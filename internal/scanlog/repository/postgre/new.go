package postgre

import (
	"database/sql"

	"scanner-srv/internal/scanlog/repository"
	"scanner-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
