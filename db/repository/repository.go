package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/lib/pq"
)

const driverName = "postgres"

// DBRepository is the prediction journal.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
	}
}

func Connect(ctx context.Context, conn string) (*DBRepository, error) {
	db, err := sqlx.ConnectContext(ctx, driverName, conn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to db")
	}

	return NewDBRepository(db), nil
}

func (dbr *DBRepository) Close() error {
	return dbr.db.Close()
}
