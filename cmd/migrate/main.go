package main

import (
	"database/sql"
	"flag"

	"twitch_prediction_manager/internal/config"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const defaultMigrationDir = "./db/migrations"

func main() {
	var (
		downFlag = flag.Bool("down", false, "Roll back the last prediction journal migration")
		dirFlag  = flag.String("dir", defaultMigrationDir, "Directory with goose migrations")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}

	if cfg.DB.Conn == "" {
		logrus.Fatal("DB_CONN is required to migrate the prediction journal")
	}

	if err := runMigrations("postgres", cfg.DB.Conn, *dirFlag, *downFlag); err != nil {
		logrus.Fatalf("Migration failed: %+v", err)
	}
}

func runMigrations(dialect, creds, dir string, migrateDown bool) error {
	db, err := sql.Open(dialect, creds)
	if err != nil {
		return errors.Errorf("cannot open %s db connection: %v", dialect, err)
	}
	defer db.Close()

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Errorf("cannot set %s dialect: %v", dialect, err)
	}

	if migrateDown {
		if err := goose.Down(db, dir); err != nil {
			return errors.Errorf("cannot down %s migrations: %v", dialect, err)
		}
		logrus.Info("prediction journal migration rolled back")
		return nil
	}

	if err := goose.Up(db, dir); err != nil {
		return errors.Errorf("cannot up %s migrations: %v", dialect, err)
	}
	logrus.Info("prediction journal is up to date")
	return nil
}
