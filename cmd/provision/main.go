// Command provision creates user accounts from the command line. It is the
// operator-facing provisioning path; the public API never registers users.
//
// Usage:
//
//	provision -id AB12-34 -dob 1990-05-12 [-d <dsn>]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aspira-project/aspira-backend/internal/server/config"
	"github.com/aspira-project/aspira-backend/internal/server/repositories/repomanager"
	"github.com/aspira-project/aspira-backend/internal/server/services"
	"github.com/aspira-project/aspira-backend/internal/timex"
)

func main() {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var uniqueID, dob string
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	flag.StringVar(&uniqueID, "id", "", "unique id of the new user (7 chars, AAAA-000 pattern)")
	flag.StringVar(&dob, "dob", "", "date of birth (YYYY-MM-DD)")
	flag.Parse()

	if uniqueID == "" || dob == "" {
		flag.Usage()
		os.Exit(2)
	}

	date, err := timex.ParseDate(dob)
	if err != nil {
		log.Fatalf("invalid date of birth: %v", err)
	}

	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	user, err := services.NewAuthService(db, rm).CreateUser(ctx, uniqueID, date)
	if err != nil {
		log.Fatalf("error creating user: %v", err)
	}

	fmt.Printf("created user %s (id=%s)\n", user.UniqueID, user.ID)
}
