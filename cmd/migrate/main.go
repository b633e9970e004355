package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"scanner-srv/config"
)

const sourceURL = "file://migrations"

// Applies schema migrations. Usage: migrate [up|down]
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	sslMode := cfg.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	schema := cfg.Postgres.Schema
	if schema == "" {
		schema = "public"
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		url.QueryEscape(cfg.Postgres.User), url.QueryEscape(cfg.Postgres.Password),
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName, sslMode, schema)

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		fmt.Println("Failed to initialize migrations: ", err)
		os.Exit(1)
	}
	defer m.Close()

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		fmt.Printf("Unknown direction %q (want up or down)\n", direction)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("Migration failed: ", err)
		os.Exit(1)
	}

	version, dirty, _ := m.Version()
	fmt.Printf("Migrations applied (version %d, dirty %v)\n", version, dirty)
}
