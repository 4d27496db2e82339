// Command migrate applies the embedded schema migrations.
//
//	migrate up
//	migrate down
//	migrate status
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"embroidery/cmd"
	"embroidery/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	command := "up"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	return migrations.Run(context.Background(), db, command, args...)
}
