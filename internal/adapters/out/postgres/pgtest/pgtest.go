// Package pgtest starts disposable databases for repository tests: a
// PostgreSQL container migrated with goose, or an in-memory SQLite
// database built from the GORM models.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"embroidery/internal/adapters/out/postgres"
	"embroidery/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Tables lists every application table, children first, for TRUNCATE.
var Tables = []string{
	"payments", "deliveries", "returns", "assignments", "orders",
	"products", "difficulties", "sizes", "categories", "reset_tokens", "accounts",
}

// Postgres is a running container with the schema applied.
type Postgres struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine and applies the embedded goose
// migrations. The seed migration is rolled back so tests start empty.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), postgres.Config())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = migrations.Up(ctx, sqlDB); err != nil {
		return nil, err
	}
	if err = migrations.Run(ctx, sqlDB, "down-to", "1"); err != nil {
		return nil, err
	}

	return &Postgres{Container: container, DB: db}, nil
}

// Truncate empties every application table.
func (p *Postgres) Truncate() error {
	return p.DB.Exec("TRUNCATE TABLE " + strings.Join(Tables, ", ") + " CASCADE").Error
}

func (p *Postgres) Terminate(ctx context.Context) error {
	if p == nil || p.Container == nil {
		return nil
	}
	return p.Container.Terminate(ctx)
}

// OpenSQLite opens a private in-memory database named after the test and
// creates the tables of models. A single connection keeps every
// transaction on the same in-memory database.
func OpenSQLite(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), postgres.Config())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err = db.AutoMigrate(models...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

