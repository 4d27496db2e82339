package postgres

import (
	"fmt"
	"time"

	"embroidery/internal/adapters/out/postgres/accountrepo"
	"embroidery/internal/adapters/out/postgres/assignmentrepo"
	"embroidery/internal/adapters/out/postgres/catalogrepo"
	"embroidery/internal/adapters/out/postgres/deliveryrepo"
	"embroidery/internal/adapters/out/postgres/orderrepo"
	"embroidery/internal/adapters/out/postgres/paymentrepo"
	"embroidery/internal/adapters/out/postgres/returnrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PoolOptions bounds the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to PostgreSQL. Driver errors are translated so unique
// violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string, pool PoolOptions) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), Config())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return db, nil
}

// Config is the GORM configuration every connection uses.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Models lists every persisted row type, for schema setup on databases
// the goose migrations do not target.
func Models() []any {
	return []any{
		&accountrepo.AccountDTO{},
		&accountrepo.ResetTokenDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.SizeDTO{},
		&catalogrepo.DifficultyDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignmentDTO{},
		&returnrepo.ReturnDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
	}
}
