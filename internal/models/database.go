package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

type LedgerContext string

const (
	ContextURL    LedgerContext = "ledger-backend-url"
	ContextUserID LedgerContext = "ledger-user-id"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var tableSuffix = regexp.MustCompile("ies$")

// Connect opens the database, migrates the schema and configures the
// connection pool.
func Connect(driver, dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var db *gorm.DB
	var err error

	switch driver {
	case DriverPostgres:
		db, err = openPostgres(dsn, config)
	case DriverSQLite, "":
		db, err = openSQLite(dsn, config)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

func openSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writes, which also serializes
	// balance updates per account since sqlite has no row locks.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func openPostgres(dsn string, config *gorm.Config) (*gorm.DB, error) {
	pgConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	sqlDB := stdlib.OpenDB(*pgConfig)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), config)
}

// ForUpdate locks the selected rows until the end of the transaction.
//
// sqlite has no row level locks, the single connection of the pool
// serializes writers instead.
func ForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == DriverSQLite {
		return db
	}

	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func registerCallbacks(db *gorm.DB) error {
	err := db.Callback().Query().After("*").Register("ledger:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("ledger:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("ledger:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("ledger:after_delete", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = tableSuffix.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
		return
	}

	generalCallback(db)
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	switch {
	case strings.Contains(msg, "accounts.owner_id, accounts.name") || strings.Contains(msg, "account_owner_name"):
		db.Error = ErrAccountNameNotUnique
	case strings.Contains(msg, "budget_categories.budget_id, budget_categories.category_id") || strings.Contains(msg, "budget_category_unique"):
		db.Error = ErrBudgetCategoryNotUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint"):
		db.Error = ErrReferenceNotFound
	default:
		generalCallback(db)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil || IsDomainError(db.Error) {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Account{}, Category{}, Transaction{}, TransactionExtra{}, Budget{}, BudgetCategory{}, BudgetPeriodSnapshot{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	// Transactions stored before the legs of transfers were reconciled
	// separately shared one state for both accounts
	err = db.Unscoped().Model(&Transaction{}).
		Where("reconciled_source IS NULL").
		UpdateColumns(map[string]any{
			"reconciled_source":          gorm.Expr("is_reconciled"),
			"reconciled_destination":     gorm.Expr("is_reconciled"),
			"destination_deferred_until": gorm.Expr("deferred_until"),
		}).Error
	if err != nil {
		return fmt.Errorf("error during migration of reconciliation states: %w", err)
	}

	return nil
}
