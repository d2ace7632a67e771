// Package mock provides in-memory stand-ins for the database, Redis and clock
// used by the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database holding the farm tables.
type Db struct {
	DbConn *gorm.DB
	schema string
	tables []string
	models map[string]any
}

// NewDb opens the shared in-memory database once and creates a table for every
// model. Models must be listed parents first.
func NewDb(schema string, models ...any) *Db {
	once.Do(func() {
		db = open(schema, models)
	})
	return db
}

func open(schema string, models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.Exec("ATTACH ':memory:' AS " + schema).Error; err != nil &&
		!strings.Contains(err.Error(), "is already in use") {
		panic(fmt.Sprintf("failed to attach schema %s. err: %s", schema, err.Error()))
	}

	newDbMock := &Db{
		DbConn: dbConn,
		schema: schema,
		models: make(map[string]any, len(models)),
	}
	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(fmt.Sprintf("failed to parse model %T. err: %s", model, err.Error()))
		}
		newDbMock.tables = append(newDbMock.tables, stmt.Schema.Table)
		newDbMock.models[stmt.Schema.Table] = model
	}

	if err := newDbMock.migrate(models); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// migrate drops and recreates every table in one transaction.
func (d *Db) migrate(models []any) error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for i := len(d.tables) - 1; i >= 0; i-- {
			if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", d.tables[i])).Error; err != nil {
				return err
			}
		}

		if err := tx.AutoMigrate(models...); err != nil {
			return err
		}

		for _, table := range d.tables {
			if !tx.Migrator().HasTable(table) {
				return fmt.Errorf("table %s was not created", table)
			}
		}
		return nil
	})
}

// ClearDB deletes every row, soft deleted ones included, children first.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		table := d.tables[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(d.models[table]).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
