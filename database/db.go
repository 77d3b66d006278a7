// Package database manages the sqlite-backed account store, including
// schema migration and seeding of the initial account set.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edugestion/sgc-api/config"
	"github.com/edugestion/sgc-api/database/model"
)

var db *gorm.DB

// seedPasswordHash is bcrypt("password"), the initial credential of every
// seeded account.
const seedPasswordHash = "$2b$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// seedAccounts returns the fixed account set the store starts with.
func seedAccounts() []*model.Account {
	return []*model.Account{
		{
			Id:         1,
			Email:      "profesor@universidad.edu",
			Password:   seedPasswordHash,
			Role:       model.RoleProfesor,
			Name:       "Juan Pérez",
			Department: "Informática",
			Specialty:  "Programación",
		},
		{
			Id:          2,
			Email:       "admin@universidad.edu",
			Password:    seedPasswordHash,
			Role:        model.RoleAdministrador,
			Name:        "María García",
			AccessLevel: "avanzado",
		},
		{
			Id:         3,
			Email:      "profesor2@universidad.edu",
			Password:   seedPasswordHash,
			Role:       model.RoleProfesor,
			Name:       "Carlos López",
			Department: "Matemáticas",
			Specialty:  "Cálculo",
		},
	}
}

func initModels() error {
	models := []any{
		&model.Account{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func initAccounts() error {
	empty, err := isTableEmpty("accounts")
	if err != nil {
		log.Printf("Error checking if accounts table is empty: %v", err)
		return err
	}
	if empty {
		accounts := seedAccounts()
		return db.Create(&accounts).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens the sqlite database at dbPath, migrates the schema and seeds
// the account table when it is empty.
func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger gormlogger.Interface

	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAccounts()
}

// CloseDB closes the underlying database connection.
func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// GetDB returns the shared gorm handle.
func GetDB() *gorm.DB {
	return db
}

// IsNotFound reports whether err is the gorm record-not-found error.
func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
