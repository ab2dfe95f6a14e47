package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/pavitra93/go-client-registry/shared/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	// One connection so the in-memory database and its pragma are stable.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{Username: username}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return u
}

func seedCompany(t *testing.T, db *gorm.DB, name string) models.Company {
	t.Helper()
	co := models.Company{Name: name}
	if err := db.Create(&co).Error; err != nil {
		t.Fatalf("seed company %q: %v", name, err)
	}
	return co
}

func seedClient(t *testing.T, db *gorm.DB, name, email string, userID, companyID uint) models.Client {
	t.Helper()
	cl := models.Client{Name: name, Email: email, Phone: "555-0100", UserID: userID, CompanyID: companyID}
	if err := db.Create(&cl).Error; err != nil {
		t.Fatalf("seed client %q: %v", email, err)
	}
	return cl
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
