package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// document is the row shape for the embedded-database backend: one row per
// named collection, holding the full JSON document.
type document struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// GormBackend stores documents in a SQLite database, one row per document.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend opens (or creates) the SQLite database at dsn and migrates
// the documents table. Use ":memory:" style DSNs for ephemeral databases.
func NewGormBackend(dsn string) (*GormBackend, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrating documents table: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (g *GormBackend) Load(name string) ([]byte, error) {
	var doc document
	err := g.db.First(&doc, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", name, err)
	}
	return doc.Data, nil
}

func (g *GormBackend) Save(name string, data []byte) error {
	doc := document{Name: name, Data: data, UpdatedAt: time.Now()}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("saving document %s: %w", name, err)
	}
	return nil
}

func (g *GormBackend) List() ([]string, error) {
	var names []string
	if err := g.db.Model(&document{}).Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return names, nil
}
