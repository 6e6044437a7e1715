package test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shkotk/musiclib/server/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Opens file backed SQLite database with Users and Songs tables created.
// Database is closed when the test finishes.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "musiclib_test.sqlite3")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("can't open sqlite db: %v", err)
	}

	if err = db.AutoMigrate(models.User{}, models.Song{}); err != nil {
		t.Fatalf("can't create tables: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// Inserts one song per provided duration. Nil durations are stored as NULL.
func SeedSongs(t testing.TB, db *gorm.DB, durations ...*int) {
	t.Helper()

	if len(durations) == 0 {
		return
	}

	songs := make([]models.Song, len(durations))
	for i, d := range durations {
		songs[i] = models.Song{Title: "song", Duration: d}
	}

	if err := db.Create(&songs).Error; err != nil {
		t.Fatalf("can't seed songs: %v", err)
	}
}

// Converts plain durations for SeedSongs.
func Durations(values ...int) []*int {
	durations := make([]*int, len(values))
	for i := range values {
		v := values[i]
		durations[i] = &v
	}

	return durations
}
