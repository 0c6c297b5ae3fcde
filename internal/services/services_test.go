package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/openslot/slotbook/config"
	"github.com/openslot/slotbook/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a file-backed sqlite database so concurrent transactions
// in the booking tests serialize the way postgres would. _txlock=immediate
// makes every transaction a write transaction up front, avoiding sqlite's
// read-to-write upgrade deadlock; _foreign_keys=on makes the ON DELETE
// CASCADE constraints fire the way they do on postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "slotbook.db") + "?_busy_timeout=5000&_txlock=immediate&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedSlot(t *testing.T, db *gorm.DB, categoryID uint, start, end time.Time) models.TimeSlot {
	t.Helper()
	slot := models.TimeSlot{CategoryID: categoryID, StartTime: start, EndTime: end}
	require.NoError(t, db.Create(&slot).Error)
	return slot
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@x.com", NormalizeEmail(" ALICE@X.COM "))
	require.Equal(t, "bob@x.com", NormalizeEmail("bob@x.com"))
}
