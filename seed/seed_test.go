package seed

import (
	"path/filepath"
	"testing"

	"github.com/hanjalab/hanja-api/config"
	"github.com/hanjalab/hanja-api/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "hanja.db")), &gorm.Config{
		NamingStrategy: config.Naming("public"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func countHanja(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Hanja{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	if err := Run(db, zap.NewNop().Sugar()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := countHanja(t, db); got != 12 {
		t.Fatalf("expected 12 seeded rows, got %d", got)
	}

	var first models.Hanja
	if err := db.Where("id = ?", "1").First(&first).Error; err != nil {
		t.Fatalf("fetch seeded row: %v", err)
	}
	if first.Character != "一" || first.Sound != "일" || first.Chapter != 1 {
		t.Fatalf("unexpected seed content: %+v", first)
	}
	if len(first.Examples) != 2 {
		t.Fatalf("expected 2 examples on id 1, got %d", len(first.Examples))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	log := zap.NewNop().Sugar()

	if err := Run(db, log); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Run(db, log); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := countHanja(t, db); got != 12 {
		t.Fatalf("second run changed row count: %d", got)
	}
}

// Any pre-existing row disables seeding, even when it is not part of
// the seed set.
func TestRunSkipsPopulatedTable(t *testing.T) {
	db := newTestDB(t)

	custom := models.Hanja{ID: "custom", Character: "字", Sound: "자", Meaning: "글자", Chapter: 1, Difficulty: 2}
	if err := db.Create(&custom).Error; err != nil {
		t.Fatalf("insert custom row: %v", err)
	}

	if err := Run(db, zap.NewNop().Sugar()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := countHanja(t, db); got != 1 {
		t.Fatalf("seed ran against a populated table: %d rows", got)
	}
}

func TestEnsureSchemaSkipsDefault(t *testing.T) {
	db := newTestDB(t)
	log := zap.NewNop().Sugar()

	if err := EnsureSchema(db, "public", log); err != nil {
		t.Fatalf("public schema should be a no-op: %v", err)
	}
	if err := EnsureSchema(db, "", log); err != nil {
		t.Fatalf("empty schema should be a no-op: %v", err)
	}
}
