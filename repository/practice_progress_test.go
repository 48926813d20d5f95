package repository

import (
	"errors"
	"testing"

	"github.com/hanjalab/hanja-api/models"
)

func TestPracticeUpsertInsertsThenOverwrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewPracticeProgressRepository(db)

	first, err := repo.Upsert("u1", "3", 1, false)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := repo.Upsert("u1", "3", 1, true)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !second.IsKnown || second.ID != first.ID {
		t.Fatalf("expected in-place overwrite, got %+v then %+v", first, second)
	}

	var count int64
	if err := db.Model(&models.PracticeProgress{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestPracticeDuplicatePairRejectedByStore(t *testing.T) {
	db := newTestDB(t)

	first := models.PracticeProgress{UserID: "u1", HanjaID: "3", Chapter: 1, IsKnown: false}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	second := models.PracticeProgress{UserID: "u1", HanjaID: "3", Chapter: 1, IsKnown: true}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("expected a constraint violation for the duplicate (user_id, hanja_id) pair")
	}

	var count int64
	if err := db.Model(&models.PracticeProgress{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the single original row, got %d", count)
	}
}

func TestPracticeGetAndDelete(t *testing.T) {
	repo := NewPracticeProgressRepository(newTestDB(t))

	_, err := repo.Get("u1", "1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Upsert("u1", "1", 1, true); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.Get("u1", "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Chapter != 1 || !got.IsKnown {
		t.Fatalf("unexpected record: %+v", got)
	}

	existed, err := repo.Delete("u1", "1")
	if err != nil || !existed {
		t.Fatalf("delete: existed=%v err=%v", existed, err)
	}
	existed, err = repo.Delete("u1", "1")
	if err != nil || existed {
		t.Fatalf("repeat delete: existed=%v err=%v", existed, err)
	}
}
