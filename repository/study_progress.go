package repository

import (
	"errors"

	"github.com/hanjalab/hanja-api/models"
	"gorm.io/gorm"
)

// StudyProgressRepository tracks per-user study records.
type StudyProgressRepository struct {
	db *gorm.DB
}

func NewStudyProgressRepository(db *gorm.DB) *StudyProgressRepository {
	return &StudyProgressRepository{db: db}
}

// Get returns the record for one (user, character) pair or ErrNotFound.
func (r *StudyProgressRepository) Get(userID, hanjaID string) (*models.StudyProgress, error) {
	var progress models.StudyProgress
	err := r.db.Where("user_id = ? AND hanja_id = ?", userID, hanjaID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByUser returns every record the user has.
func (r *StudyProgressRepository) ListByUser(userID string) ([]models.StudyProgress, error) {
	var progress []models.StudyProgress
	if err := r.db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// ListByUserAndChapter filters the user's records to one chapter.
func (r *StudyProgressRepository) ListByUserAndChapter(userID string, chapter int) ([]models.StudyProgress, error) {
	var progress []models.StudyProgress
	if err := r.db.Where("user_id = ? AND chapter = ?", userID, chapter).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// Upsert overwrites the existing record for the pair or inserts a new
// one. Check-then-write: two concurrent callers on the same pair can
// race, in which case the loser hits the unique index and the error
// propagates.
func (r *StudyProgressRepository) Upsert(userID, hanjaID string, chapter int, isKnown bool) (*models.StudyProgress, error) {
	var progress models.StudyProgress
	err := r.db.Where("user_id = ? AND hanja_id = ?", userID, hanjaID).First(&progress).Error
	if err == nil {
		progress.Chapter = chapter
		progress.IsKnown = isKnown
		if err := r.db.Save(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = models.StudyProgress{
		UserID:  userID,
		HanjaID: hanjaID,
		Chapter: chapter,
		IsKnown: isKnown,
	}
	if err := r.db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// Delete removes the record for the pair; reports whether one existed.
func (r *StudyProgressRepository) Delete(userID, hanjaID string) (bool, error) {
	result := r.db.Where("user_id = ? AND hanja_id = ?", userID, hanjaID).Delete(&models.StudyProgress{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
