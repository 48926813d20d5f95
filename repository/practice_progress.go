package repository

import (
	"errors"

	"github.com/hanjalab/hanja-api/models"
	"gorm.io/gorm"
)

// PracticeProgressRepository tracks per-user practice records. Same
// operations as the study repository against its own table.
type PracticeProgressRepository struct {
	db *gorm.DB
}

func NewPracticeProgressRepository(db *gorm.DB) *PracticeProgressRepository {
	return &PracticeProgressRepository{db: db}
}

func (r *PracticeProgressRepository) Get(userID, hanjaID string) (*models.PracticeProgress, error) {
	var progress models.PracticeProgress
	err := r.db.Where("user_id = ? AND hanja_id = ?", userID, hanjaID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *PracticeProgressRepository) ListByUser(userID string) ([]models.PracticeProgress, error) {
	var progress []models.PracticeProgress
	if err := r.db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *PracticeProgressRepository) ListByUserAndChapter(userID string, chapter int) ([]models.PracticeProgress, error) {
	var progress []models.PracticeProgress
	if err := r.db.Where("user_id = ? AND chapter = ?", userID, chapter).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *PracticeProgressRepository) Upsert(userID, hanjaID string, chapter int, isKnown bool) (*models.PracticeProgress, error) {
	var progress models.PracticeProgress
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

	progress = models.PracticeProgress{
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

func (r *PracticeProgressRepository) Delete(userID, hanjaID string) (bool, error) {
	result := r.db.Where("user_id = ? AND hanja_id = ?", userID, hanjaID).Delete(&models.PracticeProgress{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
