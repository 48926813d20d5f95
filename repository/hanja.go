package repository

import (
	"errors"
	"strconv"

	"github.com/hanjalab/hanja-api/models"
	"github.com/hanjalab/hanja-api/schemas"
	"gorm.io/gorm"
)

// HanjaRepository performs catalog reads and writes. It holds no state
// beyond the handle; every call is a single statement against the store.
type HanjaRepository struct {
	db *gorm.DB
}

func NewHanjaRepository(db *gorm.DB) *HanjaRepository {
	return &HanjaRepository{db: db}
}

// ListAll returns the full catalog ordered by chapter, then id.
func (r *HanjaRepository) ListAll() ([]models.Hanja, error) {
	var hanja []models.Hanja
	if err := r.db.Order("chapter").Order("id").Find(&hanja).Error; err != nil {
		return nil, err
	}
	return hanja, nil
}

// GetByID returns one record or ErrNotFound.
func (r *HanjaRepository) GetByID(id string) (*models.Hanja, error) {
	var hanja models.Hanja
	err := r.db.Where("id = ?", id).First(&hanja).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hanja, nil
}

// ListByChapter returns the records of one chapter ordered by id.
func (r *HanjaRepository) ListByChapter(chapter int) ([]models.Hanja, error) {
	var hanja []models.Hanja
	if err := r.db.Where("chapter = ?", chapter).Order("id").Find(&hanja).Error; err != nil {
		return nil, err
	}
	return hanja, nil
}

// Create persists a new record. When input.ID is empty the next id is
// derived from the existing numeric ids.
func (r *HanjaRepository) Create(input schemas.HanjaCreate) (*models.Hanja, error) {
	id := input.ID
	if id == "" {
		next, err := r.nextID()
		if err != nil {
			return nil, err
		}
		id = next
	}

	difficulty := 2
	if input.Difficulty != nil {
		difficulty = *input.Difficulty
	}

	strokeOrder := input.StrokeOrder
	if strokeOrder == nil {
		strokeOrder = []string{}
	}

	hanja := models.Hanja{
		ID:          id,
		Character:   input.Character,
		Sound:       input.Sound,
		Meaning:     input.Meaning,
		StrokeOrder: strokeOrder,
		Examples:    schemas.NormalizeExamples(input.Examples),
		Chapter:     input.Chapter,
		Difficulty:  difficulty,
	}

	if err := r.db.Create(&hanja).Error; err != nil {
		return nil, err
	}
	return &hanja, nil
}

// Update applies the non-nil fields of the input to an existing record.
// Returns ErrNotFound when the id does not exist.
func (r *HanjaRepository) Update(id string, input schemas.HanjaUpdate) (*models.Hanja, error) {
	var hanja models.Hanja
	err := r.db.Where("id = ?", id).First(&hanja).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Character != nil {
		hanja.Character = *input.Character
	}
	if input.Sound != nil {
		hanja.Sound = *input.Sound
	}
	if input.Meaning != nil {
		hanja.Meaning = *input.Meaning
	}
	if input.StrokeOrder != nil {
		hanja.StrokeOrder = *input.StrokeOrder
	}
	if input.Examples != nil {
		hanja.Examples = schemas.NormalizeExamples(*input.Examples)
	}
	if input.Chapter != nil {
		hanja.Chapter = *input.Chapter
	}
	if input.Difficulty != nil {
		hanja.Difficulty = *input.Difficulty
	}

	if err := r.db.Save(&hanja).Error; err != nil {
		return nil, err
	}
	return &hanja, nil
}

// Delete removes a record. The bool reports whether one existed.
func (r *HanjaRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Hanja{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// nextID scans every id, takes the numeric maximum and adds one.
// Non-numeric ids are skipped; an empty table yields "1".
func (r *HanjaRepository) nextID() (string, error) {
	var ids []string
	if err := r.db.Model(&models.Hanja{}).Pluck("id", &ids).Error; err != nil {
		return "", err
	}

	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}
