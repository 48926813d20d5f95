package models

import "time"

// StudyProgress tracks whether a user knows a character in study mode.
// One row per (user, character); upserts overwrite in place.
type StudyProgress struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null;uniqueIndex:idx_study_user_hanja;index:idx_study_user_chapter"`
	HanjaID   string `gorm:"not null;uniqueIndex:idx_study_user_hanja"`
	Chapter   int    `gorm:"not null;index:idx_study_user_chapter"`
	IsKnown   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
