package models

import "time"

// PracticeProgress mirrors StudyProgress for practice mode.
// Kept as its own table so the two activities never shadow each other.
type PracticeProgress struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null;uniqueIndex:idx_practice_user_hanja;index:idx_practice_user_chapter"`
	HanjaID   string `gorm:"not null;uniqueIndex:idx_practice_user_hanja"`
	Chapter   int    `gorm:"not null;index:idx_practice_user_chapter"`
	IsKnown   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
