package models

// Example is one usage example attached to a character.
type Example struct {
	Sentence string `json:"sentence"`
	Meaning  string `json:"meaning"`
}

// Hanja represents a single catalog entry
type Hanja struct {
	ID          string    `gorm:"primaryKey"`
	Character   string    `gorm:"not null"`
	Sound       string    `gorm:"not null"`
	Meaning     string    `gorm:"not null"`
	StrokeOrder []string  `gorm:"serializer:json"`
	Examples    []Example `gorm:"serializer:json"`
	Chapter     int       `gorm:"not null;index:idx_chapter"`
	Difficulty  int       `gorm:"not null;default:2;index:idx_difficulty"`
}
