package seed

import (
	"fmt"

	"github.com/hanjalab/hanja-api/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sampleHanja is the bootstrap catalog: twelve level-5 exam characters
// across three chapters, matching the frontend's sampleHanja set.
var sampleHanja = []models.Hanja{
	{
		ID: "1", Character: "一", Sound: "일", Meaning: "하나",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "一石二鳥", Meaning: "한 가지 일로 두 가지 이득을 얻음"},
			{Sentence: "一見", Meaning: "한 번 봄"},
		},
		Chapter: 1, Difficulty: 1,
	},
	{
		ID: "2", Character: "二", Sound: "이", Meaning: "둘",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "二重", Meaning: "이중"},
			{Sentence: "二月", Meaning: "이월"},
		},
		Chapter: 1, Difficulty: 1,
	},
	{
		ID: "3", Character: "三", Sound: "삼", Meaning: "셋",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "三角", Meaning: "삼각"},
			{Sentence: "三月", Meaning: "삼월"},
		},
		Chapter: 1, Difficulty: 1,
	},
	{
		ID: "4", Character: "人", Sound: "인", Meaning: "사람",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "人間", Meaning: "인간"},
			{Sentence: "人口", Meaning: "인구"},
		},
		Chapter: 1, Difficulty: 2,
	},
	{
		ID: "5", Character: "大", Sound: "대", Meaning: "큰",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "大學", Meaning: "대학"},
			{Sentence: "大小", Meaning: "크고 작음"},
		},
		Chapter: 1, Difficulty: 2,
	},
	{
		ID: "6", Character: "小", Sound: "소", Meaning: "작은",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "小學", Meaning: "소학"},
			{Sentence: "大小", Meaning: "크고 작음"},
		},
		Chapter: 1, Difficulty: 2,
	},
	{
		ID: "7", Character: "山", Sound: "산", Meaning: "뫼",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "山頂", Meaning: "산꼭대기"},
			{Sentence: "火山", Meaning: "화산"},
		},
		Chapter: 2, Difficulty: 2,
	},
	{
		ID: "8", Character: "水", Sound: "수", Meaning: "물",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "水準", Meaning: "수준"},
			{Sentence: "海水", Meaning: "바닷물"},
		},
		Chapter: 2, Difficulty: 2,
	},
	{
		ID: "9", Character: "火", Sound: "화", Meaning: "불",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "火災", Meaning: "화재"},
			{Sentence: "火山", Meaning: "화산"},
		},
		Chapter: 2, Difficulty: 2,
	},
	{
		ID: "10", Character: "木", Sound: "목", Meaning: "나무",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "木造", Meaning: "목조"},
			{Sentence: "樹木", Meaning: "수목"},
		},
		Chapter: 2, Difficulty: 2,
	},
	{
		ID: "11", Character: "歌", Sound: "가", Meaning: "노래",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "歌手", Meaning: "가수"},
			{Sentence: "詩歌", Meaning: "시가"},
		},
		Chapter: 3, Difficulty: 2,
	},
	{
		ID: "12", Character: "家", Sound: "가", Meaning: "집",
		StrokeOrder: []string{},
		Examples: []models.Example{
			{Sentence: "家長", Meaning: "가장"},
			{Sentence: "國家", Meaning: "국가"},
		},
		Chapter: 3, Difficulty: 2,
	},
}

// EnsureSchema creates the configured schema when it is not the
// default one. Managed databases may refuse CREATE SCHEMA; that is a
// startup-fatal condition, surfaced with instructions rather than
// swallowed.
func EnsureSchema(db *gorm.DB, databaseSchema string, log *zap.SugaredLogger) error {
	if databaseSchema == "" || databaseSchema == "public" {
		return nil
	}

	err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + databaseSchema).Error
	if err != nil {
		return fmt.Errorf(
			"failed to create schema %q: %w (run `CREATE SCHEMA IF NOT EXISTS %s;` in your SQL console, or set DATABASE_SCHEMA=public)",
			databaseSchema, err, databaseSchema,
		)
	}
	log.Infow("schema ensured", "schema", databaseSchema)
	return nil
}

// Run inserts the sample catalog when the hanja table is empty. Any
// existing row, seed data or not, disables the insert entirely.
func Run(db *gorm.DB, log *zap.SugaredLogger) error {
	var count int64
	if err := db.Model(&models.Hanja{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count hanja rows: %w", err)
	}
	if count > 0 {
		log.Infow("seed skipped, catalog already populated", "rows", count)
		return nil
	}

	rows := make([]models.Hanja, len(sampleHanja))
	copy(rows, sampleHanja)
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert seed data: %w", err)
	}
	log.Infow("seed data inserted", "rows", len(rows))
	return nil
}
