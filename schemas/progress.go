package schemas

import "github.com/hanjalab/hanja-api/models"

// Progress is the transport form of a study or practice record.
type Progress struct {
	UserID  string `json:"user_id"`
	HanjaID string `json:"hanja_id"`
	Chapter int    `json:"chapter"`
	IsKnown bool   `json:"is_known"`
}

func FromStudyProgressModel(m models.StudyProgress) Progress {
	return Progress{UserID: m.UserID, HanjaID: m.HanjaID, Chapter: m.Chapter, IsKnown: m.IsKnown}
}

func FromStudyProgressModels(ms []models.StudyProgress) []Progress {
	out := make([]Progress, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudyProgressModel(m))
	}
	return out
}

func FromPracticeProgressModel(m models.PracticeProgress) Progress {
	return Progress{UserID: m.UserID, HanjaID: m.HanjaID, Chapter: m.Chapter, IsKnown: m.IsKnown}
}

func FromPracticeProgressModels(ms []models.PracticeProgress) []Progress {
	out := make([]Progress, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPracticeProgressModel(m))
	}
	return out
}
