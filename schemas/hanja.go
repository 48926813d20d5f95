package schemas

import "github.com/hanjalab/hanja-api/models"

// Example is one usage example on the wire.
type Example struct {
	Sentence string `json:"sentence"`
	Meaning  string `json:"meaning"`
}

// Hanja is the transport form of a character. Field names follow the
// frontend contract (strokeOrder, not stroke_order).
type Hanja struct {
	ID          string    `json:"id"`
	Character   string    `json:"character"`
	Sound       string    `json:"sound"`
	Meaning     string    `json:"meaning"`
	StrokeOrder []string  `json:"strokeOrder"`
	Examples    []Example `json:"examples"`
	Chapter     int       `json:"chapter"`
	Difficulty  int       `json:"difficulty"`
}

// HanjaList wraps list responses.
type HanjaList struct {
	Hanja []Hanja `json:"hanja"`
}

// HanjaCreate is the create payload. ID is optional; when empty the
// repository derives the next numeric id. Difficulty 0 is not
// representable: the column default rewrites it to 2, same as omitting
// the field.
type HanjaCreate struct {
	ID          string    `json:"id"`
	Character   string    `json:"character"`
	Sound       string    `json:"sound"`
	Meaning     string    `json:"meaning"`
	StrokeOrder []string  `json:"strokeOrder"`
	Examples    []Example `json:"examples"`
	Chapter     int       `json:"chapter"`
	Difficulty  *int      `json:"difficulty"`
}

// HanjaUpdate is the partial-update payload. A nil field is left
// untouched; an empty (non-nil) value overwrites.
type HanjaUpdate struct {
	Character   *string    `json:"character"`
	Sound       *string    `json:"sound"`
	Meaning     *string    `json:"meaning"`
	StrokeOrder *[]string  `json:"strokeOrder"`
	Examples    *[]Example `json:"examples"`
	Chapter     *int       `json:"chapter"`
	Difficulty  *int       `json:"difficulty"`
}

// FromHanjaModel maps a stored record to its transport form. Nil
// slices come back as empty so the JSON is always [] rather than null.
func FromHanjaModel(m models.Hanja) Hanja {
	h := Hanja{
		ID:          m.ID,
		Character:   m.Character,
		Sound:       m.Sound,
		Meaning:     m.Meaning,
		StrokeOrder: m.StrokeOrder,
		Examples:    make([]Example, 0, len(m.Examples)),
		Chapter:     m.Chapter,
		Difficulty:  m.Difficulty,
	}
	if h.StrokeOrder == nil {
		h.StrokeOrder = []string{}
	}
	for _, ex := range m.Examples {
		h.Examples = append(h.Examples, Example{Sentence: ex.Sentence, Meaning: ex.Meaning})
	}
	return h
}

// FromHanjaModels maps a result set, preserving order.
func FromHanjaModels(ms []models.Hanja) []Hanja {
	out := make([]Hanja, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromHanjaModel(m))
	}
	return out
}

// NormalizeExamples converts wire examples to the stored pair form.
func NormalizeExamples(exs []Example) []models.Example {
	out := make([]models.Example, 0, len(exs))
	for _, ex := range exs {
		out = append(out, models.Example{Sentence: ex.Sentence, Meaning: ex.Meaning})
	}
	return out
}
