package schemas

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hanjalab/hanja-api/models"
)

func TestFromHanjaModelRenamesFields(t *testing.T) {
	m := models.Hanja{
		ID:          "1",
		Character:   "一",
		Sound:       "일",
		Meaning:     "하나",
		StrokeOrder: []string{"s1"},
		Examples:    []models.Example{{Sentence: "一見", Meaning: "한 번 봄"}},
		Chapter:     1,
		Difficulty:  1,
	}

	out, err := json.Marshal(FromHanjaModel(m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(out)

	if !strings.Contains(body, `"strokeOrder":["s1"]`) {
		t.Fatalf("expected camelCase strokeOrder, got %s", body)
	}
	if strings.Contains(body, "stroke_order") {
		t.Fatalf("snake_case leaked onto the wire: %s", body)
	}
	if !strings.Contains(body, `"examples":[{"sentence":"一見","meaning":"한 번 봄"}]`) {
		t.Fatalf("unexpected examples encoding: %s", body)
	}
}

func TestFromHanjaModelNilSlices(t *testing.T) {
	h := FromHanjaModel(models.Hanja{ID: "1", Character: "一", Sound: "일", Meaning: "하나", Chapter: 1, Difficulty: 2})

	out, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "null") {
		t.Fatalf("nil slices must encode as [], got %s", out)
	}
}

func TestNormalizeExamples(t *testing.T) {
	got := NormalizeExamples([]Example{{Sentence: "火山", Meaning: "화산"}})
	if len(got) != 1 || got[0].Sentence != "火山" || got[0].Meaning != "화산" {
		t.Fatalf("unexpected normalization: %+v", got)
	}

	if out := NormalizeExamples(nil); out == nil || len(out) != 0 {
		t.Fatalf("nil input should normalize to an empty pair list, got %#v", out)
	}
}

func TestFromHanjaModelsPreservesOrder(t *testing.T) {
	ms := []models.Hanja{{ID: "2"}, {ID: "1"}}
	out := FromHanjaModels(ms)
	if len(out) != 2 || out[0].ID != "2" || out[1].ID != "1" {
		t.Fatalf("order not preserved: %+v", out)
	}
}

func TestProgressMapping(t *testing.T) {
	s := FromStudyProgressModel(models.StudyProgress{UserID: "u1", HanjaID: "3", Chapter: 1, IsKnown: true})
	p := FromPracticeProgressModel(models.PracticeProgress{UserID: "u1", HanjaID: "3", Chapter: 1, IsKnown: true})
	if s != p {
		t.Fatalf("study and practice records with equal fields must map identically: %+v vs %+v", s, p)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"user_id":"u1","hanja_id":"3","chapter":1,"is_known":true}`
	if string(out) != want {
		t.Fatalf("wire form mismatch:\n got %s\nwant %s", out, want)
	}
}
