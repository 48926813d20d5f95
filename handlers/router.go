package handlers

import (
	"net/http"

	"github.com/hanjalab/hanja-api/repository"
	"gorm.io/gorm"
)

// NewRouter wires every endpoint onto a ServeMux against the given
// database handle.
func NewRouter(db *gorm.DB) *http.ServeMux {
	hanja := &HanjaHandler{Repo: repository.NewHanjaRepository(db)}
	study := &StudyProgressHandler{Repo: repository.NewStudyProgressRepository(db)}
	practice := &PracticeProgressHandler{Repo: repository.NewPracticeProgressRepository(db)}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", Root)

	// Hanja catalog
	mux.HandleFunc("GET /api/hanja", hanja.List)
	mux.HandleFunc("GET /api/hanja/{id}", hanja.GetByID)
	mux.HandleFunc("GET /api/hanja/chapter/{chapter}", hanja.ListByChapter)
	mux.HandleFunc("POST /api/hanja", hanja.Create)
	mux.HandleFunc("PUT /api/hanja/{id}", hanja.Update)
	mux.HandleFunc("DELETE /api/hanja/{id}", hanja.Delete)

	// Study progress
	mux.HandleFunc("GET /api/study-progress/{user}", study.ListByUser)
	mux.HandleFunc("GET /api/study-progress/{user}/chapter/{chapter}", study.ListByUserAndChapter)
	mux.HandleFunc("GET /api/study-progress/{user}/hanja/{id}", study.Get)
	mux.HandleFunc("POST /api/study-progress", study.Create)
	mux.HandleFunc("PUT /api/study-progress/{user}/hanja/{id}", study.Update)
	mux.HandleFunc("DELETE /api/study-progress/{user}/hanja/{id}", study.Delete)

	// Practice progress
	mux.HandleFunc("GET /api/practice-progress/{user}", practice.ListByUser)
	mux.HandleFunc("GET /api/practice-progress/{user}/chapter/{chapter}", practice.ListByUserAndChapter)
	mux.HandleFunc("GET /api/practice-progress/{user}/hanja/{id}", practice.Get)
	mux.HandleFunc("POST /api/practice-progress", practice.Create)
	mux.HandleFunc("PUT /api/practice-progress/{user}/hanja/{id}", practice.Update)
	mux.HandleFunc("DELETE /api/practice-progress/{user}/hanja/{id}", practice.Delete)

	return mux
}

// Root answers health pings with a greeting.
func Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "한자 5급 API 서버입니다."})
}
