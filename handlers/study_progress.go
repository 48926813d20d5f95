package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hanjalab/hanja-api/repository"
	"github.com/hanjalab/hanja-api/schemas"
)

// StudyProgressHandler serves the per-user study tracking endpoints.
type StudyProgressHandler struct {
	Repo *repository.StudyProgressRepository
}

func (h *StudyProgressHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")

	progress, err := h.Repo.ListByUser(userID)
	if err != nil {
		http.Error(w, "Failed to fetch study progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromStudyProgressModels(progress))
}

func (h *StudyProgressHandler) ListByUserAndChapter(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	chapter, err := strconv.Atoi(r.PathValue("chapter"))
	if err != nil {
		http.Error(w, "Chapter must be a number", http.StatusBadRequest)
		return
	}

	progress, err := h.Repo.ListByUserAndChapter(userID, chapter)
	if err != nil {
		http.Error(w, "Failed to fetch study progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromStudyProgressModels(progress))
}

func (h *StudyProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	hanjaID := r.PathValue("id")

	progress, err := h.Repo.Get(userID, hanjaID)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Study progress not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch study progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromStudyProgressModel(*progress))
}

func (h *StudyProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input schemas.Progress
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.UserID == "" || input.HanjaID == "" {
		http.Error(w, "user_id and hanja_id are required", http.StatusBadRequest)
		return
	}

	progress, err := h.Repo.Upsert(input.UserID, input.HanjaID, input.Chapter, input.IsKnown)
	if err != nil {
		http.Error(w, "Failed to save study progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, schemas.FromStudyProgressModel(*progress))
}

// Update upserts the record addressed by the path. Body ids are
// optional; when present they must match the path, checked before any
// write happens.
func (h *StudyProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	hanjaID := r.PathValue("id")

	var input schemas.Progress
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.UserID != "" && input.UserID != userID {
		http.Error(w, "user_id in body does not match path", http.StatusBadRequest)
		return
	}
	if input.HanjaID != "" && input.HanjaID != hanjaID {
		http.Error(w, "hanja_id in body does not match path", http.StatusBadRequest)
		return
	}

	progress, err := h.Repo.Upsert(userID, hanjaID, input.Chapter, input.IsKnown)
	if err != nil {
		http.Error(w, "Failed to save study progress", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromStudyProgressModel(*progress))
}

func (h *StudyProgressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user")
	hanjaID := r.PathValue("id")

	existed, err := h.Repo.Delete(userID, hanjaID)
	if err != nil {
		http.Error(w, "Failed to delete study progress", http.StatusInternalServerError)
		return
	}
	if !existed {
		http.Error(w, "Study progress not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
