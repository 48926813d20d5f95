package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hanjalab/hanja-api/repository"
	"github.com/hanjalab/hanja-api/schemas"
)

// HanjaHandler serves the character catalog endpoints.
type HanjaHandler struct {
	Repo *repository.HanjaRepository
}

func (h *HanjaHandler) List(w http.ResponseWriter, r *http.Request) {
	hanja, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Failed to fetch hanja", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.HanjaList{Hanja: schemas.FromHanjaModels(hanja)})
}

func (h *HanjaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	hanja, err := h.Repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Hanja not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch hanja", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromHanjaModel(*hanja))
}

func (h *HanjaHandler) ListByChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := strconv.Atoi(r.PathValue("chapter"))
	if err != nil {
		http.Error(w, "Chapter must be a number", http.StatusBadRequest)
		return
	}

	hanja, err := h.Repo.ListByChapter(chapter)
	if err != nil {
		http.Error(w, "Failed to fetch hanja", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.HanjaList{Hanja: schemas.FromHanjaModels(hanja)})
}

func (h *HanjaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input schemas.HanjaCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hanja, err := h.Repo.Create(input)
	if err != nil {
		http.Error(w, "Failed to create hanja", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, schemas.FromHanjaModel(*hanja))
}

func (h *HanjaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var input schemas.HanjaUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	hanja, err := h.Repo.Update(id, input)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Hanja not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to update hanja", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schemas.FromHanjaModel(*hanja))
}

func (h *HanjaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.Repo.Delete(id)
	if err != nil {
		http.Error(w, "Failed to delete hanja", http.StatusInternalServerError)
		return
	}
	if !existed {
		http.Error(w, "Hanja not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
