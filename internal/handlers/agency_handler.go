package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pharma-backend/internal/models"
	"pharma-backend/internal/services"
)

type AgencyHandler struct {
	Service *services.AgencyService
}

func NewAgencyHandler(s *services.AgencyService) *AgencyHandler {
	return &AgencyHandler{Service: s}
}

func (h *AgencyHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	agency, err := h.Service.CreateAgency(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(agency)
}

func (h *AgencyHandler) GetAgency(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid agency ID", http.StatusBadRequest)
		return
	}

	agency, err := h.Service.GetAgency(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agency)
}

func (h *AgencyHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Service.ListAgencies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agencies)
}

func (h *AgencyHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid agency ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	agency, err := h.Service.UpdateAgency(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agency)
}

func (h *AgencyHandler) DeleteAgency(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid agency ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteAgency(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Agency deleted"})
}
