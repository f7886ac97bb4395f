package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wigu/internal/service"
)

// InsightHandler handles insight endpoints
type InsightHandler struct {
	insightSvc *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// Generate handles POST /v1/sessions/{sessionId}/insights/generate
func (h *InsightHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	exports, err := h.insightSvc.Generate(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"insights": exports})
}

// List handles GET /v1/sessions/{sessionId}/insights
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	exports, err := h.insightSvc.List(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insights": exports})
}

// Validate handles POST /v1/insights/{insightId}/validate
func (h *InsightHandler) Validate(w http.ResponseWriter, r *http.Request) {
	insightID := mux.Vars(r)["insightId"]

	export, err := h.insightSvc.Validate(r.Context(), insightID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}

// RateInsightRequest is the request body for rating an insight
type RateInsightRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// Rate handles POST /v1/insights/{insightId}/rate
func (h *InsightHandler) Rate(w http.ResponseWriter, r *http.Request) {
	insightID := mux.Vars(r)["insightId"]

	var req RateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	export, err := h.insightSvc.Rate(r.Context(), insightID, req.Rating)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}
