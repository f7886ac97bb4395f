package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"wigu/internal/service"
)

// SynthesisHandler handles synthesis and five-insights endpoints
type SynthesisHandler struct {
	synthesisSvc *service.SynthesisService
}

// NewSynthesisHandler creates a new synthesis handler
func NewSynthesisHandler(synthesisSvc *service.SynthesisService) *SynthesisHandler {
	return &SynthesisHandler{synthesisSvc: synthesisSvc}
}

// Generate handles POST /v1/sessions/{sessionId}/synthesis
func (h *SynthesisHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	export, err := h.synthesisSvc.Generate(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, export)
}

// Get handles GET /v1/sessions/{sessionId}/synthesis/{synthesisId}
func (h *SynthesisHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	export, err := h.synthesisSvc.Get(r.Context(), vars["sessionId"], vars["synthesisId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}

// Latest handles GET /v1/sessions/{sessionId}/synthesis
func (h *SynthesisHandler) Latest(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	export, err := h.synthesisSvc.Latest(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}

// GenerateFiveInsights handles POST /v1/sessions/{sessionId}/five-insights
func (h *SynthesisHandler) GenerateFiveInsights(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	export, err := h.synthesisSvc.GenerateFiveInsights(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, export)
}

// GetFiveInsights handles GET /v1/sessions/{sessionId}/five-insights
func (h *SynthesisHandler) GetFiveInsights(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	export, err := h.synthesisSvc.FiveInsights(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}
