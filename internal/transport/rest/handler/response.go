package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wigu/internal/model"
	"wigu/internal/service"
)

// ResponseHandler handles self-response endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// Submit handles POST /v1/sessions/{sessionId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req service.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	export, err := h.responseSvc.Submit(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, export)
}

// List handles GET /v1/sessions/{sessionId}/responses?domain=technical
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	domain := model.CareerDomain(r.URL.Query().Get("domain"))

	exports, err := h.responseSvc.List(r.Context(), sessionID, domain)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": exports})
}

// Get handles GET /v1/responses/{responseId}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	export, err := h.responseSvc.Get(r.Context(), responseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}

// Themes handles GET /v1/sessions/{sessionId}/themes
func (h *ResponseHandler) Themes(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	counts, err := h.responseSvc.ThemeCounts(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"themes": counts})
}
