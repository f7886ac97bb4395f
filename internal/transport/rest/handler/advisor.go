package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wigu/internal/model"
	"wigu/internal/service"
	"wigu/internal/transport/rest/middleware"
)

// AdvisorHandler handles advisor invitation and response endpoints
type AdvisorHandler struct {
	advisorSvc *service.AdvisorService
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(advisorSvc *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorSvc: advisorSvc}
}

// Invite handles POST /v1/sessions/{sessionId}/advisors
func (h *AdvisorHandler) Invite(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req model.InviteAdvisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.advisorSvc.Invite(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// ListInvitations handles GET /v1/sessions/{sessionId}/advisors
func (h *AdvisorHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	invitations, err := h.advisorSvc.ListInvitations(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"invitations": invitations})
}

// Submit handles POST /v1/advisor/responses (advisor token)
func (h *AdvisorHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	invitationID := middleware.GetInvitationID(r.Context())
	if sessionID == "" || invitationID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.SubmitAdvisorResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	export, err := h.advisorSvc.Submit(r.Context(), sessionID, invitationID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, export)
}

// GetResponse handles GET /v1/advisor-responses/{responseId}
func (h *AdvisorHandler) GetResponse(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["responseId"]

	export, err := h.advisorSvc.GetResponse(r.Context(), responseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, export)
}

// ListOwnResponses handles GET /v1/advisor/responses (advisor token)
func (h *AdvisorHandler) ListOwnResponses(w http.ResponseWriter, r *http.Request) {
	invitationID := middleware.GetInvitationID(r.Context())
	if invitationID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	exports, err := h.advisorSvc.ListOwnResponses(r.Context(), invitationID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": exports})
}

// ListResponses handles GET /v1/sessions/{sessionId}/advisor-responses
func (h *AdvisorHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	exports, err := h.advisorSvc.ListResponses(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": exports})
}
