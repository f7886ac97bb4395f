package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wigu/internal/model"
	"wigu/internal/service"
	"wigu/internal/transport/rest/middleware"
)

// SessionHandler handles session lifecycle endpoints
type SessionHandler struct {
	sessionSvc  *service.SessionService
	progressSvc *service.ProgressService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService, progressSvc *service.ProgressService) *SessionHandler {
	return &SessionHandler{
		sessionSvc:  sessionSvc,
		progressSvc: progressSvc,
	}
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Title string `json:"title"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Create(r.Context(), ownerID, req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessions, err := h.sessionSvc.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	ownerID := middleware.GetOwnerID(r.Context())

	session, err := h.sessionSvc.Get(r.Context(), ownerID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Complete handles POST /v1/sessions/{sessionId}/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	ownerID := middleware.GetOwnerID(r.Context())

	session, err := h.sessionSvc.Complete(r.Context(), ownerID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Archive handles POST /v1/sessions/{sessionId}/archive
func (h *SessionHandler) Archive(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	ownerID := middleware.GetOwnerID(r.Context())

	session, err := h.sessionSvc.Archive(r.Context(), ownerID, sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// GetProgress handles GET /v1/sessions/{sessionId}/progress
func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	progress, err := h.progressSvc.Get(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress.Export())
}

// SetPhaseRequest is the request body for setting the exploration phase
type SetPhaseRequest struct {
	Phase string `json:"phase" validate:"required"`
}

// SetPhase handles PUT /v1/sessions/{sessionId}/phase
func (h *SessionHandler) SetPhase(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := h.progressSvc.SetPhase(r.Context(), sessionID, model.ExplorationPhase(req.Phase))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progress.Export())
}
