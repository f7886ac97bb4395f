package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToOwner(sessionID string, msgType string, payload interface{})
	BroadcastToAdvisors(sessionID string, msgType string, payload interface{})
	DisconnectSession(sessionID string)
}
