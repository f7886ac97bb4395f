package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Owner message types
const (
	MsgProgressUpdate    MessageType = "progress_update"
	MsgInsightCreated    MessageType = "insight_created"
	MsgAdvisorResponse   MessageType = "advisor_response_received"
	MsgSynthesisReady    MessageType = "synthesis_ready"
	MsgFiveInsightsReady MessageType = "five_insights_ready"
	MsgSessionCompleted  MessageType = "session_completed"
)

// Advisor message types
const (
	MsgAdvisorWelcome MessageType = "advisor_welcome"
	MsgError          MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for reflection sessions
type Hub struct {
	// Session -> connections
	ownerConns   map[string]*Connection
	advisorConns map[string]map[string]*Connection // sessionID -> invitationID -> conn

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	disconnect chan string
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID    string
	InvitationID string // Empty for owner connections
	IsOwner      bool
	Send         chan []byte
	Hub          *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SessionID string
	ToOwner   bool
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		ownerConns:   make(map[string]*Connection),
		advisorConns: make(map[string]map[string]*Connection),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		broadcast:    make(chan *BroadcastMessage, 256),
		disconnect:   make(chan string),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsOwner {
				h.ownerConns[conn.SessionID] = conn
				log.Printf("Owner connected to session %s", conn.SessionID)
			} else {
				if h.advisorConns[conn.SessionID] == nil {
					h.advisorConns[conn.SessionID] = make(map[string]*Connection)
				}
				h.advisorConns[conn.SessionID][conn.InvitationID] = conn
				log.Printf("Advisor %s connected to session %s", conn.InvitationID, conn.SessionID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsOwner {
				if existing, ok := h.ownerConns[conn.SessionID]; ok && existing == conn {
					delete(h.ownerConns, conn.SessionID)
					close(conn.Send)
					log.Printf("Owner disconnected from session %s", conn.SessionID)
				}
			} else {
				if advisors, ok := h.advisorConns[conn.SessionID]; ok {
					if existing, ok := advisors[conn.InvitationID]; ok && existing == conn {
						delete(advisors, conn.InvitationID)
						close(conn.Send)
						log.Printf("Advisor %s disconnected from session %s", conn.InvitationID, conn.SessionID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToOwner {
				if conn, ok := h.ownerConns[msg.SessionID]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				if advisors, ok := h.advisorConns[msg.SessionID]; ok {
					for _, conn := range advisors {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()

		case sessionID := <-h.disconnect:
			h.mu.Lock()
			if conn, ok := h.ownerConns[sessionID]; ok {
				delete(h.ownerConns, sessionID)
				close(conn.Send)
			}
			if advisors, ok := h.advisorConns[sessionID]; ok {
				for _, conn := range advisors {
					close(conn.Send)
				}
				delete(h.advisorConns, sessionID)
			}
			log.Printf("Disconnected all clients from session %s", sessionID)
			h.mu.Unlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToOwner sends a message to the session owner (implements service.Broadcaster)
func (h *Hub) BroadcastToOwner(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		ToOwner:   true,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToAdvisors sends a message to every connected advisor of a session (implements service.Broadcaster)
func (h *Hub) BroadcastToAdvisors(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectSession closes every connection for a session (implements service.Broadcaster)
func (h *Hub) DisconnectSession(sessionID string) {
	h.disconnect <- sessionID
}
