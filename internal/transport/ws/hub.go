package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"kisanmitra/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgNewAlert MessageType = "new_alert"
	MsgError    MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AlertEvent is the payload pushed when a new alert is raised
type AlertEvent struct {
	Alert  *model.Alert `json:"alert"`
	Farmer FarmerBrief  `json:"farmer"`
}

// FarmerBrief is the slice of the farmer record dashboards need
type FarmerBrief struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	District string             `json:"district"`
	Status   model.FarmerStatus `json:"status"`
}

// Hub fans alert events out to connected dashboards. Counselors receive the
// alerts routed to them; admins receive everything.
type Hub struct {
	conns map[string]map[*Connection]bool // adminID -> connections

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *AlertEvent

	logger *zap.Logger
}

// Connection represents a connected dashboard session
type Connection struct {
	AdminID string
	Role    model.AdminRole
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *AlertEvent, 256),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.AdminID] == nil {
				h.conns[conn.AdminID] = make(map[*Connection]bool)
			}
			h.conns[conn.AdminID][conn] = true
			h.mu.Unlock()
			h.logger.Info("dashboard connected",
				zap.String("admin_id", conn.AdminID),
				zap.String("role", string(conn.Role)),
			)

		case conn := <-h.unregister:
			h.mu.Lock()
			if sessions, ok := h.conns[conn.AdminID]; ok && sessions[conn] {
				delete(sessions, conn)
				if len(sessions) == 0 {
					delete(h.conns, conn.AdminID)
				}
				close(conn.Send)
			}
			h.mu.Unlock()
			h.logger.Info("dashboard disconnected", zap.String("admin_id", conn.AdminID))

		case event := <-h.broadcast:
			data, err := json.Marshal(&Message{Type: MsgNewAlert, Payload: mustMarshal(event)})
			if err != nil {
				continue
			}

			h.mu.RLock()
			for _, sessions := range h.conns {
				for conn := range sessions {
					if !h.shouldReceive(conn, event.Alert) {
						continue
					}
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) shouldReceive(conn *Connection, alert *model.Alert) bool {
	if conn.Role == model.RoleAdmin {
		return true
	}
	return alert.AssignedToID != "" && alert.AssignedToID == conn.AdminID
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastAlert pushes a new alert to eligible dashboards (implements
// service.Broadcaster).
func (h *Hub) BroadcastAlert(alert *model.Alert, farmer *model.Farmer) {
	event := &AlertEvent{
		Alert: alert,
		Farmer: FarmerBrief{
			ID:       farmer.ID,
			Name:     farmer.Name,
			District: farmer.District,
			Status:   farmer.Status,
		},
	}
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("alert broadcast dropped", zap.String("alert_id", alert.ID))
	}
}

func mustMarshal(v interface{}) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
