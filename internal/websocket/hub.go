package websocket

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message types for real-time updates pushed to fridge subscribers.
const (
	MessageTypeItemUpdate    = "item_update"
	MessageTypeGroceryUpdate = "grocery_update"
	MessageTypeExpenseUpdate = "expense_update"
	MessageTypeMemberJoined  = "member_joined"
)

type Message struct {
	Type     string      `json:"type"`
	FridgeID string      `json:"fridge_id,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Time     int64       `json:"time"`
}

// Hub maintains the set of active clients and routes messages to the
// clients subscribed to each fridge.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Message

	mutex sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Message),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.Unregister:
			h.unregisterClient(client)

		case message := <-h.Broadcast:
			h.broadcastMessage(message)
		}
	}
}

// BroadcastToFridge queues a message for every client subscribed to the
// fridge.
func (h *Hub) BroadcastToFridge(fridgeID, messageType string, data interface{}) {
	h.Broadcast <- Message{
		Type:     messageType,
		FridgeID: fridgeID,
		Data:     data,
		Time:     time.Now().Unix(),
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	slog.Debug("websocket client registered", "client_id", client.ID, "user_id", client.UserID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for fridgeID := range client.fridges {
		h.removeFromRoom(fridgeID, client)
	}
	close(client.Send)
	slog.Debug("websocket client unregistered", "client_id", client.ID)
}

func (h *Hub) subscribe(client *Client, fridgeID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.rooms[fridgeID] == nil {
		h.rooms[fridgeID] = make(map[*Client]bool)
	}
	h.rooms[fridgeID][client] = true
	client.fridges[fridgeID] = true
}

func (h *Hub) unsubscribe(client *Client, fridgeID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.removeFromRoom(fridgeID, client)
	delete(client.fridges, fridgeID)
}

// removeFromRoom must be called with the mutex held.
func (h *Hub) removeFromRoom(fridgeID string, client *Client) {
	if room, ok := h.rooms[fridgeID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, fridgeID)
		}
	}
}

func (h *Hub) broadcastMessage(message Message) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.rooms[message.FridgeID] {
		select {
		case client.Send <- message:
		default:
			// Slow consumer: drop the message rather than block the hub.
			slog.Warn("dropping message for slow websocket client", "client_id", client.ID)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin access is governed by the API's CORS middleware; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and starts the client pumps.
func (h *Hub) ServeWS(c *gin.Context, userID string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		ID:      uuid.NewString(),
		UserID:  userID,
		Hub:     h,
		Conn:    conn,
		Send:    make(chan Message, 16),
		fridges: make(map[string]bool),
	}

	h.Register <- client

	go client.writePump()
	go client.readPump()
}
