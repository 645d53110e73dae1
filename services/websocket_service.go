package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

type WebSocketServiceInterface interface {
	Start()
	Stop()
	HandleConnection(w http.ResponseWriter, r *http.Request, userID uuid.UUID)
	BroadcastMessage(message []byte)
}

// Client is one connected websocket, pinned to the user that authenticated
// it.
type Client struct {
	ID     string
	UserID uuid.UUID
	Hub    *WebSocketService
	Conn   *websocket.Conn
	Send   chan []byte
}

// WebSocketService fans broker events out to connected clients. Each event
// is delivered only to connections owned by the user it belongs to.
type WebSocketService struct {
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	broadcast    chan []byte
	events       chan models.StandardMessage
	clientsMutex sync.RWMutex

	upgrader     websocket.Upgrader
	conn         *nats.Conn
	subscription *nats.Subscription

	isRunning bool
	stopChan  chan struct{}
}

func NewWebSocketService(conn *nats.Conn) *WebSocketService {
	return &WebSocketService{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		events:     make(chan models.StandardMessage, 256),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conn:     conn,
		stopChan: make(chan struct{}),
	}
}

// Start launches the hub loop and subscribes to every broker subject. With
// no NATS connection the hub still runs; clients connect but receive no
// events.
func (ws *WebSocketService) Start() {
	ws.clientsMutex.Lock()
	if ws.isRunning {
		ws.clientsMutex.Unlock()
		return
	}
	ws.isRunning = true
	ws.clientsMutex.Unlock()

	go ws.run()

	if ws.conn == nil {
		log.Println("WebSocket service running without broker connection, events will not be forwarded")
		return
	}

	sub, err := ws.conn.Subscribe(">", func(msg *nats.Msg) {
		var event models.StandardMessage
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Error parsing broker message on %s: %v", msg.Subject, err)
			return
		}
		select {
		case ws.events <- event:
		default:
			log.Println("Warning: event channel is full, discarding message")
		}
	})
	if err != nil {
		log.Printf("Failed to subscribe to broker events: %v", err)
		return
	}
	ws.subscription = sub
}

func (ws *WebSocketService) Stop() {
	ws.clientsMutex.Lock()
	if !ws.isRunning {
		ws.clientsMutex.Unlock()
		return
	}
	ws.isRunning = false
	ws.clientsMutex.Unlock()

	if ws.subscription != nil {
		ws.subscription.Unsubscribe()
	}
	close(ws.stopChan)

	ws.clientsMutex.Lock()
	for _, client := range ws.clients {
		if client != nil && client.Conn != nil {
			client.Conn.Close()
		}
	}
	ws.clientsMutex.Unlock()

	log.Println("WebSocket service stopped")
}

// BroadcastMessage sends a raw message to every connected client.
func (ws *WebSocketService) BroadcastMessage(message []byte) {
	ws.broadcast <- message
}

func (ws *WebSocketService) run() {
	for {
		select {
		case <-ws.stopChan:
			return

		case client := <-ws.register:
			ws.clientsMutex.Lock()
			ws.clients[client.ID] = client
			ws.clientsMutex.Unlock()
			log.Printf("Client connected: %s (user: %s)", client.ID, client.UserID)

		case client := <-ws.unregister:
			ws.clientsMutex.Lock()
			if _, ok := ws.clients[client.ID]; ok {
				delete(ws.clients, client.ID)
				close(client.Send)
				log.Printf("Client disconnected: %s", client.ID)
			}
			ws.clientsMutex.Unlock()

		case message := <-ws.broadcast:
			ws.clientsMutex.Lock()
			for id, client := range ws.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(ws.clients, id)
				}
			}
			ws.clientsMutex.Unlock()

		case event := <-ws.events:
			ws.routeEvent(event)
		}
	}
}

// routeEvent delivers an event to the connections of the user it belongs to.
func (ws *WebSocketService) routeEvent(event models.StandardMessage) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing event %s: %v", event.Event, err)
		return
	}

	ws.clientsMutex.Lock()
	defer ws.clientsMutex.Unlock()
	for id, client := range ws.clients {
		if client.UserID.String() != event.UserID {
			continue
		}
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(ws.clients, id)
		}
	}
}

// HandleConnection upgrades an already-authenticated request to a websocket
// and registers the client with the hub.
func (ws *WebSocketService) HandleConnection(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	client := &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Hub:    ws,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	select {
	case ws.register <- client:
	case <-ws.stopChan:
		conn.Close()
		return
	}

	go client.readPump()
	go client.writePump()
}

// disconnect hands the client back to the hub, unless the hub has already
// shut down and nobody is draining the channel.
func (c *Client) disconnect() {
	select {
	case c.Hub.unregister <- c:
	case <-c.Hub.stopChan:
	}
}

// readPump drains inbound frames so pings are answered and closes are seen.
// Clients are read-only consumers; inbound payloads are discarded.
func (c *Client) readPump() {
	defer func() {
		c.disconnect()
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
