package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"pantrychef/internal/models"
	"pantrychef/internal/optimizer"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains one client's optimization stream
type WSConnection struct {
	conn      *websocket.Conn
	send      chan []byte
	mu        sync.Mutex
	optimizer *optimizer.Optimizer
}

// wsResult is one scored batch pushed to the client
type wsResult struct {
	Count   int                      `json:"count"`
	Results []optimizer.ScoredRecipe `json:"results"`
}

// handleWebSocket upgrades the connection and serves optimization requests
// over it: the client sends criteria as JSON, the server pushes back the
// scored results as they complete.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &WSConnection{
		conn:      conn,
		send:      make(chan []byte, 256),
		optimizer: s.optimizer,
	}

	// Start the read and write pumps
	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump pumps messages from the WebSocket connection to the handler
func (c *WSConnection) readPump() {
	defer func() {
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024) // 64KB
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		// Handle the message
		c.handleMessage(message)
	}
}

// writePump pumps messages from the server to the WebSocket connection
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one incoming criteria message
func (c *WSConnection) handleMessage(message []byte) {
	var criteria models.OptimizationCriteria
	if err := json.Unmarshal(message, &criteria); err != nil {
		c.sendError("Invalid criteria: " + err.Error())
		return
	}

	// Score in background so the read pump keeps draining
	go func() {
		results, err := c.optimizer.ScoreAll(context.Background(), &criteria)
		if err != nil {
			c.sendError("Optimization failed: " + err.Error())
			return
		}
		c.sendResults(wsResult{Count: len(results), Results: results})
	}()
}

// sendResults sends scored results to the client
func (c *WSConnection) sendResults(results interface{}) {
	data, err := json.Marshal(results)
	if err != nil {
		log.Printf("Error marshaling results: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping message")
	}
}

// sendError sends an error message to the client
func (c *WSConnection) sendError(message string) {
	response := map[string]string{"error": message}
	data, _ := json.Marshal(response)

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		log.Println("WebSocket buffer full, dropping error message")
	}
}
