// internal/websocket/handlers.go
// WebSocket connection handlers

package websocket

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, implement proper origin checking
		return true
	},
}

// HandleConnection handles new WebSocket connections
func HandleConnection(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get organizer ID from context (set by auth middleware)
		organizerID, _ := c.Get("organizer_id")
		userIDStr := ""
		if organizerID != nil {
			userIDStr = organizerID.(string)
		}

		// Upgrade HTTP connection to WebSocket
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("Failed to upgrade connection: %v", err)
			return
		}

		// Create new client
		client := &Client{
			hub:         hub,
			conn:        conn,
			send:        make(chan []byte, 256),
			userID:      userIDStr,
			tournaments: make([]string, 0),
		}

		// Register client with hub
		hub.register <- client

		// Send welcome message
		welcomeMsg := Message{
			Type: "welcome",
			Data: map[string]interface{}{
				"message": "connected to golf-sim WebSocket",
				"user_id": userIDStr,
			},
		}

		if data, err := json.Marshal(welcomeMsg); err == nil {
			client.send <- data
		}

		// Start client pumps in goroutines
		go client.writePump()
		go client.readPump()
	}
}

// Message types for WebSocket communication (spec.md §4.11/§4.10)
const (
	// Tournament lifecycle
	MessageTournamentCreated = "tournament_created"

	// Per-tick updates
	MessageTick              = "tick"
	MessageHoleResultRecorded = "hole_result_recorded"
	MessageLeaderboardUpdated = "leaderboard_updated"

	// Round/tournament state machine
	MessageCutApplied     = "cut_applied"
	MessageRoundRollover  = "round_rollover"
	MessagePlayoff        = "playoff"
	MessagePairingsShuffled = "pairings_shuffled"

	// Notifications
	MessageNotification = "notification"
	MessageAlert        = "alert"
)
