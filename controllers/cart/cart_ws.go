package cartControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/harborlane/storefront-api/middleware"
	"github.com/harborlane/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[string]map[*websocket.Conn]bool) // session id -> conns
)

// CartLiveHandler upgrades the connection and keeps it registered for cart
// summary pushes until the client goes away.
// GET /shop/cart/live
func CartLiveHandler(c *gin.Context) {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	if wsClients[s.ID] == nil {
		wsClients[s.ID] = make(map[*websocket.Conn]bool)
	}
	wsClients[s.ID][conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients[s.ID], conn)
			if len(wsClients[s.ID]) == 0 {
				delete(wsClients, s.ID)
			}
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastCartSummary pushes the item count and subtotal to every live
// socket of the session. Other sessions never see it.
func BroadcastCartSummary(sessionID string, view models.CartView) {
	summary := models.CartSummary{ItemCount: view.ItemCount, Subtotal: view.Subtotal}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients[sessionID] {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}
