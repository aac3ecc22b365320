package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusFeed pushes order-status changes to connected admin dashboards.
type StatusFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewStatusFeed() *StatusFeed {
	return &StatusFeed{clients: make(map[*websocket.Conn]bool)}
}

// GET /admin/orders/ws
func (f *StatusFeed) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

func (f *StatusFeed) Broadcast(order *models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
