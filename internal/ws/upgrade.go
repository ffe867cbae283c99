package ws

import (
	"context"
	"net/http"

	"shopline/internal/auth"
	"shopline/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RoleLookup mirrors the middleware seam; browsers cannot set an
// Authorization header on a websocket handshake, so the token rides in the
// query string and the role check happens here.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// OrderFeed upgrades an admin connection and streams order events from the hub.
func OrderFeed(v auth.Verifier, roles RoleLookup, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}
		email, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		role, err := roles.RoleByEmail(c.Request.Context(), email)
		if err != nil || role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		client := &Client{Send: make(chan []byte, 64)}
		hub.Register(client)
		defer client.Close()

		// Reader exists only to observe the peer closing.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					client.Close()
					return
				}
			}
		}()

		for msg := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}
