package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"silva_storefront/internal/cart"
	"silva_storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

type cartMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	*cart.Snapshot
}

// CartWebSocket gère la synchronisation temps réel du panier (GET /buyer/cart/ws).
// Chaque modification du panier de la session est poussée au client.
func (h *Handler) CartWebSocket(c *gin.Context) {
	s := middleware.CurrentSession(c)

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("❌ Erreur upgrade WebSocket", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.Subscribe()
	defer unsubscribe()

	// lecture : seule la fermeture côté client nous intéresse
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	snap := s.CartSnapshot()
	if err := h.writeWS(conn, cartMessage{Type: "connected", Message: "Synchronisation panier activée", Snapshot: &snap}); err != nil {
		return
	}

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = h.writeWS(conn, cartMessage{Type: "session_closed", Message: "Session terminée"})
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "logout"),
					time.Now().Add(wsWriteTimeout))
				return
			}
			if err := h.writeWS(conn, cartMessage{Type: "cart_updated", Snapshot: &snap}); err != nil {
				h.log.Warn("❌ Erreur envoi WebSocket", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *Handler) writeWS(conn *websocket.Conn, msg cartMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(msg)
}

// checkOrigin accepte la même origine et les origines CORS configurées
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.origins {
		if allowed == "*" || strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
