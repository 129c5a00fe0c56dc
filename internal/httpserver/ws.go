package httpserver

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/crossclues/internal/game"
	"github.com/robalobadob/crossclues/internal/room"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMessage = 4 << 10
)

// wsMessage is every frame the server sends.
type wsMessage struct {
	Type  string     `json:"type"` // "view" | "error"
	View  *game.View `json:"view,omitempty"`
	Error string     `json:"error,omitempty"`
}

// wsClient is one WebSocket connection to a room. Seated clients may send
// actions as text frames; spectators only receive views.
type wsClient struct {
	conn *websocket.Conn
	room *room.Room
	seat *game.PlayerID
	sub  *room.Subscription
	out  chan wsMessage // replies from the read loop
	done chan struct{}
}

// checkOrigin allows non-browser clients (no Origin), the configured client
// origin, and same-host pages.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == s.origin {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && u.Host == r.Host
}

// handleWS upgrades GET /rooms/{id}/ws[?token=...] and streams views.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	rm, ok := s.loadRoom(w, r)
	if !ok {
		return
	}
	seat, err := s.seatFor(r, rm)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("room", rm.ID).Msg("websocket upgrade")
		return
	}

	c := &wsClient{
		conn: conn,
		room: rm,
		seat: seat,
		sub:  rm.Subscribe(seat),
		out:  make(chan wsMessage, 8),
		done: make(chan struct{}),
	}
	log.Debug().Str("room", rm.ID).Bool("seated", seat != nil).Msg("websocket connected")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.writePump()
	}()
	c.readPump()

	close(c.done)
	rm.Unsubscribe(c.sub)
	wg.Wait()
	_ = conn.Close()
	log.Debug().Str("room", rm.ID).Msg("websocket closed")
}

// readPump decodes and applies actions until the connection fails.
func (c *wsClient) readPump() {
	c.conn.SetReadLimit(maxMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("room", c.room.ID).Msg("websocket read")
			}
			return
		}
		if c.seat == nil {
			c.reply(wsMessage{Type: "error", Error: "spectators cannot act"})
			continue
		}
		a, err := game.DecodeAction(data)
		if err != nil {
			c.reply(wsMessage{Type: "error", Error: err.Error()})
			continue
		}
		// Success needs no reply: the subscription delivers the new view.
		if err := c.room.Do(*c.seat, a); err != nil {
			c.reply(wsMessage{Type: "error", Error: err.Error()})
		}
	}
}

// reply queues a message for the writer, dropping it if the writer is behind.
func (c *wsClient) reply(m wsMessage) {
	select {
	case c.out <- m:
	default:
	}
}

// writePump is the only goroutine writing to the connection.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case v, ok := <-c.sub.C:
			if !ok {
				return
			}
			if !c.write(wsMessage{Type: "view", View: &v}) {
				return
			}
		case m := <-c.out:
			if !c.write(m) {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// write sends one JSON frame; on failure the connection is closed so the
// read loop ends too.
func (c *wsClient) write(m wsMessage) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(m); err != nil {
		_ = c.conn.Close()
		return false
	}
	return true
}
