package tracking

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	maxFrameSize = 4096
	writeWait    = time.Second
)

// Handler accepts tracker connections and pushes every binary msgpack Frame
// into Latest.
type Handler struct {
	latest   *Latest
	upgrader websocket.Upgrader
}

func NewHandler(latest *Latest) *Handler {
	return &Handler{
		latest: latest,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxFrameSize,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if nil != err {
		log.Println("tracking: unable to upgrade connection", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	log.Println("tracking: tracker connected from", r.RemoteAddr)
	for {
		kind, data, err := conn.ReadMessage()
		if nil != err {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("tracking: connection lost", err)
			}
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		var f Frame
		if err := msgpack.Unmarshal(data, &f); nil != err {
			log.Println("tracking: dropping malformed frame", err)
			continue
		}
		h.latest.Set(f.Hands)
	}
}

// Client streams frames to a Handler, standing in for a tracking device.
type Client struct {
	conn *websocket.Conn
}

func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if nil != err {
		return nil, fmt.Errorf("unable to dial tracker endpoint: %w", err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) Send(f Frame) error {
	data, err := msgpack.Marshal(&f)
	if nil != err {
		return err
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); nil != err {
		return err
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); nil != err {
		log.Println("tracking: unable to send close message", err)
	}
	return c.conn.Close()
}
