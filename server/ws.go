package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// wsConn adapts a gorilla connection to the game's channel interface.
// Room broadcasts and the read pump's close path can write concurrently,
// so writes are serialized with a mutex.
type wsConn struct {
	mu     sync.Mutex
	socket *websocket.Conn
}

func newWSConn(socket *websocket.Conn) *wsConn {
	return &wsConn{socket: socket}
}

func (c *wsConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.socket.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() {
	c.socket.Close()
}
