package game

// Conn is one player's live outbound channel. Writes are fire-and-forget
// from the room's point of view; a dead channel never fails a transition.
type Conn interface {
	WriteMessage(data []byte) error
	Close()
}

// registry maps player ids to their attached channels inside one room.
// It is never serialized; channels are re-attached per process.
type registry struct {
	conns map[string]Conn
}

func newRegistry() *registry {
	return &registry{conns: make(map[string]Conn)}
}

// attach replaces any previous channel for the player, so reconnecting
// with the same id is idempotent.
func (r *registry) attach(playerID string, conn Conn) {
	r.conns[playerID] = conn
}

func (r *registry) detach(playerID string) {
	delete(r.conns, playerID)
}

func (r *registry) get(playerID string) (Conn, bool) {
	c, ok := r.conns[playerID]
	return c, ok
}

func (r *registry) size() int { return len(r.conns) }

func (r *registry) each(f func(playerID string, c Conn)) {
	for id, c := range r.conns {
		f(id, c)
	}
}
