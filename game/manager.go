package game

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beav1982/slights/storage"
)

const (
	// DefaultRestartDelay is the pause between a winner being picked and
	// the next round starting, so players can read the result.
	DefaultRestartDelay = 2 * time.Second

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 4
	codeRetries  = 16
)

type Options struct {
	Logger        zerolog.Logger
	PromptCards   []string
	ResponseCards []string
	Shuffler      Shuffler
	RestartDelay  time.Duration
}

// Manager owns the mapping from room code to live room state and is the
// only component that mutates it. Every operation on a room runs under
// that room's lock, so concurrent messages for the same room never
// interleave their load-mutate-save sequence.
type Manager struct {
	store        storage.Store
	log          zerolog.Logger
	prompts      []string
	responses    []string
	shuffler     Shuffler
	restartDelay time.Duration

	mu      sync.Mutex
	entries map[string]*roomEntry
}

// roomEntry pairs the per-room lock with the cached live state. The cache
// is populated lazily from the store and is not authoritative across
// processes.
type roomEntry struct {
	mu   sync.Mutex
	room *Room
}

func NewManager(store storage.Store, opts Options) *Manager {
	if opts.PromptCards == nil {
		opts.PromptCards = DefaultPromptCards
	}
	if opts.ResponseCards == nil {
		opts.ResponseCards = DefaultResponseCards
	}
	if opts.Shuffler == nil {
		opts.Shuffler = randShuffler{}
	}
	if opts.RestartDelay <= 0 {
		opts.RestartDelay = DefaultRestartDelay
	}
	return &Manager{
		store:        store,
		log:          opts.Logger,
		prompts:      opts.PromptCards,
		responses:    opts.ResponseCards,
		shuffler:     opts.Shuffler,
		restartDelay: opts.RestartDelay,
		entries:      make(map[string]*roomEntry),
	}
}

// CreateRoom allocates a fresh room code, verified unused against the
// store before committing, persists an empty room and returns the code.
func (m *Manager) CreateRoom(ctx context.Context) (string, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := newRoomCode()
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		_, live := m.entries[code]
		m.mu.Unlock()
		if live {
			continue
		}
		if _, ok, err := m.store.Get(ctx, roomKey(code)); err == nil && ok {
			continue
		}
		e := m.entry(code)
		e.mu.Lock()
		e.room = NewRoom(code, m.prompts, m.responses, m.shuffler)
		m.save(ctx, e.room)
		e.mu.Unlock()
		m.log.Info().Str("room", code).Msg("room created")
		return code, nil
	}
	return "", fmt.Errorf("could not allocate a unique room code after %d attempts", codeRetries)
}

// JoinRoom admits a new player and deals their opening hand. The new
// player id is the caller's admission identifier for the websocket.
func (m *Manager) JoinRoom(ctx context.Context, code, name string) (string, error) {
	e := m.entry(code)
	e.mu.Lock()
	defer e.mu.Unlock()

	room := m.load(ctx, e, code)
	if room == nil {
		return "", ErrRoomNotFound
	}
	playerID := uuid.NewString()
	room.players = append(room.players, &Player{ID: playerID, Name: name})
	room.hands[playerID] = room.responseDeck.Draw(HandSize)
	m.save(ctx, room)
	m.log.Info().Str("room", code).Str("player", playerID).Str("name", name).Msg("player joined")
	return playerID, nil
}

// ConnectPlayer attaches a channel to a known player, sends them their
// state snapshot and broadcasts the updated roster. Reports false if the
// room or player is unknown. Reconnecting replaces the old channel.
func (m *Manager) ConnectPlayer(ctx context.Context, code, playerID string, conn Conn) bool {
	e := m.entry(code)
	e.mu.Lock()
	defer e.mu.Unlock()

	room := m.load(ctx, e, code)
	if room == nil {
		return false
	}
	player := room.player(playerID)
	if player == nil {
		return false
	}
	room.conns.attach(playerID, conn)
	m.sendTo(room, playerID, initMsg{
		Kind:     "init",
		PlayerID: playerID,
		Players:  room.players,
		Hand:     room.hands[playerID],
		JudgeID:  room.judge().ID,
	})
	m.broadcast(room, playerListMsg{Kind: "player_list", Players: room.players})
	return true
}

// DisconnectPlayer detaches the channel only; the player, their hand and
// score all survive for reconnection.
func (m *Manager) DisconnectPlayer(ctx context.Context, code, playerID string) {
	e := m.entry(code)
	e.mu.Lock()
	defer e.mu.Unlock()

	room := m.load(ctx, e, code)
	if room == nil {
		return
	}
	room.conns.detach(playerID)
	m.save(ctx, room)
}

// HandleMessage dispatches one inbound frame for a room. Malformed frames
// are dropped with a log entry; unknown kinds are ignored.
func (m *Manager) HandleMessage(ctx context.Context, code, playerID string, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		m.log.Warn().Err(err).Str("room", code).Str("player", playerID).Msg("malformed message dropped")
		return
	}

	e := m.entry(code)
	e.mu.Lock()
	defer e.mu.Unlock()

	room := m.load(ctx, e, code)
	if room == nil {
		return
	}
	switch msg.Kind {
	case kindStart:
		m.startRound(ctx, room)
	case kindPlayCard:
		m.playCard(ctx, room, playerID, msg.Card)
	case kindPickWinner:
		m.pickWinner(ctx, room, playerID, msg.PlayerID)
	}
}

// startRound begins a new round: clears submissions, reveals the next
// prompt and deals out notifications. A room with no players is a no-op.
func (m *Manager) startRound(ctx context.Context, room *Room) {
	if len(room.players) == 0 {
		return
	}
	drawn := room.promptDeck.Draw(1)
	if len(drawn) == 0 {
		return
	}
	room.submissions = make(map[string]string)
	room.submissionOrder = nil
	room.currentPrompt = drawn[0]
	room.phase = PhaseRoundActive
	room.round++

	judge := room.judge()
	m.broadcast(room, roundStartMsg{Kind: "round_start", Prompt: room.currentPrompt, JudgeID: judge.ID})
	for _, p := range room.players {
		if p.ID != judge.ID {
			m.sendTo(room, p.ID, handMsg{Kind: "hand", Hand: room.hands[p.ID]})
		}
	}
	m.save(ctx, room)
}

func (m *Manager) playCard(ctx context.Context, room *Room, playerID, card string) {
	if room.phase != PhaseRoundActive {
		return
	}
	judge := room.judge()
	if playerID == judge.ID {
		return
	}
	if _, played := room.submissions[playerID]; played {
		return
	}
	hand := room.hands[playerID]
	idx := -1
	for i, c := range hand {
		if c == card {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	room.submissions[playerID] = card
	room.submissionOrder = append(room.submissionOrder, playerID)
	hand = append(hand[:idx], hand[idx+1:]...)
	room.hands[playerID] = append(hand, room.responseDeck.Draw(1)...)

	if len(room.submissions) == room.nonJudgeCount() {
		room.phase = PhaseJudging
		m.sendTo(room, judge.ID, chooseWinnerMsg{Kind: "choose_winner", Submissions: room.submissionList()})
	}
	m.save(ctx, room)
}

// pickWinner settles the round: scores the winner, announces the result,
// rotates the judge and schedules the next round after the restart delay.
// A winner id with no submission is surfaced back to the sender as an
// error frame.
func (m *Manager) pickWinner(ctx context.Context, room *Room, from, winnerID string) {
	if room.phase != PhaseJudging {
		return
	}
	card, ok := room.submissions[winnerID]
	if !ok {
		m.log.Warn().Str("room", room.code).Str("winner", winnerID).Msg("pick for player without submission")
		m.sendTo(room, from, errorMsg{Kind: "error", Error: ErrInvalidWinner.Error()})
		return
	}
	winner := room.player(winnerID)
	winner.Score++
	m.broadcast(room, roundEndMsg{Kind: "round_end", WinnerID: winnerID, Card: card, Scores: room.players})
	room.judgeIndex = (room.judgeIndex + 1) % len(room.players)
	room.phase = PhaseSettled
	m.save(ctx, room)

	code, round := room.code, room.round
	time.AfterFunc(m.restartDelay, func() {
		m.restartRound(code, round)
	})
}

// restartRound is the deferred follow-up to pickWinner. It re-resolves
// the room and no-ops unless it is still settled on the same round with
// at least one player connected, so a stale timer can never resurrect or
// double-advance a room.
func (m *Manager) restartRound(code string, round int) {
	ctx := context.Background()
	e := m.entry(code)
	e.mu.Lock()
	defer e.mu.Unlock()

	room := m.load(ctx, e, code)
	if room == nil || len(room.players) == 0 {
		return
	}
	if room.phase != PhaseSettled || room.round != round {
		return
	}
	if room.conns.size() == 0 {
		return
	}
	m.startRound(ctx, room)
}

func (m *Manager) entry(code string) *roomEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[code]
	if !ok {
		e = &roomEntry{}
		m.entries[code] = e
	}
	return e
}

// load returns the cached room, falling back to the store. Callers must
// hold the entry lock. Store errors are logged and read as absent; the
// store stays the source of truth across processes.
func (m *Manager) load(ctx context.Context, e *roomEntry, code string) *Room {
	if e.room != nil {
		return e.room
	}
	data, ok, err := m.store.Get(ctx, roomKey(code))
	if err != nil {
		m.log.Error().Err(err).Str("room", code).Msg("room load failed")
		return nil
	}
	if !ok {
		return nil
	}
	room, err := restoreRoom(data, m.prompts, m.responses, m.shuffler)
	if err != nil {
		m.log.Error().Err(err).Str("room", code).Msg("room decode failed")
		return nil
	}
	e.room = room
	return room
}

// save persists the room best-effort: a write failure is logged but never
// rolls back the in-memory transition that produced it.
func (m *Manager) save(ctx context.Context, room *Room) {
	data, err := room.snapshot()
	if err != nil {
		m.log.Error().Err(err).Str("room", room.code).Msg("room encode failed")
		return
	}
	if err := m.store.Set(ctx, roomKey(room.code), data); err != nil {
		m.log.Error().Err(err).Str("room", room.code).Msg("room save failed")
	}
}

func (m *Manager) broadcast(room *Room, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Error().Err(err).Str("room", room.code).Msg("broadcast encode failed")
		return
	}
	room.conns.each(func(playerID string, c Conn) {
		if err := c.WriteMessage(data); err != nil {
			m.log.Debug().Err(err).Str("room", room.code).Str("player", playerID).Msg("broadcast write failed")
		}
	})
}

func (m *Manager) sendTo(room *Room, playerID string, v any) {
	conn, ok := room.conns.get(playerID)
	if !ok {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Error().Err(err).Str("room", room.code).Msg("send encode failed")
		return
	}
	if err := conn.WriteMessage(data); err != nil {
		m.log.Debug().Err(err).Str("room", room.code).Str("player", playerID).Msg("send write failed")
	}
}

func roomKey(code string) string { return "room:" + code }

func newRoomCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate room code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
