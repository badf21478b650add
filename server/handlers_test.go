package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beav1982/slights/game"
	"github.com/beav1982/slights/storage"
)

type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	manager := game.NewManager(storage.NewMemoryStore(), game.Options{
		Logger:       zerolog.Nop(),
		Shuffler:     noopShuffler{},
		RestartDelay: time.Hour,
	})
	r := gin.New()
	NewHandler(manager, zerolog.Nop()).Register(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createRoom(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := postJSON(t, r, "/api/create", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		RoomCode string `json:"roomCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.RoomCode, 4)
	return resp.RoomCode
}

func joinRoom(t *testing.T, r *gin.Engine, code, name string) string {
	t.Helper()
	w := postJSON(t, r, "/api/join", gin.H{"roomCode": code, "name": name})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		PlayerID string `json:"playerId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.PlayerID)
	return resp.PlayerID
}

func TestHealth(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateAndJoin(t *testing.T) {
	r := testRouter(t)

	code := createRoom(t, r)
	playerID := joinRoom(t, r, code, "Alice")
	assert.NotEmpty(t, playerID)
}

func TestJoinUnknownRoom(t *testing.T) {
	r := testRouter(t)

	w := postJSON(t, r, "/api/join", gin.H{"roomCode": "NOPE", "name": "Alice"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "room not found")
}

func TestJoinMissingName(t *testing.T) {
	r := testRouter(t)
	code := createRoom(t, r)

	w := postJSON(t, r, "/api/join", gin.H{"roomCode": code})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServeWSRejectsUnknownPlayer(t *testing.T) {
	r := testRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?room=NOPE&player=ghost", nil)
	require.NoError(t, err)
	defer conn.Close()

	// The server accepts the upgrade, then closes with a policy violation.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation))
}

func dialPlayer(t *testing.T, srvURL, code, playerID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srvURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws?room="+code+"&player="+playerID, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntilKind drains frames until one of the wanted kind arrives.
func readUntilKind(t *testing.T, conn *websocket.Conn, kind string) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %q frame", kind)
		var frame map[string]any
		require.NoError(t, json.Unmarshal(data, &frame))
		if frame["kind"] == kind {
			return frame
		}
	}
}

func TestWebsocketRoundFlow(t *testing.T) {
	r := testRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	code := createRoom(t, r)
	aliceID := joinRoom(t, r, code, "Alice")
	bobID := joinRoom(t, r, code, "Bob")

	alice := dialPlayer(t, srv.URL, code, aliceID)
	bob := dialPlayer(t, srv.URL, code, bobID)

	init := readUntilKind(t, alice, "init")
	assert.Equal(t, aliceID, init["judgeId"])
	readUntilKind(t, bob, "init")

	require.NoError(t, alice.WriteJSON(gin.H{"kind": "start"}))

	roundStart := readUntilKind(t, bob, "round_start")
	assert.Equal(t, aliceID, roundStart["judgeId"])

	handFrame := readUntilKind(t, bob, "hand")
	hand := handFrame["hand"].([]any)
	require.Len(t, hand, game.HandSize)
	card := hand[0].(string)

	require.NoError(t, bob.WriteJSON(gin.H{"kind": "play_card", "card": card}))

	choose := readUntilKind(t, alice, "choose_winner")
	subs := choose["submissions"].([]any)
	require.Len(t, subs, 1)
	assert.Equal(t, card, subs[0].(map[string]any)["card"])

	require.NoError(t, alice.WriteJSON(gin.H{"kind": "pick_winner", "playerId": bobID}))

	end := readUntilKind(t, bob, "round_end")
	assert.Equal(t, bobID, end["winnerId"])
	assert.Equal(t, card, end["card"])
}
