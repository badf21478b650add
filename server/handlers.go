package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/beav1982/slights/game"
)

// Inbound frames allowed per connection: a small steady rate with room
// for a burst right after connecting.
const (
	messageRate  = 10
	messageBurst = 20
)

type Handler struct {
	manager  *game.Manager
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(manager *game.Manager, log zerolog.Logger) *Handler {
	return &Handler{
		manager: manager,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/create", h.createRoom)
	r.POST("/api/join", h.joinRoom)
	r.GET("/ws", h.serveWS)
}

func (h *Handler) createRoom(ctx *gin.Context) {
	code, err := h.manager.CreateRoom(ctx.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("create room failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not create room"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"roomCode": code})
}

type joinRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (h *Handler) joinRoom(ctx *gin.Context) {
	var req joinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and name are required"})
		return
	}
	playerID, err := h.manager.JoinRoom(ctx.Request.Context(), req.RoomCode, req.Name)
	if errors.Is(err, game.ErrRoomNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"playerId": playerID})
}

// serveWS upgrades the connection, attaches it to the player and then
// pumps inbound frames into the manager until the client goes away.
func (h *Handler) serveWS(ctx *gin.Context) {
	roomCode := ctx.Query("room")
	playerID := ctx.Query("player")
	if roomCode == "" || playerID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "room and player are required"})
		return
	}

	socket, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("room", roomCode).Msg("websocket upgrade failed")
		return
	}
	conn := newWSConn(socket)

	reqCtx := ctx.Request.Context()
	if !h.manager.ConnectPlayer(reqCtx, roomCode, playerID, conn) {
		socket.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown room or player"))
		conn.Close()
		return
	}

	limiter := rate.NewLimiter(messageRate, messageBurst)
	for {
		_, data, err := socket.ReadMessage()
		if err != nil {
			break
		}
		if !limiter.Allow() {
			h.log.Warn().Str("room", roomCode).Str("player", playerID).Msg("message rate exceeded, frame dropped")
			continue
		}
		h.manager.HandleMessage(reqCtx, roomCode, playerID, data)
	}

	// The request context is torn down with the connection; the detach
	// still has to reach the store.
	h.manager.DisconnectPlayer(context.Background(), roomCode, playerID)
	conn.Close()
	h.log.Debug().Str("room", roomCode).Str("player", playerID).Msg("player disconnected")
}
