package ws

import (
	"net/http"

	"career-guide/internal/config"
	"career-guide/internal/domain/account"
	"career-guide/internal/pkg/randsrc"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type Handler struct {
	hub  *Hub
	chat usecase.ChatUsecase
	cfg  config.ChatConfig
	rnd  randsrc.Source
	log  zerolog.Logger
}

func NewHandler(hub *Hub, chat usecase.ChatUsecase, cfg config.ChatConfig, rnd randsrc.Source, log zerolog.Logger) *Handler {
	return &Handler{hub: hub, chat: chat, cfg: cfg, rnd: rnd, log: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/chat", h.HandleChat)
}

// HandleChat upgrades to a chat socket. The optional email query parameter
// subscribes the connection to that account's notifications.
func (h *Handler) HandleChat(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.chat == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.serve)(c)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	email := account.NormalizeEmail(r.URL.Query().Get("email"))
	client := NewClient(h.hub, conn, email, h.chat, h.cfg, h.rnd, h.log)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
