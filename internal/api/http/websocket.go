package http

import (
	"strings"

	"saarthi/internal/usecasees"
	"saarthi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	actionSubscribe   = "subscribe"
	actionUnsubscribe = "unsubscribe"
)

const ackBuffer = 8

type streamRequest struct {
	Action string `json:"action"`
	Symbol string `json:"symbol"`
}

type streamAck struct {
	Action string `json:"action"`
	Symbol string `json:"symbol"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type connWriter interface {
	WriteJSON(v interface{}) error
}

// writePump is the single writer for one connection. Ticks and acks
// both funnel through here, so the underlying gorilla connection never
// sees two concurrent WriteJSON calls.
func writePump(c connWriter, ticks <-chan models.Price, acks <-chan streamAck, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case tick := <-ticks:
			if err := c.WriteJSON(tick); err != nil {
				return
			}
		case ack := <-acks:
			if err := c.WriteJSON(ack); err != nil {
				return
			}
		}
	}
}

func registerPriceStream(
	f *fiber.App,
	m *Middleware,
	registry *usecasees.ConnRegistry,
	priceUseCase PriceUseCase,
	l *logrus.Logger,
) {
	f.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}

		return fiber.ErrUpgradeRequired
	})

	f.Get("/ws/price", m.auth, websocket.New(func(c *websocket.Conn) {
		connID := uuid.NewString()

		ticks := registry.Register(connID)
		defer registry.Unregister(connID)

		acks := make(chan streamAck, ackBuffer)
		done := make(chan struct{})
		writerDone := make(chan struct{})

		go func() {
			defer close(writerDone)

			writePump(c, ticks, acks, done)
		}()
		defer close(done)

		send := func(ack streamAck) bool {
			select {
			case acks <- ack:
				return true
			case <-writerDone:
				return false
			}
		}

		for {
			var req streamRequest
			if err := c.ReadJSON(&req); err != nil {
				return
			}

			symbol := strings.ToUpper(req.Symbol)

			switch req.Action {
			case actionSubscribe:
				if !priceUseCase.Supported(symbol) {
					if !send(streamAck{Action: req.Action, Symbol: symbol, Error: "unknown symbol"}) {
						return
					}

					continue
				}

				registry.Subscribe(connID, symbol)

				if !send(streamAck{Action: req.Action, Symbol: symbol, OK: true}) {
					return
				}
			case actionUnsubscribe:
				registry.Unsubscribe(connID, symbol)

				if !send(streamAck{Action: req.Action, Symbol: symbol, OK: true}) {
					return
				}
			default:
				l.
					WithField("action", req.Action).
					Warn("price stream: unknown action")

				if !send(streamAck{Action: req.Action, Symbol: symbol, Error: "unknown action"}) {
					return
				}
			}
		}
	}))
}
