package http

import (
	"saarthi/internal/controllers"
	"saarthi/internal/usecasees"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(
	appName string,
	f *fiber.App,
	orderUseCase OrderUseCase,
	priceUseCase PriceUseCase,
	exchange controllers.ExchangeCtrl,
	auth controllers.AuthCtrl,
	registry *usecasees.ConnRegistry,
	l *logrus.Logger,
) {
	h := NewHandler(f, orderUseCase, priceUseCase, exchange, l)
	m := NewMiddleware(appName, f, auth)

	m.useMetrics()

	api := f.Group("api")
	api.Get("/healthcheck", h.HealthCheck)

	orders := api.Group("/orders", m.auth)
	orders.Post("/", h.CreateOrder)
	orders.Post("/bulk", h.CreateBulkOrders)
	orders.Post("/execute", h.ExecuteOrders)
	orders.Get("/", h.ListOrders)
	orders.Get("/queued", h.ListQueuedOrders)
	orders.Get("/history/executed", h.ExecutionHistory)
	orders.Delete("/history/:id", h.DeleteOrder)
	orders.Delete("/", h.ClearQueue)
	orders.Get("/:id", h.GetOrder)
	orders.Put("/:id", h.UpdateOrder)
	orders.Delete("/:id", h.CancelOrder)

	trade := api.Group("/trade", m.auth)
	trade.Get("/securities", h.Securities)
	trade.Get("/price/:symbol", h.GetPrice)
	trade.Get("/wallets", h.Wallets)
	trade.Get("/balance", h.GetBalance)

	registerPriceStream(f, m, registry, priceUseCase, l)
}
