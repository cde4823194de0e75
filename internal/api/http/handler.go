package http

import (
	"strconv"
	"strings"

	"saarthi/internal/controllers"
	"saarthi/internal/usecasees/structs"
	"saarthi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// OrderUseCase is the order queue plus execution surface consumed by
// the HTTP layer.
type OrderUseCase interface {
	Enqueue(userID string, req *structs.OrderRequest) (*models.Order, error)
	EnqueueBulk(userID string, reqs []structs.OrderRequest) []structs.BulkOrderResult
	Cancel(userID, orderID string) error
	Update(userID, orderID string, req *structs.OrderRequest) (*models.Order, error)
	Get(userID, orderID string) (*models.Order, error)
	List(userID string, filter *structs.OrderFilter) ([]models.Order, error)
	ListQueued(userID string) []*models.Order
	History(userID string, limit int) ([]models.Order, error)
	Delete(userID, orderID string) error
	ExecuteUser(userID string) []models.Order
	ClearQueue(userID string) []models.Order
}

type PriceUseCase interface {
	GetPrice(symbol string) (float64, error)
	LastTick(symbol string) (models.Price, error)
	Supported(symbol string) bool
	Securities() []string
}

type Handler struct {
	fiber *fiber.App

	orderUseCase OrderUseCase
	priceUseCase PriceUseCase

	exchangeController controllers.ExchangeCtrl

	logger *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	orderUseCase OrderUseCase,
	priceUseCase PriceUseCase,
	exchange controllers.ExchangeCtrl,
	l *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:              f,
		orderUseCase:       orderUseCase,
		priceUseCase:       priceUseCase,
		exchangeController: exchange,
		logger:             l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var req structs.OrderRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(err))
	}

	order, err := h.orderUseCase.Enqueue(userID(c), &req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *Handler) CreateBulkOrders(c *fiber.Ctx) error {
	var req structs.BulkOrderRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(err))
	}

	if len(req.Orders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty order list"})
	}

	results := h.orderUseCase.EnqueueBulk(userID(c), req.Orders)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"results": results})
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	orders, err := h.orderUseCase.List(userID(c), &structs.OrderFilter{
		Status: strings.ToUpper(c.Query("status")),
		Limit:  limit,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) ListQueuedOrders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"orders": h.orderUseCase.ListQueued(userID(c))})
}

func (h *Handler) ExecutionHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	orders, err := h.orderUseCase.History(userID(c), limit)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderUseCase.Get(userID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(order)
}

func (h *Handler) UpdateOrder(c *fiber.Ctx) error {
	var req structs.OrderRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errBody(err))
	}

	order, err := h.orderUseCase.Update(userID(c), c.Params("id"), &req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(order)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	if err := h.orderUseCase.Cancel(userID(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"canceled": c.Params("id")})
}

func (h *Handler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.orderUseCase.Delete(userID(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"deleted": c.Params("id")})
}

func (h *Handler) ClearQueue(c *fiber.Ctx) error {
	canceled := h.orderUseCase.ClearQueue(userID(c))

	return c.JSON(fiber.Map{"canceled": canceled})
}

func (h *Handler) ExecuteOrders(c *fiber.Ctx) error {
	executed := h.orderUseCase.ExecuteUser(userID(c))

	return c.JSON(fiber.Map{"executed": executed})
}

func (h *Handler) Securities(c *fiber.Ctx) error {
	symbols := h.priceUseCase.Securities()

	return c.JSON(fiber.Map{
		"symbols": symbols,
		"count":   len(symbols),
	})
}

func (h *Handler) GetPrice(c *fiber.Ctx) error {
	tick, err := h.priceUseCase.LastTick(c.Params("symbol"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(tick)
}

func (h *Handler) Wallets(c *fiber.Ctx) error {
	wallets, err := h.exchangeController.FetchWallets(userID(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"wallets": wallets})
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.exchangeController.GetBalance(userID(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"balance": balance})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case structs.ErrInvalidRiskInput, structs.ErrRiskLimitExceeded, structs.ErrInsufficientMargin:
		return c.Status(fiber.StatusBadRequest).JSON(errBody(err))
	case structs.ErrNotFound, structs.ErrSymbolNotFound:
		return c.Status(fiber.StatusNotFound).JSON(errBody(err))
	case controllers.ErrExchangeTimeout:
		return c.Status(fiber.StatusGatewayTimeout).JSON(errBody(err))
	case controllers.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(errBody(err))
	}

	h.logger.WithError(err).Error("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(errBody(err))
}

func errBody(err error) fiber.Map {
	return fiber.Map{"error": err.Error()}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)

	return id
}
