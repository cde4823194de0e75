package usecasees

import (
	"fmt"
	"math"
	"runtime/debug"
	"sync"
	"time"

	"saarthi/internal/controllers"
	"saarthi/internal/repository/mongo"
	"saarthi/internal/repository/postgres"
	"saarthi/internal/usecasees/structs"
	"saarthi/models"

	"github.com/google/uuid"
	"github.com/ic2hrmk/promtail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const dayLayout = "2006-01-02"

const (
	reasonExchangeError   = "EXCHANGE_ERROR"
	reasonExchangeTimeout = "EXCHANGE_TIMEOUT"
)

type orderUseCase struct {
	exchangeController controllers.ExchangeCtrl
	tgmController      controllers.TgmCtrl

	orderRepo postgres.OrderRepo
	userRepo  mongo.UserRepo

	priceUseCase *priceUseCase
	queue        *OrderQueue

	metrics map[structs.MetricConst]prometheus.Counter

	execMu sync.Mutex
	exec   map[string]*sync.Mutex

	logRus   *logrus.Logger
	promTail promtail.Client
}

func NewOrderUseCase(
	exchange controllers.ExchangeCtrl,
	tgmController controllers.TgmCtrl,
	orderRepo postgres.OrderRepo,
	userRepo mongo.UserRepo,
	priceUseCase *priceUseCase,
	queue *OrderQueue,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
	promTail promtail.Client,
) *orderUseCase {
	return &orderUseCase{
		exchangeController: exchange,
		tgmController:      tgmController,
		orderRepo:          orderRepo,
		userRepo:           userRepo,
		priceUseCase:       priceUseCase,
		queue:              queue,
		metrics:            metrics,
		exec:               make(map[string]*sync.Mutex),
		logRus:             logRus,
		promTail:           promTail,
	}
}

// Enqueue sizes the request, enforces the user's limits and, when
// admitted, persists the order and appends it to the user's queue.
// Rejections leave both the queue and the store untouched.
func (u *orderUseCase) Enqueue(userID string, req *structs.OrderRequest) (*models.Order, error) {
	order, err := u.admit(userID, req, "")
	if err != nil {
		u.metrics[structs.MetricOrderRejected].Inc()

		return nil, err
	}

	if err := u.orderRepo.Store(order); err != nil {
		return nil, err
	}

	u.queue.Enqueue(userID, order)
	u.metrics[structs.MetricOrderEnqueued].Inc()

	u.promTail.Debugf("order enqueued: %+v", order)

	return order, nil
}

// EnqueueBulk admits every request independently. One rejection never
// aborts the rest: the result slice always has one entry per request.
func (u *orderUseCase) EnqueueBulk(userID string, reqs []structs.OrderRequest) []structs.BulkOrderResult {
	out := make([]structs.BulkOrderResult, 0, len(reqs))

	for i := range reqs {
		order, err := u.Enqueue(userID, &reqs[i])
		if err != nil {
			out = append(out, structs.BulkOrderResult{Error: err.Error()})

			continue
		}

		out = append(out, structs.BulkOrderResult{Order: order})
	}

	return out
}

func (u *orderUseCase) admit(userID string, req *structs.OrderRequest, excludeID string) (*models.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	limits, err := u.userRepo.Load(userID)
	if err != nil {
		return nil, err
	}

	if req.Leverage > limits.MaxLeverage {
		return nil, structs.ErrRiskLimitExceeded
	}

	today := time.Now().UTC().Format(dayLayout)
	if limits.DailyLossDay == today && limits.DailyLoss >= limits.DailyLossLimit {
		return nil, structs.ErrRiskLimitExceeded
	}

	price := req.LimitPrice
	if req.Type == models.OrderTypeMarket {
		price, err = u.priceUseCase.GetPrice(req.Symbol)
		if err != nil {
			return nil, err
		}
	}

	stopDistance := math.Abs(price - req.StopLossPrice)

	riskPercent := req.RiskPercent
	if riskPercent == 0 {
		riskPercent = limits.RiskPercent
	}

	balance, err := u.exchangeController.GetBalance(userID)
	if err != nil {
		return nil, err
	}

	sizing, err := CalcPositionSize(balance, riskPercent, stopDistance, req.Leverage, price)
	if err != nil {
		return nil, err
	}

	if sizing.MarginRequired+u.queue.ReservedMargin(userID, excludeID) > balance {
		return nil, structs.ErrInsufficientMargin
	}

	if sizing.Quantity*price+u.queue.QueuedNotional(userID, excludeID) > limits.MaxPositionSize {
		return nil, structs.ErrRiskLimitExceeded
	}

	return &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Symbol:        req.Symbol,
		Side:          req.Side,
		Type:          req.Type,
		Quantity:      sizing.Quantity,
		Price:         price,
		Leverage:      req.Leverage,
		RiskPercent:   riskPercent,
		StopLossPrice: req.StopLossPrice,
		Margin:        sizing.MarginRequired,
		Status:        models.OrderStatusQueued,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func validateRequest(req *structs.OrderRequest) error {
	if req.Symbol == "" || req.StopLossPrice <= 0 {
		return structs.ErrInvalidRiskInput
	}

	switch req.Side {
	case models.SideBuy, models.SideSell:
	default:
		return structs.ErrInvalidRiskInput
	}

	switch req.Type {
	case models.OrderTypeMarket:
	case models.OrderTypeLimit:
		if req.LimitPrice <= 0 {
			return structs.ErrInvalidRiskInput
		}
	default:
		return structs.ErrInvalidRiskInput
	}

	return nil
}

// Cancel removes a still-queued order. Executing and terminal orders
// are out of reach: the queue no longer holds them, so the caller gets
// structs.ErrNotFound and nothing changes.
func (u *orderUseCase) Cancel(userID, orderID string) error {
	order, err := u.queue.Cancel(userID, orderID)
	if err != nil {
		return err
	}

	if err := u.orderRepo.SetStatus(order.ID, models.OrderStatusCanceled); err != nil {
		return err
	}

	order.Status = models.OrderStatusCanceled
	u.metrics[structs.MetricOrderCanceled].Inc()

	return nil
}

// Update edits a queued order in place, re-running sizing and limit
// checks against current prices. The swap happens under the queue lock:
// an order drained for execution while the checks ran is out of reach
// and the update reports structs.ErrNotFound instead of touching it.
func (u *orderUseCase) Update(userID, orderID string, req *structs.OrderRequest) (*models.Order, error) {
	if _, err := u.queue.Find(userID, orderID); err != nil {
		return nil, err
	}

	next, err := u.admit(userID, req, orderID)
	if err != nil {
		return nil, err
	}

	order, err := u.queue.Replace(userID, orderID, next)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.Update(order); err != nil {
		return nil, err
	}

	return order, nil
}

func (u *orderUseCase) Get(userID, orderID string) (*models.Order, error) {
	order, err := u.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, structs.ErrNotFound
	}

	if order.UserID != userID {
		return nil, structs.ErrNotFound
	}

	return order, nil
}

func (u *orderUseCase) List(userID string, filter *structs.OrderFilter) ([]models.Order, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	return u.orderRepo.GetByUser(userID, filter.Status, limit)
}

// ListQueued reads from the live queue, preserving FIFO order.
func (u *orderUseCase) ListQueued(userID string) []*models.Order {
	return u.queue.Pending(userID)
}

func (u *orderUseCase) History(userID string, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	return u.orderRepo.GetExecuted(userID, limit)
}

// Delete removes a terminal order from history. Queued orders go
// through Cancel instead.
func (u *orderUseCase) Delete(userID, orderID string) error {
	order, err := u.Get(userID, orderID)
	if err != nil {
		return err
	}

	if !order.Terminal() {
		return structs.ErrNotFound
	}

	return u.orderRepo.Delete(order.ID)
}

// ExecuteUser drains the user's queue and executes the orders strictly
// sequentially, in FIFO order. A failed submission is never retried:
// the exchange may have partially accepted it.
func (u *orderUseCase) ExecuteUser(userID string) []models.Order {
	mu := u.userExecMutex(userID)
	mu.Lock()
	defer mu.Unlock()

	orders := u.queue.DequeueAll(userID)
	out := make([]models.Order, 0, len(orders))

	for _, order := range orders {
		u.executeOrder(userID, order)
		u.queue.Release(userID, order.Margin)
		out = append(out, *order)
	}

	return out
}

// ClearQueue cancels every still-queued order for the user in one
// sweep. Orders already drained for execution are unaffected.
func (u *orderUseCase) ClearQueue(userID string) []models.Order {
	orders := u.queue.DequeueAll(userID)
	out := make([]models.Order, 0, len(orders))

	for _, order := range orders {
		if err := u.orderRepo.SetStatus(order.ID, models.OrderStatusCanceled); err != nil {
			u.logRus.
				WithError(err).
				Error(string(debug.Stack()))
		}

		order.Status = models.OrderStatusCanceled
		u.queue.Release(userID, order.Margin)
		u.metrics[structs.MetricOrderCanceled].Inc()

		out = append(out, *order)
	}

	return out
}

func (u *orderUseCase) executeOrder(userID string, order *models.Order) {
	order.Status = models.OrderStatusExecuting
	if err := u.orderRepo.SetStatus(order.ID, models.OrderStatusExecuting); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}

	result, err := u.exchangeController.PlaceOrder(order)
	now := time.Now().UTC()

	if err != nil {
		reason := reasonExchangeError
		if err == controllers.ErrExchangeTimeout {
			reason = reasonExchangeTimeout
		}

		order.Status = models.OrderStatusFailed
		order.Reason = reason
		order.ExecutedAt = &now

		if err := u.orderRepo.SetFailed(order.ID, reason, now); err != nil {
			u.logRus.
				WithError(err).
				Error(string(debug.Stack()))
		}

		u.metrics[structs.MetricOrderFailed].Inc()
		u.promTail.Errorf("order %s failed: %+v", order.ID, err)

		u.notify(fmt.Sprintf("[ Order Failed ]\n%s\n%s %s\nreason:\t%s",
			order.Symbol, order.Side, order.Type, reason))

		return
	}

	order.Status = models.OrderStatusFilled
	order.ExecutedPrice = result.FilledPrice
	order.ExecutedQty = result.FilledQty
	order.Fees = result.Fees
	order.ExecutedAt = &now

	if err := u.orderRepo.SetExecuted(order.ID, result.FilledPrice, result.FilledQty, result.Fees, now); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}

	if result.Fees > 0 {
		if err := u.userRepo.AddDailyLoss(userID, result.Fees, now.Format(dayLayout)); err != nil {
			u.logRus.
				WithError(err).
				Error(string(debug.Stack()))
		}
	}

	u.metrics[structs.MetricOrderFilled].Inc()

	u.notify(fmt.Sprintf("[ Order Filled ]\n%s\n%s %s\nqty:\t%.8f\nprice:\t%.2f",
		order.Symbol, order.Side, order.Type, result.FilledQty, result.FilledPrice))
}

// RunCycle executes every non-empty queue. Users run concurrently;
// orders within one user stay sequential.
func (u *orderUseCase) RunCycle() {
	var wg sync.WaitGroup

	for _, userID := range u.queue.Users() {
		wg.Add(1)

		go func(userID string) {
			defer wg.Done()

			u.ExecuteUser(userID)
		}(userID)
	}

	wg.Wait()
}

// ResetDailyCounters zeroes every daily loss counter. Wired to the
// midnight cron job.
func (u *orderUseCase) ResetDailyCounters() {
	day := time.Now().UTC().Format(dayLayout)

	if err := u.userRepo.ResetDailyLoss(day); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		u.promTail.Errorf("orderUseCase: %+v %s", err, debug.Stack())
	}
}

func (u *orderUseCase) userExecMutex(userID string) *sync.Mutex {
	u.execMu.Lock()
	defer u.execMu.Unlock()

	mu, ok := u.exec[userID]
	if !ok {
		mu = &sync.Mutex{}
		u.exec[userID] = mu
	}

	return mu
}

func (u *orderUseCase) notify(text string) {
	if u.tgmController == nil {
		return
	}

	if err := u.tgmController.Send(text); err != nil {
		u.logRus.
			WithError(err).
			Debug("telegram notify failed")
	}
}
