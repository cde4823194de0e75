package usecasees

import (
	"testing"
	"time"

	"saarthi/internal/controllers"
	ctrlMocks "saarthi/internal/controllers/mocks"
	mongoMocks "saarthi/internal/repository/mongo/mocks"
	mongoStructs "saarthi/internal/repository/mongo/structs"
	pgMocks "saarthi/internal/repository/postgres/mocks"
	orderStructs "saarthi/internal/usecasees/structs"
	"saarthi/models"

	"github.com/ic2hrmk/promtail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type promTailStub struct {
	promtail.Client
}

func (promTailStub) Debugf(format string, args ...interface{}) {}
func (promTailStub) Infof(format string, args ...interface{})  {}
func (promTailStub) Errorf(format string, args ...interface{}) {}

func testMetrics() map[orderStructs.MetricConst]prometheus.Counter {
	out := map[orderStructs.MetricConst]prometheus.Counter{}

	for _, m := range []orderStructs.MetricConst{
		orderStructs.MetricOrderEnqueued,
		orderStructs.MetricOrderRejected,
		orderStructs.MetricOrderFilled,
		orderStructs.MetricOrderFailed,
		orderStructs.MetricOrderCanceled,
		orderStructs.MetricPriceFanout,
	} {
		out[m] = prometheus.NewCounter(prometheus.CounterOpts{
			Name: m.ToString(),
		})
	}

	return out
}

type mockGen struct {
	exchangeCtrl *ctrlMocks.ExchangeCtrl
	tgmCtrl      *ctrlMocks.TgmCtrl
	orderRepo    *pgMocks.OrderRepo
	userRepo     *mongoMocks.UserRepo

	queue  *OrderQueue
	logger *logrus.Logger
}

func newMockGen() *mockGen {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &mockGen{
		exchangeCtrl: &ctrlMocks.ExchangeCtrl{},
		tgmCtrl:      &ctrlMocks.TgmCtrl{},
		orderRepo:    &pgMocks.OrderRepo{},
		userRepo:     &mongoMocks.UserRepo{},
		queue:        NewOrderQueue(),
		logger:       logger,
	}
}

func (mockGen *mockGen) limits(limits *mongoStructs.UserLimits) {
	mockGen.userRepo.On("Load", "u1").Return(limits, nil)
}

func (mockGen *mockGen) defaultLimits() {
	mockGen.limits(&mongoStructs.UserLimits{
		UserID:          "u1",
		MaxLeverage:     20,
		MaxPositionSize: 100000,
		DailyLossLimit:  10000,
		RiskPercent:     2,
	})
}

func (mockGen *mockGen) initOrderUseCase() *orderUseCase {
	priceUseCase := NewPriceUseCase(
		mockGen.exchangeCtrl,
		NewConnRegistry(),
		testMetrics(),
		time.Second,
		time.Minute,
		mockGen.logger,
		promTailStub{},
	)
	priceUseCase.store(models.Price{Symbol: "BTCINR", Price: 500, Ts: time.Now()})

	return NewOrderUseCase(
		mockGen.exchangeCtrl,
		mockGen.tgmCtrl,
		mockGen.orderRepo,
		mockGen.userRepo,
		priceUseCase,
		mockGen.queue,
		testMetrics(),
		mockGen.logger,
		promTailStub{},
	)
}

func marketRequest() *orderStructs.OrderRequest {
	return &orderStructs.OrderRequest{
		Symbol:        "BTCINR",
		Side:          models.SideBuy,
		Type:          models.OrderTypeMarket,
		Leverage:      10,
		RiskPercent:   2,
		StopLossPrice: 450,
	}
}

func Test_OrderUseCase(t *testing.T) {
	t.Run("queues an admitted order", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)

		u := mockGen.initOrderUseCase()

		order, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		assert.Equal(t, models.OrderStatusQueued, order.Status)
		assert.Equal(t, 4.0, order.Quantity)
		assert.Equal(t, 200.0, order.Margin)
		assert.Equal(t, 500.0, order.Price)

		assert.Len(t, u.ListQueued("u1"), 1)
		mockGen.orderRepo.AssertCalled(t, "Store", mock.AnythingOfType("*models.Order"))
	})

	t.Run("rejects leverage above the user cap", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()

		u := mockGen.initOrderUseCase()

		req := marketRequest()
		req.Leverage = 50

		_, err := u.Enqueue("u1", req)
		assert.ErrorIs(t, err, orderStructs.ErrRiskLimitExceeded)

		assert.Empty(t, u.ListQueued("u1"))
		mockGen.orderRepo.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("rejects when margin exceeds balance", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(100.0, nil)

		u := mockGen.initOrderUseCase()

		req := marketRequest()
		req.Leverage = 1
		req.RiskPercent = 100
		req.StopLossPrice = 499

		_, err := u.Enqueue("u1", req)
		assert.ErrorIs(t, err, orderStructs.ErrInsufficientMargin)

		assert.Empty(t, u.ListQueued("u1"))
	})

	t.Run("rejects when notional exceeds the position cap", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.limits(&mongoStructs.UserLimits{
			UserID:          "u1",
			MaxLeverage:     20,
			MaxPositionSize: 1000,
			DailyLossLimit:  10000,
			RiskPercent:     2,
		})
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)

		u := mockGen.initOrderUseCase()

		_, err := u.Enqueue("u1", marketRequest())
		assert.ErrorIs(t, err, orderStructs.ErrRiskLimitExceeded)
	})

	t.Run("daily loss limit blocks new orders", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.limits(&mongoStructs.UserLimits{
			UserID:          "u1",
			MaxLeverage:     20,
			MaxPositionSize: 100000,
			DailyLossLimit:  10000,
			RiskPercent:     2,
			DailyLoss:       10000,
			DailyLossDay:    time.Now().UTC().Format(dayLayout),
		})

		u := mockGen.initOrderUseCase()

		_, err := u.Enqueue("u1", marketRequest())
		assert.ErrorIs(t, err, orderStructs.ErrRiskLimitExceeded)
	})

	t.Run("bulk admits every request independently", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)

		u := mockGen.initOrderUseCase()

		bad := *marketRequest()
		bad.Leverage = 50

		results := u.EnqueueBulk("u1", []orderStructs.OrderRequest{
			*marketRequest(),
			bad,
			*marketRequest(),
		})

		assert.Len(t, results, 3)
		assert.NotNil(t, results[0].Order)
		assert.NotEmpty(t, results[1].Error)
		assert.Nil(t, results[1].Order)
		assert.NotNil(t, results[2].Order)

		assert.Len(t, u.ListQueued("u1"), 2)
	})

	t.Run("update re-admits without counting its own reservation", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(300.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("Update", mock.AnythingOfType("*models.Order")).Return(nil)

		u := mockGen.initOrderUseCase()

		// margin 180 of a 300 balance: a second reservation would not fit
		req := marketRequest()
		req.RiskPercent = 60

		order, err := u.Enqueue("u1", req)
		assert.NoError(t, err)
		assert.Equal(t, 180.0, order.Margin)

		req.Side = models.SideSell

		updated, err := u.Update("u1", order.ID, req)
		assert.NoError(t, err)

		assert.Equal(t, order.ID, updated.ID)
		assert.Equal(t, models.SideSell, updated.Side)
		assert.Len(t, u.ListQueued("u1"), 1)
	})

	t.Run("update loses the race against execution cleanly", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)

		// the second balance read belongs to the update; draining the
		// queue there simulates an execution sweep winning the race
		var balanceReads int
		mockGen.exchangeCtrl.On("GetBalance", "u1").Run(func(args mock.Arguments) {
			balanceReads++
			if balanceReads == 2 {
				mockGen.queue.DequeueAll("u1")
			}
		}).Return(10000.0, nil)

		u := mockGen.initOrderUseCase()

		order, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		_, err = u.Update("u1", order.ID, marketRequest())
		assert.ErrorIs(t, err, orderStructs.ErrNotFound)

		mockGen.orderRepo.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("in-flight margin still counts against the balance", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(300.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("SetStatus", mock.AnythingOfType("string"), models.OrderStatusExecuting).Return(nil)
		mockGen.orderRepo.On("SetExecuted", mock.AnythingOfType("string"), 500.0, 3.6, 0.0, mock.AnythingOfType("time.Time")).Return(nil)
		mockGen.tgmCtrl.On("Send", mock.AnythingOfType("string")).Return(nil)

		var u *orderUseCase
		var midFlightErr error

		// the order is out of the queue but not yet terminal here; its
		// margin 180 of the 300 balance must still block a second 180
		mockGen.exchangeCtrl.On("PlaceOrder", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
			req := marketRequest()
			req.RiskPercent = 60

			_, midFlightErr = u.Enqueue("u1", req)
		}).Return(&models.ExecutionResult{
			ExchangeOrderID: "ex-1",
			FilledPrice:     500,
			FilledQty:       3.6,
		}, nil)

		u = mockGen.initOrderUseCase()

		req := marketRequest()
		req.RiskPercent = 60

		order, err := u.Enqueue("u1", req)
		assert.NoError(t, err)
		assert.Equal(t, 180.0, order.Margin)

		executed := u.ExecuteUser("u1")
		assert.Len(t, executed, 1)
		assert.ErrorIs(t, midFlightErr, orderStructs.ErrInsufficientMargin)

		// terminal now, the reservation is released
		_, err = u.Enqueue("u1", req)
		assert.NoError(t, err)
	})

	t.Run("clear queue cancels everything still queued", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("SetStatus", mock.AnythingOfType("string"), models.OrderStatusCanceled).Return(nil)

		u := mockGen.initOrderUseCase()

		_, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)
		_, err = u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		canceled := u.ClearQueue("u1")
		assert.Len(t, canceled, 2)

		for _, order := range canceled {
			assert.Equal(t, models.OrderStatusCanceled, order.Status)
		}

		assert.Empty(t, u.ListQueued("u1"))
		assert.Zero(t, mockGen.queue.ReservedMargin("u1", ""))
		assert.Empty(t, u.ClearQueue("u1"))
		mockGen.orderRepo.AssertNumberOfCalls(t, "SetStatus", 2)
	})

	t.Run("executes queued orders in FIFO order", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("SetStatus", mock.AnythingOfType("string"), models.OrderStatusExecuting).Return(nil)
		mockGen.orderRepo.On("SetExecuted", mock.AnythingOfType("string"), 501.0, 4.0, 1.5, mock.AnythingOfType("time.Time")).Return(nil)
		mockGen.userRepo.On("AddDailyLoss", "u1", 1.5, mock.AnythingOfType("string")).Return(nil)
		mockGen.tgmCtrl.On("Send", mock.AnythingOfType("string")).Return(nil)
		mockGen.exchangeCtrl.On("PlaceOrder", mock.AnythingOfType("*models.Order")).Return(&models.ExecutionResult{
			ExchangeOrderID: "ex-1",
			FilledPrice:     501,
			FilledQty:       4,
			Fees:            1.5,
		}, nil)

		u := mockGen.initOrderUseCase()

		first, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)
		second, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		executed := u.ExecuteUser("u1")
		assert.Len(t, executed, 2)

		assert.Equal(t, first.ID, executed[0].ID)
		assert.Equal(t, second.ID, executed[1].ID)

		for _, order := range executed {
			assert.Equal(t, models.OrderStatusFilled, order.Status)
			assert.Equal(t, 501.0, order.ExecutedPrice)
			assert.Equal(t, 4.0, order.ExecutedQty)
			assert.NotNil(t, order.ExecutedAt)
		}

		assert.Empty(t, u.ListQueued("u1"))
		assert.Empty(t, u.ExecuteUser("u1"))
	})

	t.Run("failed submission is recorded and never retried", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("SetStatus", mock.AnythingOfType("string"), models.OrderStatusExecuting).Return(nil)
		mockGen.orderRepo.On("SetFailed", mock.AnythingOfType("string"), reasonExchangeTimeout, mock.AnythingOfType("time.Time")).Return(nil)
		mockGen.tgmCtrl.On("Send", mock.AnythingOfType("string")).Return(nil)
		mockGen.exchangeCtrl.On("PlaceOrder", mock.AnythingOfType("*models.Order")).Return(nil, controllers.ErrExchangeTimeout)

		u := mockGen.initOrderUseCase()

		_, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		executed := u.ExecuteUser("u1")
		assert.Len(t, executed, 1)

		assert.Equal(t, models.OrderStatusFailed, executed[0].Status)
		assert.Equal(t, reasonExchangeTimeout, executed[0].Reason)

		assert.Empty(t, u.ListQueued("u1"))
		mockGen.exchangeCtrl.AssertNumberOfCalls(t, "PlaceOrder", 1)
	})

	t.Run("cancel removes a queued order once", func(t *testing.T) {
		mockGen := newMockGen()
		mockGen.defaultLimits()
		mockGen.exchangeCtrl.On("GetBalance", "u1").Return(10000.0, nil)
		mockGen.orderRepo.On("Store", mock.AnythingOfType("*models.Order")).Return(nil)
		mockGen.orderRepo.On("SetStatus", mock.AnythingOfType("string"), models.OrderStatusCanceled).Return(nil)

		u := mockGen.initOrderUseCase()

		order, err := u.Enqueue("u1", marketRequest())
		assert.NoError(t, err)

		assert.NoError(t, u.Cancel("u1", order.ID))
		assert.Equal(t, models.OrderStatusCanceled, order.Status)
		assert.Empty(t, u.ListQueued("u1"))

		assert.ErrorIs(t, u.Cancel("u1", order.ID), orderStructs.ErrNotFound)
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		mockGen := newMockGen()

		u := mockGen.initOrderUseCase()

		cases := []func(r *orderStructs.OrderRequest){
			func(r *orderStructs.OrderRequest) { r.Symbol = "" },
			func(r *orderStructs.OrderRequest) { r.Side = "HOLD" },
			func(r *orderStructs.OrderRequest) { r.Type = "OCO" },
			func(r *orderStructs.OrderRequest) { r.StopLossPrice = 0 },
			func(r *orderStructs.OrderRequest) {
				r.Type = models.OrderTypeLimit
				r.LimitPrice = 0
			},
		}

		for _, mutate := range cases {
			req := marketRequest()
			mutate(req)

			_, err := u.Enqueue("u1", req)
			assert.ErrorIs(t, err, orderStructs.ErrInvalidRiskInput)
		}
	})
}
