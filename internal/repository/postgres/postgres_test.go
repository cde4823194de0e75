package postgres_test

import (
	"os"
	"testing"
	"time"

	"saarthi/internal/repository/postgres"
	"saarthi/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
)

func initRepo(t *testing.T) postgres.OrderRepo {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}

	return postgres.NewOrderRepository(db)
}

func Test_OrderStore(t *testing.T) {
	repo := initRepo(t)

	userID := uuid.NewString()

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Symbol:        "BTCINR",
		Side:          models.SideBuy,
		Type:          models.OrderTypeMarket,
		Quantity:      4,
		Price:         500,
		Leverage:      10,
		RiskPercent:   2,
		StopLossPrice: 450,
		Margin:        200,
		Status:        models.OrderStatusQueued,
		CreatedAt:     time.Now().UTC(),
	}

	t.Run("Store", func(t *testing.T) {
		assert.NoError(t, repo.Store(order))
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(order.ID)
		assert.NoError(t, err)

		assert.Equal(t, order.UserID, got.UserID)
		assert.Equal(t, models.OrderStatusQueued, got.Status)
	})

	t.Run("GetByUser", func(t *testing.T) {
		orders, err := repo.GetByUser(userID, "", 10)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)

		orders, err = repo.GetByUser(userID, models.OrderStatusFilled, 10)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("GetQueued", func(t *testing.T) {
		orders, err := repo.GetQueued(userID)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("SetStatus moves a queued row", func(t *testing.T) {
		assert.NoError(t, repo.SetStatus(order.ID, models.OrderStatusExecuting))

		got, err := repo.GetByID(order.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusExecuting, got.Status)
	})

	t.Run("SetExecuted", func(t *testing.T) {
		assert.NoError(t, repo.SetExecuted(order.ID, 501, 4, 1.5, time.Now().UTC()))

		got, err := repo.GetByID(order.ID)
		assert.NoError(t, err)

		assert.Equal(t, models.OrderStatusFilled, got.Status)
		assert.Equal(t, 501.0, got.ExecutedPrice)
		assert.NotNil(t, got.ExecutedAt)
	})

	t.Run("terminal rows ignore late status writes", func(t *testing.T) {
		assert.NoError(t, repo.SetStatus(order.ID, models.OrderStatusCanceled))

		got, err := repo.GetByID(order.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusFilled, got.Status)

		edited := *order
		edited.Quantity = 99

		assert.NoError(t, repo.Update(&edited))

		got, err = repo.GetByID(order.ID)
		assert.NoError(t, err)
		assert.Equal(t, 4.0, got.Quantity)
	})

	t.Run("GetExecuted", func(t *testing.T) {
		orders, err := repo.GetExecuted(userID, 10)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(order.ID))

		_, err := repo.GetByID(order.ID)
		assert.Error(t, err)
	})
}

func Test_OrderSetFailed(t *testing.T) {
	repo := initRepo(t)

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        uuid.NewString(),
		Symbol:        "ETHINR",
		Side:          models.SideSell,
		Type:          models.OrderTypeLimit,
		Quantity:      1,
		Price:         40,
		Leverage:      5,
		RiskPercent:   2,
		StopLossPrice: 45,
		Margin:        8,
		Status:        models.OrderStatusQueued,
		CreatedAt:     time.Now().UTC(),
	}

	assert.NoError(t, repo.Store(order))
	assert.NoError(t, repo.SetFailed(order.ID, "EXCHANGE_TIMEOUT", time.Now().UTC()))

	got, err := repo.GetByID(order.ID)
	assert.NoError(t, err)

	assert.Equal(t, models.OrderStatusFailed, got.Status)
	assert.Equal(t, "EXCHANGE_TIMEOUT", got.Reason)

	assert.NoError(t, repo.Delete(order.ID))
}
