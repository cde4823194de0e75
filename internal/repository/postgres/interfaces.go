package postgres

import (
	"time"

	"saarthi/models"
)

//go:generate mockery --case=snake --name=OrderRepo

type OrderRepo interface {
	Store(m *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID, status string, limit int) ([]models.Order, error)
	GetQueued(userID string) ([]models.Order, error)
	GetExecuted(userID string, limit int) ([]models.Order, error)
	SetStatus(id, status string) error
	SetExecuted(id string, price, qty, fees float64, at time.Time) error
	SetFailed(id, reason string, at time.Time) error
	Update(m *models.Order) error
	Delete(id string) error
}
