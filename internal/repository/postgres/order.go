package postgres

import (
	"time"

	"saarthi/models"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepo {
	return &OrderRepository{
		conn: conn,
	}
}

func (r *OrderRepository) Store(m *models.Order) error {
	if _, err := r.conn.NamedExec("INSERT INTO orders (id,user_id,symbol,side,type,quantity,price,leverage,risk_percent,stop_loss_price,margin,status,created_at) VALUES (:id,:user_id,:symbol,:side,:type,:quantity,:price,:leverage,:risk_percent,:stop_loss_price,:margin,:status,:created_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order

	if err := r.conn.QueryRowx("SELECT * FROM orders WHERE id = $1 LIMIT 1", id).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) GetByUser(userID, status string, limit int) ([]models.Order, error) {
	var orders []models.Order

	if status == "" {
		if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;", userID, limit); err != nil {
			return nil, err
		}

		return orders, nil
	}

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3;", userID, status, limit); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) GetQueued(userID string) ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE user_id = $1 AND status = $2 ORDER BY created_at;", userID, models.OrderStatusQueued); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) GetExecuted(userID string, limit int) ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE user_id = $1 AND status IN ($2, $3) ORDER BY executed_at DESC LIMIT $4;", userID, models.OrderStatusFilled, models.OrderStatusFailed, limit); err != nil {
		return nil, err
	}

	return orders, nil
}

// SetStatus moves a queued order to the given status. Rows already
// past QUEUED are left untouched, so a late cancel or execute marker
// never rewrites a terminal row.
func (r *OrderRepository) SetStatus(id, status string) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1 WHERE id = $2 AND status = $3;", status, id, models.OrderStatusQueued); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) SetExecuted(id string, price, qty, fees float64, at time.Time) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1, executed_price = $2, executed_qty = $3, fees = $4, executed_at = $5 WHERE id = $6;",
		models.OrderStatusFilled, price, qty, fees, at.UTC(), id); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) SetFailed(id, reason string, at time.Time) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1, reason = $2, executed_at = $3 WHERE id = $4;",
		models.OrderStatusFailed, reason, at.UTC(), id); err != nil {
		return err
	}

	return nil
}

// Update rewrites the sized fields of a queued order. The status guard
// keeps an edit that lost the race against execution from touching the
// executed row.
func (r *OrderRepository) Update(m *models.Order) error {
	if _, err := r.conn.NamedExec("UPDATE orders SET symbol = :symbol, side = :side, type = :type, quantity = :quantity, price = :price, leverage = :leverage, risk_percent = :risk_percent, stop_loss_price = :stop_loss_price, margin = :margin WHERE id = :id AND status = 'QUEUED'", m); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) Delete(id string) error {
	if _, err := r.conn.Exec("DELETE FROM orders WHERE id = $1;", id); err != nil {
		return err
	}

	return nil
}
