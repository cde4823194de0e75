package usecasees

import (
	"sync"

	"saarthi/internal/usecasees/structs"
	"saarthi/models"
)

// OrderQueue keeps per-user FIFO queues of admitted orders. Each user
// has an independent lock so unrelated users never serialize.
type OrderQueue struct {
	mu     sync.RWMutex
	queues map[string]*userQueue
}

type userQueue struct {
	mu        sync.Mutex
	orders    []*models.Order
	executing float64
}

func NewOrderQueue() *OrderQueue {
	return &OrderQueue{
		queues: make(map[string]*userQueue),
	}
}

func (q *OrderQueue) userQueue(userID string) *userQueue {
	q.mu.Lock()
	defer q.mu.Unlock()

	uq, ok := q.queues[userID]
	if !ok {
		uq = &userQueue{}
		q.queues[userID] = uq
	}

	return uq
}

// Enqueue appends in arrival order. Admission checks happen upstream.
func (q *OrderQueue) Enqueue(userID string, order *models.Order) {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	uq.orders = append(uq.orders, order)
}

// DequeueAll atomically drains the user's queue. An order handed out
// here can never be handed out again. Drained margin stays reserved
// until the caller reports completion through Release.
func (q *OrderQueue) DequeueAll(userID string) []*models.Order {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	out := uq.orders
	uq.orders = nil

	for _, o := range out {
		uq.executing += o.Margin
	}

	return out
}

// Release frees margin held by a drained order once its execution
// reached a terminal state.
func (q *OrderQueue) Release(userID string, margin float64) {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	uq.executing -= margin
	if uq.executing < 0 {
		uq.executing = 0
	}
}

// Cancel removes one queued order. Orders already dequeued for
// execution are gone from here, so they report structs.ErrNotFound.
func (q *OrderQueue) Cancel(userID, orderID string) (*models.Order, error) {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	for i, o := range uq.orders {
		if o.ID == orderID {
			uq.orders = append(uq.orders[:i], uq.orders[i+1:]...)

			return o, nil
		}
	}

	return nil, structs.ErrNotFound
}

// Pending returns a snapshot of the user's queue in FIFO order.
func (q *OrderQueue) Pending(userID string) []*models.Order {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	out := make([]*models.Order, len(uq.orders))
	copy(out, uq.orders)

	return out
}

// Replace swaps the sized fields of a still-queued order in place,
// keeping its id and queue position. An order drained for execution in
// the meantime is out of reach and reports structs.ErrNotFound.
func (q *OrderQueue) Replace(userID, orderID string, next *models.Order) (*models.Order, error) {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	for _, o := range uq.orders {
		if o.ID != orderID {
			continue
		}

		o.Symbol = next.Symbol
		o.Side = next.Side
		o.Type = next.Type
		o.Quantity = next.Quantity
		o.Price = next.Price
		o.Leverage = next.Leverage
		o.RiskPercent = next.RiskPercent
		o.StopLossPrice = next.StopLossPrice
		o.Margin = next.Margin

		return o, nil
	}

	return nil, structs.ErrNotFound
}

// Find returns the queued order with the given id, if still queued.
func (q *OrderQueue) Find(userID, orderID string) (*models.Order, error) {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	for _, o := range uq.orders {
		if o.ID == orderID {
			return o, nil
		}
	}

	return nil, structs.ErrNotFound
}

// ReservedMargin sums the margin held by queued orders plus orders
// drained for execution but not yet terminal. excludeID skips one
// queued order, so an in-place update does not count its own old
// reservation against itself.
func (q *OrderQueue) ReservedMargin(userID, excludeID string) float64 {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	sum := uq.executing
	for _, o := range uq.orders {
		if o.ID == excludeID {
			continue
		}

		sum += o.Margin
	}

	return sum
}

// QueuedNotional sums the position value of queued orders.
func (q *OrderQueue) QueuedNotional(userID, excludeID string) float64 {
	uq := q.userQueue(userID)

	uq.mu.Lock()
	defer uq.mu.Unlock()

	var sum float64
	for _, o := range uq.orders {
		if o.ID == excludeID {
			continue
		}

		sum += o.Notional()
	}

	return sum
}

// Users lists users with a non-empty queue.
func (q *OrderQueue) Users() []string {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var out []string
	for userID, uq := range q.queues {
		uq.mu.Lock()
		n := len(uq.orders)
		uq.mu.Unlock()

		if n > 0 {
			out = append(out, userID)
		}
	}

	return out
}
