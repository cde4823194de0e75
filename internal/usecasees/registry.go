package usecasees

import (
	"sync"

	"saarthi/models"
)

const subscriberBuffer = 64

// ConnRegistry tracks live price-stream connections and their symbol
// interest sets. Delivery runs through per-connection buffered channels
// so one stalled consumer cannot hold up the rest.
type ConnRegistry struct {
	mu    sync.RWMutex
	subs  map[string]map[string]struct{}
	ticks map[string]chan models.Price
}

func NewConnRegistry() *ConnRegistry {
	return &ConnRegistry{
		subs:  make(map[string]map[string]struct{}),
		ticks: make(map[string]chan models.Price),
	}
}

// Register adds a connection and returns its tick channel. The channel
// is never closed; consumers stop reading after Unregister.
func (r *ConnRegistry) Register(connID string) <-chan models.Price {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan models.Price, subscriberBuffer)
	r.subs[connID] = make(map[string]struct{})
	r.ticks[connID] = ch

	return ch
}

// Unregister drops the connection and all of its subscriptions.
func (r *ConnRegistry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs, connID)
	delete(r.ticks, connID)
}

func (r *ConnRegistry) Subscribe(connID, symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.subs[connID]; ok {
		set[symbol] = struct{}{}
	}
}

func (r *ConnRegistry) Unsubscribe(connID, symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.subs[connID]; ok {
		delete(set, symbol)
	}
}

// Publish fans a tick out to every subscriber of its symbol. Sends are
// non-blocking: a full buffer means the tick is dropped for that
// connection only.
func (r *ConnRegistry) Publish(tick models.Price) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var delivered int
	for connID, set := range r.subs {
		if _, ok := set[tick.Symbol]; !ok {
			continue
		}

		select {
		case r.ticks[connID] <- tick:
			delivered++
		default:
		}
	}

	return delivered
}

// ActiveSymbols lists symbols with at least one subscriber.
func (r *ConnRegistry) ActiveSymbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, set := range r.subs {
		for symbol := range set {
			seen[symbol] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for symbol := range seen {
		out = append(out, symbol)
	}

	return out
}

func (r *ConnRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subs)
}
