package usecasees

import (
	"context"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"saarthi/internal/controllers"
	"saarthi/internal/usecasees/structs"
	"saarthi/models"

	"github.com/ic2hrmk/promtail"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// priceUseCase owns the latest-price cache and the fan-out to stream
// subscribers. The cache has a single writer (the polling loops) and
// many readers (sizing, REST price reads, deliveries).
type priceUseCase struct {
	exchangeController controllers.ExchangeCtrl

	registry *ConnRegistry

	metrics map[structs.MetricConst]prometheus.Counter

	pollInterval    time.Duration
	refreshInterval time.Duration

	mu      sync.RWMutex
	tickers map[string]models.Price

	logRus   *logrus.Logger
	promTail promtail.Client
}

func NewPriceUseCase(
	exchange controllers.ExchangeCtrl,
	registry *ConnRegistry,
	metrics map[structs.MetricConst]prometheus.Counter,
	pollInterval time.Duration,
	refreshInterval time.Duration,
	logRus *logrus.Logger,
	promTail promtail.Client,
) *priceUseCase {
	return &priceUseCase{
		exchangeController: exchange,
		registry:           registry,
		metrics:            metrics,
		pollInterval:       pollInterval,
		refreshInterval:    refreshInterval,
		tickers:            make(map[string]models.Price),
		logRus:             logRus,
		promTail:           promTail,
	}
}

// Monitoring refreshes the whole ticker cache on a slow interval. This
// keeps the securities list and sizing reads fresh even for symbols
// nobody streams.
func (u *priceUseCase) Monitoring(ctx context.Context) error {
	if err := u.refresh(); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}

	ticker := time.NewTicker(u.refreshInterval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := u.refresh(); err != nil {
					u.logRus.
						WithError(err).
						Error(string(debug.Stack()))
					u.promTail.Errorf("priceUseCase: %+v %s", err, debug.Stack())
				}
			}
		}
	}()

	return nil
}

// Broadcasting polls the exchange on the fast interval and fans ticks
// for subscribed symbols out through the registry. One ticker fetch
// covers the whole tick, however many symbols are active; with no
// subscribers the exchange is not polled at all.
func (u *priceUseCase) Broadcasting(ctx context.Context) error {
	ticker := time.NewTicker(u.pollInterval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				symbols := u.registry.ActiveSymbols()
				if len(symbols) == 0 {
					continue
				}

				tickers, err := u.exchangeController.FetchTickers()
				if err != nil {
					u.logRus.
						WithError(err).
						Error(string(debug.Stack()))

					continue
				}

				now := time.Now()

				for _, symbol := range symbols {
					price, ok := tickers[symbol]
					if !ok {
						continue
					}

					tick := models.Price{
						Symbol: symbol,
						Price:  price,
						Ts:     now,
					}

					u.store(tick)

					delivered := u.registry.Publish(tick)
					for i := 0; i < delivered; i++ {
						u.metrics[structs.MetricPriceFanout].Inc()
					}
				}
			}
		}
	}()

	return nil
}

func (u *priceUseCase) refresh() error {
	tickers, err := u.exchangeController.FetchTickers()
	if err != nil {
		return err
	}

	now := time.Now()

	u.mu.Lock()
	defer u.mu.Unlock()

	for symbol, price := range tickers {
		u.tickers[symbol] = models.Price{
			Symbol: symbol,
			Price:  price,
			Ts:     now,
		}
	}

	return nil
}

// store keeps only the newest observation per symbol.
func (u *priceUseCase) store(tick models.Price) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if cached, ok := u.tickers[tick.Symbol]; ok && !tick.Ts.After(cached.Ts) {
		return
	}

	u.tickers[tick.Symbol] = tick
}

func (u *priceUseCase) GetPrice(symbol string) (float64, error) {
	symbol = strings.ToUpper(symbol)

	u.mu.RLock()
	tick, ok := u.tickers[symbol]
	u.mu.RUnlock()

	if ok {
		return tick.Price, nil
	}

	return 0, structs.ErrSymbolNotFound
}

func (u *priceUseCase) LastTick(symbol string) (models.Price, error) {
	symbol = strings.ToUpper(symbol)

	u.mu.RLock()
	tick, ok := u.tickers[symbol]
	u.mu.RUnlock()

	if ok {
		return tick, nil
	}

	return models.Price{}, structs.ErrSymbolNotFound
}

// Supported reports whether the symbol is a known security.
func (u *priceUseCase) Supported(symbol string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	_, ok := u.tickers[strings.ToUpper(symbol)]

	return ok
}

// Securities lists every known symbol in sorted order.
func (u *priceUseCase) Securities() []string {
	u.mu.RLock()
	out := make([]string, 0, len(u.tickers))
	for symbol := range u.tickers {
		out = append(out, symbol)
	}
	u.mu.RUnlock()

	sort.Strings(out)

	return out
}
