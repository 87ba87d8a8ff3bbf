package ticker

import (
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"patterns/internal/domain"
)

type registration struct {
	name     string
	listener domain.Listener
}

// StockTicker is the in-memory price table.
type StockTicker struct {
	prices    map[string]decimal.Decimal
	order     []string
	listeners []registration
	log       *zap.Logger
}

var _ domain.StockStore = (*StockTicker)(nil)

// New returns an empty ticker. A nil logger disables logging.
func New(log *zap.Logger) *StockTicker {
	if log == nil {
		log = zap.NewNop()
	}
	return &StockTicker{
		prices: make(map[string]decimal.Decimal),
		log:    log,
	}
}

// AddListener registers l under name. The same listener may be added twice.
func (t *StockTicker) AddListener(name string, l domain.Listener) {
	t.listeners = append(t.listeners, registration{name: name, listener: l})
	t.log.Debug("listener added", zap.String("stock", name), zap.Int("listeners", len(t.listeners)))
}

// Listeners returns the registered listeners in registration order.
func (t *StockTicker) Listeners() []domain.Listener {
	out := make([]domain.Listener, 0, len(t.listeners))
	for _, r := range t.listeners {
		out = append(out, r.listener)
	}
	return out
}

// SetPrice stores price for name and notifies every listener. An existing
// stock whose price is unchanged is left alone and nobody is notified.
func (t *StockTicker) SetPrice(name string, price decimal.Decimal) bool {
	old, ok := t.prices[name]
	if ok && old.Equal(price) {
		t.log.Debug("price unchanged", zap.String("stock", name), zap.Stringer("price", price))
		return false
	}
	if !ok {
		t.order = append(t.order, name)
	}
	t.prices[name] = price
	t.log.Debug("price set", zap.String("stock", name), zap.Stringer("price", price), zap.Bool("new", !ok))
	t.notify(price)
	return true
}

// RemoveStock deletes name and the listeners registered under it.
// It returns domain.ErrNotFound, and changes nothing, if name is unknown.
func (t *StockTicker) RemoveStock(name string) error {
	if _, ok := t.prices[name]; !ok {
		return fmt.Errorf("stock %s: %w", name, domain.ErrNotFound)
	}
	delete(t.prices, name)
	t.order = slices.DeleteFunc(t.order, func(n string) bool { return n == name })

	before := len(t.listeners)
	t.listeners = slices.DeleteFunc(t.listeners, func(r registration) bool { return r.name == name })
	t.log.Debug("stock removed", zap.String("stock", name), zap.Int("listeners_removed", before-len(t.listeners)))
	return nil
}

// Prices returns the current stocks in insertion order.
func (t *StockTicker) Prices() []domain.Stock {
	out := make([]domain.Stock, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, domain.Stock{Name: name, Price: t.prices[name]})
	}
	return out
}

// Print writes the price table to w.
func (t *StockTicker) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Current stock prices:"); err != nil {
		return err
	}
	for _, s := range t.Prices() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", s.Name, s.Price.String()); err != nil {
			return err
		}
	}
	return nil
}

func (t *StockTicker) notify(price decimal.Decimal) {
	for _, r := range t.listeners {
		r.listener.Update(price)
	}
	t.log.Debug("listeners notified", zap.Int("count", len(t.listeners)))
}
