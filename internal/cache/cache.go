// Package cache persists resource listings in a durable key-value store.
// It is an explicit write-through attached to the state store: every
// applied commit of a persisted resource overwrites its key wholesale,
// and Warm reloads the keys once at startup. The cached copies are
// advisory; the backend remains authoritative.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/state"
)

// ErrNotFound is returned by Load when a key has never been written.
var ErrNotFound = errors.New("cache: key not found")

// Persister stores JSON-encoded listings under their resource name.
type Persister interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Memory is an in-process Persister used in tests and when no durable
// store is configured.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemory creates an empty in-process persister.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

// Save stores a value under key.
func (p *Memory) Save(_ context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[key] = append([]byte(nil), value...)
	return nil
}

// Load retrieves the value stored under key.
func (p *Memory) Load(_ context.Context, key string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// persisted is the set of resources mirrored into the key-value store.
// Inventory and notifications are deliberately not persisted.
var persisted = map[state.Resource]bool{
	state.Products:   true,
	state.Customers:  true,
	state.Orders:     true,
	state.Categories: true,
}

// WriteThrough mirrors state store commits into a Persister.
type WriteThrough struct {
	store *state.Store
	p     Persister
	log   *zap.Logger
}

// NewWriteThrough creates a write-through cache over the given store.
// A nil logger disables logging.
func NewWriteThrough(store *state.Store, p Persister, log *zap.Logger) *WriteThrough {
	if log == nil {
		log = zap.NewNop()
	}
	return &WriteThrough{store: store, p: p, log: log}
}

// Attach subscribes to the store so every applied commit of a persisted
// resource is written through. Persistence failures are logged and
// swallowed; the cache never blocks an operation.
func (w *WriteThrough) Attach(ctx context.Context) {
	w.store.Subscribe(func(r state.Resource) {
		if !persisted[r] {
			return
		}
		if err := w.persist(ctx, r); err != nil {
			w.log.Warn("cache write-through failed",
				zap.String("resource", string(r)), zap.Error(err))
		}
	})
}

func (w *WriteThrough) persist(ctx context.Context, r state.Resource) error {
	var v any
	switch r {
	case state.Products:
		v = w.store.Products()
	case state.Customers:
		v = w.store.Customers()
	case state.Orders:
		v = w.store.Orders()
	case state.Categories:
		v = w.store.Categories()
	default:
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.p.Save(ctx, string(r), data)
}

// Warm loads the persisted keys into the store. Missing keys are skipped;
// decode failures are logged and skipped. The warmed listings are
// replaced by the first live reload of each resource.
func (w *WriteThrough) Warm(ctx context.Context) {
	if data, err := w.p.Load(ctx, string(state.Products)); err == nil {
		var list []models.Product
		if err := json.Unmarshal(data, &list); err == nil {
			w.store.SetProducts(w.store.Begin(state.Products), list)
		} else {
			w.log.Warn("discarding cached products", zap.Error(err))
		}
	}
	if data, err := w.p.Load(ctx, string(state.Customers)); err == nil {
		var list []models.Customer
		if err := json.Unmarshal(data, &list); err == nil {
			w.store.SetCustomers(w.store.Begin(state.Customers), list)
		} else {
			w.log.Warn("discarding cached customers", zap.Error(err))
		}
	}
	if data, err := w.p.Load(ctx, string(state.Orders)); err == nil {
		var list []models.Order
		if err := json.Unmarshal(data, &list); err == nil {
			w.store.SetOrders(w.store.Begin(state.Orders), list)
		} else {
			w.log.Warn("discarding cached orders", zap.Error(err))
		}
	}
	if data, err := w.p.Load(ctx, string(state.Categories)); err == nil {
		var list []models.Category
		if err := json.Unmarshal(data, &list); err == nil {
			w.store.SetCategories(w.store.Begin(state.Categories), list)
		} else {
			w.log.Warn("discarding cached categories", zap.Error(err))
		}
	}
}
