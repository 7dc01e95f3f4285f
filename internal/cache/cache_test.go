package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/state"
)

func TestMemory_SaveLoad(t *testing.T) {
	p := NewMemory()
	ctx := context.Background()

	if _, err := p.Load(ctx, "products"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unwritten key, got %v", err)
	}

	if err := p.Save(ctx, "products", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := p.Load(ctx, "products")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("expected stored value back, got %s", got)
	}
}

func TestWriteThrough_PersistsAppliedCommits(t *testing.T) {
	store := state.New()
	p := NewMemory()
	ctx := context.Background()

	NewWriteThrough(store, p, nil).Attach(ctx)

	store.SetProducts(store.Begin(state.Products), []models.Product{{ID: 1, Name: "Lamp"}})

	data, err := p.Load(ctx, string(state.Products))
	if err != nil {
		t.Fatalf("expected products key to be written: %v", err)
	}
	var list []models.Product
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("decoding cached listing: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Lamp" {
		t.Errorf("unexpected cached listing: %+v", list)
	}
}

func TestWriteThrough_SkipsInventory(t *testing.T) {
	store := state.New()
	p := NewMemory()
	ctx := context.Background()

	NewWriteThrough(store, p, nil).Attach(ctx)

	store.SetInventory(store.Begin(state.Inventory), []models.InventoryItem{{ProductID: 1}})

	if _, err := p.Load(ctx, string(state.Inventory)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected inventory to stay out of the cache, got %v", err)
	}
}

func TestWriteThrough_WarmPopulatesStore(t *testing.T) {
	p := NewMemory()
	ctx := context.Background()

	data, _ := json.Marshal([]models.Customer{{ID: 4, Name: "Dana"}})
	p.Save(ctx, string(state.Customers), data)
	p.Save(ctx, string(state.Orders), []byte(`{broken`)) // must be skipped

	store := state.New()
	NewWriteThrough(store, p, nil).Warm(ctx)

	customers := store.Customers()
	if len(customers) != 1 || customers[0].Name != "Dana" {
		t.Fatalf("expected warmed customers, got %+v", customers)
	}
	if len(store.Orders()) != 0 {
		t.Error("expected undecodable cached orders to be discarded")
	}
}

// failingPersister always fails; write-through must swallow the error.
type failingPersister struct{}

func (failingPersister) Save(context.Context, string, []byte) error {
	return errors.New("persister down")
}
func (failingPersister) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("persister down")
}

func TestWriteThrough_PersistFailureDoesNotBlockCommit(t *testing.T) {
	store := state.New()
	NewWriteThrough(store, failingPersister{}, nil).Attach(context.Background())

	if !store.SetProducts(store.Begin(state.Products), []models.Product{{ID: 1}}) {
		t.Fatal("expected commit to apply despite persister failure")
	}
	if len(store.Products()) != 1 {
		t.Fatal("expected listing to be readable despite persister failure")
	}
}
