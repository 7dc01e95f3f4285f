package state

import (
	"sync"
	"testing"

	"github.com/retailops/storeadmin/internal/models"
)

func TestStore_CommitAndRead(t *testing.T) {
	s := New()

	token := s.Begin(Products)
	applied := s.SetProducts(token, []models.Product{{ID: 1, Name: "Lamp"}})
	if !applied {
		t.Fatal("expected commit to apply")
	}

	got := s.Products()
	if len(got) != 1 || got[0].Name != "Lamp" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestStore_StaleCommitDiscarded(t *testing.T) {
	s := New()

	first := s.Begin(Products)
	second := s.Begin(Products)

	// The newer load's response lands first.
	if !s.SetProducts(second, []models.Product{{ID: 2, Name: "Desk"}}) {
		t.Fatal("expected latest commit to apply")
	}

	// The older load's slow response must not overwrite it.
	if s.SetProducts(first, []models.Product{{ID: 1, Name: "Lamp"}}) {
		t.Fatal("expected stale commit to be discarded")
	}

	got := s.Products()
	if len(got) != 1 || got[0].Name != "Desk" {
		t.Fatalf("expected latest listing to survive, got %+v", got)
	}
}

func TestStore_TokensAreIndependentPerResource(t *testing.T) {
	s := New()

	productToken := s.Begin(Products)
	s.Begin(Customers) // a customers load must not invalidate products

	if !s.SetProducts(productToken, []models.Product{{ID: 1}}) {
		t.Fatal("expected products commit to apply")
	}
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := New()
	s.SetProducts(s.Begin(Products), []models.Product{{ID: 1, Name: "Lamp"}})

	got := s.Products()
	got[0].Name = "mutated"

	if s.Products()[0].Name != "Lamp" {
		t.Error("expected store listing to be isolated from caller mutation")
	}
}

func TestStore_SubscribeNotifiesOnAppliedCommits(t *testing.T) {
	s := New()

	var events []Resource
	s.Subscribe(func(r Resource) { events = append(events, r) })

	s.SetProducts(s.Begin(Products), nil)
	s.SetOrders(s.Begin(Orders), nil)

	stale := s.Begin(Customers)
	s.Begin(Customers)
	s.SetCustomers(stale, nil) // discarded, must not notify

	if len(events) != 2 || events[0] != Products || events[1] != Orders {
		t.Fatalf("unexpected events: %v", events)
	}
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	s := New()

	var seen int
	s.Subscribe(func(r Resource) {
		if r == Products {
			seen = len(s.Products())
		}
	})

	s.SetProducts(s.Begin(Products), []models.Product{{ID: 1}, {ID: 2}})

	if seen != 2 {
		t.Fatalf("expected subscriber to observe 2 products, got %d", seen)
	}
}

func TestStore_ConcurrentLoads(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			token := s.Begin(Products)
			s.SetProducts(token, []models.Product{{ID: n}})
			s.Products()
		}(i)
	}
	wg.Wait()

	if len(s.Products()) != 1 {
		t.Fatalf("expected exactly one listing after concurrent loads, got %d items", len(s.Products()))
	}
}
