package session

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborlane/storefront-api/cart"
	"github.com/harborlane/storefront-api/catalog"
	"github.com/harborlane/storefront-api/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load([]models.Product{{
		ID: 1, Name: "Classic Polo", Category: "Polo Shirts",
		BasePrice: decimal.RequireFromString("89.50"),
		Sizes:     []string{"M"}, Colors: []string{"Navy"},
		Rating: 4.5, ReviewsCount: 10,
	}})
	if err != nil {
		t.Fatalf("test catalog must load: %v", err)
	}
	return c
}

func TestCreateAndGet(t *testing.T) {
	mgr := NewManager(time.Hour)

	s := mgr.Create()
	if s.ID == "" {
		t.Fatalf("expected a session id")
	}
	if s.Cart == nil || s.Cart.Len() != 0 {
		t.Fatalf("expected a fresh empty cart")
	}

	got, ok := mgr.Get(s.ID)
	if !ok || got != s {
		t.Fatalf("expected to resolve the created session")
	}
	if _, ok := mgr.Get("no-such-session"); ok {
		t.Fatalf("expected unknown id to be absent")
	}
}

func TestSessionsOwnSeparateCarts(t *testing.T) {
	cat := testCatalog(t)
	mgr := NewManager(time.Hour)

	a, b := mgr.Create(), mgr.Create()
	_ = a.Do(func(c *cart.Cart) error {
		return c.Add(cat, 1, "M", "Navy")
	})

	if b.Cart.Len() != 0 {
		t.Fatalf("cart leaked across sessions")
	}
}

func TestExpiredSessionIsDroppedOnGet(t *testing.T) {
	mgr := NewManager(10 * time.Millisecond)
	s := mgr.Create()

	time.Sleep(20 * time.Millisecond)

	if _, ok := mgr.Get(s.ID); ok {
		t.Fatalf("expected expired session to be absent")
	}
	if mgr.Len() != 0 {
		t.Fatalf("expected expired session to be removed from the registry")
	}
}

func TestSweepRemovesOnlyExpiredSessions(t *testing.T) {
	mgr := NewManager(10 * time.Millisecond)
	expired := mgr.Create()

	time.Sleep(20 * time.Millisecond)
	mgr.ttl = time.Hour
	live := mgr.Create()

	if n := mgr.sweep(); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if _, ok := mgr.Get(live.ID); !ok {
		t.Fatalf("live session swept")
	}
	if _, ok := mgr.Get(expired.ID); ok {
		t.Fatalf("expired session survived sweep")
	}
}

// Concurrent handlers funnel through Do; the cart itself is lock-free.
func TestDoSerializesCartMutations(t *testing.T) {
	cat := testCatalog(t)
	mgr := NewManager(time.Hour)
	s := mgr.Create()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = s.Do(func(c *cart.Cart) error {
				return c.Add(cat, 1, "M", "Navy")
			})
		}()
	}
	wg.Wait()

	lines := s.Cart.Lines()
	if len(lines) != 1 || lines[0].Quantity != n {
		t.Fatalf("expected one line with quantity %d, got %v", n, lines)
	}
}
