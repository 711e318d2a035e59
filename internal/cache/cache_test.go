package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pmurley/draft-bot/internal/models"
	"github.com/pmurley/draft-bot/pkg/logger"
)

func testDraftState(marker string) *models.DraftState {
	return &models.DraftState{
		Picks: []models.DraftPick{
			{Player: models.Player{Name: marker, Team: "BUF", Position: models.PosQB}, Owner: "Dan"},
		},
		Teams: []models.TeamEntry{{Owner: "Dan", TeamName: "Dan's Dynasty"}},
	}
}

func TestGetOrFetchCachesWithinTTL(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	calls := 0
	fetch := func() (*models.DraftState, error) {
		calls++
		return testDraftState("fresh"), nil
	}

	for i := 0; i < 3; i++ {
		state, err := c.GetOrFetch("sheet:0:A1:V24", fetch)
		if err != nil {
			t.Fatalf("GetOrFetch failed: %v", err)
		}
		if state.Picks[0].Player.Name != "fresh" {
			t.Fatalf("unexpected state: %v", state.Picks[0].Player.Name)
		}
	}

	if calls != 1 {
		t.Errorf("fetch ran %d times within TTL, want 1", calls)
	}
}

func TestGetOrFetchExpiryTriggersRefetch(t *testing.T) {
	c := New(30*time.Millisecond, logger.New("error"))

	calls := 0
	fetch := func() (*models.DraftState, error) {
		calls++
		return testDraftState("fresh"), nil
	}

	if _, err := c.GetOrFetch("key", fetch); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrFetch("key", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("fetch ran %d times before expiry, want 1", calls)
	}

	time.Sleep(60 * time.Millisecond)

	if _, err := c.GetOrFetch("key", fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times after expiry, want 2", calls)
	}
}

func TestGetOrFetchRetriesOnce(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	calls := 0
	fetch := func() (*models.DraftState, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient failure")
		}
		return testDraftState("second try"), nil
	}

	state, err := c.GetOrFetch("key", fetch)
	if err != nil {
		t.Fatalf("retry should have recovered: %v", err)
	}
	if calls != 2 {
		t.Errorf("fetch ran %d times, want 2 (original plus one retry)", calls)
	}
	if state.Picks[0].Player.Name != "second try" {
		t.Errorf("unexpected state after retry: %v", state.Picks[0].Player.Name)
	}
}

func TestGetOrFetchFailureLeavesCacheEmpty(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	calls := 0
	failing := func() (*models.DraftState, error) {
		calls++
		return nil, errors.New("sheet unreachable")
	}

	if _, err := c.GetOrFetch("key", failing); err == nil {
		t.Fatal("expected error after retry exhausted")
	}
	if calls != 2 {
		t.Fatalf("fetch ran %d times, want exactly 2", calls)
	}

	// The slot stayed empty, so the next call retries cleanly
	good := func() (*models.DraftState, error) {
		return testDraftState("recovered"), nil
	}
	state, err := c.GetOrFetch("key", good)
	if err != nil {
		t.Fatalf("clean retry failed: %v", err)
	}
	if state.Picks[0].Player.Name != "recovered" {
		t.Errorf("unexpected state: %v", state.Picks[0].Player.Name)
	}
}

func TestGetOrFetchFailedRefreshKeepsValidEntry(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	if _, err := c.GetOrFetch("old-coords", func() (*models.DraftState, error) {
		return testDraftState("old"), nil
	}); err != nil {
		t.Fatal(err)
	}

	// A request for new coordinates whose fetch fails must not evict the
	// still-valid entry
	if _, err := c.GetOrFetch("new-coords", func() (*models.DraftState, error) {
		return nil, errors.New("fetch failed")
	}); err == nil {
		t.Fatal("expected error for failed fetch of new coordinates")
	}

	calls := 0
	state, err := c.GetOrFetch("old-coords", func() (*models.DraftState, error) {
		calls++
		return testDraftState("refetched"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 || state.Picks[0].Player.Name != "old" {
		t.Error("still-valid entry was evicted by a failed fetch for other coordinates")
	}
}

func TestGetOrFetchSingleSlot(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	if _, err := c.GetOrFetch("first", func() (*models.DraftState, error) {
		return testDraftState("first"), nil
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.GetOrFetch("second", func() (*models.DraftState, error) {
		return testDraftState("second"), nil
	}); err != nil {
		t.Fatal(err)
	}

	// The first entry was evicted when the second was stored
	calls := 0
	state, err := c.GetOrFetch("first", func() (*models.DraftState, error) {
		calls++
		return testDraftState("first again"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 || state.Picks[0].Player.Name != "first again" {
		t.Error("single-slot cache retained more than the most recent entry")
	}
}

func TestGetOrFetchReturnsCopies(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	fetch := func() (*models.DraftState, error) {
		return testDraftState("original"), nil
	}

	first, err := c.GetOrFetch("key", fetch)
	if err != nil {
		t.Fatal(err)
	}
	first.Picks[0].Owner = "Mutated"

	second, err := c.GetOrFetch("key", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if second.Picks[0].Owner != "Dan" {
		t.Error("mutating a returned state leaked into cache-internal storage")
	}
}

func TestGetOrFetchConcurrentSingleFlight(t *testing.T) {
	c := New(time.Minute, logger.New("error"))

	var mu sync.Mutex
	calls := 0
	fetch := func() (*models.DraftState, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		return testDraftState("shared"), nil
	}

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := c.GetOrFetch("key", fetch)
			if err != nil {
				t.Errorf("concurrent GetOrFetch failed: %v", err)
				return
			}
			if state.Picks[0].Player.Name != "shared" {
				t.Errorf("unexpected state: %v", state.Picks[0].Player.Name)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("%d concurrent callers triggered %d fetches, want 1", n, calls)
	}
}
