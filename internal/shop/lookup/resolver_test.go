package lookup

import (
	"sync"
	"testing"
)

func TestDeliverLatestWins(t *testing.T) {
	r := NewResolver()

	first := r.Begin()
	second := r.Begin()

	var applied []uint64
	record := func(token uint64) func() {
		return func() { applied = append(applied, token) }
	}

	// The stale response arrives after a newer query began: dropped.
	if r.Deliver(first, record(first)) {
		t.Error("stale token should be discarded")
	}
	if !r.Deliver(second, record(second)) {
		t.Error("latest token should be accepted")
	}
	if len(applied) != 1 || applied[0] != second {
		t.Errorf("only the latest result should apply, got %v", applied)
	}
}

func TestDeliverOutOfOrderArrival(t *testing.T) {
	r := NewResolver()

	a := r.Begin()
	b := r.Begin()

	// Newest result arrives first, then the old one trails in.
	if !r.Deliver(b, nil) {
		t.Error("newest token should be accepted")
	}
	if r.Deliver(a, nil) {
		t.Error("trailing stale token should be discarded")
	}
	// Re-delivery of an already accepted token is also rejected.
	if r.Deliver(b, nil) {
		t.Error("duplicate delivery should be discarded")
	}
}

func TestCancelExpiresInflight(t *testing.T) {
	r := NewResolver()
	token := r.Begin()
	r.Cancel()

	if r.Deliver(token, nil) {
		t.Error("cancelled query result should be discarded")
	}
}

func TestCurrent(t *testing.T) {
	r := NewResolver()
	if r.Current() != 0 {
		t.Error("fresh resolver should report 0")
	}
	tok := r.Begin()
	if r.Current() != tok {
		t.Error("Current should report the token just issued")
	}
}

func TestConcurrentBeginUnique(t *testing.T) {
	r := NewResolver()
	const n = 100

	tokens := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens <- r.Begin()
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[uint64]bool)
	for tok := range tokens {
		if seen[tok] {
			t.Fatalf("duplicate token issued: %d", tok)
		}
		seen[tok] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d unique tokens, got %d", n, len(seen))
	}
}
