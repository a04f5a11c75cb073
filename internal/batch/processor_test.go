package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/models"
)

type fakeExecutor struct {
	mu       sync.Mutex
	seen     []string
	inFlight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
}

func (f *fakeExecutor) Execute(ctx context.Context, req models.SolveRequest) models.SolveResult {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.peak.Load()
		if n <= peak || f.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(f.delay)

	f.mu.Lock()
	f.seen = append(f.seen, req.RequestID)
	f.mu.Unlock()

	return models.SolveResult{ID: req.RequestID, Day: req.Day, Part: req.Part, Status: models.StatusOK, Answer: "42"}
}

func TestProcessor_Process(t *testing.T) {
	exec := &fakeExecutor{delay: 5 * time.Millisecond}
	processor := NewProcessor(exec, 2, newTestLogger())

	records := []InputRecord{
		{LineNumber: 1, Request: models.SolveRequest{RequestID: "a", Day: 1, Part: 1, Input: "+1"}},
		{LineNumber: 2, Request: models.SolveRequest{RequestID: "b", Day: 1, Part: 2, Input: "+1"}},
		{LineNumber: 3, Error: errors.New("line 3: bad json")},
		{LineNumber: 4, Request: models.SolveRequest{RequestID: "d", Day: 2, Part: 1, Input: "ab"}},
		{LineNumber: 5, Request: models.SolveRequest{RequestID: "e", Day: 2, Part: 2, Input: "ab"}},
	}

	byID := map[string]models.SolveResult{}
	for result := range processor.Process(context.Background(), records) {
		byID[result.ID] = result
	}

	if len(byID) != 5 {
		t.Fatalf("expected 5 results, got %d: %v", len(byID), byID)
	}
	if got := byID["line-3"]; got.Status != models.StatusInvalidInput || got.Error == "" {
		t.Errorf("expected invalid_input for undecodable line, got %+v", got)
	}
	if len(exec.seen) != 4 {
		t.Errorf("expected 4 executed requests, got %d", len(exec.seen))
	}
	if peak := exec.peak.Load(); peak > 2 {
		t.Errorf("expected at most 2 concurrent requests, got %d", peak)
	}
}

func TestProcessor_Canceled(t *testing.T) {
	exec := &fakeExecutor{}
	processor := NewProcessor(exec, 4, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := make([]InputRecord, 50)
	for i := range records {
		records[i] = InputRecord{LineNumber: i + 1, Request: models.SolveRequest{Day: 1, Part: 1, Input: "+1"}}
	}

	count := 0
	for range processor.Process(ctx, records) {
		count++
	}
	if count != 0 {
		t.Errorf("expected no results for a canceled batch, got %d", count)
	}
}
