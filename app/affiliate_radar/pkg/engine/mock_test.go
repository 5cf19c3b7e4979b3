package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestMockAnalyzer_Analyze(t *testing.T) {
	var states []State
	m := NewMockAnalyzer(20*time.Millisecond, WithTransitionHook(func(s State) { states = append(states, s) }))

	start := time.Now()
	result, err := m.Analyze(context.Background(), "https://point.example/anything")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, want at least the configured delay", elapsed)
	}
	if !reflect.DeepEqual(result, MockResult()) {
		t.Errorf("result = %+v, want fixed mock payload", result)
	}
	if result.ServiceName != "Mock Service (Gemini Example)" || result.Reward != "1,000 Points (1,000 JPY)" {
		t.Errorf("listing = %+v", result.ExtractedListing)
	}
	if len(result.AffiliateInfo) != 2 || result.AffiliateInfo[0].Link != "https://www.a8.net/" {
		t.Errorf("AffiliateInfo = %+v", result.AffiliateInfo)
	}
	if !reflect.DeepEqual(states, []State{StateDone}) {
		t.Errorf("states = %v, want [done]", states)
	}
	if m.Mode() != ModeMock {
		t.Errorf("Mode() = %q", m.Mode())
	}
}

func TestMockAnalyzer_IndependentCopies(t *testing.T) {
	m := NewMockAnalyzer(0)
	first, _ := m.Analyze(context.Background(), "https://a.example")
	first.Conditions[0] = "mutated"
	second, _ := m.Analyze(context.Background(), "https://b.example")
	if second.Conditions[0] != "New registration" {
		t.Errorf("second result shares state with first: %q", second.Conditions[0])
	}
}

func TestMockAnalyzer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockAnalyzer(time.Hour).Analyze(ctx, "https://a.example")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Analyze() error = %v, want context.Canceled", err)
	}
}
