package policy

import (
	"math"
	"sync"
	"testing"

	"law-agent-be/pkg/legal"
)

func upvote(domain legal.Domain) Event {
	return Event{
		SessionID:     "s1",
		InteractionID: "i1",
		Sequence:      1,
		Domain:        domain,
		Confidence:    0.8,
		Feedback:      legal.FeedbackUpvote,
	}
}

func TestReward(t *testing.T) {
	tests := []struct {
		name      string
		feedback  legal.Feedback
		timeSpent float64
		want      float64
	}{
		{"upvote", legal.FeedbackUpvote, 0, 1.0},
		{"downvote", legal.FeedbackDownvote, 0, -1.0},
		{"neutral", legal.FeedbackNeutral, 0, 0},
		{"upvote capped with engagement", legal.FeedbackUpvote, 60, 1.0},
		{"downvote softened by engagement", legal.FeedbackDownvote, 60, -0.9},
		{"neutral with engagement", legal.FeedbackNeutral, 60, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Feedback: tt.feedback, TimeSpent: tt.timeSpent}
			if got := ev.Reward(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Reward() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdapterRecord(t *testing.T) {
	a := NewAdapter(0.05, 0.1, 10)

	ev := upvote(legal.DomainFamilyLaw)
	a.Record(ev)

	snap := a.Snapshot()
	if got := snap.Weight(legal.DomainFamilyLaw); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("family weight = %v, want 1.05", got)
	}
	if got := snap.Weight(legal.DomainTaxLaw); got != 1.0 {
		t.Errorf("untouched weight = %v, want 1.0", got)
	}
	if snap.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Version)
	}

	ev.Feedback = legal.FeedbackDownvote
	a.Record(ev)
	a.Record(ev)

	if got := a.Snapshot().Weight(legal.DomainFamilyLaw); math.Abs(got-0.95) > 1e-9 {
		t.Errorf("family weight after two downvotes = %v, want 0.95", got)
	}
}

func TestAdapterIgnoresUnknownAndNeutral(t *testing.T) {
	a := NewAdapter(0.05, 0.1, 10)

	ev := upvote(legal.DomainUnknown)
	a.Record(ev)

	neutral := upvote(legal.DomainFamilyLaw)
	neutral.Feedback = legal.FeedbackNeutral
	a.Record(neutral)

	snap := a.Snapshot()
	if snap.Version != 0 {
		t.Errorf("Version = %d, want 0 (no weight change)", snap.Version)
	}
}

func TestAdapterClipping(t *testing.T) {
	a := NewAdapter(0.5, 0.8, 1.6)

	ev := upvote(legal.DomainCriminalLaw)
	for i := 0; i < 5; i++ {
		a.Record(ev)
	}
	if got := a.Snapshot().Weight(legal.DomainCriminalLaw); got != 1.6 {
		t.Errorf("weight = %v, want clipped to 1.6", got)
	}

	ev.Feedback = legal.FeedbackDownvote
	for i := 0; i < 5; i++ {
		a.Record(ev)
	}
	if got := a.Snapshot().Weight(legal.DomainCriminalLaw); got != 0.8 {
		t.Errorf("weight = %v, want clipped to 0.8", got)
	}
}

func TestAdapterTenPositiveEvents(t *testing.T) {
	a := NewAdapter(0.05, 0.1, 10)

	for i := 0; i < 10; i++ {
		a.Record(upvote(legal.DomainEmploymentLaw))
	}

	snap := a.Snapshot()
	if got := snap.Weight(legal.DomainEmploymentLaw); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("weight after 10 upvotes = %v, want 1.5", got)
	}
	if snap.Version != 10 {
		t.Errorf("Version = %d, want 10", snap.Version)
	}
}

func TestSnapshotIsImmutableUnderConcurrentRecords(t *testing.T) {
	a := NewAdapter(0.05, 0.1, 10)

	before := a.Snapshot()
	weightBefore := before.Weight(legal.DomainFamilyLaw)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Record(upvote(legal.DomainFamilyLaw))
		}()
	}
	wg.Wait()

	// The snapshot taken before the writes must not have moved.
	if got := before.Weight(legal.DomainFamilyLaw); got != weightBefore {
		t.Errorf("old snapshot mutated: %v, want %v", got, weightBefore)
	}

	after := a.Snapshot()
	if math.Abs(after.Weight(legal.DomainFamilyLaw)-3.5) > 1e-9 {
		t.Errorf("weight after 50 upvotes = %v, want 3.5", after.Weight(legal.DomainFamilyLaw))
	}
	if after.Version != 50 {
		t.Errorf("Version = %d, want 50", after.Version)
	}
}
