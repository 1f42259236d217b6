package policy

import (
	"sync"

	"law-agent-be/pkg/legal"
)

// State is an immutable point-in-time view of per-domain selection
// weights. Callers may read it freely without locking; the adapter
// never mutates a snapshot after handing it out.
type State struct {
	Weights map[legal.Domain]float64
	Version uint64
}

// Weight returns the weight for d, or the neutral weight 1.0 when the
// domain has never been adjusted.
func (s *State) Weight(d legal.Domain) float64 {
	if s == nil || s.Weights == nil {
		return 1.0
	}
	if w, ok := s.Weights[d]; ok {
		return w
	}
	return 1.0
}

// Event is one outcome observation for a past interaction.
type Event struct {
	SessionID     string         `json:"session_id"`
	InteractionID string         `json:"interaction_id"`
	Sequence      int            `json:"sequence"`
	Domain        legal.Domain   `json:"domain"`
	Confidence    float64        `json:"confidence"`
	Feedback      legal.Feedback `json:"feedback"`
	TimeSpent     float64        `json:"time_spent,omitempty"`
}

// Reward converts the feedback signal into a scalar reward. Time spent
// on the answer softens a downvote and strengthens an upvote a little,
// mirroring how engagement was scored upstream of this adapter.
func (e Event) Reward() float64 {
	var base float64
	switch e.Feedback {
	case legal.FeedbackUpvote:
		base = 1.0
	case legal.FeedbackDownvote:
		base = -1.0
	default:
		base = 0.0
	}
	if e.TimeSpent > 30 {
		base += 0.1
	}
	if base > 1.0 {
		base = 1.0
	}
	return base
}

// Adapter maintains the per-domain weights. Updates go through a
// single mutex and are published as a whole-map swap, so a reader
// calling Snapshot never observes a half-applied update.
type Adapter struct {
	mu      sync.Mutex
	current *State
	step    float64
	minClip float64
	maxClip float64
}

// NewAdapter creates an adapter with every domain at the neutral
// weight. Step is the additive nudge per event; weights are clipped to
// [minClip, maxClip] to prevent runaway dominance of one domain.
func NewAdapter(step, minClip, maxClip float64) *Adapter {
	weights := make(map[legal.Domain]float64, len(legal.Domains))
	for _, d := range legal.Domains {
		weights[d] = 1.0
	}
	return &Adapter{
		current: &State{Weights: weights, Version: 0},
		step:    step,
		minClip: minClip,
		maxClip: maxClip,
	}
}

// Record applies one observation to the weight of the domain the
// event's interaction used. Unknown domains and neutral feedback leave
// the weights untouched.
func (a *Adapter) Record(ev Event) {
	if ev.Domain == legal.DomainUnknown || !ev.Domain.IsValid() {
		return
	}
	reward := ev.Reward()
	if reward == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	next := make(map[legal.Domain]float64, len(a.current.Weights))
	for d, w := range a.current.Weights {
		next[d] = w
	}

	w := next[ev.Domain]
	if w == 0 {
		w = 1.0
	}
	if reward > 0 {
		w += a.step
	} else {
		w -= a.step
	}
	if w < a.minClip {
		w = a.minClip
	}
	if w > a.maxClip {
		w = a.maxClip
	}
	next[ev.Domain] = w

	a.current = &State{Weights: next, Version: a.current.Version + 1}
}

// Snapshot returns the current immutable weighting view.
func (a *Adapter) Snapshot() *State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
