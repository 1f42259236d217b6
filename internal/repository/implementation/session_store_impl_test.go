package implementation

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"law-agent-be/internal/repository/contract"
	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/store"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestStore() *SessionStore {
	return NewSessionStore(nil, time.Hour, nopLogger{})
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	created, err := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("session id must be assigned")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != "user-1" || got.UserType != legal.UserTypeCommonPerson {
		t.Errorf("got %s/%s, want user-1/common_person", got.UserID, got.UserType)
	}
	if len(got.History) != 0 {
		t.Errorf("new session has %d turns, want 0", len(got.History))
	}
}

func TestGetMissingSession(t *testing.T) {
	s := newTestStore()

	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, contract.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestAppendTurnAssignsSequence(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess, _ := s.Create(ctx, "user-1", legal.UserTypeLawFirm)

	for want := 1; want <= 3; want++ {
		turn, err := s.AppendTurn(ctx, sess.ID, store.Turn{
			InteractionID: "i" + string(rune('0'+want)),
			Query:         "q",
			Domain:        legal.DomainFamilyLaw,
		})
		if err != nil {
			t.Fatalf("AppendTurn: %v", err)
		}
		if turn.Sequence != want {
			t.Errorf("Sequence = %d, want %d", turn.Sequence, want)
		}
	}
}

func TestAppendTurnConcurrent(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess, _ := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)

	const n = 20
	var wg sync.WaitGroup
	seqs := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			turn, err := s.AppendTurn(ctx, sess.ID, store.Turn{Query: "q", Domain: legal.DomainTaxLaw})
			if err != nil {
				t.Error(err)
				return
			}
			seqs <- turn.Sequence
		}()
	}
	wg.Wait()
	close(seqs)

	var got []int
	for seq := range seqs {
		got = append(got, seq)
	}
	sort.Ints(got)
	for i, seq := range got {
		if seq != i+1 {
			t.Fatalf("sequences = %v, want 1..%d without gaps", got, n)
		}
	}
}

func TestSessionIsolation(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	a, _ := s.Create(ctx, "user-a", legal.UserTypeCommonPerson)
	b, _ := s.Create(ctx, "user-b", legal.UserTypeCommonPerson)

	turnA, _ := s.AppendTurn(ctx, a.ID, store.Turn{Query: "qa", Domain: legal.DomainTortLaw})
	turnB, _ := s.AppendTurn(ctx, b.ID, store.Turn{Query: "qb", Domain: legal.DomainTaxLaw})

	if turnA.Sequence != 1 || turnB.Sequence != 1 {
		t.Errorf("sequences = %d/%d, want 1/1 (independent counters)", turnA.Sequence, turnB.Sequence)
	}

	gotA, _ := s.Get(ctx, a.ID)
	if len(gotA.History) != 1 || gotA.History[0].Query != "qa" {
		t.Errorf("session a history leaked: %+v", gotA.History)
	}
}

func TestRecordFeedback(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess, _ := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)
	turn, _ := s.AppendTurn(ctx, sess.ID, store.Turn{InteractionID: "i1", Query: "q", Domain: legal.DomainFamilyLaw})

	updated, err := s.RecordFeedback(ctx, sess.ID, turn.InteractionID, legal.FeedbackUpvote)
	if err != nil {
		t.Fatalf("RecordFeedback: %v", err)
	}
	if math.Abs(updated.Satisfaction-0.1) > 1e-9 {
		t.Errorf("Satisfaction = %v, want 0.1", updated.Satisfaction)
	}

	got, _ := s.Get(ctx, sess.ID)
	saved, ok := got.FindTurn("i1")
	if !ok || saved.Feedback != legal.FeedbackUpvote {
		t.Errorf("feedback not persisted on turn: %+v", saved)
	}

	updated, err = s.RecordFeedback(ctx, sess.ID, turn.InteractionID, legal.FeedbackDownvote)
	if err != nil {
		t.Fatalf("RecordFeedback: %v", err)
	}
	if math.Abs(updated.Satisfaction-0.0) > 1e-9 {
		t.Errorf("Satisfaction = %v, want 0.0", updated.Satisfaction)
	}
}

func TestRecordFeedbackClampsSatisfaction(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess, _ := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)
	turn, _ := s.AppendTurn(ctx, sess.ID, store.Turn{InteractionID: "i1", Query: "q", Domain: legal.DomainFamilyLaw})

	for i := 0; i < 15; i++ {
		if _, err := s.RecordFeedback(ctx, sess.ID, turn.InteractionID, legal.FeedbackUpvote); err != nil {
			t.Fatal(err)
		}
	}

	got, _ := s.Get(ctx, sess.ID)
	if got.Satisfaction != 1.0 {
		t.Errorf("Satisfaction = %v, want clamped to 1.0", got.Satisfaction)
	}
}

func TestRecordFeedbackUnknownInteraction(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sess, _ := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)

	_, err := s.RecordFeedback(ctx, sess.ID, "never-happened", legal.FeedbackUpvote)
	if !errors.Is(err, contract.ErrInteractionNotFound) {
		t.Errorf("err = %v, want ErrInteractionNotFound", err)
	}
}

func TestDegradedRedisFallsBackToLocalCache(t *testing.T) {
	// A client pointed at a closed port fails every call; the store
	// must keep serving from its in-process cache.
	rdb := redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     50 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     50 * time.Millisecond,
		ReadTimeout:     50 * time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
		MinRetryBackoff: -1,
		MaxRetryBackoff: -1,
	})
	s := NewSessionStore(rdb, time.Hour, nopLogger{})
	ctx := context.Background()

	sess, err := s.Create(ctx, "user-1", legal.UserTypeCommonPerson)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	turn, err := s.AppendTurn(ctx, sess.ID, store.Turn{InteractionID: "i1", Query: "q", Domain: legal.DomainFamilyLaw})
	if err != nil {
		t.Fatalf("AppendTurn: %v", err)
	}
	if turn.Sequence != 1 {
		t.Errorf("Sequence = %d, want 1", turn.Sequence)
	}

	got, err := s.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.History) != 1 {
		t.Errorf("history = %d turns, want 1", len(got.History))
	}
}
