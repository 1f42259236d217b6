package implementation

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"law-agent-be/internal/pkg/logger"
	"law-agent-be/internal/repository/contract"
	"law-agent-be/pkg/legal"
	"law-agent-be/pkg/store"
)

const sessionKeyPrefix = "session:"

// feedbackWeight is how much a single up/downvote moves the session's
// satisfaction score, clamped to [-1,1].
const feedbackWeight = 0.1

// SessionStore keeps sessions in Redis with an in-process go-cache
// fallback. When Redis is unreachable the store degrades to the local
// cache and logs it; a single-process deployment keeps working, at the
// cost of multi-process consistency.
type SessionStore struct {
	rdb    *redis.Client
	local  *cache.Cache
	ttl    time.Duration
	log    logger.ILogger

	// per-session mutexes serialize mutations so sequence numbers are
	// assigned without gaps or duplicates under concurrent submission
	locks sync.Map
}

var _ contract.ISessionStore = &SessionStore{}

// NewSessionStore creates the store. rdb may be nil, in which case the
// store runs purely in-process.
func NewSessionStore(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *SessionStore {
	return &SessionStore{
		rdb:   rdb,
		local: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
		log:   log,
	}
}

func (s *SessionStore) lock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *SessionStore) Create(ctx context.Context, userID string, userType legal.UserType) (*store.Session, error) {
	now := time.Now().UTC()
	sess := &store.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		UserType:   userType,
		History:    []store.Turn{},
		CreatedAt:  now,
		LastAccess: now,
	}
	s.save(ctx, sess)
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*store.Session, error) {
	return s.load(ctx, sessionID)
}

func (s *SessionStore) AppendTurn(ctx context.Context, sessionID string, turn store.Turn) (store.Turn, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return store.Turn{}, err
	}

	turn.Sequence = sess.NextSequence()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}
	sess.History = append(sess.History, turn)
	sess.LastAccess = time.Now().UTC()

	s.save(ctx, sess)
	return turn, nil
}

func (s *SessionStore) RecordFeedback(ctx context.Context, sessionID, interactionID string, fb legal.Feedback) (*store.Session, error) {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	turn, ok := sess.FindTurn(interactionID)
	if !ok {
		return nil, contract.ErrInteractionNotFound
	}
	turn.Feedback = fb

	switch fb {
	case legal.FeedbackUpvote:
		sess.Satisfaction = min(1.0, sess.Satisfaction+feedbackWeight)
	case legal.FeedbackDownvote:
		sess.Satisfaction = max(-1.0, sess.Satisfaction-feedbackWeight)
	}
	sess.LastAccess = time.Now().UTC()

	s.save(ctx, sess)
	return sess, nil
}

func (s *SessionStore) Touch(ctx context.Context, sessionID string) error {
	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.LastAccess = time.Now().UTC()
	s.save(ctx, sess)
	return nil
}

// save writes to Redis when available, falling back to the local
// cache. Write errors degrade rather than fail the request.
func (s *SessionStore) save(ctx context.Context, sess *store.Session) {
	data, err := json.Marshal(sess)
	if err != nil {
		s.log.Error("session_store", "failed to marshal session", map[string]interface{}{"error": err.Error()})
		return
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, sessionKeyPrefix+sess.ID, data, s.ttl).Err(); err == nil {
			return
		} else {
			s.log.Warn("session_store", "redis unreachable, using in-process fallback", map[string]interface{}{
				"session_id": sess.ID,
				"error":      err.Error(),
			})
		}
	}
	s.local.Set(sessionKeyPrefix+sess.ID, data, s.ttl)
}

func (s *SessionStore) load(ctx context.Context, sessionID string) (*store.Session, error) {
	key := sessionKeyPrefix + sessionID

	var data []byte
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			data = raw
		case err == redis.Nil:
			// fall through to the local cache: the session may have
			// been written there during a degraded window
		default:
			s.log.Warn("session_store", "redis unreachable, reading in-process fallback", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	if data == nil {
		cached, found := s.local.Get(key)
		if !found {
			return nil, contract.ErrSessionNotFound
		}
		data = cached.([]byte)
	}

	var sess store.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
