package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jonathan/cv-builder/internal/logger"
	"github.com/jonathan/cv-builder/internal/storage"
	"github.com/jonathan/cv-builder/internal/types"
	"go.uber.org/zap"
)

// Store owns the current Document. Dispatch calls are serialized; State returns copies,
// so callers never hold references into the Store's Document.
type Store struct {
	mu     sync.Mutex
	doc    types.Document
	slot   storage.Slot
	key    string
	logger *zap.Logger

	version   uint64
	listeners []Listener
}

// New rehydrates a Store from the snapshot stored under key. A missing, unreadable or
// malformed snapshot yields the default Document; that is never an error.
func New(ctx context.Context, slot storage.Slot, key string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if key == "" {
		key = types.StorageKey
	}

	s := &Store{slot: slot, key: key, logger: logger}
	s.doc = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) types.Document {
	if s.slot == nil {
		return types.DefaultDocument()
	}

	data, err := s.slot.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Debug("snapshot unreadable, using default document", zap.String("key", s.key), zap.Error(err))
		}
		return types.DefaultDocument()
	}

	doc, err := storage.DecodeSnapshot(data)
	if err != nil {
		s.logger.Debug("snapshot malformed, using default document", zap.String("key", s.key), zap.Error(err))
		return types.DefaultDocument()
	}

	// Route the snapshot through the reducer so duplicate ids are dropped on load too.
	return Reduce(types.Document{}, SetDocument{Document: doc})
}

// State returns a deep copy of the current Document.
func (s *Store) State() types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Change describes one applied action. Versions start at 1 and increase by one per
// applied action, in the order the reductions happened.
type Change struct {
	Version uint64
	Type    ActionType
}

// Listener observes applied actions. It runs with the store lock held, so it must not
// call back into the Store.
type Listener func(Change)

// Listen registers fn to be called after every applied action, whether or not the
// snapshot write succeeded.
func (s *Store) Listen(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Dispatch reduces action into the current Document and, if the action was recognized,
// writes the new state to the slot. The in-memory state is updated even when the write
// fails; the returned error only reports the failed write.
func (s *Store) Dispatch(ctx context.Context, action Action) error {
	_, _, err := s.Apply(ctx, action)
	return err
}

// Apply is Dispatch that also reports the resulting Change. applied is false for
// unrecognized actions, which change nothing and are not versioned.
func (s *Store) Apply(ctx context.Context, action Action) (change Change, applied bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := reduce(s.doc, action)
	if !ok {
		tag := "<nil>"
		if action != nil {
			tag = string(action.Type())
		}
		fields := []zap.Field{zap.String("type", tag)}
		if u, unknown := action.(Unknown); unknown {
			fields = append(fields, zap.String("payload", logger.Truncate(string(u.Payload), 120)))
		}
		s.logger.Debug("ignoring unrecognized action", fields...)
		return Change{}, false, nil
	}

	s.doc = next
	s.version++
	change = Change{Version: s.version, Type: action.Type()}

	err = s.persist(ctx)
	for _, fn := range s.listeners {
		fn(change)
	}
	return change, true, err
}

// Reset replaces the current Document with the default one and overwrites the snapshot.
func (s *Store) Reset(ctx context.Context) error {
	return s.Dispatch(ctx, SetDocument{Document: types.DefaultDocument()})
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	if s.slot == nil {
		return nil
	}

	data, err := storage.EncodeSnapshot(s.doc)
	if err != nil {
		s.logger.Warn("failed to encode snapshot", zap.Error(err))
		return err
	}
	if err := s.slot.Save(ctx, s.key, data); err != nil {
		s.logger.Warn("failed to save snapshot", zap.String("key", s.key), zap.Error(err))
		return err
	}
	s.logger.Debug("snapshot saved", zap.String("key", s.key), zap.Int("bytes", len(data)))
	return nil
}
