package service

import (
	"context"
	"sync"
	"time"

	"krown/config"
	"krown/infras/otel"
	"krown/internal/domains/booking/model"
	"krown/internal/domains/booking/model/dto"
	"krown/shared/constant"

	"github.com/pkg/errors"
)

// ErrSuperseded marks a search that lost to a newer query from the same
// operator. Callers treat it as a no-op, never as a failure.
var ErrSuperseded = errors.New("search superseded by a newer query")

// LiveSearch coalesces bursts of search keystrokes. Each call waits out a
// short debounce window; only the newest query per operator reaches the
// upstream, and results arriving for an outdated query are discarded.
type LiveSearch interface {
	Search(ctx context.Context, operatorID, cafeID string, params dto.ListParams) ([]model.Booking, error)
}

type searchState struct {
	gen      uint64
	lastSeen time.Time
}

type liveSearchImpl struct {
	booking    Booking
	debounce   time.Duration
	sessionTTL time.Duration
	otel       otel.Otel

	mu       sync.Mutex
	sessions map[string]*searchState
}

func NewLiveSearch(booking Booking, cfg *config.Config, otel otel.Otel) LiveSearch {
	return &liveSearchImpl{
		booking:    booking,
		debounce:   time.Duration(cfg.App.Search.DebounceMillis) * time.Millisecond,
		sessionTTL: time.Duration(cfg.App.Search.SessionTTLSeconds) * time.Second,
		otel:       otel,
		sessions:   make(map[string]*searchState),
	}
}

func (l *liveSearchImpl) Search(ctx context.Context, operatorID, cafeID string, params dto.ListParams) (res []model.Booking, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	myGen := l.claim(operatorID)

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "search cancelled")
	case <-time.After(l.debounce):
	}

	if !l.isLatest(operatorID, myGen) {
		return nil, ErrSuperseded
	}

	res, err = l.booking.List(ctx, cafeID, params)
	if err != nil {
		return nil, err
	}

	// A newer query may have started while this one was in flight; its
	// results win regardless of arrival order.
	if !l.isLatest(operatorID, myGen) {
		return nil, ErrSuperseded
	}

	return res, nil
}

// claim registers a new query generation for the operator, superseding any
// pending one.
func (l *liveSearchImpl) claim(operatorID string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.evictIdle(now)

	state, ok := l.sessions[operatorID]
	if !ok {
		state = &searchState{}
		l.sessions[operatorID] = state
	}

	state.gen++
	state.lastSeen = now

	return state.gen
}

// evictIdle drops sessions untouched for longer than the TTL. Must be called
// with the lock held. The TTL far exceeds the lifetime of any in-flight
// query, so only operators with nothing pending are removed; they start a
// fresh generation on their next search.
func (l *liveSearchImpl) evictIdle(now time.Time) {
	if l.sessionTTL <= 0 {
		return
	}

	for id, state := range l.sessions {
		if now.Sub(state.lastSeen) > l.sessionTTL {
			delete(l.sessions, id)
		}
	}
}

func (l *liveSearchImpl) isLatest(operatorID string, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.sessions[operatorID]

	return ok && state.gen == gen
}
