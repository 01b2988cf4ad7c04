package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"krown/config"
	otelMocks "krown/infras/otel/mocks"
	"krown/internal/domains/booking/mocks"
	"krown/internal/domains/booking/model"
	"krown/internal/domains/booking/model/dto"
)

func TestLiveSearch_IdleSessionsEvicted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBooking := mocks.NewMockBooking(ctrl)

	cfg := &config.Config{}
	cfg.App.Search.DebounceMillis = 1
	cfg.App.Search.SessionTTLSeconds = 1

	ls := NewLiveSearch(mockBooking, cfg, otelMocks.NewOtel()).(*liveSearchImpl)

	mockBooking.EXPECT().
		List(gomock.Any(), "c-1", gomock.Any()).
		Return([]model.Booking{}, nil).
		Times(2)

	_, err := ls.Search(context.Background(), "op-idle", "c-1", dto.ListParams{Search: "ravi"})
	assert.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	// A query from another operator sweeps out the expired session.
	_, err = ls.Search(context.Background(), "op-active", "c-1", dto.ListParams{Search: "anu"})
	assert.NoError(t, err)

	ls.mu.Lock()
	defer ls.mu.Unlock()

	_, idleKept := ls.sessions["op-idle"]
	_, activeKept := ls.sessions["op-active"]

	assert.False(t, idleKept)
	assert.True(t, activeKept)
	assert.Len(t, ls.sessions, 1)
}

func TestLiveSearch_ActiveSessionsSurviveSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBooking := mocks.NewMockBooking(ctrl)

	cfg := &config.Config{}
	cfg.App.Search.DebounceMillis = 1
	cfg.App.Search.SessionTTLSeconds = 900

	ls := NewLiveSearch(mockBooking, cfg, otelMocks.NewOtel()).(*liveSearchImpl)

	mockBooking.EXPECT().
		List(gomock.Any(), "c-1", gomock.Any()).
		Return([]model.Booking{}, nil).
		Times(2)

	_, err := ls.Search(context.Background(), "op-1", "c-1", dto.ListParams{Search: "ravi"})
	assert.NoError(t, err)

	_, err = ls.Search(context.Background(), "op-2", "c-1", dto.ListParams{Search: "anu"})
	assert.NoError(t, err)

	ls.mu.Lock()
	defer ls.mu.Unlock()

	assert.Len(t, ls.sessions, 2)
}
