package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/booking/model"
	"krown/internal/domains/booking/model/dto"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBookings = "booking:gets"
	cacheGetSlots    = "booking:slots"

	pathBookings       = "/bookings/cafe"
	pathBookingStatus  = "/bookings"
	pathSlots          = "/bookings/cafe-slots/manage"
	pathSlotToggle     = "/bookings/cafe-slots/availability"
	paramView          = "view"
	paramSearch        = "search"
	statusPatchSegment = "status"
)

type Booking interface {
	List(ctx context.Context, cafeID string, params dto.ListParams) ([]model.Booking, error)
	Find(ctx context.Context, cafeID, bookingID string) (model.Booking, error)
	UpdateStatus(ctx context.Context, cafeID, bookingID string, target model.Status) error
	Slots(ctx context.Context, cafeID string) ([]dto.SlotGroup, error)
	ToggleSlot(ctx context.Context, cafeID string, req dto.ToggleSlotRequest) error
	Refresh(ctx context.Context, cafeID string)
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, cafeID string, params dto.ListParams) (res []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBookings, cafeID, params.View, params.Search)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	query := url.Values{}
	if params.View != constant.Empty {
		query.Set(paramView, params.View)
	}

	if params.Search != constant.Empty {
		query.Set(paramSearch, params.Search)
	}

	var payload dto.BookingResponse

	_, err = s.client.Get(ctx, pathBookings+"/"+cafeID, query, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = payload.Bookings
	model.Sort(res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Find(ctx context.Context, cafeID, bookingID string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.List(ctx, cafeID, dto.ListParams{})
	if err != nil {
		return res, err
	}

	for _, b := range bookings {
		if b.BookingID == bookingID {
			return b, nil
		}
	}

	return res, failure.NotFound("booking not found") // nolint:wrapcheck
}

// UpdateStatus applies an operator decision. Decisions are only valid while
// the booking is still open; a stale console acting on an already-decided
// booking gets a conflict instead of silently overwriting the outcome.
func (s *serviceImpl) UpdateStatus(ctx context.Context, cafeID, bookingID string, target model.Status) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if target != model.StatusAccepted && target != model.StatusRejected {
		return failure.BadRequestFromString("status must be accepted or rejected") // nolint:wrapcheck
	}

	booking, err := s.Find(ctx, cafeID, bookingID)
	if err != nil {
		return err
	}

	if !booking.BookingStatus.Actionable() {
		return failure.Conflict(fmt.Sprintf("booking is already %s", booking.BookingStatus)) // nolint:wrapcheck
	}

	body := dto.UpdateStatusRequest{Status: target}

	_, err = s.client.Patch(ctx, strings.Join([]string{pathBookingStatus, bookingID, statusPatchSegment}, "/"), body, nil)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.Refresh(ctx, cafeID)

	return nil
}

func (s *serviceImpl) Slots(ctx context.Context, cafeID string) (res []dto.SlotGroup, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSlots, cafeID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cafe slots")

		return res, nil
	}

	var payload struct {
		Slots []model.Slot `json:"slots"`
	}

	_, err = s.client.Get(ctx, pathSlots+"/"+cafeID, nil, &payload)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to get cafe slots")

		return nil, fmt.Errorf("failed to get cafe slots: %w", err)
	}

	res = groupSlots(payload.Slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cafe slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ToggleSlot(ctx context.Context, cafeID string, req dto.ToggleSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	hour, err := slotHour(req.SlotTime)
	if err != nil {
		return err
	}

	body := map[string]any{
		"cafe_id":      cafeID,
		"category":     req.Category,
		"hour":         hour,
		"is_available": req.IsAvailable,
	}

	_, err = s.client.Patch(ctx, pathSlotToggle, body, nil)
	if err != nil {
		log.Error().Err(err).Str("cafeID", cafeID).Msg("failed to toggle slot availability")

		return fmt.Errorf("failed to toggle slot availability: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetSlots, cafeID))
	}()

	return nil
}

// Refresh drops every cached booking view for the cafe so the next read
// refetches from the upstream.
func (s *serviceImpl) Refresh(ctx context.Context, cafeID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBookings, cafeID))
	}()
}

// groupSlots buckets slots per category, each bucket ordered by time of
// day and categories ordered by name.
func groupSlots(slots []model.Slot) []dto.SlotGroup {
	byCategory := make(map[string][]model.Slot)
	for _, slot := range slots {
		byCategory[slot.Category] = append(byCategory[slot.Category], slot)
	}

	groups := make([]dto.SlotGroup, 0, len(byCategory))
	for category, group := range byCategory {
		sort.Slice(group, func(i, j int) bool {
			return group[i].SlotTime < group[j].SlotTime
		})

		groups = append(groups, dto.SlotGroup{Category: category, Slots: group})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})

	return groups
}

// slotHour extracts the hour of an "HH:MM:SS" slot time as an integer.
// The upstream matches slots at hour granularity and takes the bare hour.
func slotHour(slotTime string) (int, error) {
	if len(slotTime) < 2 {
		return 0, failure.BadRequestFromString("slot time must be HH:MM:SS") // nolint:wrapcheck
	}

	hour, err := strconv.Atoi(slotTime[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, failure.BadRequestFromString("slot time must be HH:MM:SS") // nolint:wrapcheck
	}

	return hour, nil
}
