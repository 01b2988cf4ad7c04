package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"

	"krown/config"
	"krown/infras/krown"
	"krown/infras/otel"
	"krown/internal/domains/session/model"
	"krown/shared"
	"krown/shared/cache"
	"krown/shared/constant"
	"krown/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	pathWhoami = "/cafes/admin/me"

	cacheOperator = "session:operator"
)

// Session resolves the operator behind the request credential and enforces
// per-view role allow-sets.
type Session interface {
	Resolve(ctx context.Context) (model.Operator, error)
	Authorize(op model.Operator, allowed []model.Role) error
}

type serviceImpl struct {
	client krown.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client krown.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Resolve looks up the operator for the bearer credential carried in ctx.
// A missing credential and an upstream 401/403 both come back as
// authentication failures; transient upstream errors do NOT: the caller
// must keep the credential and let the operator retry.
func (s *serviceImpl) Resolve(ctx context.Context) (op model.Operator, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	token, _ := ctx.Value(constant.ContextKeyCredential).(string)
	if token == constant.Empty {
		return op, failure.Unauthorized("missing credential") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheOperator, hashToken(token))

	if err = s.cache.Get(ctx, cacheKey, &op); err == nil {
		return op, nil
	}

	_, err = s.client.Get(ctx, pathWhoami, nil, &op)
	if err != nil {
		code := failure.GetCode(err)

		// Credential definitively rejected: drop any cached identity.
		// Anything else is transient and must not look like a logout.
		if code == http.StatusUnauthorized || code == http.StatusForbidden {
			if delErr := s.cache.Delete(ctx, cacheKey); delErr != nil {
				log.Error().Err(delErr).Msg("failed to drop cached operator")
			}

			return op, failure.Unauthorized("credential rejected") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to resolve operator")

		return op, fmt.Errorf("failed to resolve operator: %w", err)
	}

	if _, err = model.ParseRole(string(op.UserRole)); err != nil {
		return model.Operator{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if saveErr := s.cache.Save(c, cacheKey, op, s.cfg.Cache.SessionTTL); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to cache operator")
		}
	}()

	return op, nil
}

// Authorize checks the resolved role against the view's allow-set. The
// returned failure is a 403; the transport layer picks the redirect from
// the operator's role.
func (s *serviceImpl) Authorize(op model.Operator, allowed []model.Role) error {
	if slices.Contains(allowed, op.UserRole) {
		return nil
	}

	return failure.ForbiddenError // nolint:wrapcheck
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
