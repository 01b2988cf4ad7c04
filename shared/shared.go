package shared

import (
	"context"
	"strings"

	"krown/shared/cache"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the given parts into a colon-separated cache key.
// Empty parts are kept so that keys remain positionally stable.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix. Used
// after every successful mutation so reads always refetch from the upstream
// rather than patching local state.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
