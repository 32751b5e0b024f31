// Package app provides change feed wiring.
package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Audacity88/chatcache/internal/repository"
	"github.com/Audacity88/chatcache/internal/service"
)

// StartChangeFeed runs the change feed and its applier until ctx is cancelled.
// The caches and the index track storage mutations only while this is running.
func StartChangeFeed(ctx context.Context, feed *repository.ChangeFeed, applier *service.FeedApplierImpl) {
	go func() {
		if err := feed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Change feed stopped")
		}
	}()
	go applier.ConsumeFeed(ctx, feed.Events())
}
