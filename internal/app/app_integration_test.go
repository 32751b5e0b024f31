//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/Audacity88/chatcache/config"
	"github.com/stretchr/testify/assert"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize app with MongoDB enabled", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Cache: config.CacheConfig{
				MessageCapacity: 1000,
				MessageTTL:      5 * time.Minute,
				ChannelCapacity: 100,
				ChannelTTL:      10 * time.Minute,
				UserCapacity:    500,
				UserTTL:         10 * time.Minute,
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   dbName,
				LogsTTL:                        30 * 24 * time.Hour,
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		router, cleanup := InitializeApp(cfg)
		defer cleanup()

		assert.NotNil(t, router)
	})

	t.Run("initialize app with MongoDB disabled", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server: config.ServerConfig{
				Port: "8080",
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		router, cleanup := InitializeApp(cfg)
		defer cleanup()

		assert.NotNil(t, router)
	})
}
