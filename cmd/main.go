// Package main is the entry point for the chat cache service.
//
// @title           Chat Cache API
// @version         1.0.0
// @description     Client-side data consistency layer for a chat backend.
//
//	Caches messages, channels and user profiles with TTL and tag-based
//	invalidation, keeps an in-memory search index over chat content, and
//	mirrors realtime storage changes into both.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/Audacity88/chatcache
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Messages
// @tag.description Cached message reads
//
// @tag.name        Channels
// @tag.description Cached channel reads and channel message listings
//
// @tag.name        Users
// @tag.description Cached user profile reads
//
// @tag.name        Search
// @tag.description Free-text search over indexed chat content
//
// @tag.name        Cache
// @tag.description Cache statistics and invalidation
//
// @tag.name        Logs
// @tag.description Persisted request log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/Audacity88/chatcache/docs" // swagger docs

	"github.com/Audacity88/chatcache/config"
	"github.com/Audacity88/chatcache/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
