package app

import (
	"github.com/gorilla/sessions"

	"github.com/srbhuyan/shoppingList/pkg/cache"
	"github.com/srbhuyan/shoppingList/pkg/database"
	"github.com/srbhuyan/shoppingList/pkg/events"
	"github.com/srbhuyan/shoppingList/pkg/logger"
)

// Application holds shared infrastructure dependencies passed to every
// service's route registration during startup.
//
// Logging: Logger is backed by a context-aware handler — use the *Context
// methods inside request paths and trace_id, span_id and request_id are
// attached automatically. Plain Info/Error are for startup and shutdown.
type Application struct {
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
