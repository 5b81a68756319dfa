// File: utils/constants.go
package utils

// SessionCachePrefix prefixes Redis keys of the session registry.
const SessionCachePrefix = "session:"

// ContextSessionKey is the gin context key holding the authenticated *models.Session.
const ContextSessionKey = "session"

// ContextLoggerKey is the gin context key holding the request-scoped *zap.Logger.
const ContextLoggerKey = "logger"
