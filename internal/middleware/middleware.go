package middleware

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewCompress,
	NewCors,
	NewLogger,
	NewRecovery,
	NewResponse,
	NewAuth,
	NewRole,
	NewEmployee,
	NewLoginThrottle,
)
