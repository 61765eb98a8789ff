// Package logger provides structured logging for restkit built on zerolog.
//
// Packages in this module accept a *logger.Logger where they emit
// operational events (client creation, request failures). Applications
// can pass their own instance or rely on the global default.
package logger
