// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware accepts a client-supplied X-Request-ID when it is 1-128
// characters of [a-zA-Z0-9_-]; anything else is replaced by a fresh UUID. The
// ID is available through FromContext and is added to log records by
// LoggerExtractor.
package requestid
