// Package http implements the HTTP transport layer of the application.
// It provides the middleware pipeline, route handlers, and request/response
// utilities for the REST API. Panic recovery, static-token authentication,
// and request/response logging are handled at this layer, in that order,
// before requests reach the CRUD handlers.
package http
