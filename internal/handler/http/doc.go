// Package http implements the HTTP control surface of the sync daemon.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API that drives the sync coordinator. Cross-cutting concerns such as
// request tracing, access logging, and panic recovery are handled in this
// package before requests are delegated to the coordinator.
//
// The coordinator's submission protocol is asynchronous; handlers bridge it
// to HTTP in two ways. Catalog and sync operations block until the
// completion callback fires and return the outcome in one response.
// Content downloads return 202 Accepted with a transfer id instead, and
// progress is observed by polling the status endpoint.
package http
