// Package http implements the HTTP transport layer of the payment service.
//
// It wires the chi router, the request handlers for user registration and
// payment recording, the paginated listings and the static receipt files.
// Cross-cutting concerns such as request tracing, access logging, panic
// recovery, response compression and request timeouts are handled by
// middleware before requests are delegated to the service layer. Every JSON
// response uses the [models.APIResponse] envelope.
package http
