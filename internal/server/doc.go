// Package server builds the embedded Fiber/fasthttp service: it sizes the
// worker pool from ThreadPoolConfig, attaches the request log as logger
// middleware, and returns a Handle that callers register routes on and later
// serve. Build never binds a socket; binding happens in Serve/ListenAndServe so
// tests can drive the same Handle through app.Test or a pre-bound listener.
// Keep exports narrow and accept explicit dependencies (logger, request log)
// instead of reaching for package-level state.
package server
