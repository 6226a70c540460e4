// Package api implements the JSON HTTP API for the gallery.
//
// Routes live under /api/v1. Health probes (/health, /ready) are mounted
// outside the middleware stack so load balancers are never rate limited
// or CORS gated.
package api
