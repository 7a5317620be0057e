// Package redis connects to Redis with retries and exposes a readiness
// probe. The web layer uses it to back its form draft store.
package redis
