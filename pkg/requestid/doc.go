// Package requestid tags every HTTP request with an X-Request-ID.
package requestid
