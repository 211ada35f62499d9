// Package resilience provides a circuit breaker for calls against a remote
// Request Tracker instance.
//
// The breaker cycles through three states:
//
//   - closed: requests flow normally, failures are counted
//   - open: requests fail fast with ErrCircuitOpen until the timeout elapses
//   - half-open: a bounded number of probe requests decide whether the
//     remote recovered (back to closed) or is still down (back to open)
//
// Only transport-level errors trip the breaker. HTTP error statuses are
// the remote service talking, not the remote service being down.
package resilience
