package group

import "errors"

// ErrTransport is wrapped into every error a Transport implementation
// returns, so callers can errors.Is against a single sentinel regardless of
// the underlying cause (context cancellation, a double contribution to the
// same round, a malformed collective reply).
var ErrTransport = errors.New("group: transport failure")
