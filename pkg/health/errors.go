package health

import "errors"

var (
	// ErrCheckFailed reports a failed readiness check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout reports a check that outlived the probe timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
