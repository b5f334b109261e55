package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration covers missing or invalid run preconditions; fatal
	// before any submission is made.
	ErrConfiguration = errors.New("configuration error")
	// ErrFixture covers unreadable, empty or malformed case material.
	ErrFixture = errors.New("fixture error")
	// ErrTransport covers any intake API request failure.
	ErrTransport = errors.New("transport error")
	// ErrTimeout means the polling deadline elapsed without a terminal status.
	ErrTimeout = errors.New("poll timeout")
	// ErrProtocol means the service accepted a request but answered outside
	// its contract, e.g. an upload without a submission id.
	ErrProtocol = errors.New("protocol error")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
