// Package notify delivers admin replies to the people who wrote in.
// Delivery is best effort: callers log and count failures but never roll
// back message state because of them.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrDispatch wraps every delivery failure.
var ErrDispatch = errors.New("notification dispatch failed")

// Notification is a reply to a stored contact message.
type Notification struct {
	To      string
	ToName  string
	Subject string
	Body    string
	// OriginalMessage is quoted below the reply.
	OriginalMessage string
}

// Dispatcher is the outbound transport port.
type Dispatcher interface {
	Send(ctx context.Context, n Notification) error
	// Verify checks that the transport is reachable and accepts our
	// credentials without sending anything.
	Verify(ctx context.Context) error
}

// NopDispatcher is used when NOTIFY_DRIVER=none.
type NopDispatcher struct{}

var _ Dispatcher = NopDispatcher{}

func (NopDispatcher) Send(context.Context, Notification) error {
	return fmt.Errorf("%w: notifications are not configured", ErrDispatch)
}

func (NopDispatcher) Verify(context.Context) error {
	return fmt.Errorf("%w: notifications are not configured", ErrDispatch)
}

func dispatchErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDispatch, op, err)
}
