// Package notify delivers booking events to Discord and RabbitMQ.
package notify

import (
	"context"
	"errors"

	"venuehub/internal/ports/output"
)

// Fanout sends each event to every notifier and joins their errors.
type Fanout []output.BookingNotifier

func (f Fanout) Notify(ctx context.Context, event output.BookingEvent) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
