// Package delivery holds the entry points that drive the usecases: the public API,
// the event worker and the mission scheduler.
package delivery

import "context"

// Delivery is a long-running process started by a cmd main.
type Delivery interface {
	Serve(ctx context.Context) error
}
