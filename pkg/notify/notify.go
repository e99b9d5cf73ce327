// Package notify announces leave and task changes to people outside the
// MCP session.
package notify

import "context"

// Notifier delivers a short text announcement.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Nop discards every announcement.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(context.Context, string) error {
	return nil
}
