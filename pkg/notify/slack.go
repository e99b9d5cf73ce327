package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// ErrMissingChannel is returned when no Slack channel is configured.
var ErrMissingChannel = errors.New("slack channel id is not configured")

// Slack posts announcements to a single Slack channel.
type Slack struct {
	client    *slack.Client
	channelID string
}

// NewSlack creates a Slack notifier for the given bot token and channel.
func NewSlack(botToken, channelID string, options ...slack.Option) *Slack {
	return &Slack{
		client:    slack.New(botToken, options...),
		channelID: channelID,
	}
}

// Notify implements Notifier.
func (s *Slack) Notify(ctx context.Context, text string) error {
	if s.channelID == "" {
		return ErrMissingChannel
	}

	_, _, err := s.client.PostMessageContext(ctx,
		s.channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return fmt.Errorf("post to slack channel %s: %w", s.channelID, err)
	}

	return nil
}
