package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Service provides Slack messaging capabilities
type Service struct {
	client *slack.Client
}

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	channel, timestamp, err := s.client.PostMessageContext(ctx, channelID, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channel", channelID))
	}
	return channel, timestamp, nil
}

// Notifier posts a summary of every migration run to one channel
type Notifier struct {
	service   *Service
	channelID string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a run notifier posting to channelID
func NewNotifier(service *Service, channelID string) *Notifier {
	return &Notifier{
		service:   service,
		channelID: channelID,
	}
}

// NotifyRun implements interfaces.Notifier
func (n *Notifier) NotifyRun(ctx context.Context, result *model.BatchResult) error {
	if result == nil {
		return nil
	}

	_, ts, err := n.service.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(SummaryText(result), false),
		slack.MsgOptionBlocks(BuildRunSummaryBlocks(result)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify migration run",
			goerr.V("runID", result.RunID))
	}

	ctxlog.From(ctx).Debug("Posted migration run summary",
		"runID", result.RunID,
		"channel", n.channelID,
		"ts", ts,
	)
	return nil
}

// NopNotifier is used when Slack is not configured
type NopNotifier struct{}

var _ interfaces.Notifier = NopNotifier{}

// NotifyRun implements interfaces.Notifier
func (NopNotifier) NotifyRun(ctx context.Context, result *model.BatchResult) error {
	return nil
}
