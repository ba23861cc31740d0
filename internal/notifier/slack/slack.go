package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/metrics"
	"github.com/tienvillalobos/maxxavelada-backend/internal/notifier"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
// It is a no-op when constructed without a token or channel, so the rest of
// the application never has to check whether Slack is configured.
type Notifier struct {
	api       slackClient
	channelID string
	enabled   bool
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		enabled:   token != "" && channelID != "",
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		enabled:   true,
		metrics:   metrics,
	}
}

func (n *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if !n.enabled {
		log.Debug("Slack notifier is not configured, skipping message")
		return "", "", nil
	}

	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", n.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := n.api.PostMessageContext(
		ctx,
		n.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		n.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	n.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendMatchRecorded announces a freshly recorded match to the channel.
func (n *Notifier) SendMatchRecorded(m *match.Match, dryRun bool) error {
	msg := n.formatMatchRecorded(m)
	_, _, err := n.sendMessage(msg, dryRun)
	return err
}

// formatMatchRecorded creates the Slack message for a recorded match using Block Kit.
func (n *Notifier) formatMatchRecorded(m *match.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "⚔️ New match recorded! ⚔️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("%s vs %s\nWinner: %s (%d-%d)",
		m.Player1Name, m.Player2Name, m.WinnerName(), m.ScoreP1, m.ScoreP2)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	// Context - For simpler, single-line info.
	var contextElements []slack.MixedElement
	if m.CharacterP1 != nil && m.CharacterP2 != nil {
		charsText := fmt.Sprintf("%s vs %s", *m.CharacterP1, *m.CharacterP2)
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", charsText, true, false))
	}
	if m.Stage != nil {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("Stage: %s", *m.Stage), true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}
