package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/orgshift/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxListedFailures caps the failed users listed in one message
const maxListedFailures = 10

// getStatusEmoji returns emoji based on run status
func getStatusEmoji(status model.BatchStatus) string {
	if status == model.BatchStatusSuccess {
		return "✅"
	}
	return "🚨"
}

// SummaryText is the plain text fallback of a run summary
func SummaryText(result *model.BatchResult) string {
	return fmt.Sprintf("%s Organization migration %s: %d users processed, %d failed",
		getStatusEmoji(result.Status()),
		result.Status(),
		result.UsersProcessed,
		len(result.Failures),
	)
}

// BuildRunSummaryBlocks creates the blocks of a run summary message
func BuildRunSummaryBlocks(result *model.BatchResult) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("%s Organization migration %s", getStatusEmoji(result.Status()), result.Status()),
			true, false),
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Run ID:*\n`%s`", result.RunID), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Duration:*\n%s", result.Duration().Round(time.Millisecond)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Users processed:*\n%d", result.UsersProcessed), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Failed:*\n%d", len(result.Failures)), false, false),
	}

	blocks := []slack.Block{
		header,
		slack.NewSectionBlock(nil, fields, nil),
	}

	if result.FatalError != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Run aborted:* %s", result.FatalError), false, false),
			nil, nil,
		))
	}

	if len(result.Failures) > 0 {
		blocks = append(blocks, slack.NewDividerBlock(), slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, formatFailures(result.Failures), false, false),
			nil, nil,
		))
	}

	return blocks
}

func formatFailures(failures []model.SagaOutcome) string {
	var b strings.Builder
	b.WriteString("*Failed users:*")
	for i, f := range failures {
		if i == maxListedFailures {
			fmt.Fprintf(&b, "\n…and %d more", len(failures)-maxListedFailures)
			break
		}
		fmt.Fprintf(&b, "\n• `%s` stopped at %s: %s", f.UserID, f.StepReached, f.ErrorMessage)
	}
	return b.String()
}
