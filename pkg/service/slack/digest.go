package slack

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
	"github.com/slack-go/slack"
)

//go:embed templates/digest.txt
var templateFS embed.FS

var digestTemplate = template.Must(template.ParseFS(templateFS, "templates/digest.txt"))

// GetSeverityEmoji returns emoji based on issue severity
func GetSeverityEmoji(severity string) string {
	switch types.IssueSeverity(severity) {
	case types.SeverityCritical:
		return "🚨"
	case types.SeverityHigh:
		return "🔴"
	case types.SeverityMedium:
		return "🟠"
	case types.SeverityLow:
		return "🔵"
	case types.SeverityInformational:
		return "ℹ️"
	default:
		return "❓"
	}
}

// FormatWeekChange formats a signed change with an explicit sign
func FormatWeekChange(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

type digestTemplateData struct {
	*model.Digest
	Filtered       bool
	FilterText     string
	WeekChangeText string
}

// RenderDigestText renders the plain text fallback of a digest message
func RenderDigestText(d *model.Digest) (string, error) {
	data := digestTemplateData{
		Digest:         d,
		Filtered:       !d.Filter.IsEmpty(),
		FilterText:     d.Filter.String(),
		WeekChangeText: FormatWeekChange(d.WeekChange),
	}

	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute digest template")
	}
	return buf.String(), nil
}

// BuildDigestBlocks builds the Block Kit layout of a digest message
func BuildDigestBlocks(d *model.Digest) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Issue digest", true, false),
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("Source: `%s` • %s", d.Source, d.GeneratedAt.Format("2006-01-02 15:04")),
				false, false),
		),
	}

	if !d.Filter.IsEmpty() {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "Filter: "+d.Filter.String(), false, false),
		))
	}

	blocks = append(blocks, slack.NewSectionBlock(nil, []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Open issues*\n%d", d.Open), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Total issues*\n%d", d.Total), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Change in 7 days*\n%s", FormatWeekChange(d.WeekChange)), false, false),
	}, nil))

	var severityLines []string
	for _, c := range d.OpenBySeverity {
		if c.Count == 0 {
			continue
		}
		severityLines = append(severityLines, fmt.Sprintf("%s %s: *%d*", GetSeverityEmoji(c.Label), c.Label, c.Count))
	}
	if len(severityLines) > 0 {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "*Open by severity*\n"+strings.Join(severityLines, "\n"), false, false),
				nil, nil),
		)
	}

	if len(d.TopProjects) > 0 {
		var lines []string
		for _, c := range d.TopProjects {
			lines = append(lines, fmt.Sprintf("• %s: *%d*", c.Label, c.Count))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "*Top projects*\n"+strings.Join(lines, "\n"), false, false),
			nil, nil),
		)
	}

	return blocks
}
