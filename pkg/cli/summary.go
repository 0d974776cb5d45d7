package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/secmon-lab/issuereport/pkg/cli/config"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
	"github.com/secmon-lab/issuereport/pkg/usecase"
	"github.com/urfave/cli/v3"
)

var (
	colorBold   = color.New(color.Bold)
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorFaint  = color.New(color.Faint)
)

func cmdSummary() *cli.Command {
	var (
		inputCfg  config.Input
		filterCfg config.Filter
	)

	flags := joinFlags(
		inputCfg.Flags(),
		filterCfg.Flags(),
	)

	return &cli.Command{
		Name:  "summary",
		Usage: "Print issue counts of the export to the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			session, err := inputCfg.Configure(ctx)
			if err != nil {
				return err
			}

			digestUC := usecase.NewDigest(session, nil,
				usecase.NewDigestConfig("", usecase.WithDigestFilter(filterCfg.Configure())))

			return renderSummary(os.Stdout, digestUC.Build(ctx))
		},
	}
}

// renderSummary prints the digest as aligned terminal tables
func renderSummary(w io.Writer, d *model.Digest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", colorBold.Sprint("Source:"), d.Source)
	if !d.Filter.IsEmpty() {
		fmt.Fprintf(&b, "%s %s\n", colorBold.Sprint("Filter:"), d.Filter.String())
	}
	fmt.Fprintf(&b, "%s %s of %d (%s in 7 days)\n\n",
		colorBold.Sprint("Open issues:"),
		colorCount(d.Open),
		d.Total,
		colorChange(d.WeekChange),
	)

	writeTable(&b, "Issues by status", d.ByStatus, colorStatus)
	writeTable(&b, "Open issues by severity", d.OpenBySeverity, colorSeverity)
	if len(d.TopProjects) > 0 {
		writeTable(&b, "Top projects", d.TopProjects, nil)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(b *strings.Builder, title string, counts []model.LabelCount, colorize func(string) string) {
	fmt.Fprintf(b, "%s\n", colorBold.Sprint(title))
	if len(counts) == 0 {
		fmt.Fprintf(b, "  %s\n\n", colorFaint.Sprint("(none)"))
		return
	}

	width := 0
	for _, c := range counts {
		width = max(width, utf8.RuneCountInString(c.Label))
	}

	for _, c := range counts {
		label := c.Label
		if colorize != nil {
			label = colorize(c.Label)
		}
		// pad by the raw label length since ANSI codes have no width
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(c.Label))
		fmt.Fprintf(b, "  %s%s  %6d\n", label, pad, c.Count)
	}
	b.WriteString("\n")
}

func colorStatus(s string) string {
	switch types.IssueStatus(s) {
	case types.IssueStatusOpen:
		return colorRed.Sprint(s)
	case types.IssueStatusInProgress:
		return colorYellow.Sprint(s)
	case types.IssueStatusResolved:
		return colorGreen.Sprint(s)
	default:
		return colorFaint.Sprint(s)
	}
}

func colorSeverity(s string) string {
	switch types.IssueSeverity(s) {
	case types.SeverityCritical, types.SeverityHigh:
		return colorRed.Sprint(s)
	case types.SeverityMedium:
		return colorYellow.Sprint(s)
	default:
		return s
	}
}

// colorCount colors a count: 0 is green, >0 is yellow
func colorCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorYellow.Sprint(s)
}

func colorChange(n int) string {
	switch {
	case n > 0:
		return colorRed.Sprintf("+%d", n)
	case n < 0:
		return colorGreen.Sprintf("%d", n)
	default:
		return "0"
	}
}
