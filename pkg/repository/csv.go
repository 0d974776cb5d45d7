package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
	"github.com/secmon-lab/issuereport/pkg/domain/model"
	"github.com/secmon-lab/issuereport/pkg/domain/types"
)

// DefaultTimeLayouts are tried in order when parsing Created At and Resolved Time.
// Fractional seconds are accepted after any seconds field.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

var utf8BOM = []byte("\ufeff")

// CSV reads issues from a delimited text export
type CSV struct {
	path      string
	delimiter rune
	layouts   []string
	location  *time.Location
}

// CSVOption is a functional option for configuring CSV
type CSVOption func(*CSV)

// WithDelimiter sets the field delimiter
func WithDelimiter(d rune) CSVOption {
	return func(c *CSV) {
		c.delimiter = d
	}
}

// WithTimeLayouts adds layouts tried before DefaultTimeLayouts
func WithTimeLayouts(layouts ...string) CSVOption {
	return func(c *CSV) {
		c.layouts = append(append([]string{}, layouts...), c.layouts...)
	}
}

// WithLocation sets the time zone for timestamps without an offset
func WithLocation(loc *time.Location) CSVOption {
	return func(c *CSV) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewCSV creates a CSV source for the file at path
func NewCSV(path string, opts ...CSVOption) *CSV {
	c := &CSV{
		path:      path,
		delimiter: ',',
		layouts:   append([]string{}, DefaultTimeLayouts...),
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.IssueSource = (*CSV)(nil)

// Name returns the file path
func (c *CSV) Name() string {
	return c.path
}

// Load opens the file and reads every issue
func (c *CSV) Load(ctx context.Context) (*model.Table, error) {
	if c.path == "" {
		return nil, goerr.New("input file path is required")
	}

	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "input file not found", goerr.V("path", c.path))
		}
		return nil, goerr.Wrap(err, "failed to open input file", goerr.V("path", c.path))
	}
	defer f.Close()

	table, err := c.Read(ctx, f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load issues", goerr.V("path", c.path))
	}

	ctxlog.From(ctx).Info("Issues loaded",
		"path", c.path,
		"rows", table.Len(),
	)
	return table, nil
}

// Read parses issues from r. The first record must be the header row.
func (c *CSV) Read(ctx context.Context, r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.Comma = c.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("input has no header row", goerr.T(model.ErrTagMissingColumn))
		}
		return nil, goerr.Wrap(err, "failed to read header row")
	}

	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var issues []model.Issue
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read record", goerr.V("row", row))
		}
		if isBlank(record) {
			continue
		}

		issue, err := c.parseIssue(row, index, record)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *issue)
	}

	ctxlog.From(ctx).Debug("Parsed issue records", "rows", len(issues))
	return model.NewTable(issues), nil
}

func (c *CSV) parseIssue(row int, index map[types.Column]int, record []string) (*model.Issue, error) {
	cell := func(col types.Column) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	createdAt, err := c.parseTime(cell(types.ColumnCreatedAt))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid Created At",
			goerr.V("row", row),
			goerr.V("value", cell(types.ColumnCreatedAt)),
			goerr.T(model.ErrTagInvalidTimestamp))
	}

	var resolvedAt time.Time
	if v := cell(types.ColumnResolvedTime); v != "" {
		resolvedAt, err = c.parseTime(v)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid Resolved Time",
				goerr.V("row", row),
				goerr.V("value", v),
				goerr.T(model.ErrTagInvalidTimestamp))
		}
	}

	return &model.Issue{
		Row:          row,
		Status:       types.IssueStatus(orDefault(cell(types.ColumnStatus), types.Unknown)),
		Severity:     types.IssueSeverity(orDefault(cell(types.ColumnSeverity), types.Unknown)),
		Projects:     orDefault(cell(types.ColumnProjects), types.NoProject),
		Platform:     orDefault(cell(types.ColumnPlatform), types.Unknown),
		Subscription: orDefault(cell(types.ColumnSubscription), types.NoSubscription),
		Region:       orDefault(cell(types.ColumnRegion), types.Unknown),
		ResourceType: orDefault(cell(types.ColumnResourceType), types.Unknown),
		CreatedAt:    createdAt,
		ResolvedAt:   resolvedAt,
	}, nil
}

func (c *CSV) parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, goerr.New("timestamp is empty")
	}
	for _, layout := range c.layouts {
		if t, err := time.ParseInLocation(layout, v, c.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.New("unsupported timestamp format", goerr.V("layouts", c.layouts))
}

func indexColumns(header []string) (map[types.Column]int, error) {
	index := make(map[types.Column]int, len(header))
	for i, name := range header {
		col := types.Column(strings.TrimSpace(name))
		if _, exists := index[col]; !exists {
			index[col] = i
		}
	}

	var missing []string
	for _, col := range types.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col.String())
		}
	}
	if len(missing) > 0 {
		return nil, goerr.New("required columns are missing",
			goerr.V("missing", missing),
			goerr.T(model.ErrTagMissingColumn))
	}
	return index, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// skipBOM drops a leading UTF-8 byte order mark so that a quoted first
// header cell is still recognized as quoted
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
