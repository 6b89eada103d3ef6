package render

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultFormat is the column specification used when the user supplies none.
const DefaultFormat = "JobID%>,State,Elapsed%>,CPUEff,MemEff"

// Row maps raw and derived field names to their display values for one job.
type Row map[string]string

// Plan is a validated rendering plan: the ordered display columns plus the
// raw sacct fields that must be fetched to populate them. Build one per
// report; width back-fill during rendering makes a Plan unsafe to share
// across concurrent reports.
type Plan struct {
	columns      []*ColumnSpec
	queryColumns []string

	color     bool
	parsable  bool
	noHeader  bool
	highlight HighlightFunc
}

// Option adjusts plan construction.
type Option func(*Plan)

// WithColor enables bold headers and per-cell highlighting.
func WithColor(enabled bool) Option {
	return func(p *Plan) { p.color = enabled }
}

// WithParsable renders pipe-delimited output with no padding or color.
func WithParsable(enabled bool) Option {
	return func(p *Plan) { p.parsable = enabled }
}

// WithHighlight installs the cell highlight policy. It only applies when
// color is enabled.
func WithHighlight(fn HighlightFunc) Option {
	return func(p *Plan) { p.highlight = fn }
}

// NewPlan parses and validates the format string against the vocabulary and
// resolves the set of columns to request from sacct. The vocabulary is the
// raw field names sacct reports; derived catalog keys are valid titles too.
//
// An empty format yields just the always-included columns. A format with
// exactly one token is taken as a scripting request: the token stands alone
// and the header line is suppressed.
func NewPlan(vocabulary []string, format string, opts ...Option) (*Plan, error) {
	p := &Plan{}
	for _, opt := range opts {
		opt(p)
	}

	columns, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	canonical := foldedTitles(vocabulary)
	for _, col := range columns {
		if err := validateTitle(col, canonical); err != nil {
			return nil, err
		}
	}

	if len(columns) == 1 {
		p.noHeader = true
	} else {
		columns, err = addIncluded(columns, canonical)
		if err != nil {
			return nil, err
		}
	}

	p.columns = columns
	p.queryColumns = resolveQueryColumns(columns)
	return p, nil
}

// parseFormat splits the comma-separated format string into column specs,
// dropping empty tokens from stray commas.
func parseFormat(format string) ([]*ColumnSpec, error) {
	columns := make([]*ColumnSpec, 0)
	for _, token := range strings.Split(format, ",") {
		if token == "" {
			continue
		}
		col, err := parseColumn(token)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// foldedTitles builds the case-folded lookup used for canonicalization. The
// vocabulary is extended with the derived catalog keys; the first spelling
// seen for a folded name wins.
func foldedTitles(vocabulary []string) map[string]string {
	fold := cases.Fold()
	folded := make(map[string]string, len(vocabulary)+len(derivedFields))
	for _, title := range vocabulary {
		key := fold.String(title)
		if _, ok := folded[key]; !ok {
			folded[key] = title
		}
	}
	for title := range derivedFields {
		key := fold.String(title)
		if _, ok := folded[key]; !ok {
			folded[key] = title
		}
	}
	return folded
}

// validateTitle rewrites the column name to the vocabulary's casing, or
// fails when the title is unknown.
func validateTitle(col *ColumnSpec, canonical map[string]string) error {
	title, ok := canonical[cases.Fold().String(col.Name)]
	if !ok {
		return &UnknownTitleError{Title: col.Name}
	}
	col.Name = title
	return nil
}

// addIncluded prepends any always-included column the user did not request.
// Walking the list in reverse keeps its declared order at the front, and a
// user-specified spec for the same name is left untouched.
func addIncluded(columns []*ColumnSpec, canonical map[string]string) ([]*ColumnSpec, error) {
	for i := len(alwaysIncluded) - 1; i >= 0; i-- {
		token := alwaysIncluded[i]
		name, _, _ := strings.Cut(token, "%")
		if containsColumn(columns, name) {
			continue
		}
		col, err := parseColumn(token)
		if err != nil {
			return nil, err
		}
		if err := validateTitle(col, canonical); err != nil {
			return nil, err
		}
		columns = append([]*ColumnSpec{col}, columns...)
	}
	return columns, nil
}

func containsColumn(columns []*ColumnSpec, name string) bool {
	for _, col := range columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// resolveQueryColumns expands derived columns into their prerequisites, adds
// the required set, and dedupes. Ordering is for stable sacct invocations
// only; the result is a set.
func resolveQueryColumns(columns []*ColumnSpec) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(columns)+len(requiredColumns))
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	for _, col := range columns {
		if deps, ok := derivedFields[col.Name]; ok {
			for _, dep := range deps {
				add(dep)
			}
		} else {
			add(col.Name)
		}
	}
	for _, name := range requiredColumns {
		add(name)
	}
	sort.Strings(result)
	return result
}

// QueryColumns returns the raw field names sacct must supply.
func (p *Plan) QueryColumns() []string {
	out := make([]string, len(p.queryColumns))
	copy(out, p.queryColumns)
	return out
}

// DisplayColumns returns the titles of the display columns in order,
// duplicates included.
func (p *Plan) DisplayColumns() []string {
	out := make([]string, 0, len(p.columns))
	for _, col := range p.columns {
		out = append(out, col.Name)
	}
	return out
}

// RenderTable renders the header and one line per row, fixing any unset
// column widths from the data first. Columns are separated by two spaces, or
// by pipes with no padding in parsable mode.
func (p *Plan) RenderTable(rows []Row) (string, error) {
	if p.parsable {
		return p.renderParsable(rows), nil
	}

	for _, col := range p.columns {
		if _, ok := col.Width(); ok {
			continue
		}
		entries := make([]string, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, row[col.Name])
		}
		col.ComputeWidth(entries)
	}

	lines := make([]string, 0, len(rows)+1)
	if !p.noHeader {
		header, err := p.renderHeader()
		if err != nil {
			return "", err
		}
		lines = append(lines, header)
	}
	for _, row := range rows {
		line, err := p.renderRow(row)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (p *Plan) renderHeader() (string, error) {
	cells := make([]string, 0, len(p.columns))
	for _, col := range p.columns {
		cell, err := col.FormatEntry(col.Name)
		if err != nil {
			return "", err
		}
		if p.color {
			cell = headerStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, "  "), nil
}

func (p *Plan) renderRow(row Row) (string, error) {
	cells := make([]string, 0, len(p.columns))
	for _, col := range p.columns {
		value := row[col.Name]
		cell, err := col.FormatEntry(value)
		if err != nil {
			return "", err
		}
		if p.color && p.highlight != nil {
			if color, ok := p.highlight(col.Name, value); ok {
				cell = paint(cell, color)
			}
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, "  "), nil
}

// renderParsable emits raw values joined by pipes, with no trailing pipe,
// padding, or color. The header follows the same suppression rule as the
// fixed layout.
func (p *Plan) renderParsable(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	if !p.noHeader {
		lines = append(lines, strings.Join(p.DisplayColumns(), "|"))
	}
	for _, row := range rows {
		cells := make([]string, 0, len(p.columns))
		for _, col := range p.columns {
			cells = append(cells, row[col.Name])
		}
		lines = append(lines, strings.Join(cells, "|"))
	}
	return strings.Join(lines, "\n")
}
