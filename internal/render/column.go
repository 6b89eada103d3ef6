package render

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment selects how an entry is padded within its column width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the grammar symbol for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	default:
		return "^"
	}
}

// ColumnSpec describes one display column: canonical title, alignment, and a
// width that is either fixed up front or computed from data at render time.
// A column transitions Width-Unset to Width-Fixed exactly once.
type ColumnSpec struct {
	Name  string
	Align Alignment

	width    int
	widthSet bool
}

// parseColumn builds a ColumnSpec from one format token of the form
// NAME[%[ALIGN]WIDTH] with ALIGN in {<,^,>} and WIDTH a non-negative decimal.
func parseColumn(token string) (*ColumnSpec, error) {
	name, spec, hasSpec := strings.Cut(token, "%")
	col := &ColumnSpec{Name: name, Align: AlignCenter}
	if !hasSpec || spec == "" {
		return col, nil
	}
	switch spec[0] {
	case '<':
		col.Align = AlignLeft
		spec = spec[1:]
	case '^':
		col.Align = AlignCenter
		spec = spec[1:]
	case '>':
		col.Align = AlignRight
		spec = spec[1:]
	}
	if spec == "" {
		return col, nil
	}
	width, err := strconv.Atoi(spec)
	if err != nil || width < 0 {
		return nil, &FormatError{Token: token}
	}
	col.width = width
	col.widthSet = true
	return col, nil
}

// Width returns the resolved width and whether it has been fixed yet.
func (c *ColumnSpec) Width() (int, bool) {
	return c.width, c.widthSet
}

// ComputeWidth fixes the column width to the widest display cell among the
// title and all entries. It does nothing once the width is set, whether from
// the format token or a previous computation.
func (c *ColumnSpec) ComputeWidth(entries []string) {
	if c.widthSet {
		return
	}
	c.width = runewidth.StringWidth(c.Name)
	for _, entry := range entries {
		if w := runewidth.StringWidth(entry); w > c.width {
			c.width = w
		}
	}
	c.widthSet = true
}

// FormatEntry truncates the entry to the column width and pads it according
// to the alignment. The width must be resolved first.
func (c *ColumnSpec) FormatEntry(entry string) (string, error) {
	if !c.widthSet {
		return "", &UnsetWidthError{Title: c.Name}
	}
	entry = runewidth.Truncate(entry, c.width, "")
	pad := c.width - runewidth.StringWidth(entry)
	if pad <= 0 {
		return entry, nil
	}
	switch c.Align {
	case AlignLeft:
		return entry + strings.Repeat(" ", pad), nil
	case AlignRight:
		return strings.Repeat(" ", pad) + entry, nil
	default:
		// Center puts the odd cell on the right.
		left := pad / 2
		return strings.Repeat(" ", left) + entry + strings.Repeat(" ", pad-left), nil
	}
}
