package job

import (
	"strconv"
	"strings"
)

// Efficiency cells turn red below this percentage and green at or above the
// high mark. Mid-range values stay uncolored to keep the table readable.
const (
	lowEfficiency  = 20.0
	highEfficiency = 90.0
)

var stateColors = map[string]string{
	"COMPLETED":     "green",
	"RUNNING":       "cyan",
	"CANCELLED":     "yellow",
	"FAILED":        "red",
	"TIMEOUT":       "red",
	"OUT_OF_MEMORY": "red",
	"NODE_FAIL":     "red",
	"BOOT_FAIL":     "red",
}

// Highlight is the severity-based cell coloring policy handed to the
// renderer. It colors lifecycle states and efficiency percentages; every
// other column is left alone.
func Highlight(title, value string) (string, bool) {
	switch title {
	case "State":
		color, ok := stateColors[value]
		return color, ok
	case "CPUEff", "MemEff", "TimeEff":
		percent, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return "", false
		}
		switch {
		case percent < lowEfficiency:
			return "red", true
		case percent >= highEfficiency:
			return "green", true
		}
	}
	return "", false
}
