package sacct

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const sacctTimeLayout = "2006-01-02T15:04"

// ResolveTime turns a --since/--until argument into a sacct time string.
// Values containing "=" are comma-separated deltas before now, e.g. "d=2,h=1"
// for two days and one hour ago. Unit keys are case-insensitive
// abbreviations of weeks, days, hours, and minutes; minutes are the finest
// resolution. Anything else is passed through for sacct to interpret.
func ResolveTime(now time.Time, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || !strings.Contains(value, "=") {
		return value, nil
	}

	var total time.Duration
	for _, part := range strings.Split(value, ",") {
		key, amount, found := strings.Cut(part, "=")
		if !found {
			return "", fmt.Errorf("unable to parse time delta %q", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(amount))
		if err != nil || n < 0 {
			return "", fmt.Errorf("unable to parse time delta %q", part)
		}
		unit, err := deltaUnit(strings.TrimSpace(key))
		if err != nil {
			return "", err
		}
		total += time.Duration(n) * unit
	}
	return now.Add(-total).Truncate(time.Minute).Format(sacctTimeLayout), nil
}

func deltaUnit(key string) (time.Duration, error) {
	folded := strings.ToLower(key)
	if folded == "" {
		return 0, fmt.Errorf("unable to parse time delta unit %q", key)
	}
	for name, unit := range map[string]time.Duration{
		"weeks":   7 * 24 * time.Hour,
		"days":    24 * time.Hour,
		"hours":   time.Hour,
		"minutes": time.Minute,
	} {
		if strings.HasPrefix(name, folded) {
			return unit, nil
		}
	}
	return 0, fmt.Errorf("unable to parse time delta unit %q", key)
}
