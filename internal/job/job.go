package job

import (
	"fmt"
	"strconv"
	"strings"
)

// Job accumulates the sacct records for one job: the main record supplies
// most fields, while steps (".batch", ".extern", numeric) contribute
// per-step maxima such as MaxRSS.
type Job struct {
	ID string

	fields   map[string]string
	maxRSS   float64 // bytes, max across all records
	hasState bool
}

// New creates an empty job for the given base ID (array element IDs like
// "123_4" are base IDs of their own).
func New(id string) *Job {
	return &Job{ID: id, fields: make(map[string]string)}
}

// Update absorbs one sacct record belonging to this job. The main record
// (JobID without a step suffix) replaces the field map; every record may
// raise the MaxRSS maximum.
func (j *Job) Update(entry map[string]string) {
	if rss, ok := parseMemory(entry["MaxRSS"]); ok && rss > j.maxRSS {
		j.maxRSS = rss
	}
	if baseID(entry["JobID"]) != entry["JobID"] {
		return // step record
	}
	for k, v := range entry {
		j.fields[k] = v
	}
	if j.fields["State"] != "" {
		j.hasState = true
	}
}

// HasState reports whether a main record with a lifecycle state was seen.
// Requested jobs that sacct knows nothing about never get a state.
func (j *Job) HasState() bool {
	return j.hasState
}

// State returns the base lifecycle state, e.g. "CANCELLED" for
// "CANCELLED by 1234".
func (j *Job) State() string {
	state, _, _ := strings.Cut(j.fields["State"], " ")
	return state
}

// Get returns the display value for any raw or derived column title.
func (j *Job) Get(title string) string {
	switch title {
	case "CPUEff":
		return j.cpuEff()
	case "MemEff":
		return j.memEff()
	case "TimeEff":
		return j.timeEff()
	case "State":
		return j.State()
	case "MaxRSS":
		if j.maxRSS > 0 {
			return formatMemory(j.maxRSS)
		}
		return j.fields["MaxRSS"]
	}
	return j.fields[title]
}

// Row builds the value map the renderer reads, one entry per display column.
func (j *Job) Row(columns []string) map[string]string {
	row := make(map[string]string, len(columns))
	for _, title := range columns {
		row[title] = j.Get(title)
	}
	return row
}

const missing = "---"

// cpuEff is core time used over core time reserved: TotalCPU divided by
// AllocCPUS x Elapsed.
func (j *Job) cpuEff() string {
	total, okTotal := parseDuration(j.fields["TotalCPU"])
	elapsed, okElapsed := parseDuration(j.fields["Elapsed"])
	alloc, errAlloc := strconv.ParseFloat(j.fields["AllocCPUS"], 64)
	if !okTotal || !okElapsed || errAlloc != nil || elapsed <= 0 || alloc <= 0 {
		return missing
	}
	return formatPercent(total / (elapsed * alloc) * 100)
}

// memEff is the MaxRSS high-water mark over the requested memory. REQMEM
// carries a per-node ("n") or per-core ("c") suffix that scales the request
// by NNodes or AllocCPUS; without a suffix the value is the job total.
func (j *Job) memEff() string {
	requested, scale, ok := parseRequestedMemory(j.fields["REQMEM"])
	if !ok || j.maxRSS <= 0 {
		return missing
	}
	switch scale {
	case perNode:
		n, err := strconv.ParseFloat(j.fields["NNodes"], 64)
		if err != nil || n <= 0 {
			return missing
		}
		requested *= n
	case perCore:
		n, err := strconv.ParseFloat(j.fields["AllocCPUS"], 64)
		if err != nil || n <= 0 {
			return missing
		}
		requested *= n
	}
	if requested <= 0 {
		return missing
	}
	return formatPercent(j.maxRSS / requested * 100)
}

// timeEff is wall time used over the time limit.
func (j *Job) timeEff() string {
	elapsed, okElapsed := parseDuration(j.fields["Elapsed"])
	limit, okLimit := parseDuration(j.fields["Timelimit"])
	if !okElapsed || !okLimit || limit <= 0 {
		return missing
	}
	return formatPercent(elapsed / limit * 100)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// parseDuration reads sacct's [DD-[HH:]]MM:SS[.fff] elapsed format and
// returns seconds. Symbolic limits like UNLIMITED do not parse.
func parseDuration(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	var days float64
	if d, rest, found := strings.Cut(value, "-"); found {
		n, err := strconv.ParseFloat(d, 64)
		if err != nil {
			return 0, false
		}
		days = n
		value = rest
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, false
	}
	var seconds float64
	for _, part := range parts {
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		seconds = seconds*60 + n
	}
	return days*86400 + seconds, true
}

type memoryScale int

const (
	perJob memoryScale = iota
	perNode
	perCore
)

// parseRequestedMemory reads REQMEM values like "4000Mn", "16Gc", or "8G"
// and returns bytes plus how the value scales.
func parseRequestedMemory(value string) (float64, memoryScale, bool) {
	value = strings.TrimSpace(value)
	scale := perJob
	switch {
	case strings.HasSuffix(value, "n"):
		scale = perNode
		value = strings.TrimSuffix(value, "n")
	case strings.HasSuffix(value, "c"):
		scale = perCore
		value = strings.TrimSuffix(value, "c")
	}
	bytes, ok := parseMemory(value)
	if !ok {
		return 0, perJob, false
	}
	return bytes, scale, true
}

var memoryUnits = map[byte]float64{
	'K': 1 << 10,
	'M': 1 << 20,
	'G': 1 << 30,
	'T': 1 << 40,
}

// parseMemory reads a sacct byte value with an optional K/M/G/T suffix.
func parseMemory(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	unit := 1.0
	if u, ok := memoryUnits[value[len(value)-1]]; ok {
		unit = u
		value = value[:len(value)-1]
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n * unit, true
}

// formatMemory renders bytes the way sacct does, in whole kibibytes.
func formatMemory(bytes float64) string {
	return fmt.Sprintf("%.0fK", bytes/1024)
}

// baseID strips the step suffix: "123.batch" and "123_4.0" become "123" and
// "123_4".
func baseID(jobID string) string {
	base, _, _ := strings.Cut(jobID, ".")
	return base
}

// arrayRoot strips an array element index: "123_4" becomes "123".
func arrayRoot(jobID string) string {
	root, _, _ := strings.Cut(jobID, "_")
	return root
}
