package sacct

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Inquirer defines the interface for querying the job accounting database.
// This interface is implemented by *CLIInquirer and can be used for testing.
type Inquirer interface {
	ValidFormats(ctx context.Context) ([]string, error)
	Records(ctx context.Context, columns []string, q Query) ([]map[string]string, error)
}

// Ensure CLIInquirer implements Inquirer at compile time.
var _ Inquirer = (*CLIInquirer)(nil)

// DebugFunc receives the sacct command line and its raw output when
// debugging is requested.
type DebugFunc func(info string)

// CLIInquirer shells out to the sacct binary.
type CLIInquirer struct {
	binary string
	debug  DebugFunc
}

const defaultBinary = "sacct"

// NewCLIInquirer builds an inquirer for the given sacct binary, verifying
// the binary can be found. An empty binary means "sacct" from PATH.
func NewCLIInquirer(binary string, debug DebugFunc) (*CLIInquirer, error) {
	if strings.TrimSpace(binary) == "" {
		binary = defaultBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("no supported scheduling system found: %w", err)
	}
	return &CLIInquirer{binary: binary, debug: debug}, nil
}

// ValidFormats returns the raw field names sacct can report, from
// `sacct --helpformat`.
func (c *CLIInquirer) ValidFormats(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "--helpformat")
	if err != nil {
		return nil, fmt.Errorf("list sacct formats: %w", err)
	}
	return strings.Fields(out), nil
}

// Query restricts which jobs a Records call reports.
type Query struct {
	Jobs      []string // explicit job IDs
	User      string   // report this user's recent jobs instead
	AllUsers  bool     // report everyone (time-window queries)
	Since     string   // sacct start time, already resolved
	Until     string   // sacct end time, already resolved
	State     string   // comma-separated state filter
	Partition string
}

// Records fetches one map per sacct record, keyed by the requested columns.
// Output is parsed from pipe-delimited, headerless sacct output.
func (c *CLIInquirer) Records(ctx context.Context, columns []string, q Query) ([]map[string]string, error) {
	args := buildArgs(columns, q)
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("query sacct: %w", err)
	}
	return parseRecords(columns, out), nil
}

func buildArgs(columns []string, q Query) []string {
	args := []string{"-P", "-n", "--format=" + strings.Join(columns, ",")}
	if len(q.Jobs) > 0 {
		args = append(args, "--jobs="+strings.Join(q.Jobs, ","))
	}
	switch {
	case q.User != "":
		args = append(args, "--user="+q.User)
	case q.AllUsers:
		args = append(args, "--allusers")
	}
	if q.Since != "" {
		args = append(args, "--starttime="+q.Since)
	}
	if q.Until != "" {
		args = append(args, "--endtime="+q.Until)
	}
	if q.State != "" {
		args = append(args, "--state="+q.State)
	}
	if q.Partition != "" {
		args = append(args, "--partition="+q.Partition)
	}
	return args
}

func parseRecords(columns []string, out string) []map[string]string {
	records := make([]map[string]string, 0)
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		values := strings.Split(line, "|")
		record := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(values) {
				record[column] = values[i]
			}
		}
		records = append(records, record)
	}
	return records
}

func (c *CLIInquirer) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	out, err := cmd.Output()
	if c.debug != nil {
		c.debug(fmt.Sprintf("%s %s\n%s", c.binary, strings.Join(args, " "), out))
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %s", c.binary, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("run %s: %w", c.binary, err)
	}
	return string(out), nil
}
