package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/hpcli/jobeff/internal/config"
	"github.com/hpcli/jobeff/internal/job"
	"github.com/hpcli/jobeff/internal/render"
	"github.com/hpcli/jobeff/internal/sacct"
	"github.com/hpcli/jobeff/internal/ui"
)

// Options configure one jobeff invocation.
type Options struct {
	ConfigPath string
	Format     string   // column spec; a leading "+" appends to the default
	Jobs       []string // explicit job IDs
	User       string   // report this user's recent jobs
	Since      string   // sacct time or delta spec like "d=2,h=1"
	Until      string
	State      string // only include these states
	NotState   string // exclude these states
	Partition  string
	Parsable   bool
	Debug      bool
	Color      string // overrides the config color mode when set
}

// Run executes the report against the real sacct binary and writes it to
// stdout, paging when the terminal and the job count call for it.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var debug sacct.DebugFunc
	if opts.Debug {
		debug = func(info string) { fmt.Fprintln(os.Stderr, info) }
	}

	inquirer, err := sacct.NewCLIInquirer(cfg.SacctPath, debug)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	return run(ctx, opts, cfg, inquirer, os.Stdout, interactive)
}

// run is the testable pipeline behind Run: build the plan, fetch records,
// collect jobs, render, and emit.
func run(
	ctx context.Context,
	opts Options,
	cfg config.Config,
	inquirer sacct.Inquirer,
	out io.Writer,
	interactive bool,
) error {
	format := resolveFormat(opts.Format, cfg.Format)

	query, err := buildQuery(opts, time.Now())
	if err != nil {
		return err
	}

	vocabulary, err := inquirer.ValidFormats(ctx)
	if err != nil {
		return err
	}

	plan, err := render.NewPlan(vocabulary, format,
		render.WithColor(colorEnabled(opts, cfg, interactive)),
		render.WithParsable(opts.Parsable),
		render.WithHighlight(job.Highlight),
	)
	if err != nil {
		return err
	}

	collection := job.NewCollection()
	if len(opts.Jobs) > 0 {
		collection.SetJobs(opts.Jobs)
	} else {
		collection.AcceptAll()
	}

	records, err := inquirer.Records(ctx, plan.QueryColumns(), query)
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := collection.ProcessEntry(record); err != nil {
			return fmt.Errorf("process entry: %w", err)
		}
	}

	jobs := filterStates(collection.Jobs(), opts.NotState)
	columns := plan.DisplayColumns()
	rows := make([]render.Row, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, j.Row(columns))
	}

	table, err := plan.RenderTable(rows)
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if interactive && !opts.Parsable && ui.ShouldPage(len(rows), cfg.PagerThreshold) {
		return ui.Page(ctx, table)
	}
	_, err = fmt.Fprintln(out, table)
	return err
}

// resolveFormat applies the config default and the "+" append shorthand.
func resolveFormat(requested, fallback string) string {
	if requested == "" {
		return fallback
	}
	if rest, found := strings.CutPrefix(requested, "+"); found {
		return fallback + "," + rest
	}
	return requested
}

// buildQuery maps the options onto a sacct query. A time window without
// explicit jobs or a user widens to all users, matching sacct conventions.
func buildQuery(opts Options, now time.Time) (sacct.Query, error) {
	since, err := sacct.ResolveTime(now, opts.Since)
	if err != nil {
		return sacct.Query{}, err
	}
	until, err := sacct.ResolveTime(now, opts.Until)
	if err != nil {
		return sacct.Query{}, err
	}
	q := sacct.Query{
		Jobs:      opts.Jobs,
		User:      opts.User,
		Since:     since,
		Until:     until,
		State:     opts.State,
		Partition: opts.Partition,
	}
	if len(q.Jobs) == 0 && q.User == "" {
		if q.Since == "" {
			return sacct.Query{}, fmt.Errorf("nothing to report: give job IDs, --user, or --since")
		}
		q.AllUsers = true
	}
	return q, nil
}

func colorEnabled(opts Options, cfg config.Config, interactive bool) bool {
	if opts.Parsable {
		return false
	}
	mode := opts.Color
	if mode == "" {
		mode = cfg.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return interactive
	}
}

// filterStates drops jobs whose base state appears in the comma-separated
// exclusion list. sacct has no negative state filter, so this runs here.
func filterStates(jobs []*job.Job, notState string) []*job.Job {
	notState = strings.TrimSpace(notState)
	if notState == "" {
		return jobs
	}
	excluded := make(map[string]bool)
	for _, state := range strings.Split(notState, ",") {
		excluded[strings.ToUpper(strings.TrimSpace(state))] = true
	}
	out := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !excluded[j.State()] {
			out = append(out, j)
		}
	}
	return out
}
