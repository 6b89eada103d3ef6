package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hpcli/jobeff/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override jobeff config path (optional)")
	format := flag.String("format", "",
		"comma-separated list of columns to include; any sacct format name plus "+
			"CPUEff, MemEff, and TimeEff; NAME[%[ALIGN]WIDTH] with ALIGN one of <^>, "+
			"e.g. JobID%>15; prefix with + to append to the defaults")
	user := flag.String("user", "", "report all recent jobs for this user instead of explicit job IDs")
	flag.StringVar(user, "u", *user, "shorthand for -user")
	since := flag.String("since", "",
		"only jobs after this time; sacct time or comma-separated deltas like d=2,h=1")
	until := flag.String("until", "",
		"only jobs before this time; same formats as -since")
	state := flag.String("state", "", "only include jobs with these comma-separated states")
	notState := flag.String("not-state", "", "exclude jobs with these comma-separated states")
	partition := flag.String("partition", "", "only include jobs from this partition")
	parsable := flag.Bool("parsable", false, "pipe-delimited output without padding or color")
	debug := flag.Bool("debug", false, "print the raw sacct query and output to stderr")
	color := flag.String("color", "", "color mode: auto, always, or never (default from config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Format:     *format,
		Jobs:       flag.Args(),
		User:       *user,
		Since:      *since,
		Until:      *until,
		State:      *state,
		NotState:   *notState,
		Partition:  *partition,
		Parsable:   *parsable,
		Debug:      *debug,
		Color:      *color,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "jobeff: %v\n", err)
		return 1
	}
	return 0
}
