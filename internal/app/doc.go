// Package app provides the orchestration layer for jobeff.
//
// # Overview
//
// This package wires together configuration, the sacct inquirer, the column
// specification engine, and the job collection to produce one report. It is
// the composition root; domain logic lives in the packages it connects.
//
// # Pipeline
//
// Run performs, in order:
//
//  1. config.Load()                 Read ~/.config/jobeff/config.toml
//  2. sacct.NewCLIInquirer()        Verify sacct exists, set up debug hook
//  3. inquirer.ValidFormats()       Fetch the title vocabulary
//  4. render.NewPlan()              Parse and validate the column spec
//  5. inquirer.Records()            Query sacct for the plan's columns
//  6. job.Collection               Group records, compute efficiencies
//  7. plan.RenderTable()            Render the table
//  8. ui.Page() or stdout           Page long interactive reports
//
// # Error Handling
//
// Every failure aborts the report: config problems, a missing sacct binary,
// malformed format tokens, unknown titles, and sacct query failures are all
// returned to main, which prints them to stderr. Nothing is retried; the
// errors are deterministic functions of the input.
package app
