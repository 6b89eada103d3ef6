// Package sacct queries the Slurm accounting database by shelling out to
// the sacct binary.
//
// # Overview
//
// The Inquirer interface is the seam between the report pipeline and Slurm:
// ValidFormats supplies the vocabulary the column validator checks titles
// against (`sacct --helpformat`), and Records runs the actual accounting
// query with machine-readable flags (-P -n) and parses the pipe-delimited
// output into one map per record.
//
// # Queries
//
// A Query names either explicit job IDs, a user, or a time window; time
// filters accept sacct's native timestamps or relative deltas such as
// "d=2,h=1" resolved by ResolveTime.
//
// # Error Handling
//
// A missing binary is detected at construction via exec.LookPath. When sacct
// exits non-zero its stderr is surfaced verbatim; other failures are wrapped
// with context. The optional DebugFunc receives every command line and its
// raw output.
package sacct
