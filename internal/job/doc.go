// Package job turns raw sacct records into report rows: it groups main and
// step records per job, computes the derived efficiency metrics (CPUEff,
// MemEff, TimeEff), and supplies the severity coloring policy for the
// renderer.
package job
