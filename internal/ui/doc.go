// Package ui provides the interactive pager for long reports.
//
// Short reports print straight to stdout; once the job count passes the
// configured threshold and stdout is a terminal, the rendered table is shown
// in a Bubble Tea viewport with vi-style scrolling instead, mirroring what a
// system pager would do but keeping the table's colors intact.
package ui
