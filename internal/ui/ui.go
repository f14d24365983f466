// Package ui provides terminal activity indicators (spinners and progress
// bars) that degrade to plain log lines when no terminal is attached.
package ui

// Progress creates activity indicators.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar tracks determinate work.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner signals indeterminate work.
type Spinner interface {
	Stop()
}
