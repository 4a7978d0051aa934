package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// ProgressReporter reports progress of long-running operations.
type ProgressReporter interface {
	Start(total int64)
	Update(current int64)
	Finish()
	Error(err error)
}

// SimpleProgress is a basic progress reporter that writes to an io.Writer.
type SimpleProgress struct {
	w       io.Writer
	total   int64
	current int64
	started time.Time
	mu      sync.Mutex
}

// NewSimpleProgress creates a new simple progress reporter.
func NewSimpleProgress(w io.Writer) *SimpleProgress {
	return &SimpleProgress{w: w}
}

// Start initializes the progress reporter with a total count.
func (p *SimpleProgress) Start(total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
	p.current = 0
	p.started = time.Now()
	p.render()
}

// Update updates the current progress count.
func (p *SimpleProgress) Update(current int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = current
	p.render()
}

// Finish completes the progress reporting.
func (p *SimpleProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render()
	fmt.Fprintln(p.w)
}

// Error reports an error during the operation.
func (p *SimpleProgress) Error(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\n✗ Error: %v\n", err)
}

// render draws the progress bar. Caller must hold p.mu.
func (p *SimpleProgress) render() {
	if p.total <= 0 {
		return
	}

	percent := float64(p.current) / float64(p.total) * 100
	width := 40
	filled := int(float64(width) * float64(p.current) / float64(p.total))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	elapsed := time.Since(p.started).Seconds()
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(p.current) / elapsed
	}

	fmt.Fprintf(p.w, "\rProgress: [%s] %.1f%% (%d/%d) %.1f files/s",
		bar, percent, p.current, p.total, rate)
}

// NoopProgress is a progress reporter that does nothing. Used when
// console output is suppressed.
type NoopProgress struct{}

// Start does nothing.
func (n *NoopProgress) Start(total int64) {}

// Update does nothing.
func (n *NoopProgress) Update(current int64) {}

// Finish does nothing.
func (n *NoopProgress) Finish() {}

// Error does nothing.
func (n *NoopProgress) Error(err error) {}
