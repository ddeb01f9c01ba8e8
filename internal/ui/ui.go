// Package ui provides stderr-based terminal output for verdict.
package ui

import (
	"fmt"
	"os"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, yellow+"⚠ %s"+reset+"\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// Check prints one ✓/✗ line of a validation run.
func (p *Printer) Check(ok bool, msg string) {
	if ok {
		fmt.Fprintf(os.Stderr, green+"✓ "+reset+"%s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, red+"✗ "+reset+"%s\n", msg)
	}
}

// RunHeader announces the dataset being ranked.
func (p *Printer) RunHeader(path string, alternatives, criteria int) {
	fmt.Fprintf(os.Stderr, cyan+"◆ ranking"+reset+" %s "+dim+"(%d alternatives × %d criteria)"+reset+"\n",
		path, alternatives, criteria)
}

// RunDone announces the written report and the winner.
func (p *Printer) RunDone(output, best string, score float64) {
	fmt.Fprintf(os.Stderr, green+"◆ ranked"+reset+" → %s "+dim+"(best: %s, score %.4f)"+reset+"\n",
		output, best, score)
}

// MailSent confirms result delivery.
func (p *Printer) MailSent(recipients int) {
	fmt.Fprintf(os.Stderr, green+"✓ result mailed"+reset+dim+" to %d recipient(s)"+reset+"\n", recipients)
}

// Watching announces watch mode startup.
func (p *Printer) Watching(dir string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s "+dim+"for *.csv drops (ctrl-c to stop)"+reset+"\n", dir)
}
