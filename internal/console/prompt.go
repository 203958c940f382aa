// Package console handles operator interaction on the terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	appErrors "github.com/veranemoloko/cssgrab/internal/errors"
)

type inputLine struct {
	text string
	eof  bool
}

// Prompter reads answers line by line. Every read gives up when its context is done.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	start sync.Once
	lines chan inputLine
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask repeats label until a non-empty answer is given.
func (p *Prompter) Ask(ctx context.Context, label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		answer, eof, err := p.readLine(ctx)
		if err != nil {
			fmt.Fprintln(p.out)
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if eof {
			fmt.Fprintln(p.out)
			return "", appErrors.ErrNoInput
		}
	}
}

// Confirm asks a yes/no question. An empty answer or end of input selects def.
func (p *Prompter) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	defLabel := "n"
	if def {
		defLabel = "y"
	}

	for {
		fmt.Fprintf(p.out, "%s [y/n] (%s): ", label, defLabel)
		answer, eof, err := p.readLine(ctx)
		if err != nil {
			fmt.Fprintln(p.out)
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if eof {
			fmt.Fprintln(p.out)
			return def, nil
		}
		if answer == "" {
			return def, nil
		}
		fmt.Fprintln(p.out, "Please enter y or n")
	}
}

// Pause waits for a line of input, end of input, or ctx.
func (p *Prompter) Pause(ctx context.Context, label string) {
	fmt.Fprint(p.out, label)
	if _, eof, err := p.readLine(ctx); eof || err != nil {
		fmt.Fprintln(p.out)
	}
}

// readLine returns the trimmed line and whether input is exhausted.
func (p *Prompter) readLine(ctx context.Context) (string, bool, error) {
	p.start.Do(func() {
		p.lines = make(chan inputLine)
		go p.scan()
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", true, nil
		}
		return l.text, l.eof, nil
	}
}

func (p *Prompter) scan() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- inputLine{text: strings.TrimSpace(line), eof: err != nil}
		if err != nil {
			return
		}
	}
}
