// SPDX-License-Identifier: MPL-2.0

// Package tui provides the line-oriented prompt components the configuration
// wizard is built from: free-text input, yes/no confirmation, single select,
// and multi select.
//
// Prompts read whole lines and accept an empty answer as "take the default",
// so the wizard works the same over a plain pipe as on a terminal. Styling is
// lipgloss; an EOF on input aborts the prompt rather than looping.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when input ends (EOF or ctrl-d) before an answer.
var ErrAborted = errors.New("prompt aborted")

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	optionStyle  = lipgloss.NewStyle().PaddingLeft(2)
	defaultStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("6"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// readLine reads one trimmed answer line, or ErrAborted at end of input.
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) problem(msg string) {
	fmt.Fprintln(p.out, problemStyle.Render(msg))
}

// Input asks for a free-text value. An empty answer returns defaultValue.
func (p *Prompter) Input(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s %s ", labelStyle.Render(label), hintStyle.Render("["+defaultValue+"]"))
	} else {
		fmt.Fprintf(p.out, "%s ", labelStyle.Render(label))
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. An empty answer returns defaultYes.
func (p *Prompter) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(p.out, "%s %s ", labelStyle.Render(label), hintStyle.Render(hint))
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.problem("Please answer y or n.")
	}
}

// Select asks the user to pick one option by number and returns its index.
// An empty answer returns defaultIndex.
func (p *Prompter) Select(label string, options []string, defaultIndex int) (int, error) {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	fmt.Fprintln(p.out, labelStyle.Render(label))
	for i, opt := range options {
		if i == defaultIndex {
			fmt.Fprintln(p.out, defaultStyle.Render(fmt.Sprintf("%d) %s (default)", i+1, opt)))
		} else {
			fmt.Fprintln(p.out, optionStyle.Render(fmt.Sprintf("%d) %s", i+1, opt)))
		}
	}

	for {
		fmt.Fprintf(p.out, "%s ", hintStyle.Render(fmt.Sprintf("Choice [%d]:", defaultIndex+1)))
		answer, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return defaultIndex, nil
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			p.problem(fmt.Sprintf("Please enter a number between 1 and %d.", len(options)))
			continue
		}
		return n - 1, nil
	}
}

// MultiSelect asks the user to pick any number of options as comma-separated
// numbers and returns the chosen indices in ascending order. An empty answer
// keeps the preselected set; "none" clears it.
func (p *Prompter) MultiSelect(label string, options []string, preselected []bool) ([]int, error) {
	fmt.Fprintln(p.out, labelStyle.Render(label))
	for i, opt := range options {
		mark := " "
		if i < len(preselected) && preselected[i] {
			mark = "x"
		}
		fmt.Fprintln(p.out, optionStyle.Render(fmt.Sprintf("[%s] %d) %s", mark, i+1, opt)))
	}

	for {
		fmt.Fprintf(p.out, "%s ", hintStyle.Render(`Choices (e.g. "1,3", empty keeps marked, "none" clears):`))
		answer, err := p.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(answer) {
		case "":
			var kept []int
			for i := range options {
				if i < len(preselected) && preselected[i] {
					kept = append(kept, i)
				}
			}
			return kept, nil
		case "none":
			return nil, nil
		}

		indices, err := parseSelection(answer, len(options))
		if err != nil {
			p.problem(err.Error())
			continue
		}
		return indices, nil
	}
}

// parseSelection parses "1,3,4" into unique ascending zero-based indices.
func parseSelection(answer string, count int) ([]int, error) {
	seen := make(map[int]bool)
	var indices []int
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > count {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", part, count)
		}
		if !seen[n-1] {
			seen[n-1] = true
			indices = append(indices, n-1)
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("no valid choices in %q", answer)
	}
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && indices[j] < indices[j-1]; j-- {
			indices[j], indices[j-1] = indices[j-1], indices[j]
		}
	}
	return indices, nil
}
