// Package prompt collects maze parameters interactively, re-asking until
// every value is valid.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lintang/labyrinthx/pkg/datastructure"

	"github.com/chzyer/readline"
	"github.com/go-playground/validator/v10"
)

var ErrAborted = errors.New("input aborted")

// LineReader subset dari *readline.Instance
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

type Params struct {
	N           int
	Probability float64
	Start       datastructure.Cell
	Goal        datastructure.Cell
}

type Prompter struct {
	rl       LineReader
	out      io.Writer
	validate *validator.Validate
}

func NewPrompter(rl LineReader, out io.Writer) *Prompter {
	return &Prompter{rl: rl, out: out, validate: validator.New()}
}

// NewReadline readline instance untuk terminal. caller wajib Close.
func NewReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
}

func (p *Prompter) readLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	switch {
	case err == nil:
		return strings.TrimSpace(line), nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: %v", ErrAborted, err)
	}
	return "", err
}

// Ask N, p, start lalu goal.
func (p *Prompter) Ask() (Params, error) {
	var params Params
	var err error
	if params.N, err = p.AskSize(); err != nil {
		return Params{}, err
	}
	if params.Probability, err = p.AskProbability(); err != nil {
		return Params{}, err
	}
	if params.Start, err = p.AskStart(params.N); err != nil {
		return Params{}, err
	}
	if params.Goal, err = p.AskGoal(params.N, params.Start); err != nil {
		return Params{}, err
	}
	return params, nil
}

func (p *Prompter) AskSize() (int, error) {
	rule := fmt.Sprintf("min=1,max=%d", datastructure.MaxGridSize)
	for {
		line, err := p.readLine("Enter N (grid size): ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr == nil && p.validate.Var(n, rule) == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "Invalid N. Must be between 1 and %d.\n", datastructure.MaxGridSize)
	}
}

func (p *Prompter) AskProbability() (float64, error) {
	for {
		line, err := p.readLine("Enter p (probability of free cell): ")
		if err != nil {
			return 0, err
		}
		prob, convErr := strconv.ParseFloat(line, 64)
		if convErr == nil && p.validate.Var(prob, "gte=0,lte=1") == nil {
			return prob, nil
		}
		fmt.Fprintln(p.out, "Invalid p. Must be between 0 and 1.")
	}
}

func (p *Prompter) AskStart(n int) (datastructure.Cell, error) {
	for {
		c, ok, err := p.askCell("Enter start cell coordinates (sx sy): ", n)
		if err != nil {
			return datastructure.Cell{}, err
		}
		if ok {
			return c, nil
		}
	}
}

func (p *Prompter) AskGoal(n int, start datastructure.Cell) (datastructure.Cell, error) {
	for {
		c, ok, err := p.askCell("Enter goal cell coordinates (gx gy): ", n)
		if err != nil {
			return datastructure.Cell{}, err
		}
		if !ok {
			continue
		}
		if c == start {
			fmt.Fprintln(p.out, "Goal cell cannot be the same as start cell.")
			continue
		}
		return c, nil
	}
}

// askCell ok false kalau input tidak valid (pesan sudah ditulis).
func (p *Prompter) askCell(prompt string, n int) (datastructure.Cell, bool, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return datastructure.Cell{}, false, err
	}

	rule := fmt.Sprintf("min=0,max=%d", n-1)
	fields := strings.Fields(line)
	if len(fields) == 2 {
		row, errRow := strconv.Atoi(fields[0])
		col, errCol := strconv.Atoi(fields[1])
		if errRow == nil && errCol == nil &&
			p.validate.Var(row, rule) == nil && p.validate.Var(col, rule) == nil {
			return datastructure.NewCell(row, col), true, nil
		}
	}
	fmt.Fprintf(p.out, "Invalid coordinates. Must be between 0 and %d.\n", n-1)
	return datastructure.Cell{}, false, nil
}
