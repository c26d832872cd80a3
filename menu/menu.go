// Package menu implements the interactive session of the fleet manager: a
// single-character command loop reading operator input line by line.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/fleet"
	"github.com/etnz/fleet/renderer"
	"github.com/rs/zerolog"
)

// ErrInputClosed is returned by Run when the operator input ends before the
// exit command. Nothing is saved in that case.
var ErrInputClosed = errors.New("menu: operator input closed before exit")

// maxLineBytes bounds an operator answer. Longer lines are discarded.
const maxLineBytes = 64 * 1024

// errLineTooLong is reported to the operator, the loop goes on.
var errLineTooLong = errors.New("menu: input line too long")

// State is the state of the command loop.
type State int

const (
	Running State = iota
	Exited
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Exited:
		return "EXITED"
	default:
		return "UNKNOWN"
	}
}

// Operator facing texts.
const (
	banner        = "Welcome to the Fleet Management System\n--------------------------------------\n"
	menuPrompt    = "\n(P)rint, (A)dd, (R)emove, (E)xpense, e(X)it : "
	addPrompt     = "Please enter the new boat CSV data      : "
	removePrompt  = "Which boat do you want to remove?       : "
	spendPrompt   = "Which boat do you want to spend on?    : "
	amountPrompt  = "How much do you want to spend?         : "
	invalidOption = "Invalid menu option, try again"
	lineTooLong   = "Input line too long, try again"
)

// Saver persists the fleet when the operator exits.
type Saver interface {
	Save(f *fleet.Fleet) error
}

// Config holds what a Menu needs to run.
type Config struct {
	In     io.Reader       // operator input, one answer per line.
	Out    io.Writer       // operator display.
	Store  Saver           // where the fleet is saved on exit.
	Logger *zerolog.Logger // optional, defaults to a no-op logger.
}

// command is an entry of the command table.
type command struct {
	name string
	run  func(m *Menu) error
}

// Menu is an interactive session over a fleet.
type Menu struct {
	fleet    *fleet.Fleet
	in       *bufio.Reader
	out      io.Writer
	store    Saver
	log      zerolog.Logger
	state    State
	commands map[rune]command
}

// New creates a menu over f.
func New(f *fleet.Fleet, cfg Config) *Menu {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Menu{
		fleet: f,
		in:    bufio.NewReader(cfg.In),
		out:   cfg.Out,
		store: cfg.Store,
		log:   log,
		state: Running,
		commands: map[rune]command{
			'P': {name: "print", run: (*Menu).print},
			'A': {name: "add", run: (*Menu).add},
			'R': {name: "remove", run: (*Menu).remove},
			'E': {name: "expense", run: (*Menu).expense},
			'X': {name: "exit", run: (*Menu).exit},
		},
	}
}

// State returns the current state of the loop.
func (m *Menu) State() State { return m.state }

// Fleet returns the fleet the menu operates on.
func (m *Menu) Fleet() *fleet.Fleet { return m.fleet }

// Run prints the banner and processes operator commands until the exit
// command. Only the exit command saves the fleet.
//
// Run returns nil after a normal exit, ErrInputClosed if the input ends
// before, or the input read error. Lines longer than 64 KiB are reported and
// ignored.
func (m *Menu) Run() error {
	fmt.Fprint(m.out, banner)
	for m.state == Running {
		line, err := m.ask(menuPrompt)
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(m.out, lineTooLong)
			continue
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		c, _ := utf8.DecodeRuneInString(line)
		cmd, ok := m.commands[unicode.ToUpper(c)]
		if !ok {
			m.log.Debug().Str("input", line).Msg("invalid menu option")
			fmt.Fprintln(m.out, invalidOption)
			continue
		}
		m.log.Debug().Str("command", cmd.name).Msg("dispatching command")
		err = cmd.run(m)
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(m.out, lineTooLong)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ask prints prompt and reads the operator's answer, without its "\n" or
// "\r\n" line ending.
func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	var line []byte
	tooLong := false
	for {
		chunk, more, err := m.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		if err != nil {
			return "", fmt.Errorf("menu: reading operator input: %w", err)
		}
		if len(line)+len(chunk) > maxLineBytes {
			tooLong = true
		} else if !tooLong {
			line = append(line, chunk...)
		}
		if !more {
			break
		}
	}
	if tooLong {
		m.log.Debug().Msg("operator input line too long, discarded")
		return "", errLineTooLong
	}
	return string(line), nil
}

func (m *Menu) print() error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Fleet report:")
	return renderer.Report(m.out, m.fleet)
}

func (m *Menu) add() error {
	line, err := m.ask(addPrompt)
	if err != nil {
		return err
	}
	b, err := m.fleet.Add(line)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid boat data: %v\n", err)
		return nil
	}
	m.log.Info().Str("boat", b.Name).Msg("boat added")
	return nil
}

func (m *Menu) remove() error {
	name, err := m.ask(removePrompt)
	if err != nil {
		return err
	}
	b, err := m.fleet.Remove(name)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot find boat "+name)
		return nil
	}
	m.log.Info().Str("boat", b.Name).Msg("boat removed")
	return nil
}

func (m *Menu) expense() error {
	name, err := m.ask(spendPrompt)
	if err != nil {
		return err
	}
	b, err := m.fleet.Find(name)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot find boat "+name)
		return nil
	}

	input, err := m.ask(amountPrompt)
	if err != nil {
		return err
	}
	amount, err := fleet.ParseMoney(input, m.fleet.Currency())
	if err != nil {
		fmt.Fprintf(m.out, "Invalid amount: %v\n", err)
		return nil
	}

	var refused *fleet.ExpenseRefusedError
	switch err := b.Authorize(amount); {
	case err == nil:
		m.log.Info().Str("boat", b.Name).Str("amount", amount.Fixed(2)).Msg("expense authorized")
		fmt.Fprintf(m.out, "Expense authorized, $%s spent.\n", b.Expenses.Fixed(2))
	case errors.As(err, &refused):
		fmt.Fprintf(m.out, "Expense not permitted, only $%s left to spend.\n", refused.Remaining.Fixed(2))
	default:
		fmt.Fprintf(m.out, "Invalid amount: %v\n", err)
	}
	return nil
}

func (m *Menu) exit() error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Exiting the Fleet Management System")
	if err := m.store.Save(m.fleet); err != nil {
		m.log.Debug().Err(err).Msg("fleet not saved")
	}
	m.state = Exited
	return nil
}
