// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package driver runs the interactive prompt sequence: read two operands,
// multiply them, and print the result line, or print the invalid-input
// message as soon as either operand fails to parse.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/product-calculator/internal/console"
	"github.com/pdiddy/product-calculator/internal/locale"
	"github.com/pdiddy/product-calculator/internal/multiply"
	"github.com/pdiddy/product-calculator/internal/operand"
)

// Outcome holds the operands and product of a completed run.
type Outcome struct {
	A       float64
	B       float64
	Product float64
}

// Line renders the result line, "{a} × {b} = {product}".
func (o Outcome) Line() string {
	return fmt.Sprintf("%s × %s = %s",
		operand.Format(o.A), operand.Format(o.B), operand.Format(o.Product))
}

// Driver runs one prompt sequence. It is not reusable: once Run returns,
// the driver is in a terminal state.
type Driver struct {
	in      *bufio.Reader
	console *console.Console
	catalog locale.Catalog
	logger  *log.Logger
	state   State
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Driver reading operator input from in and writing through c.
func New(in io.Reader, c *console.Console, catalog locale.Catalog, opts ...Option) *Driver {
	d := &Driver{
		in:      bufio.NewReader(in),
		console: c,
		catalog: catalog,
		logger:  log.New(io.Discard),
		state:   AwaitingFirstInput,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the driver's current state.
func (d *Driver) State() State {
	return d.state
}

// Run executes the prompt sequence. Invalid operator input is reported on
// the console and returned as an error wrapping
// operand.ErrInvalidNumericInput; the second prompt is never shown when the
// first operand is invalid. Other errors are returned without printing the
// invalid-input message.
func (d *Driver) Run() (Outcome, error) {
	if IsTerminal(d.state) {
		return Outcome{}, fmt.Errorf("driver already finished in state %s", d.state)
	}

	out, err := d.collect()
	if err == nil {
		return out, nil
	}

	if terr := d.transition(Failed); terr != nil {
		return Outcome{}, errors.Join(err, terr)
	}
	if errors.Is(err, operand.ErrInvalidNumericInput) {
		if perr := d.console.Error(d.catalog.InvalidInput); perr != nil {
			return Outcome{}, errors.Join(err, fmt.Errorf("writing error message: %w", perr))
		}
	}
	return Outcome{}, err
}

func (d *Driver) collect() (Outcome, error) {
	a, err := d.ask(d.catalog.FirstPrompt)
	if err != nil {
		return Outcome{}, fmt.Errorf("first operand: %w", err)
	}
	if err := d.transition(AwaitingSecondInput); err != nil {
		return Outcome{}, err
	}

	b, err := d.ask(d.catalog.SecondPrompt)
	if err != nil {
		return Outcome{}, fmt.Errorf("second operand: %w", err)
	}

	out := Outcome{A: a, B: b, Product: multiply.Multiply(a, b)}
	d.logger.Debug("computed product", "a", a, "b", b, "product", out.Product)

	if err := d.console.Result(out.Line()); err != nil {
		return Outcome{}, fmt.Errorf("writing result: %w", err)
	}
	if err := d.transition(Done); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// ask prompts, reads one line and parses it.
func (d *Driver) ask(prompt string) (float64, error) {
	if err := d.console.Prompt(prompt); err != nil {
		return 0, fmt.Errorf("writing prompt: %w", err)
	}
	line, err := d.readLine()
	if err != nil {
		return 0, err
	}
	v, err := operand.Parse(line)
	if err != nil {
		d.logger.Debug("rejected operand", "input", line)
		return 0, err
	}
	d.logger.Debug("parsed operand", "input", line, "value", v)
	return v, nil
}

// readLine returns the next line. End of input returns whatever was read
// before it, which is empty when the operator sent nothing.
func (d *Driver) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}
