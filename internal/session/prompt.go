package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"fxtrend/internal/service"
)

// ErrInputClosed is returned when the input stream ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

const dateLayout = "2006-01-02"

// Prompter reads answers line by line and re-prompts on invalid input.
type Prompter struct {
	in      *bufio.Scanner
	out     io.Writer
	warn    *color.Color
	now     func() time.Time
	minDate time.Time
}

func newPrompter(in io.Reader, out io.Writer, colors bool, now func() time.Time, minDate time.Time) *Prompter {
	warn := color.New(color.FgRed)
	if colors {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}
	return &Prompter{
		in:      bufio.NewScanner(in),
		out:     out,
		warn:    warn,
		now:     now,
		minDate: minDate,
	}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) warnf(format string, args ...any) {
	p.warn.Fprintf(p.out, format, args...) //nolint:errcheck // console output
}

// Currency asks until the answer is a supported currency code and returns it upper-cased.
func (p *Prompter) Currency(prompt string, v service.Validator) (string, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		code, err := v.Validate(answer)
		if err == nil {
			return code, nil
		}
		p.warnf("\nInvalid currency code. Please enter a valid 3-letter currency code (e.g., USD, EUR).\n")
		fmt.Fprintf(p.out, "Supported currencies: %s\n\n", strings.Join(v.Codes(), ", "))
	}
}

// Date asks until the answer is a YYYY-MM-DD date between the minimum date and today.
func (p *Prompter) Date(prompt string) (time.Time, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, problem := p.checkDate(answer)
		if problem == "" {
			return d, nil
		}
		p.warnf("\nInvalid input: %s\n\n", problem)
	}
}

// checkDate returns a description of what is wrong with s, or "" when s is acceptable.
func (p *Prompter) checkDate(s string) (time.Time, string) {
	if len(s) != len(dateLayout) {
		return time.Time{}, "number of characters must be 10. Include leading zeros where necessary."
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, "date must be a valid calendar date in YYYY-MM-DD format."
	}
	now := p.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return time.Time{}, "Date cannot be in the future."
	}
	if d.Before(p.minDate) {
		return time.Time{}, fmt.Sprintf("Date cannot be before %s.", p.minDate.Format(dateLayout))
	}
	return d, ""
}

// Amount asks once. Invalid or non-positive answers fall back to def without re-prompting.
func (p *Prompter) Amount(prompt string, def decimal.Decimal) (decimal.Decimal, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	amount, ok := service.ParseAmount(answer)
	if !ok {
		p.warnf("\nInvalid amount. Setting amount to %s.\n\n", def)
		return def, nil
	}
	return amount, nil
}
