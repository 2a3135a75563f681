// Package shell is the interactive column solver menu. It reads
// whitespace-separated tokens, validates every number before the calculator
// sees it and prints fixed-precision reports.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	column "ColumnSolver/internal/calc/column"
	"ColumnSolver/internal/calc/report"
)

// InputFormatError is a token that is not a number.
type InputFormatError struct {
	Token string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%q is not a number", e.Token)
}

type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Shell {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Shell{in: sc, out: w}
}

// Run loops over the menu until the user exits, declines to continue or
// input ends. End of input is not an error.
func (s *Shell) Run() error {
	err := s.loop()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	s.printf("\nThank you for using the system\n")
	return err
}

func (s *Shell) loop() error {
	for {
		s.printf("<----------MENU---------->\n")
		s.printf("Welcome to Column Solver\n")
		s.printf("1 - Straight column\n2 - Crooked column\n3 - Eccentric column\n")
		s.printf("Select from the following (0 to exit): ")

		tok, err := s.next()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(tok)
		if err == nil && n == 0 {
			return nil
		}
		c, err := caseFor(tok, n, err)
		if err != nil {
			s.printf("Invalid selection\n")
			continue
		}
		if err := s.runCase(c); err != nil {
			return err
		}

		s.printf("\nBack to main menu? (y/n): ")
		answer, err := s.next()
		if err != nil {
			return err
		}
		if !affirmative(answer) {
			return nil
		}
	}
}

func caseFor(tok string, n int, convErr error) (column.Case, error) {
	if convErr != nil {
		return "", &column.InvalidSelectionError{What: "case", Value: tok}
	}
	return column.CaseFromSelector(n)
}

// affirmative reports whether the answer starts with y or Y; anything else ends
// the session.
func affirmative(answer string) bool {
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}

func (s *Shell) runCase(c column.Case) error {
	s.printf("\nPlease type if its 1-circular cross section, 2-rectangular cross section: ")
	tok, err := s.next()
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(tok)
	if convErr != nil {
		n = -1
	}
	shape, err := column.ShapeFromSelector(n)
	if err != nil {
		s.printf("Invalid option.\n")
		return nil
	}

	in, err := s.readInput(c, shape)
	if err != nil {
		return err
	}
	ev, err := column.Evaluate(in)
	var oe *column.OverflowError
	if errors.As(err, &oe) {
		s.printf("Result out of range: %v\n", oe)
		return nil
	}
	if err != nil {
		// readInput only returns validated values, so this is a bug.
		return fmt.Errorf("evaluate %s column: %w", c, err)
	}
	return report.WriteText(s.out, ev)
}

// readInput prompts for exactly the parameters the case and shape use.
func (s *Shell) readInput(c column.Case, shape column.Shape) (column.Input, error) {
	in := column.Input{Case: c, Section: column.CrossSection{Shape: shape}}
	var fields []prompt
	if shape == column.ShapeCircular {
		fields = append(fields,
			prompt{"Enter the diameter(D): ", &in.Section.Diameter},
			prompt{"Enter the constant end fixity(K): ", &in.Loading.EndFixity},
		)
		if c != column.CaseStraight {
			fields = append(fields,
				prompt{"Enter the initial crookedness(a): ", &in.Loading.InitialCrookedness},
				prompt{"Enter the design factor(N): ", &in.Loading.DesignFactor},
			)
		}
		fields = append(fields, prompt{"Enter the actual length(L): ", &in.Loading.Length})
	} else {
		fields = append(fields,
			prompt{"Enter the base(B): ", &in.Section.Base},
			prompt{"Enter the height(H): ", &in.Section.Height},
			prompt{"Enter the length(L): ", &in.Loading.Length},
		)
		if c != column.CaseStraight {
			fields = append(fields, prompt{"Enter the design factor(N): ", &in.Loading.DesignFactor})
		}
		fields = append(fields, prompt{"Enter the constant end fixity(K): ", &in.Loading.EndFixity})
	}
	fields = append(fields,
		prompt{"Enter the yield strength of material(S): ", &in.Material.YieldStrength},
		prompt{"Enter the modulus of elasticity of material(E): ", &in.Material.ElasticModulus},
	)
	if c == column.CaseEccentric {
		fields = append(fields, prompt{"Enter the eccentricity(e): ", &in.Loading.Eccentricity})
	}

	for _, f := range fields {
		v, err := s.readPositive(f.text)
		if err != nil {
			return column.Input{}, err
		}
		*f.dst = v
	}
	return in, nil
}

type prompt struct {
	text string
	dst  *float64
}

// readPositive prompts until it reads a positive, finite number.
func (s *Shell) readPositive(text string) (float64, error) {
	for {
		s.printf("%s", text)
		tok, err := s.next()
		if err != nil {
			return 0, err
		}
		v, err := parsePositive(tok)
		var fe *InputFormatError
		switch {
		case err == nil:
			return v, nil
		case errors.As(err, &fe):
			s.printf("Invalid input, try again.\n")
		default:
			s.printf("Value must be positive and finite.\n")
		}
	}
}

func parsePositive(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, &column.DomainError{Field: "value", Value: v}
		}
		return 0, &InputFormatError{Token: tok}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &column.DomainError{Field: "value", Value: v}
	}
	return v, nil
}

func (s *Shell) next() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
