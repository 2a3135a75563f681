package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	column "ColumnSolver/internal/calc/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(strings.NewReader(input), &out).Run())
	return out.String()
}

func TestRun_StraightCircular(t *testing.T) {
	out := run(t, "1 1 2 1 50 36000 30000000 n")

	assert.Contains(t, out, "Radius of gyration: 0.500000\n")
	assert.Contains(t, out, "Area: 3.141593\n")
	assert.Contains(t, out, "Slenderness ratio: 100.000000\n")
	assert.Contains(t, out, "Column constant: 128.254983\n")
	assert.Contains(t, out, "The column is short, so use Johnson's formula.\n")
	assert.Contains(t, out, "Critical Load (Johnson): 78719.867821\n")
	assert.NotContains(t, out, "Allowable Load")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the system\n"))
}

func TestRun_StraightRectangular(t *testing.T) {
	// B, H, L, K, S, E
	out := run(t, "1\n2\n2\n4\n100\n1\n36000\n30000000\nn\n")

	assert.Contains(t, out, "Radius of gyration: 0.577350\n")
	assert.Contains(t, out, "Area: 8.000000\n")
	assert.Contains(t, out, "The column is long, so use Euler's formula.\n")
	assert.Contains(t, out, "Critical Load (Euler): 78956.835209\n")
}

func TestRun_CrookedCircularPromptOrder(t *testing.T) {
	// D, K, a, N, L, S, E
	out := run(t, "2 1 2 1 0.1 3 100 36000 30000000 n")

	order := []string{
		"Enter the diameter(D): ",
		"Enter the constant end fixity(K): ",
		"Enter the initial crookedness(a): ",
		"Enter the design factor(N): ",
		"Enter the actual length(L): ",
		"Enter the yield strength of material(S): ",
		"Enter the modulus of elasticity of material(E): ",
	}
	last := -1
	for _, p := range order {
		i := strings.Index(out, p)
		require.Greater(t, i, last, "prompt %q out of order", p)
		last = i
	}
	assert.Contains(t, out, "C1: -48551.308681\n")
	assert.Contains(t, out, "C2: 292227273.102007\n")
	assert.Contains(t, out, "Allowable Load: 7039.642024\n")
}

func TestRun_EccentricRectangular(t *testing.T) {
	// B, H, L, N, K, S, E, e
	out := run(t, "3 2 2 4 100 2 1 36000 30000000 0.75 n")

	assert.NotContains(t, out, "initial crookedness")
	assert.Contains(t, out, "Eccentricity: 0.750000\n")
	assert.Contains(t, out, "Allowable Load: ")
	assert.Contains(t, out, " (load/area)\n")
}

func TestRun_RepromptsOnBadNumbers(t *testing.T) {
	out := run(t, "1 1 abc -2 0 NaN 2 1 50 36000 30000000 n")

	assert.Equal(t, 1, strings.Count(out, "Invalid input, try again.\n"))
	assert.Equal(t, 3, strings.Count(out, "Value must be positive and finite.\n"))
	assert.Equal(t, 5, strings.Count(out, "Enter the diameter(D): "))
	assert.Contains(t, out, "Critical Load (Johnson): 78719.867821\n")
}

func TestRun_InvalidMenuSelectionReturnsToMenu(t *testing.T) {
	out := run(t, "7 x 0")

	assert.Equal(t, 2, strings.Count(out, "Invalid selection\n"))
	assert.Equal(t, 3, strings.Count(out, "Select from the following (0 to exit): "))
	assert.NotContains(t, out, "Back to main menu?")
	assert.NotContains(t, out, "Radius of gyration")
}

func TestRun_InvalidCrossSectionSkipsComputation(t *testing.T) {
	out := run(t, "1 3 y 0")

	assert.Contains(t, out, "Invalid option.\n")
	assert.NotContains(t, out, "Radius of gyration")
	assert.Contains(t, out, "Back to main menu? (y/n): ")
	assert.Equal(t, 2, strings.Count(out, "<----------MENU---------->"))
}

func TestRun_ContinueLoop(t *testing.T) {
	out := run(t, "1 1 2 1 50 36000 30000000 Yes 1 1 2 1 50 36000 30000000 maybe 1")

	assert.Equal(t, 2, strings.Count(out, "Critical Load (Johnson)"))
	assert.Equal(t, 2, strings.Count(out, "<----------MENU---------->"), "non-affirmative answer ends the session")
}

func TestRun_EndOfInput(t *testing.T) {
	out := run(t, "1 1 2")

	assert.True(t, strings.HasSuffix(out, "Thank you for using the system\n"))
	assert.NotContains(t, out, "Radius of gyration")
}

func TestRun_NonNumericSelectionThenEndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := New(strings.NewReader("abc"), &out).Run()
	require.NoError(t, err)

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "Invalid selection\n"))
	assert.Equal(t, 2, strings.Count(got, "Select from the following (0 to exit): "), "menu is shown again before input ends")
	assert.NotContains(t, got, "Back to main menu?")
	assert.True(t, strings.HasSuffix(got, "Select from the following (0 to exit): \nThank you for using the system\n"))
}

func TestRun_OverflowIsReported(t *testing.T) {
	out := run(t, "1 1 1e200 1 50 36000 30000000 n")

	assert.Contains(t, out, "Result out of range: area is out of range (+Inf) for these inputs\n")
	assert.NotContains(t, out, "Radius of gyration")
	assert.Contains(t, out, "Back to main menu? (y/n): ")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the system\n"))
}

func TestParsePositive(t *testing.T) {
	v, err := parsePositive("2.5e3")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, v)

	_, err = parsePositive("ten")
	var fe *InputFormatError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, `"ten" is not a number`, err.Error())

	for _, tok := range []string{"0", "-1", "Inf", "NaN", "1e400"} {
		_, err := parsePositive(tok)
		assert.ErrorIs(t, err, column.ErrInvalidInput, tok)
	}
}

func TestAffirmative(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", "Yep"} {
		assert.True(t, affirmative(s), s)
	}
	for _, s := range []string{"n", "N", "no", "ok", "1"} {
		assert.False(t, affirmative(s), s)
	}
}
