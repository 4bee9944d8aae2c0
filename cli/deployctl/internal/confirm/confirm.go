// Package confirm shows the plan and asks the operator whether to go ahead.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"deploykit/cli/deployctl/internal/plan"
)

const Prompt = "¿Continuar con el despliegue? (s/n): "

var affirmatives = map[string]struct{}{
	"s":   {},
	"si":  {},
	"y":   {},
	"yes": {},
}

// IsAffirmative reports whether answer is one of s, si, y, yes, ignoring case
// and surrounding whitespace.
func IsAffirmative(answer string) bool {
	_, ok := affirmatives[strings.ToLower(strings.TrimSpace(answer))]
	return ok
}

// PrintPlan lists the step descriptions, numbered from 1.
func PrintPlan(w io.Writer, steps []plan.Step) {
	fmt.Fprintln(w, "\n📋 Pasos a ejecutar:")
	for i, s := range steps {
		fmt.Fprintf(w, "   %d. %s\n", i+1, s.Description)
	}
	fmt.Fprintln(w)
}

// Ask writes the prompt and reads a single line from r. End of input without
// an answer counts as a decline.
func Ask(r io.Reader, w io.Writer) (bool, error) {
	fmt.Fprint(w, Prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return IsAffirmative(line), nil
}

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
