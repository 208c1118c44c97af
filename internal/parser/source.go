package parser

import (
	"strings"

	"github.com/kievzenit/pseudocode/internal/ast"
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/program_errors"
)

// SourceLine is a raw line of the program body.
type SourceLine struct {
	Number int
	Text   string
}

var (
	startMarkers = []string{"algoritmo", "proceso"}
	endMarkers   = []string{"finalgoritmo", "finproceso"}
)

// ExtractProgram returns the lines strictly between the first line starting
// with "Algoritmo" and the following line starting with "FinAlgoritmo".
// Markers are matched case-insensitively after leading whitespace.
func ExtractProgram(source string) ([]SourceLine, error) {
	rawLines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")

	start := -1
	for i, raw := range rawLines {
		lower := strings.ToLower(strings.TrimSpace(raw))
		if start < 0 {
			if hasAnyPrefix(lower, startMarkers) {
				start = i
			}
			continue
		}

		if hasAnyPrefix(lower, endMarkers) {
			lines := make([]SourceLine, 0, i-start-1)
			for j := start + 1; j < i; j++ {
				lines = append(lines, SourceLine{Number: j + 1, Text: rawLines[j]})
			}
			return lines, nil
		}
	}

	if start < 0 {
		return nil, program_errors.NewDetailed(program_errors.SyntaxError, "missing Algoritmo")
	}
	return nil, program_errors.NewDetailed(program_errors.SyntaxError, "missing FinAlgoritmo")
}

// TokenizeLines tokenizes each line and drops the ones that produce no
// tokens.
func TokenizeLines(lines []SourceLine, opts lexer.Options) ([]ast.Line, error) {
	tokenized := make([]ast.Line, 0, len(lines))
	for _, line := range lines {
		tokens, err := lexer.Tokenize(line.Text, opts)
		if err != nil {
			return nil, program_errors.AtLine(err, line.Number)
		}
		if len(tokens) == 0 {
			continue
		}

		tokenized = append(tokenized, ast.Line{Number: line.Number, Tokens: tokens})
	}

	return tokenized, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}
