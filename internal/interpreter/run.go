package interpreter

import (
	"io"

	"github.com/kievzenit/pseudocode/internal/memory"
	"github.com/kievzenit/pseudocode/internal/parser"
)

// RunSource extracts, tokenizes, builds and runs a whole source file with a
// fresh variable store.
func RunSource(source string, in io.Reader, out io.Writer, opts Options) error {
	opts = opts.normalize()

	lines, err := parser.ExtractProgram(source)
	if err != nil {
		return err
	}

	tokenized, err := parser.TokenizeLines(lines, opts.Lexer)
	if err != nil {
		return err
	}

	program, err := parser.Build(tokenized, parser.Options{
		MaxNesting: opts.MaxNesting,
		Logger:     opts.Logger,
	})
	if err != nil {
		return err
	}

	return New(memory.NewStore(), NewLineReader(in), out, opts).Run(program)
}
