package program_errors

import (
	"errors"
	"fmt"
	"io"
	"os"
)

type ErrorHandler interface {
	AddError(err error)
	HasErrors() bool
	FailNow()
}

// WriterErrorHandler renders collected errors to a writer. Program errors are
// printed with their code; anything else (I/O, config) is printed as is.
type WriterErrorHandler struct {
	errors []error
	writer io.Writer

	exit func(code int)
}

func NewErrorHandler(outputWriter io.Writer) *WriterErrorHandler {
	return &WriterErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,

		exit: os.Exit,
	}
}

func (eh *WriterErrorHandler) AddError(err error) {
	eh.errors = append(eh.errors, err)
}

func (eh *WriterErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// FailNow prints the collected errors and exits. It does nothing when no
// error was added.
func (eh *WriterErrorHandler) FailNow() {
	if !eh.HasErrors() {
		return
	}

	for _, err := range eh.errors {
		var programErr *Error
		if errors.As(err, &programErr) {
			fmt.Fprintln(eh.writer, programErr.Error())
			continue
		}

		fmt.Fprintf(eh.writer, "ERROR: %s\n", err)
	}

	eh.exit(1)
}
