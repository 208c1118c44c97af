package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kievzenit/pseudocode/internal/config"
	"github.com/kievzenit/pseudocode/internal/interpreter"
	l "github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/memory"
	"github.com/kievzenit/pseudocode/internal/parser"
	"github.com/kievzenit/pseudocode/internal/program_errors"
	"github.com/sanity-io/litter"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.psc>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dumpTokens := flag.Bool("tokens", false, "print the tokens of every program line and exit")
	dumpAst := flag.Bool("ast", false, "print the built program and exit")
	strict := flag.Bool("strict", false, "treat unknown characters and unterminated strings as syntax errors")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	eh := program_errors.NewErrorHandler(os.Stderr)

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	fileName := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}
	if *strict {
		cfg.StrictLexing = true
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fileData, err := os.ReadFile(fileName)
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}

	lines, err := parser.ExtractProgram(string(fileData))
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}
	logger.Debug("program extracted", "file", fileName, "lines", len(lines))

	tokenized, err := parser.TokenizeLines(lines, l.Options{
		Strict:      cfg.StrictLexing,
		KeepAccents: cfg.KeepAccents,
	})
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}

	if *dumpTokens {
		for _, line := range tokenized {
			fmt.Printf("%4d  %s\n", line.Number, line.String())
		}
		return
	}

	program, err := parser.Build(tokenized, parser.Options{
		MaxNesting: cfg.MaxNesting,
		Logger:     logger,
	})
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}

	if *dumpAst {
		litter.Dump(program)
		return
	}

	interp := interpreter.New(memory.NewStore(), interpreter.NewLineReader(os.Stdin), os.Stdout, interpreter.Options{
		Prompt:        cfg.Prompt,
		MaxNesting:    cfg.MaxNesting,
		BodyCacheSize: cfg.BodyCacheSize,
		Logger:        logger,
	})

	if err := interp.Run(program); err != nil {
		eh.AddError(err)
		eh.FailNow()
	}
}
