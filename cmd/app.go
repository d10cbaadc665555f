package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/leonardinius/golox/internal/interpreter"
	"github.com/leonardinius/golox/internal/loxerrors"
	"github.com/leonardinius/golox/internal/parser"
	"github.com/leonardinius/golox/internal/scanner"
)

// Exit codes, as in sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

var (
	errSyntax  = errors.New("syntax error")
	errRuntime = errors.New("runtime error")
)

type LoxApp struct {
	stdin       io.ReadCloser
	stdout      io.Writer
	stderr      io.Writer
	diagnostics *loxerrors.Diagnostics
	interpreter interpreter.Interpreter
	printAst    bool
}

type AppOption func(*LoxApp)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(app *LoxApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stderr = stderr
	}
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range options {
		opt(app)
	}

	app.diagnostics = loxerrors.NewDiagnostics(app.stderr)
	app.interpreter = interpreter.NewInterpreter(
		interpreter.WithStdout(app.stdout),
		interpreter.WithStderr(app.stderr),
		interpreter.WithErrorReporter(app.diagnostics),
	)
	return app
}

// Main runs the command line and returns the process exit code.
func (app *LoxApp) Main(args []string) int {
	err := app.newCliApp().Run(append([]string{"golox"}, args...))
	if err == nil {
		return ExitOK
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(app.stderr, msg)
		}
		return exitErr.ExitCode()
	}

	// flag parsing errors
	fmt.Fprintln(app.stderr, err)
	return ExitUsage
}

func (app *LoxApp) newCliApp() *cli.App {
	return &cli.App{
		Name:            "golox",
		Usage:           "a tree-walking interpreter for the Lox language",
		UsageText:       "golox [options] [script]",
		HideHelpCommand: true,
		Reader:          app.stdin,
		Writer:          app.stdout,
		ErrWriter:       app.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "expr",
				Aliases: []string{"e"},
				Usage:   "evaluate a single expression and print its value",
			},
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "print the syntax tree instead of running it",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read driver settings from a YAML `FILE`",
				EnvVars: []string{"GOLOX_CONFIG"},
			},
		},
		Action: app.action,
		// exit codes are mapped by Main; never let the library call os.Exit
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (app *LoxApp) action(c *cli.Context) error {
	app.printAst = c.Bool("ast")

	// a broken config fails every mode, not only the REPL
	config, err := LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), ExitIOErr)
	}

	if c.IsSet("expr") {
		if c.NArg() > 0 {
			return cli.Exit("Usage: golox --expr <expression>", ExitUsage)
		}
		return exitCode(app.runExpr(c.String("expr")))
	}

	switch c.NArg() {
	case 0:
		return exitCode(app.runPrompt(config))
	case 1:
		return exitCode(app.runFile(c.Args().First()))
	default:
		return cli.Exit("Usage: golox [script]", ExitUsage)
	}
}

func exitCode(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errSyntax):
		return cli.Exit("", ExitDataErr)
	case errors.Is(err, errRuntime):
		return cli.Exit("", ExitSoftware)
	}
	return cli.Exit(err.Error(), ExitIOErr)
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	_, err = app.run(string(bytes))
	return err
}

// lineReader is the part of readline the prompt loop needs.
type lineReader interface {
	Readline() (string, error)
}

func (app *LoxApp) runPrompt(config Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      config.Prompt,
		HistoryFile: config.HistoryFile,
		Stdin:       app.stdin,
		Stdout:      app.stdout,
		Stderr:      app.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	return app.prompt(rl, config.Echo)
}

func (app *LoxApp) prompt(rl lineReader, echo bool) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		app.runLine(line, echo)
	}
}

// runLine runs one REPL line. Errors are reported, never fatal: the
// diagnostics are reset and globals defined so far stay available.
func (app *LoxApp) runLine(line string, echo bool) {
	defer app.diagnostics.Reset()

	result, err := app.run(line)
	if err == nil && echo && result != "" {
		fmt.Fprintln(app.stdout, result)
	}
}

// run scans, parses and interprets source. It returns what the
// interpreter returned for the last expression statement.
func (app *LoxApp) run(source string) (string, error) {
	tokens, _ := scanner.NewScanner(source, app.diagnostics).Scan()
	statements, _ := parser.NewParser(tokens, app.diagnostics).Parse()

	// the parser runs even after a scan error, to report its diagnostics too
	if app.diagnostics.HadError() {
		return "", errSyntax
	}

	if app.printAst {
		_, err := io.WriteString(app.stdout, parser.NewAstPrinter().PrintProgram(statements))
		return "", err
	}

	result, err := app.interpreter.Interpret(statements)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errRuntime, err)
	}

	return result, nil
}

func (app *LoxApp) runExpr(source string) error {
	tokens, _ := scanner.NewScanner(source, app.diagnostics).Scan()
	expr, _ := parser.NewParser(tokens, app.diagnostics).ParseExpression()

	if app.diagnostics.HadError() {
		return errSyntax
	}

	if app.printAst {
		_, err := fmt.Fprintln(app.stdout, parser.NewAstPrinter().Print(expr))
		return err
	}

	v, err := app.interpreter.Evaluate(expr)
	if err != nil {
		return fmt.Errorf("%w: %w", errRuntime, err)
	}

	_, err = fmt.Fprintln(app.stdout, v.String())
	return err
}
