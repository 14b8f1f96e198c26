package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeffzh4ng/rlox/chunk"
	"github.com/jeffzh4ng/rlox/lox"
)

// Exit codes follow the BSD sysexits convention.
const (
	exitUsage    = 64
	exitSoftware = 70
	exitIOErr    = 74
)

func main() {
	if err := runCLI(os.Args); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.err != nil {
				fmt.Fprintln(os.Stderr, exit.err)
			}
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError carries a process exit code out of runCLI. err is nil when the
// problem has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

func runCLI(args []string) error {
	if len(args) < 2 {
		return replCommand(nil)
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "disasm":
		return disasmCommand()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only parse the script without executing")
	if err := fs.Parse(args); err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	source, err := readScript("run", fs.Args())
	if err != nil {
		return err
	}
	rep := newStreamReporter(os.Stderr, source, isTerminal(os.Stderr))
	statements := lox.Parse(lox.Scan(source, rep), rep)
	if rep.HadError() {
		return &exitError{code: exitUsage}
	}
	if *checkOnly {
		return nil
	}

	interp := lox.NewInterpreter(lox.Config{Stdout: os.Stdout, Reporter: rep})
	interp.Interpret(statements)
	if rep.HadRuntimeError() {
		return &exitError{code: exitSoftware}
	}
	return nil
}

func tokensCommand(args []string) error {
	source, err := readScript("tokens", args)
	if err != nil {
		return err
	}
	rep := newStreamReporter(os.Stderr, source, isTerminal(os.Stderr))
	for _, tok := range lox.Scan(source, rep) {
		fmt.Println(tok.String())
	}
	if rep.HadError() {
		return &exitError{code: exitUsage}
	}
	return nil
}

func astCommand(args []string) error {
	source, err := readScript("ast", args)
	if err != nil {
		return err
	}
	rep := newStreamReporter(os.Stderr, source, isTerminal(os.Stderr))
	for _, stmt := range lox.Parse(lox.Scan(source, rep), rep) {
		fmt.Println(lox.FormatStmt(stmt))
	}
	if rep.HadError() {
		return &exitError{code: exitUsage}
	}
	return nil
}

func disasmCommand() error {
	c := chunk.New()
	constant := c.AddConstant(1.2)
	c.WriteOp(chunk.OpConstant, 123)
	c.Write(byte(constant), 123)
	c.WriteOp(chunk.OpReturn, 123)
	chunk.Disassemble(os.Stdout, c, "test chunk")
	return nil
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	plain := fs.Bool("plain", false, "use the line-oriented REPL")
	configPath := fs.String("config", "", "path to a YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	applyTheme(cfg.Theme)

	if *plain {
		cfg.REPL.Mode = replModePlain
	}
	if useTUI(cfg.REPL.Mode, isTerminal(os.Stdin) && isTerminal(os.Stdout)) {
		return runTUI(cfg.REPL)
	}
	return runLineREPL(cfg.REPL)
}

func useTUI(mode string, terminal bool) bool {
	switch mode {
	case replModeTUI:
		return true
	case replModePlain:
		return false
	default:
		return terminal
	}
}

// readScript loads the file named by the single positional argument of cmd.
func readScript(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &exitError{code: exitUsage, err: fmt.Errorf("lox %s: script path required", cmd)}
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return "", &exitError{code: exitIOErr, err: fmt.Errorf("resolve script path: %w", err)}
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return "", &exitError{code: exitIOErr, err: fmt.Errorf("read script: %w", err)}
	}
	return string(input), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-check] <script>")
	fmt.Fprintln(os.Stderr, "    execute a script (exit 64 on syntax errors, 70 on runtime errors)")
	fmt.Fprintln(os.Stderr, "  repl [-plain] [-config path]")
	fmt.Fprintln(os.Stderr, "    start an interactive session (default when no command is given)")
	fmt.Fprintln(os.Stderr, "  tokens <script>")
	fmt.Fprintln(os.Stderr, "    print the scanned tokens, one per line")
	fmt.Fprintln(os.Stderr, "  ast <script>")
	fmt.Fprintln(os.Stderr, "    print each parsed statement in prefix form")
	fmt.Fprintln(os.Stderr, "  disasm")
	fmt.Fprintln(os.Stderr, "    disassemble the demonstration bytecode chunk")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
