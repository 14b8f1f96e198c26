package lox

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Config wires an Interpreter to its surroundings. Zero fields are filled in
// by NewInterpreter.
type Config struct {
	// Stdout receives the output of print statements. Defaults to os.Stdout.
	Stdout io.Writer
	// Reporter receives lexical, syntax and runtime errors. Defaults to a
	// Diagnostics writing to os.Stderr.
	Reporter Reporter
}

// Interpreter evaluates statements against one environment chain rooted at a
// global scope that lives as long as the Interpreter. It is not safe for
// concurrent use.
type Interpreter struct {
	out      io.Writer
	reporter Reporter
	globals  *Env
	env      *Env
}

func NewInterpreter(cfg Config) *Interpreter {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Reporter == nil {
		cfg.Reporter = NewDiagnostics(os.Stderr)
	}
	globals := NewEnv(nil)
	return &Interpreter{
		out:      cfg.Stdout,
		reporter: cfg.Reporter,
		globals:  globals,
		env:      globals,
	}
}

// Globals returns the outermost scope.
func (in *Interpreter) Globals() *Env { return in.globals }

// Interpret executes statements in order. A runtime error is reported and
// abandons only the statement that raised it.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.Execute(stmt); err != nil {
			in.reportRuntime(err)
		}
	}
}

// Eval runs source through the whole pipeline. Nothing is executed when the
// source has lexical or syntax errors. The returned value is that of the last
// statement when it is an expression statement that completed.
func (in *Interpreter) Eval(source string) (Value, bool) {
	counter := &errorCounter{Reporter: in.reporter}
	statements := Parse(Scan(source, counter), counter)
	if counter.errors > 0 {
		return NewNil(), false
	}

	result, hasResult := NewNil(), false
	for _, stmt := range statements {
		val, err := in.Execute(stmt)
		if err != nil {
			in.reportRuntime(err)
			result, hasResult = NewNil(), false
			continue
		}
		_, hasResult = stmt.(*ExpressionStmt)
		result = val
	}
	return result, hasResult
}

// Execute runs a single statement. Expression statements yield the value of
// their expression; every other statement yields nil.
func (in *Interpreter) Execute(stmt Stmt) (Value, error) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return in.evaluate(s.Expr)
	case *PrintStmt:
		val, err := in.evaluate(s.Expr)
		if err != nil {
			return NewNil(), err
		}
		fmt.Fprintln(in.out, val.String())
		return NewNil(), nil
	case *VarStmt:
		val := NewNil()
		if s.Initializer != nil {
			var err error
			if val, err = in.evaluate(s.Initializer); err != nil {
				return NewNil(), err
			}
		}
		in.env.Define(s.Name.Lexeme, val)
		return NewNil(), nil
	case *BlockStmt:
		return NewNil(), in.executeBlock(s.Statements, NewEnv(in.env))
	case *IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return NewNil(), err
		}
		switch {
		case cond.Truthy():
			_, err = in.Execute(s.Then)
		case s.Else != nil:
			_, err = in.Execute(s.Else)
		}
		return NewNil(), err
	default:
		return NewNil(), fmt.Errorf("unsupported statement %T", stmt)
	}
}

// executeBlock runs statements in env and restores the previous scope on the
// way out, including when a statement fails.
func (in *Interpreter) executeBlock(statements []Stmt, env *Env) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if _, err := in.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return in.evaluate(e.Inner)
	case *VariableExpr:
		return in.env.Get(e.Name)
	case *AssignExpr:
		val, err := in.evaluate(e.Value)
		if err != nil {
			return NewNil(), err
		}
		if err := in.env.Assign(e.Name, val); err != nil {
			return NewNil(), err
		}
		return val, nil
	case *UnaryExpr:
		return in.evalUnary(e)
	case *BinaryExpr:
		return in.evalBinary(e)
	case *LogicalExpr:
		return in.evalLogical(e)
	default:
		return NewNil(), fmt.Errorf("unsupported expression %T", expr)
	}
}

func (in *Interpreter) reportRuntime(err error) {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		in.reporter.RuntimeError(rerr)
		return
	}
	in.reporter.RuntimeError(&RuntimeError{Message: err.Error()})
}
