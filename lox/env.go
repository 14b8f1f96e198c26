package lox

import (
	"fmt"
	"sort"
)

// Env is one lexical scope. The global scope has no enclosing scope.
type Env struct {
	enclosing *Env
	values    map[string]Value
}

func NewEnv(enclosing *Env) *Env {
	return &Env{enclosing: enclosing, values: make(map[string]Value)}
}

func (e *Env) Enclosing() *Env { return e.enclosing }

// Define binds name in this scope, replacing any binding of the same name
// already in it.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get looks name up from this scope outward.
func (e *Env) Get(name Token) (Value, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if val, ok := scope.values[name.Lexeme]; ok {
			return val, nil
		}
	}
	return Value{}, undefinedVariable(name)
}

// Assign updates the innermost existing binding of name. It never creates a
// binding.
func (e *Env) Assign(name Token, val Value) error {
	for scope := e; scope != nil; scope = scope.enclosing {
		if _, ok := scope.values[name.Lexeme]; ok {
			scope.values[name.Lexeme] = val
			return nil
		}
	}
	return undefinedVariable(name)
}

// Names lists every name visible from this scope, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for scope := e; scope != nil; scope = scope.enclosing {
		for name := range scope.values {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Lookup is Get by plain name, for tooling that has no token at hand.
func (e *Env) Lookup(name string) (Value, bool) {
	val, err := e.Get(Token{Type: TokenIdentifier, Lexeme: name})
	return val, err == nil
}

func undefinedVariable(name Token) *RuntimeError {
	return newRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
