// Package lox implements a tree-walking interpreter for a small dynamically
// typed scripting language:
//   - Variable declarations via `var name = expr;` and assignment `name = expr`.
//   - Literals for numbers (64-bit floats), strings, booleans and nil.
//   - Arithmetic (+, -, *, /), comparison (<, <=, >, >=) and equality (==, !=).
//   - Logical `and` / `or` with short-circuit evaluation, and `!` negation.
//   - `print expr;`, `{ ... }` blocks with their own scope, and if/else.
//
// Source runs through Scan, Parse and Interpreter.Interpret in turn. Lexical,
// syntax and runtime errors are handed to a Reporter instead of stopping the
// pipeline. Comments start with `//` and run to the end of the line.
package lox
