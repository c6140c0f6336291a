// Package compiler implements Simple-C: a small statically-typed subset
// of C (int, char, long, void; scalars, arrays, pointers; globals,
// functions; if/else, while, for, return) compiled straight to x86-64
// System V AT&T-syntax assembly text.
//
// Pipeline: C source -> Lex -> Parse (with integrated type checking) ->
// Generate -> x86-64 assembly text. There is no intermediate
// optimization pass and no preprocessor: the grammar is the whole
// front end, and the assembly emitted is "correct and straightforward",
// never minimal.
package compiler
