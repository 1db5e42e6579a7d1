/*
Package lang implements the surface-syntax compiler for match patterns.

Pattern source text is a compact grammar which compiles to the combinator
tree of the base package:

   pattern    := alt (',' alt)*                sequence, lowest precedence
   alt        := term ('/' term)*              alternation, first match wins
   term       := atom (quant | sepquant)?
   quant      := '+' | '*'                     one-or-more | zero-or-more
   sepquant   := '[' alt ']' ('+' | '*')       separator-delimited repetition
   atom       := '(' pattern ')'
              |  ident '@' alt                 named capture
              |  string | number               literal elements
              |  ident                         bound sub-pattern

Note that the bracketed separator quantifier's '+'/'*' polarity is the
opposite of the plain quantifier's polarity: 'elem[sep]+' is zero-or-more,
'elem[sep]*' is one-or-more. This mirrors the grammar as observed in the
wild and is kept deliberately; see DESIGN.md.

Identifiers resolve against an Env supplied by the caller; Builtins binds
the lexical tokens NUM, HEX, OCT, BIN, WS, ALPHABETIC and ALPHANUMERIC.

Compilation errors are *SyntaxError values carrying the offending source
span and the grammar rule that rejected it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/
package lang
