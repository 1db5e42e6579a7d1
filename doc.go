/*
Package match is a small backtracking pattern-matching engine for sequences.

Patterns are immutable combinator trees built either directly from the
constructors in this package (Str, Seq, Or, Star, Plus, Sep, Sep1, To, Tok)
or compiled from a compact surface syntax (see package lang). A Matcher
drives a cursor over an input sequence through the tree; every node is
transactional: on failure it leaves the cursor and all capture slots exactly
as they were before the attempt. Package structure is as follows:

■ cursor: Package cursor provides positions over input sequences with two
backtracking strategies, cheap clone-and-restore for in-memory slices and
text, and a checkpoint log for single-pass sources.

■ lang: Package lang implements the surface-syntax compiler, a
recursive-descent parser turning pattern source text into a combinator tree.

The base package contains the combinator tree, the matching interpreter,
destinations and capture slots, lexical token specs, and the step-wise
result row.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/
package match
