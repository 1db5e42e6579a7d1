/*
Package main implements M.REPL, an interactive sandbox for match patterns.

Users enter pattern source text to compile it, then run it against sample
input with the ':match' command. M.REPL prints the compiled tree, the match
verdict, every capture slot, and the unconsumed rest of the input. It is
intended for experimenting with pattern syntax during development.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Dexer Matters

*/
package main
