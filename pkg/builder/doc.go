/*
Package builder lowers higher-level intents into small machines: move N
cells, search for a symbol, consume one symbol, match a fixed sequence,
match any of several sequences.

Builders are clients of the composition layer, not primitives; they emit
plain transition tables. Per the library's error model they assume valid
inputs (a usable alphabet, nonempty sequences) and do not re-check them.
*/
package builder
