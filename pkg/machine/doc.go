/*
Package machine implements a single-tape deterministic Turing machine:
the transition table keyed by (state, symbol), the bi-infinite lazy
tape, single-step simulation with status classification, and the
line-oriented textual serialization.

The package also carries the state-renaming primitives (TransformStates,
Prefix, RedirectState) that the composition algebra in pkg/compose is
built on.
*/
package machine
