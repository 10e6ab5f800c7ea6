/*
Package loom is a single-tape deterministic Turing-machine simulator and
an algebraic machine combinator library.

Small named machines — movers, finders, expectations, consumers,
repeaters — are assembled with the composition operators (prefixing,
redirection, concatenation, union, looping) into one monolithic machine
that decides a language. The core packages:

  - pkg/machine: the transition table, tape, step semantics and the
    textual serialization.
  - pkg/compose: Concat, Multiconcat, Multiunion and Repeat, all closed
    over the Machine type.
  - pkg/builder: parameterised builders emitting small machines.
  - pkg/blueprint: declarative YAML recipes lowered onto the builders.

This root package carries the Runner, the execution loop that drives a
machine from loaded input to a terminal status with logging, lifecycle
hooks and optional frame rendering.

# Usage

	m := builder.FindRight(':', "find", machine.NewAlphabet("abc:_"))

	runner := loom.NewRunner()
	status, err := runner.Run(m, "abc:de")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(status.Message())

Machines are freely cloned; composition never mutates its operands. A
single Machine must not be stepped from two goroutines, but
independently cloned machines share no mutable state.
*/
package loom
