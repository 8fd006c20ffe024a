// Package catalog defines the function catalogue shared between this
// library and an embedding expression evaluator.
//
// An Entry is an immutable (name, arity, pure evaluation rule) triple plus
// display metadata. A Catalogue is built once from a fixed set of entries
// and is read-only for the life of the process: lookups after construction
// never observe a mutation, so concurrent use needs no locking.
//
// The Namespace interface is the host-side half of the contract: an
// evaluator that wants these functions implements Namespace and receives
// every entry exactly once at bind time.
package catalog
