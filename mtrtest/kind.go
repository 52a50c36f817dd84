// Package mtrtest provides a small concrete Label implementation used
// across the engine's own test suite, the way a hand-rolled backend
// double stands in for a real dependency in unit tests: a minimal,
// self-contained stand-in that exercises the Label contract without
// pulling in a concrete production label enumeration.
package mtrtest

import "fmt"

// kindVariant discriminates Kind values the way an enum's
// discriminant would in a language with sum types.
type kindVariant uint8

const (
	variantAlloc kindVariant = iota
	variantArray
	variantVector
	variantRead
	variantWrite
	variantLen
	variantThreads
)

// Kind is a minimal Label implementation: a handful of plain tags
// (Alloc, Array, Vector, Read, Write) plus two parametric tags,
// Len(n) and Threads(n), exercising the payload-carrying case.
type Kind struct {
	variant kindVariant
	payload uint32
}

var (
	Alloc  = Kind{variant: variantAlloc}
	Array  = Kind{variant: variantArray}
	Vector = Kind{variant: variantVector}
	Read   = Kind{variant: variantRead}
	Write  = Kind{variant: variantWrite}
)

// Len returns a parametric Kind tagging a benchmark's input length.
func Len(n uint32) Kind { return Kind{variant: variantLen, payload: n} }

// Threads returns a parametric Kind tagging a benchmark's worker count.
func Threads(n uint32) Kind { return Kind{variant: variantThreads, payload: n} }

func (k Kind) String() string {
	switch k.variant {
	case variantAlloc:
		return "Alloc"
	case variantArray:
		return "Array"
	case variantVector:
		return "Vector"
	case variantRead:
		return "Read"
	case variantWrite:
		return "Write"
	case variantLen:
		return fmt.Sprintf("Len(%d)", k.payload)
	case variantThreads:
		return fmt.Sprintf("Threads(%d)", k.payload)
	default:
		return "Unknown"
	}
}

// Less orders first by variant, then by payload, giving a total
// order over Kind values.
func (k Kind) Less(other Kind) bool {
	if k.variant != other.variant {
		return k.variant < other.variant
	}
	return k.payload < other.payload
}

// KindEq reports whether k and other are the same variant,
// regardless of payload.
func (k Kind) KindEq(other Kind) bool {
	return k.variant == other.variant
}

// Payload returns k's integer payload, if it has one.
func (k Kind) Payload() (uint32, bool) {
	switch k.variant {
	case variantLen, variantThreads:
		return k.payload, true
	default:
		return 0, false
	}
}
