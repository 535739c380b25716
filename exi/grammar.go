package exi

import (
	"log"

	"github.com/go-ev/iso15118exi/internal/genutil"
)

// StateID names a grammar state; EndDone is the distinguished terminal
// state every complex-type decode/encode loop reaches exactly once, and
// EndSimple is the shared state accepting the one-bit close-of-simple-
// content event used by every simple-typed particle.
type StateID int

const (
	EndDone   StateID = -1
	EndSimple StateID = -2
)

// ProductionKind distinguishes the two first-level production shapes a
// grammar state offers. Second-level extension productions (xsi:nil,
// xsi:type, typed-value deviations) are intentionally absent: this codec
// never implements them.
type ProductionKind int

const (
	ProdStart ProductionKind = iota
	ProdEndElement
)

// Production is one first-level transition out of a grammar state: either
// the start of a named particle, or the end of the enclosing complex
// element.
type Production struct {
	Kind     ProductionKind
	Particle string // schema name, for diagnostics only; empty for ProdEndElement
	Next     StateID
}

// State is a compile-time grammar table entry.
// Per-type packages declare one `[]State` per complex type; ID is unique
// within that type's table (state IDs are not shared across types).
// Width must equal genutil.CodingLength(len(Productions)); WidthOK checks
// this so a hand-authored table mismatch is caught rather than silently
// truncating event codes.
type State struct {
	ID          StateID
	Width       int
	Productions []Production
}

// WidthOK reports whether Width matches the event-code bit-width EXI would
// assign this many productions. Used by each package's grammar table test.
func (s State) WidthOK() bool {
	return s.Width == genutil.CodingLength(len(s.Productions))
}

// Lookup returns the production selected by a raw event code read in
// Width bits, or ErrUnknownEventCode if the code exceeds this state's
// table.
func (s State) Lookup(eventCode uint32) (Production, error) {
	if int(eventCode) >= len(s.Productions) {
		return Production{}, NewError(ErrUnknownEventCode,
			"state %d: event code %d >= %d productions", s.ID, eventCode, len(s.Productions))
	}
	return s.Productions[eventCode], nil
}

// FindState is a small linear lookup used by grammar-table tests and by
// diagnostics; per-type decode/encode loops do not call this on the hot
// path, since they switch on named state constants directly. A
// hand-authored table listing the same state ID twice is a table bug, not
// a wire-level error; FindState keeps the first match and logs the
// duplicate rather than failing the decode.
func FindState(states []State, id StateID) (State, bool) {
	var result State
	found := false
	for _, s := range states {
		if s.ID != id {
			continue
		}
		if found {
			log.Printf("exi: grammar table has duplicate state %d", id)
			continue
		}
		result, found = s, true
	}
	return result, found
}

// ReadEventCode locates state id in states, reads its event code (Width
// bits; a single-production state has Width 0 and consumes no bits, exactly
// as real EXI grammars never spend a bit choosing among one alternative),
// and returns the selected production. Every per-type DecodeFoo entry point
// calls this instead of reading event-code bits itself, so a hand-authored
// table mismatch surfaces as ErrUnknownGrammarID rather than silently
// misreading the stream.
func ReadEventCode(bs *Bitstream, states []State, id StateID) (Production, error) {
	state, ok := FindState(states, id)
	if !ok {
		return Production{}, NewError(ErrUnknownGrammarID, "state %d not present in table", id)
	}
	code, err := ReadNBitUint(bs, state.Width)
	if err != nil {
		return Production{}, err
	}
	return state.Lookup(code)
}

// WriteEventCode is the encode-side counterpart of ReadEventCode: it writes
// the event code (in the state's Width bits) that selects productionIndex
// within state id's table.
func WriteEventCode(bs *Bitstream, states []State, id StateID, productionIndex int) error {
	state, ok := FindState(states, id)
	if !ok {
		return NewError(ErrUnknownGrammarID, "state %d not present in table", id)
	}
	if productionIndex < 0 || productionIndex >= len(state.Productions) {
		return NewError(ErrInvariantViolation, "state %d: production index %d out of range", id, productionIndex)
	}
	return WriteNBitUint(bs, state.Width, uint32(productionIndex))
}

// BuildRepeatedChainStates builds the "repetition as state chain" table
// shape: one state per occurrence count 0..max, state k offering
// START(particle) (if k < max) and END_ELEMENT (if k >= min).
// startID is state k=0's ID; subsequent states use startID+1, startID+2,
// and so on, so a type with more than one repeated group must space its
// chains apart by giving each a distinct startID.
func BuildRepeatedChainStates(startID StateID, particle string, min, max int) []State {
	states := make([]State, max+1)
	for k := 0; k <= max; k++ {
		var prods []Production
		if k < max {
			prods = append(prods, Production{Kind: ProdStart, Particle: particle, Next: startID + StateID(k+1)})
		}
		if k >= min {
			prods = append(prods, Production{Kind: ProdEndElement, Next: EndDone})
		}
		states[k] = State{ID: startID + StateID(k), Width: genutil.CodingLength(len(prods)), Productions: prods}
	}
	return states
}
