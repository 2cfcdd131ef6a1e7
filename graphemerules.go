package demicode

import "github.com/apparebit/demicode/property"

// Boundary classes driving the grapheme cluster state machine. The first
// fourteen values mirror property.GraphemeBreak so a break value converts by
// plain widening; clPictographic is derived from Extended_Pictographic.
const (
	clAny = iota
	clPrepend
	clCR
	clLF
	clControl
	clExtend
	clRegionalIndicator
	clSpacingMark
	clL
	clV
	clT
	clLV
	clLVT
	clZWJ
	clPictographic
)

// classOf folds a code point's properties into one boundary class. UAX #29
// treats Extended_Pictographic as if it were a break class of its own for
// rule GB11.
func classOf(p property.Properties) int {
	if p.ExtendedPictographic && p.Break == property.BreakOther {
		return clPictographic
	}
	return int(p.Break)
}

// States of the grapheme cluster parser.
const (
	gsAny = iota
	gsCR
	gsControlLF
	gsHangulL
	gsHangulLV
	gsHangulLVT
	gsPrepend
	gsPictographic
	gsPictographicZWJ
	gsRIOdd
	gsRIEven
)

// Conjunct tracking for rule GB9c, stored in the upper bits of the state so
// it rides along with the base state machine.
const (
	csConsonant = 0x100 // seen InCB=Consonant
	csExtend    = 0x200 // consonant followed by InCB=Extend, no linker yet
	csLinker    = 0x300 // consonant followed by a run containing a linker
	csMask      = 0xF00
)

// The parser's breaking instructions.
const (
	noBoundary = iota
	breakBoundary
)

// ruleTransitions maps a state and boundary class to a new state, a breaking
// instruction, and the number of the UAX #29 rule that decided. The
// instruction refers to the boundary between the previous and the incoming
// code point. Negative values mean no transition applies.
//
// Resolution order, mirroring the rule priorities of the standard:
//
//  1. Specific state + specific class. Stop if found.
//  2. Specific state + any class.
//  3. Any state + specific class.
//  4. If only one of (2) and (3) was found, use it.
//  5. If both were found, take the state from (3) and the instruction from
//     the lower-numbered rule, preferring (3) on a tie.
//  6. Otherwise assume gsAny and a boundary (GB999).
func ruleTransitions(state, class int) (newState, instruction, rule int) {
	// A switch on the packed key is considerably faster than a map.
	switch uint64(state) | uint64(class)<<32 {
	// GB5
	case gsAny | clCR<<32:
		return gsCR, breakBoundary, 50
	case gsAny | clLF<<32:
		return gsControlLF, breakBoundary, 50
	case gsAny | clControl<<32:
		return gsControlLF, breakBoundary, 50

	// GB4
	case gsCR | clAny<<32:
		return gsAny, breakBoundary, 40
	case gsControlLF | clAny<<32:
		return gsAny, breakBoundary, 40

	// GB3
	case gsCR | clLF<<32:
		return gsControlLF, noBoundary, 30

	// GB6
	case gsAny | clL<<32:
		return gsHangulL, breakBoundary, 9990
	case gsHangulL | clL<<32:
		return gsHangulL, noBoundary, 60
	case gsHangulL | clV<<32:
		return gsHangulLV, noBoundary, 60
	case gsHangulL | clLV<<32:
		return gsHangulLV, noBoundary, 60
	case gsHangulL | clLVT<<32:
		return gsHangulLVT, noBoundary, 60

	// GB7
	case gsAny | clLV<<32:
		return gsHangulLV, breakBoundary, 9990
	case gsAny | clV<<32:
		return gsHangulLV, breakBoundary, 9990
	case gsHangulLV | clV<<32:
		return gsHangulLV, noBoundary, 70
	case gsHangulLV | clT<<32:
		return gsHangulLVT, noBoundary, 70

	// GB8
	case gsAny | clLVT<<32:
		return gsHangulLVT, breakBoundary, 9990
	case gsAny | clT<<32:
		return gsHangulLVT, breakBoundary, 9990
	case gsHangulLVT | clT<<32:
		return gsHangulLVT, noBoundary, 80

	// GB9
	case gsAny | clExtend<<32:
		return gsAny, noBoundary, 90
	case gsAny | clZWJ<<32:
		return gsAny, noBoundary, 90

	// GB9a
	case gsAny | clSpacingMark<<32:
		return gsAny, noBoundary, 91

	// GB9b
	case gsAny | clPrepend<<32:
		return gsPrepend, breakBoundary, 9990
	case gsPrepend | clAny<<32:
		return gsAny, noBoundary, 92

	// GB11
	case gsAny | clPictographic<<32:
		return gsPictographic, breakBoundary, 9990
	case gsPictographic | clExtend<<32:
		return gsPictographic, noBoundary, 110
	case gsPictographic | clZWJ<<32:
		return gsPictographicZWJ, noBoundary, 110
	case gsPictographicZWJ | clPictographic<<32:
		return gsPictographic, noBoundary, 110

	// GB12 / GB13
	case gsAny | clRegionalIndicator<<32:
		return gsRIOdd, breakBoundary, 9990
	case gsRIOdd | clRegionalIndicator<<32:
		return gsRIEven, noBoundary, 120
	case gsRIEven | clRegionalIndicator<<32:
		return gsRIOdd, breakBoundary, 120
	default:
		return -1, -1, -1
	}
}

// transition feeds one code point's properties into the parser. It returns
// the new state and whether a cluster boundary precedes the code point.
// Conjunct tracking for GB9c only engages when the property database's
// Unicode version defines Indic_Conjunct_Break (15.1 and later).
func transition(state int, p property.Properties, conjunct bool) (newState int, breakBefore bool) {
	class := classOf(p)
	conjunctState := state & csMask
	state &= 0xFF

	next, instruction, _ := ruleTransitions(state, class)
	if next >= 0 {
		newState, breakBefore = next, instruction == breakBoundary
	} else {
		anyClassState, anyClassInstr, anyClassRule := ruleTransitions(state, clAny)
		anyStateState, anyStateInstr, anyStateRule := ruleTransitions(gsAny, class)
		switch {
		case anyClassState >= 0 && anyStateState >= 0:
			newState = anyStateState
			breakBefore = anyStateInstr == breakBoundary
			if anyClassRule < anyStateRule {
				breakBefore = anyClassInstr == breakBoundary
			}
		case anyClassState >= 0:
			newState, breakBefore = anyClassState, anyClassInstr == breakBoundary
		case anyStateState >= 0:
			newState, breakBefore = anyStateState, anyStateInstr == breakBoundary
		default:
			// GB999: Any ÷ Any.
			newState, breakBefore = gsAny, true
		}
	}

	if !conjunct {
		return newState, breakBefore
	}

	// GB9c: Consonant [Extend Linker]* Linker [Extend Linker]* × Consonant.
	switch p.Conjunct {
	case property.ConjunctConsonant:
		if conjunctState == csLinker {
			breakBefore = false
		}
		newState |= csConsonant
	case property.ConjunctLinker:
		if conjunctState != 0 {
			newState |= csLinker
		}
	case property.ConjunctExtend:
		switch conjunctState {
		case csConsonant, csExtend:
			newState |= csExtend
		case csLinker:
			newState |= csLinker
		}
	}
	return newState, breakBefore
}
