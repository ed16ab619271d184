package cil

import (
	"github.com/wippyai/cil-disasm/metadata"
)

// RegionKind identifies the structural role of an exception-region marker.
type RegionKind uint8

const (
	RegionTry RegionKind = iota
	RegionCatch
	RegionFilterCatch
	RegionFilter
	RegionFinally
	RegionFault
)

// RegionSide distinguishes the opening and closing marker of a region.
type RegionSide uint8

const (
	RegionBegin RegionSide = iota
	RegionEnd
)

// RegionMarker is one begin/end marker reconstructed from the flat clause
// table. CatchType is set on RegionCatch begin markers only.
type RegionMarker struct {
	CatchType metadata.Type
	Kind      RegionKind
	Side      RegionSide
}

// RegionMap keys markers by IL byte offset. An offset may carry several
// markers; their order follows the clause table's input order.
type RegionMap map[int][]RegionMarker

// Markers returns the markers at offset, nil when there are none.
func (m RegionMap) Markers(offset int) []RegionMarker {
	return m[offset]
}

// BuildRegions reconstructs nested region markers from a method's flat
// exception-handling clause table.
//
// Back-to-back filter clauses protect the same try block with one clause row
// per filter; the try markers are deduplicated so a single .try pair wraps
// them. Fault clauses are structurally identical to finally clauses and get
// their own marker kind.
func BuildRegions(clauses []metadata.ExceptionClause) RegionMap {
	m := make(RegionMap)
	seenTry := make(map[[2]int]bool)

	add := func(offset int, marker RegionMarker) {
		m[offset] = append(m[offset], marker)
	}
	addTry := func(c metadata.ExceptionClause) {
		tryEnd := c.TryOffset + c.TryLength
		add(c.TryOffset, RegionMarker{Kind: RegionTry, Side: RegionBegin})
		add(tryEnd, RegionMarker{Kind: RegionTry, Side: RegionEnd})
		seenTry[[2]int{c.TryOffset, tryEnd}] = true
	}

	for _, c := range clauses {
		handlerEnd := c.HandlerOffset + c.HandlerLength
		switch c.Kind {
		case metadata.ClauseCatch:
			addTry(c)
			add(c.HandlerOffset, RegionMarker{Kind: RegionCatch, Side: RegionBegin, CatchType: c.CatchType})
			add(handlerEnd, RegionMarker{Kind: RegionCatch, Side: RegionEnd})

		case metadata.ClauseFinally:
			addTry(c)
			add(c.HandlerOffset, RegionMarker{Kind: RegionFinally, Side: RegionBegin})
			add(handlerEnd, RegionMarker{Kind: RegionFinally, Side: RegionEnd})

		case metadata.ClauseFault:
			addTry(c)
			add(c.HandlerOffset, RegionMarker{Kind: RegionFault, Side: RegionBegin})
			add(handlerEnd, RegionMarker{Kind: RegionFault, Side: RegionEnd})

		case metadata.ClauseFilter:
			if !seenTry[[2]int{c.TryOffset, c.TryOffset + c.TryLength}] {
				addTry(c)
			}
			add(c.FilterOffset, RegionMarker{Kind: RegionFilter, Side: RegionBegin})
			add(c.HandlerOffset, RegionMarker{Kind: RegionFilter, Side: RegionEnd})
			add(c.HandlerOffset, RegionMarker{Kind: RegionFilterCatch, Side: RegionBegin})
			add(handlerEnd, RegionMarker{Kind: RegionFilterCatch, Side: RegionEnd})
		}
	}
	return m
}
