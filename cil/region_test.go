package cil

import (
	"testing"

	"github.com/wippyai/cil-disasm/metadata"
	"github.com/wippyai/cil-disasm/metadata/metatest"
)

func countMarkers(m RegionMap) int {
	n := 0
	for _, ms := range m {
		n += len(ms)
	}
	return n
}

func hasMarker(m RegionMap, offset int, kind RegionKind, side RegionSide) bool {
	for _, marker := range m[offset] {
		if marker.Kind == kind && marker.Side == side {
			return true
		}
	}
	return false
}

func TestBuildRegionsCatch(t *testing.T) {
	exType := metatest.SystemType("Exception", false)
	m := BuildRegions([]metadata.ExceptionClause{
		{Kind: metadata.ClauseCatch, TryOffset: 2, TryLength: 10, HandlerOffset: 12, HandlerLength: 6, CatchType: exType},
	})

	if !hasMarker(m, 2, RegionTry, RegionBegin) || !hasMarker(m, 12, RegionTry, RegionEnd) {
		t.Error("missing try markers")
	}
	if !hasMarker(m, 12, RegionCatch, RegionBegin) || !hasMarker(m, 18, RegionCatch, RegionEnd) {
		t.Error("missing catch markers")
	}
	for _, marker := range m[12] {
		if marker.Kind == RegionCatch && marker.Side == RegionBegin && marker.CatchType != metadata.Type(exType) {
			t.Error("catch begin marker lost its catch type")
		}
	}
	if countMarkers(m) != 4 {
		t.Errorf("marker count = %d, want 4", countMarkers(m))
	}
}

func TestBuildRegionsFinally(t *testing.T) {
	m := BuildRegions([]metadata.ExceptionClause{
		{Kind: metadata.ClauseFinally, TryOffset: 0, TryLength: 8, HandlerOffset: 8, HandlerLength: 4},
	})
	if !hasMarker(m, 0, RegionTry, RegionBegin) || !hasMarker(m, 8, RegionTry, RegionEnd) {
		t.Error("missing try markers")
	}
	if !hasMarker(m, 8, RegionFinally, RegionBegin) || !hasMarker(m, 12, RegionFinally, RegionEnd) {
		t.Error("missing finally markers")
	}
}

func TestBuildRegionsFault(t *testing.T) {
	m := BuildRegions([]metadata.ExceptionClause{
		{Kind: metadata.ClauseFault, TryOffset: 0, TryLength: 8, HandlerOffset: 8, HandlerLength: 4},
	})
	if !hasMarker(m, 8, RegionFault, RegionBegin) || !hasMarker(m, 12, RegionFault, RegionEnd) {
		t.Error("missing fault markers")
	}
}

func TestBuildRegionsFilter(t *testing.T) {
	m := BuildRegions([]metadata.ExceptionClause{
		{Kind: metadata.ClauseFilter, TryOffset: 0, TryLength: 6, HandlerOffset: 14, HandlerLength: 4, FilterOffset: 6},
	})
	if !hasMarker(m, 0, RegionTry, RegionBegin) || !hasMarker(m, 6, RegionTry, RegionEnd) {
		t.Error("missing try markers")
	}
	if !hasMarker(m, 6, RegionFilter, RegionBegin) || !hasMarker(m, 14, RegionFilter, RegionEnd) {
		t.Error("missing filter markers")
	}
	if !hasMarker(m, 14, RegionFilterCatch, RegionBegin) || !hasMarker(m, 18, RegionFilterCatch, RegionEnd) {
		t.Error("missing filter handler markers")
	}
}

func TestBuildRegionsBackToBackFiltersShareTry(t *testing.T) {
	clauses := []metadata.ExceptionClause{
		{Kind: metadata.ClauseFilter, TryOffset: 0, TryLength: 6, HandlerOffset: 14, HandlerLength: 4, FilterOffset: 6},
		{Kind: metadata.ClauseFilter, TryOffset: 0, TryLength: 6, HandlerOffset: 26, HandlerLength: 4, FilterOffset: 18},
	}
	m := BuildRegions(clauses)

	begins := 0
	for _, marker := range m[0] {
		if marker.Kind == RegionTry && marker.Side == RegionBegin {
			begins++
		}
	}
	if begins != 1 {
		t.Errorf("try begin markers = %d, want 1 (deduplicated)", begins)
	}
	ends := 0
	for _, marker := range m[6] {
		if marker.Kind == RegionTry && marker.Side == RegionEnd {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("try end markers = %d, want 1 (deduplicated)", ends)
	}
}

func TestBuildRegionsCatchThenFilterSameTry(t *testing.T) {
	// a catch already protects 0..6; the filter reuses its try markers
	clauses := []metadata.ExceptionClause{
		{Kind: metadata.ClauseCatch, TryOffset: 0, TryLength: 6, HandlerOffset: 6, HandlerLength: 4},
		{Kind: metadata.ClauseFilter, TryOffset: 0, TryLength: 6, HandlerOffset: 18, HandlerLength: 4, FilterOffset: 10},
	}
	m := BuildRegions(clauses)
	begins := 0
	for _, marker := range m[0] {
		if marker.Kind == RegionTry && marker.Side == RegionBegin {
			begins++
		}
	}
	if begins != 1 {
		t.Errorf("try begin markers = %d, want 1", begins)
	}
}

func TestBuildRegionsMarkerOrder(t *testing.T) {
	// two clauses whose handler end and try begin share offset 6: markers
	// appear in clause input order
	clauses := []metadata.ExceptionClause{
		{Kind: metadata.ClauseCatch, TryOffset: 0, TryLength: 2, HandlerOffset: 2, HandlerLength: 4},
		{Kind: metadata.ClauseCatch, TryOffset: 6, TryLength: 2, HandlerOffset: 8, HandlerLength: 2},
	}
	m := BuildRegions(clauses)
	markers := m.Markers(6)
	if len(markers) != 2 {
		t.Fatalf("markers at 6 = %d, want 2", len(markers))
	}
	if markers[0].Kind != RegionCatch || markers[0].Side != RegionEnd {
		t.Error("first marker at 6 should close the first clause's handler")
	}
	if markers[1].Kind != RegionTry || markers[1].Side != RegionBegin {
		t.Error("second marker at 6 should open the second clause's try")
	}
}
