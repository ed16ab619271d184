// Package disasm renders metadata entities in the canonical assembly
// textual syntax: type headers, fields, properties, events, and full method
// bodies with instructions and exception regions.
package disasm

import (
	"go.uber.org/zap"

	"github.com/wippyai/cil-disasm/metadata"
)

// DisassembledType is the complete rendering of one type: its header plus
// the rendered members in provider enumeration order. Immutable after
// construction.
type DisassembledType struct {
	Type       metadata.Type
	Header     string
	Fields     []string
	Properties []string
	Events     []string
	Methods    []string
}

// Disassembler renders metadata entities. The zero value is ready to use;
// independent calls share no mutable state.
type Disassembler struct{}

// New creates a Disassembler.
func New() *Disassembler {
	return &Disassembler{}
}

// TypeHeader renders the .class header block for t.
func (d *Disassembler) TypeHeader(t metadata.Type) string {
	e := &emitter{current: t.Assembly()}
	return e.typeHeader(t)
}

// Method renders the full .method block, body included.
func (d *Disassembler) Method(m metadata.Method) (string, error) {
	return d.emitterFor(m.DeclaringType(), m.Module()).method(m)
}

// Field renders a .field declaration.
func (d *Disassembler) Field(f metadata.Field) string {
	return d.emitterFor(f.DeclaringType(), nil).field(f)
}

// Property renders a .property block.
func (d *Disassembler) Property(p metadata.Property) string {
	return d.emitterFor(p.DeclaringType(), nil).property(p)
}

// Event renders an .event block.
func (d *Disassembler) Event(ev metadata.Event) string {
	return d.emitterFor(ev.DeclaringType(), nil).event(ev)
}

// Disassemble renders t and all of its declared members. Members enumerate
// under instance+static, public+non-public visibility; methods are included
// only when their implementation is IL or runtime-provided and they are
// declared (not inherited) on t.
func (d *Disassembler) Disassemble(t metadata.Type) (*DisassembledType, error) {
	result := &DisassembledType{
		Type:   t,
		Header: d.TypeHeader(t),
	}

	for _, f := range t.Fields(metadata.BindAll) {
		result.Fields = append(result.Fields, d.Field(f))
	}
	for _, p := range t.Properties(metadata.BindAll) {
		result.Properties = append(result.Properties, d.Property(p))
	}
	for _, ev := range t.Events(metadata.BindAll) {
		result.Events = append(result.Events, d.Event(ev))
	}

	methods := append([]metadata.Method{}, t.Constructors(metadata.BindAll)...)
	methods = append(methods, t.Methods(metadata.BindAll)...)
	for _, m := range methods {
		impl := m.ImplAttributes()
		if !impl.IsIL() && !impl.IsRuntime() {
			continue
		}
		if !sameType(m.DeclaringType(), t) {
			continue
		}
		rendered, err := d.Method(m)
		if err != nil {
			return nil, err
		}
		result.Methods = append(result.Methods, rendered)
	}

	Logger().Debug("disassembled type",
		zap.String("type", t.FullName()),
		zap.Int("fields", len(result.Fields)),
		zap.Int("properties", len(result.Properties)),
		zap.Int("events", len(result.Events)),
		zap.Int("methods", len(result.Methods)))
	return result, nil
}

func (d *Disassembler) emitterFor(declaring metadata.Type, mod metadata.Module) *emitter {
	if declaring != nil {
		return &emitter{current: declaring.Assembly()}
	}
	if mod != nil {
		return &emitter{current: mod.Assembly()}
	}
	return &emitter{}
}

// sameType compares two type handles, tolerating providers that hand out
// distinct values for the same definition.
func sameType(a, b metadata.Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.FullName() != b.FullName() {
		return false
	}
	aa, ba := a.Assembly(), b.Assembly()
	if aa == nil || ba == nil {
		return aa == ba
	}
	return aa.FullName() == ba.FullName()
}
