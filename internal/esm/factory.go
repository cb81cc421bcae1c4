package esm

import (
	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// Export field names of the record header.
const (
	FieldRecordHeader = "Record Header"
	FieldSignature    = "Signature"
	FieldFormID       = "FormID"
	FieldEditorID     = "EDID - Editor ID"
	FieldHeaderEditor = "EditorID"
)

// Constructor wraps a base record into its typed view.
type Constructor func(base *record.Base) record.Record

var constructors = map[record.Tag]Constructor{
	record.TagAmmo:          func(b *record.Base) record.Record { return &Ammo{Base: b} },
	record.TagActorValue:    func(b *record.Base) record.Record { return &ActorValue{Base: b} },
	record.TagConstructible: func(b *record.Base) record.Record { return &Constructible{Base: b} },
	record.TagDamageType:    func(b *record.Base) record.Record { return &DamageType{Base: b} },
	record.TagExplosion:     func(b *record.Base) record.Record { return &Explosion{Base: b} },
	record.TagFormList:      func(b *record.Base) record.Record { return &FormList{Base: b} },
	record.TagBaseForm:      func(b *record.Base) record.Record { return &BaseForm{Base: b} },
	record.TagGlobal:        func(b *record.Base) record.Record { return &Global{Base: b} },
	record.TagKeyword:       func(b *record.Base) record.Record { return &Keyword{Base: b} },
	record.TagPerk:          func(b *record.Base) record.Record { return &Perk{Base: b} },
	record.TagProjectile:    func(b *record.Base) record.Record { return &Projectile{Base: b} },
	record.TagWeapon:        func(b *record.Base) record.Record { return &Weapon{Base: b} },
}

// Register installs ctor for tag, replacing any previous constructor.
// It is meant to be called from init functions, before any Factory is used.
func Register(tag record.Tag, ctor Constructor) {
	constructors[tag] = ctor
}

// Known reports whether tag has a typed view.
func Known(tag record.Tag) bool {
	_, ok := constructors[tag]
	return ok
}

// Factory builds records bound to one registry.
type Factory struct {
	reg *record.Registry
}

// NewFactory creates a factory whose records resolve against reg.
func NewFactory(reg *record.Registry) *Factory {
	return &Factory{reg: reg}
}

// Registry returns the registry records are bound to.
func (f *Factory) Registry() *record.Registry {
	return f.reg
}

// Build classifies node and wraps it in its typed view without registering it.
func (f *Factory) Build(node *value.Node) (record.Record, error) {
	h, err := ReadHeader(node)
	if err != nil {
		return nil, err
	}

	base := record.NewBase(h, node, f.reg)

	ctor, ok := constructors[h.Tag]
	if !ok {
		return base, nil
	}

	return ctor(base), nil
}

// Create builds the record and registers it.
func (f *Factory) Create(node *value.Node) (record.Record, error) {
	rec, err := f.Build(node)
	if err != nil {
		return nil, err
	}

	if err := f.reg.Register(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// ReadHeader extracts the identity of a record object. Signature and form id
// are required; the editor id falls back to the header copy and then to
// record.NoEditorID.
func ReadHeader(node *value.Node) (record.Header, error) {
	if !node.IsObject() {
		return record.Header{}, esmerr.Malformed(esmerr.CategoryMissingHeaderField, FieldRecordHeader, "record object")
	}

	hdr := node.Field(FieldRecordHeader)
	if !hdr.IsObject() {
		return record.Header{}, esmerr.Malformed(esmerr.CategoryMissingHeaderField, FieldRecordHeader, "object")
	}

	sig, err := headerText(hdr, FieldSignature)
	if err != nil {
		return record.Header{}, err
	}

	formID, err := headerText(hdr, FieldFormID)
	if err != nil {
		return record.Header{}, err
	}

	editorID := node.Field(FieldEditorID).TextOr("")
	if editorID == "" {
		editorID = hdr.Field(FieldHeaderEditor).TextOr(record.NoEditorID)
	}

	return record.Header{
		FormID:   value.FormRef(formID),
		EditorID: editorID,
		Tag:      record.Tag(sig),
	}, nil
}

func headerText(hdr *value.Node, field string) (string, error) {
	s, err := hdr.Field(field).Text()
	if err != nil || s == "" {
		return "", esmerr.Malformed(esmerr.CategoryMissingHeaderField, FieldRecordHeader+"."+field, "non-empty string")
	}

	return s, nil
}
