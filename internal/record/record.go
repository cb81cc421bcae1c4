package record

import (
	"fmt"

	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// NoEditorID stands in for records that carry no editor id.
const NoEditorID = "<no-edit-id>"

// Tag is a four-character record type code.
type Tag string

// Known record types.
const (
	TagAmmo          Tag = "AMMO"
	TagActorValue    Tag = "AVIF"
	TagConstructible Tag = "COBJ"
	TagDamageType    Tag = "DMGT"
	TagExplosion     Tag = "EXPL"
	TagFormList      Tag = "FLST"
	TagBaseForm      Tag = "GBFM"
	TagGlobal        Tag = "GLOB"
	TagKeyword       Tag = "KYWD"
	TagPerk          Tag = "PERK"
	TagProjectile    Tag = "PROJ"
	TagWeapon        Tag = "WEAP"
)

// Record is one registered entry of the corpus.
type Record interface {
	FormID() string
	EditorID() string
	Tag() Tag
	// Payload is the record body as decoded from the export.
	Payload() *value.Node
	String() string
}

// Header carries the identity of a record.
type Header struct {
	FormID   string
	EditorID string
	Tag      Tag
}

// Base is the untyped record. Typed views embed it.
type Base struct {
	header  Header
	payload *value.Node
	reg     *Registry
}

// NewBase creates a record bound to the registry its references resolve
// against. reg may be nil for detached records.
func NewBase(h Header, payload *value.Node, reg *Registry) *Base {
	if h.EditorID == "" {
		h.EditorID = NoEditorID
	}

	return &Base{header: h, payload: payload, reg: reg}
}

func (b *Base) FormID() string       { return b.header.FormID }
func (b *Base) EditorID() string     { return b.header.EditorID }
func (b *Base) Tag() Tag             { return b.header.Tag }
func (b *Base) Payload() *value.Node { return b.payload }

// Registry returns the registry the record resolves references against.
func (b *Base) Registry() *Registry {
	return b.reg
}

// FullName returns the "FULL - Name" text, or the editor id.
func (b *Base) FullName() string {
	return b.payload.Field("FULL - Name").TextOr(b.header.EditorID)
}

// String renders the record as "EditorID [TAG:FORMID]".
func (b *Base) String() string {
	return fmt.Sprintf("%s [%s:%s]", b.header.EditorID, b.header.Tag, b.header.FormID)
}
