package esm

import (
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// Component types of a GBFM record.
const (
	ComponentPropertySheet = "BGSPropertySheet_Component"
	ComponentFormLinks     = "BGSFormLinkData_Component"
	ComponentKeywords      = "BGSKeywordForm_Component"
	ComponentFullName      = "TESFullName_Component"
)

const (
	fieldComponents        = "Components"
	fieldComponent         = "Component"
	fieldComponentType     = "BFCB - Component Type"
	fieldDataPropertySheet = "Component Data - Property Sheet"
	fieldDataFormLinks     = "Component Data - Form Links"
	fieldDataKeywords      = "Component Data - Keywords"
	fieldDataFullName      = "Component Data - Fullname"
	fieldLinkedForms       = "Linked Forms"
	fieldLinkedForm        = "Linked Form"
	fieldLinkKeyword       = "FLKW - Keyword"
	fieldLinkForm          = "FLFM - Linked Form"
	fieldKeywords          = "Keywords"
	fieldKWDA              = "KWDA - Keywords"
	fieldFullName          = "FULL - Name"
)

// BaseForm is a GBFM record: a generic base form made of components.
type BaseForm struct {
	*record.Base
}

// Components returns the record's components in document order.
func (b *BaseForm) Components() []Component {
	var out []Component

	for _, entry := range b.Payload().Field(fieldComponents).Elements() {
		if comp := entry.Field(fieldComponent); comp != nil {
			out = append(out, Component{node: comp, owner: b})
		}
	}

	return out
}

// FindComponent returns the first component of the given type.
func (b *BaseForm) FindComponent(typ string) (Component, bool) {
	for _, comp := range b.Components() {
		if comp.Type() == typ {
			return comp, true
		}
	}

	return Component{}, false
}

// PropertySheet returns the ship module property sheet.
func (b *BaseForm) PropertySheet() (*PropertySheet, bool) {
	comp, ok := b.FindComponent(ComponentPropertySheet)
	if !ok {
		return nil, false
	}

	return comp.PropertySheet()
}

// Weapon resolves the weapon linked through the part-linked-weapon keyword.
func (b *BaseForm) Weapon() (*Weapon, bool) {
	comp, ok := b.FindComponent(ComponentFormLinks)
	if !ok {
		return nil, false
	}

	ref, ok := comp.LinkedFormID(KeywordPartLinkedWeapon)
	if !ok {
		return nil, false
	}

	return record.Find[*Weapon](b.Registry(), ref)
}

// Manufacturer returns the full name of the manufacturer keyword.
func (b *BaseForm) Manufacturer() (string, bool) {
	return b.keywordName((*Keyword).IsManufacturer)
}

// ModuleClass returns the full name of the ship module class keyword.
func (b *BaseForm) ModuleClass() (string, bool) {
	return b.keywordName((*Keyword).IsModuleClass)
}

func (b *BaseForm) keywordName(pred func(*Keyword) bool) (string, bool) {
	comp, ok := b.FindComponent(ComponentKeywords)
	if !ok {
		return "", false
	}

	kw, ok := comp.KeywordTag(pred)
	if !ok {
		return "", false
	}

	return kw.FullName(), true
}

// FullName returns the name held by the TESFullName component, falling back
// to the record's own name.
func (b *BaseForm) FullName() string {
	if comp, ok := b.FindComponent(ComponentFullName); ok {
		if name := comp.node.Field(fieldDataFullName).Field(fieldFullName).TextOr(""); name != "" {
			return name
		}
	}

	return b.Base.FullName()
}

// Component is one entry of a GBFM "Components" list.
type Component struct {
	node  *value.Node
	owner *BaseForm
}

// Type returns the component type, e.g. BGSPropertySheet_Component.
func (c Component) Type() string {
	return c.node.Field(fieldComponentType).TextOr("")
}

// PropertySheet returns the property sheet data of the component.
func (c Component) PropertySheet() (*PropertySheet, bool) {
	data := c.node.Field(fieldDataPropertySheet)
	if data == nil {
		return nil, false
	}

	return NewPropertySheet(data, c.owner.String()), true
}

// LinkedFormID returns the form linked under keyword, from the first
// matching "Linked Form" entry.
func (c Component) LinkedFormID(keyword string) (string, bool) {
	for _, entry := range c.node.Field(fieldDataFormLinks).Field(fieldLinkedForms).Elements() {
		link := entry.Field(fieldLinkedForm)

		key, ok := refField(link.Field(fieldLinkKeyword))
		if !ok || key != keyword {
			continue
		}

		return refField(link.Field(fieldLinkForm))
	}

	return "", false
}

// KeywordTag returns the first keyword of the component, in document order,
// that resolves and satisfies pred.
func (c Component) KeywordTag(pred func(*Keyword) bool) (*Keyword, bool) {
	kwda := c.node.Field(fieldDataKeywords).Field(fieldKeywords).Field(fieldKWDA)

	for _, entry := range kwda.Repeated(fieldKeyword) {
		ref, ok := refField(entry)
		if !ok {
			continue
		}

		kw, ok := record.Find[*Keyword](c.owner.Registry(), ref)
		if ok && pred(kw) {
			return kw, true
		}
	}

	return nil, false
}
