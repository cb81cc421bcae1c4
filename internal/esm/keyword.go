package esm

import "github.com/ebkarlson404/StarFieldMiner/internal/record"

const (
	fieldKeywordType = "TNAM - Type"

	keywordTypeModuleClass  = "Ship Module Class"
	keywordTypeManufacturer = "Manufacturer"
)

// Keyword is a KYWD record.
type Keyword struct {
	*record.Base
}

// Type returns the keyword type, e.g. "Manufacturer".
func (k *Keyword) Type() string {
	return k.Payload().Field(fieldKeywordType).TextOr("")
}

// IsModuleClass reports whether the keyword names a ship module class.
func (k *Keyword) IsModuleClass() bool {
	return k.Type() == keywordTypeModuleClass
}

// IsManufacturer reports whether the keyword names a ship module manufacturer.
func (k *Keyword) IsManufacturer() bool {
	return k.Type() == keywordTypeManufacturer
}
