package esm

import (
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
)

const (
	fieldFormIDs = "FormIDs"
	fieldLNAM    = "LNAM - FormID"
)

// FormList is a FLST record: an ordered list of references.
type FormList struct {
	*record.Base
}

// Len returns the number of entries.
func (f *FormList) Len() int {
	return f.Payload().Field(fieldFormIDs).Len()
}

// EntryRef returns the raw form id of entry i.
func (f *FormList) EntryRef(i int) (string, bool) {
	return refField(f.Payload().Field(fieldFormIDs).Index(i).Field(fieldLNAM))
}

// At resolves entry i to whatever record it references.
func (f *FormList) At(i int) (record.Record, bool) {
	return ListEntry[record.Record](f, i)
}

// ListEntry resolves entry i of fl if it is a T.
func ListEntry[T record.Record](fl *FormList, i int) (T, bool) {
	ref, ok := fl.EntryRef(i)
	if !ok {
		var zero T
		return zero, false
	}

	return record.Find[T](fl.Registry(), ref)
}
