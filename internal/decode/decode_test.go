package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

func TestDecode_RepeatedKeysAreDisambiguated(t *testing.T) {
	doc := `{
		"KWDA - Keywords": {
			"Keyword": "0002226A",
			"Keyword": "0032792C",
			"Keyword": "00022269"
		}
	}`

	root, err := Decode([]byte(doc))
	require.NoError(t, err)

	kwda := root.Field("KWDA - Keywords")
	assert.Equal(t, []string{"Keyword", "Keyword #2", "Keyword #3"}, kwda.Keys())

	var got []string
	for _, k := range kwda.Repeated("Keyword") {
		got = append(got, k.TextOr(""))
	}

	assert.Equal(t, []string{"0002226A", "0032792C", "00022269"}, got)
}

func TestDecode_NestedRepeatsAreIndependent(t *testing.T) {
	doc := `{
		"DAMA - Damage Types": {
			"Damage Type": {"Damage Type": "0001EDE8", "Value": 5},
			"Damage Type": {"Damage Type": "00023190", "Value": 7}
		}
	}`

	root, err := Decode([]byte(doc))
	require.NoError(t, err)

	entries := root.Field("DAMA - Damage Types").Repeated("Damage Type")
	require.Len(t, entries, 2)
	assert.Equal(t, "00023190", entries[1].Field("Damage Type").TextOr(""))
	assert.Equal(t, 7, entries[1].Field("Value").IntOr(0))
}

func TestDecode_Scalars(t *testing.T) {
	root, err := Decode([]byte(`{"n": 1.5, "s": "x", "t": true, "f": false, "z": null, "a": [1, "2"]}`))
	require.NoError(t, err)

	assert.Equal(t, value.KindNumber, root.Field("n").Kind())
	assert.Equal(t, "1.5", root.Field("n").String())
	assert.Equal(t, "x", root.Field("s").TextOr(""))
	assert.Equal(t, value.KindBool, root.Field("t").Kind())
	assert.Equal(t, value.KindBool, root.Field("f").Kind())
	assert.True(t, root.Field("z").Exists())
	assert.Equal(t, value.KindNull, root.Field("z").Kind())
	assert.Equal(t, 2, root.Field("a").Len())
	assert.Equal(t, 2, root.Field("a").Index(1).IntOr(0))
}

func TestDecode_InvalidDocument(t *testing.T) {
	_, err := Decode([]byte(`{"a": `))
	require.Error(t, err)
	assert.ErrorIs(t, err, esmerr.ErrMalformedData)
}

func TestDecodeReader_Cp1252(t *testing.T) {
	// 0x92 is a right single quotation mark in cp1252 and invalid UTF-8.
	doc := []byte("{\"FULL - Name\": \"Ballistic Rack\x92s\"}")

	root, err := DecodeReader(bytes.NewReader(doc), "cp1252")
	require.NoError(t, err)
	assert.Equal(t, "Ballistic Rack’s", root.Field("FULL - Name").TextOr(""))
}

func TestDecodeReader_InvalidUTF8IsReplaced(t *testing.T) {
	doc := []byte("{\"FULL - Name\": \"bad\xff\xfebytes\"}")

	root, err := DecodeReader(bytes.NewReader(doc), "utf-8")
	require.NoError(t, err)

	name := root.Field("FULL - Name").TextOr("")
	assert.True(t, strings.HasPrefix(name, "bad"))
	assert.True(t, strings.HasSuffix(name, "bytes"))
}

func TestNewReader_UnknownEncoding(t *testing.T) {
	_, err := NewReader(strings.NewReader("{}"), "klingon-8")
	require.Error(t, err)
}
