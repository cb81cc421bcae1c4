// Package decode turns raw ESM export bytes into value trees.
//
// Objects are built on kvstore.Map so that repeated property names survive.
// gjson is used for the walk because Result.ForEach reports every key/value
// pair in document order, duplicates included, where encoding/json would
// silently keep the last one.
package decode

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/kvstore"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// DefaultEncoding is the encoding xEdit writes its JSON dumps in.
const DefaultEncoding = "cp1252"

// NewReader wraps r so that it yields UTF-8 decoded from the named encoding.
// Byte sequences that are invalid in that encoding are replaced, never
// reported.
func NewReader(r io.Reader, encoding string) (io.Reader, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Decode parses one JSON document.
func Decode(data []byte) (*value.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, esmerr.Malformed(esmerr.CategoryMalformedFile, "", "a valid JSON document")
	}

	return convert(gjson.ParseBytes(data)), nil
}

// DecodeReader reads r to the end in the given encoding and parses it.
func DecodeReader(r io.Reader, encoding string) (*value.Node, error) {
	tr, err := NewReader(r, encoding)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(tr)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return Decode(data)
}

func convert(res gjson.Result) *value.Node {
	switch res.Type {
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		return value.Number(res.Num, res.Raw)
	case gjson.String:
		return value.String(res.Str)
	case gjson.JSON:
		if res.IsArray() {
			var items []*value.Node

			res.ForEach(func(_, item gjson.Result) bool {
				items = append(items, convert(item))
				return true
			})

			return value.Array(items...)
		}

		fields := kvstore.New[*value.Node]()

		res.ForEach(func(key, item gjson.Result) bool {
			fields.Put(key.String(), convert(item))
			return true
		})

		return value.Object(fields)
	default:
		return value.Null()
	}
}
