package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebkarlson404/StarFieldMiner/internal/kvstore"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

type ammoRecord struct{ *Base }

type weaponRecord struct{ *Base }

func newBase(reg *Registry, tag Tag, formID, editorID string) *Base {
	return NewBase(Header{FormID: formID, EditorID: editorID, Tag: tag}, value.Object(nil), reg)
}

func TestRegistry_IndicesAndTypedLookup(t *testing.T) {
	reg := NewRegistry()
	weap := weaponRecord{newBase(reg, TagWeapon, "0001ABCD", "ShipWeapon_Laser")}
	ammo := ammoRecord{newBase(reg, TagAmmo, "00020000", "Ammo_Laser")}

	require.NoError(t, reg.Register(weap))
	require.NoError(t, reg.Register(ammo))

	got, ok := Find[weaponRecord](reg, "0001ABCD")
	require.True(t, ok)
	assert.Equal(t, "ShipWeapon_Laser", got.EditorID())

	// a weapon id looked up as ammo is absent, not an error
	_, ok = Find[ammoRecord](reg, "0001ABCD")
	assert.False(t, ok)

	_, ok = Find[ammoRecord](reg, "DEADBEEF")
	assert.False(t, ok)

	_, ok = FindRef[ammoRecord](reg, "Ammo_Laser [AMMO:00020000]")
	assert.True(t, ok)

	byEditor, ok := FindByEditor[ammoRecord](reg, "Ammo_Laser")
	require.True(t, ok)
	assert.Equal(t, "00020000", byEditor.FormID())

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []Tag{TagAmmo, TagWeapon}, reg.Tags())
	assert.Equal(t, []string{"Ammo_Laser", "ShipWeapon_Laser"}, reg.EditorIDs())
}

func TestRegistry_DuplicateFormIDIsRejected(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newBase(reg, TagKeyword, "00000001", "First")))

	err := reg.Register(newBase(reg, TagKeyword, "00000001", "Second"))
	require.ErrorIs(t, err, ErrDuplicateFormID)

	rec, ok := reg.FindByFormID("00000001")
	require.True(t, ok)
	assert.Equal(t, "First", rec.EditorID())

	_, ok = reg.FindByEditorID("Second")
	assert.False(t, ok)
	assert.Len(t, reg.Group(TagKeyword), 1)
}

func TestRegistry_EditorIDLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newBase(reg, TagGlobal, "00000001", "Shared")))
	require.NoError(t, reg.Register(newBase(reg, TagGlobal, "00000002", "Shared")))

	rec, ok := reg.FindByEditorID("Shared")
	require.True(t, ok)
	assert.Equal(t, "00000002", rec.FormID())
}

func TestRegistry_SentinelEditorIDIsNotIndexed(t *testing.T) {
	reg := NewRegistry()
	rec := newBase(reg, TagPerk, "00000003", "")
	require.NoError(t, reg.Register(rec))

	assert.Equal(t, NoEditorID, rec.EditorID())

	_, ok := reg.FindByEditorID(NoEditorID)
	assert.False(t, ok)
	assert.Empty(t, reg.EditorIDs())
}

func TestRegistry_GroupKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"00000003", "00000001", "00000002"} {
		require.NoError(t, reg.Register(newBase(reg, TagConstructible, id, "co_"+id)))
	}

	group := reg.Group(TagConstructible)
	require.Len(t, group, 3)
	assert.Equal(t, "00000003", group[0].FormID())
	assert.Equal(t, "00000002", group[2].FormID())

	assert.Len(t, Collect[*Base](reg, TagConstructible), 3)
	assert.Empty(t, Collect[ammoRecord](reg, TagConstructible))
	assert.Nil(t, Collect[*Base](nil, TagConstructible))
}

func TestBase_StringAndFullName(t *testing.T) {
	fields := kvstore.New[*value.Node]()
	fields.Put("FULL - Name", value.String("Vanguard Laser"))

	named := NewBase(Header{FormID: "0001ABCD", EditorID: "Laser", Tag: TagWeapon}, value.Object(fields), nil)
	assert.Equal(t, "Laser [WEAP:0001ABCD]", named.String())
	assert.Equal(t, "Vanguard Laser", named.FullName())

	unnamed := NewBase(Header{FormID: "0001ABCE", EditorID: "Bare", Tag: TagWeapon}, nil, nil)
	assert.Equal(t, "Bare", unnamed.FullName())
	assert.Nil(t, unnamed.Registry())
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var reg *Registry

	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.Tags())
	assert.Nil(t, reg.EditorIDs())
	assert.Nil(t, reg.Group(TagWeapon))

	_, ok := reg.FindByFormID("0001ABCD")
	assert.False(t, ok)
	_, ok = reg.FindByEditorID("Laser")
	assert.False(t, ok)
	_, ok = FindRef[weaponRecord](reg, "Laser [WEAP:0001ABCD]")
	assert.False(t, ok)
}
