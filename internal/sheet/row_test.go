package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{"integer", "42", 0, 42},
		{"negative", "-7", 0, -7},
		{"float string", "12.9", 0, 12},
		{"padded", "  5 ", 0, 5},
		{"garbage", "abc", 9, 9},
		{"empty", "", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeInt(tt.in, tt.def))
		})
	}
}

func TestRowAccessors(t *testing.T) {
	r := ParseRow(`{
		"Name": " Sword ",
		"Weight": "15",
		"Float": 2.5,
		"Null": null,
		"Flag": true,
		"FlagNum": 1,
		"FlagStr": "false",
		"Tags": "Level:10-20",
		"TagList": ["a", "b"],
		"AND/OR": "AND",
		"Item.1": "dotted"
	}`)

	assert.Equal(t, "Sword", r.Str("Name"))
	assert.Equal(t, "", r.Str("Missing"))
	assert.Equal(t, "", r.Str("Null"))
	assert.Equal(t, 15, r.Int("Weight", 0))
	assert.Equal(t, 2, r.Int("Float", 0))
	assert.Equal(t, 7, r.Int("Null", 7))
	assert.Equal(t, "AND", r.Str("AND/OR"))
	assert.Equal(t, "dotted", r.Str("Item.1"))

	assert.True(t, r.Has("Null"))
	assert.Empty(t, r.Verbatim("Null"))
	assert.Nil(t, r.JSON("Missing"))
	assert.Equal(t, "null", string(r.JSON("Null")))
	assert.Nil(t, r.OptStr("Null"))
	require.NotNil(t, r.OptStr("Weight"))
	assert.Equal(t, "15", *r.OptStr("Weight"))

	assert.True(t, r.Bool("Flag"))
	assert.True(t, r.Bool("FlagNum"))
	assert.False(t, r.Bool("FlagStr"))
	assert.False(t, r.Bool("Missing"))

	assert.Equal(t, []string{"Level:10-20"}, r.Strings("Tags"))
	assert.Equal(t, []string{"a", "b"}, r.Strings("TagList"))
	assert.Equal(t, []string{}, r.Strings("Missing"))

	f, ok := r.Float("Float")
	assert.True(t, ok)
	assert.InDelta(t, 2.5, f, 1e-9)
	_, ok = r.Float("Name")
	assert.False(t, ok)
}

func TestVerbatim(t *testing.T) {
	r := ParseRow(`{"Spaced":"  [LBID]Gold ","Num":100000.0,"Int":5,"Null":null}`)

	assert.Equal(t, "  [LBID]Gold ", r.Verbatim("Spaced"))
	assert.Equal(t, "[LBID]Gold", r.Str("Spaced"))
	assert.Equal(t, "100000.0", r.Verbatim("Num"))
	assert.Equal(t, "5", r.Verbatim("Int"))
	assert.Equal(t, "", r.Verbatim("Missing"))

	assert.Equal(t, "100000.0", string(r.JSON("Num")))
	assert.Equal(t, `"  [LBID]Gold "`, string(r.JSON("Spaced")))
}

func TestParse(t *testing.T) {
	t.Run("array of rows", func(t *testing.T) {
		s, err := Parse("test", []byte(`[{"LootTableID":"A"},{"LootTableID":"B"},3,{"LootTableID":""}]`))
		require.NoError(t, err)
		assert.Len(t, s.Rows, 3)

		idx, dups := s.Index("LootTableID")
		assert.Len(t, idx, 2)
		assert.Contains(t, idx, "A")
		assert.Contains(t, idx, "B")
		assert.Empty(t, dups)
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		s, err := Parse("test", []byte(`[{"LootTableID":"A","N":1},{"LootTableID":"A","N":2},{"LootTableID":"A","N":3}]`))
		require.NoError(t, err)

		idx, dups := s.Index("LootTableID")
		require.Contains(t, idx, "A")
		assert.Equal(t, 1, idx["A"].Int("N", 0))
		assert.Equal(t, []string{"A", "A"}, dups)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := Parse("test", []byte(`{"a":1}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNotAnArray)
		assert.ErrorIs(t, err, domain.ErrInvalidSheet)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse("test", []byte(`[{`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidJSON)
	})
}

func TestIndexed(t *testing.T) {
	assert.Equal(t, "Item3", Indexed("Item", 3))
	assert.Equal(t, "GearScoreRange12", Indexed("GearScoreRange", 12))
}
