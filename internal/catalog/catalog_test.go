package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

const testPrefix = "https://cdn.example/"

func TestFullIcon(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"lyshineui/images/icon.png", testPrefix + "lyshineui/images/icon.png"},
		{"/lyshineui/icon.png", testPrefix + "lyshineui/icon.png"},
		{"https://other.example/x.png", "https://other.example/x.png"},
		{"http://other.example/x.png", "http://other.example/x.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FullIcon(testPrefix, tt.in), tt.in)
	}
}

func TestLoadItemCSV(t *testing.T) {
	l := NewLoader(testPrefix)

	t.Run("standard headers", func(t *testing.T) {
		c := New()
		err := l.LoadItemCSV(c, strings.NewReader(
			"\ufeffItem ID,Name,Icon Path,Rarity\n"+
				"IronOre, Iron Ore ,icons/iron.png,Common\n"+
				",Nameless Trinket,icons/t.png,Rare\n"+
				",,,\n"+
				"ShortRow,Short\n"))
		require.NoError(t, err)

		rec, ok := c.ItemByID("ironore")
		require.True(t, ok)
		assert.Equal(t, "Iron Ore", rec.Name)
		assert.Equal(t, testPrefix+"icons/iron.png", rec.Icon)
		assert.Equal(t, "Common", rec.Rarity)

		rec, ok = c.ItemByName("IRON ORE")
		require.True(t, ok)
		assert.Equal(t, "IronOre", rec.ID)

		_, ok = c.ItemByName("nameless trinket")
		assert.True(t, ok)

		rec, ok = c.ItemByID("ShortRow")
		require.True(t, ok)
		assert.Empty(t, rec.Icon)

		assert.Equal(t, 3, c.Sizes()[NameItems])
	})

	t.Run("alternate headers", func(t *testing.T) {
		c := New()
		require.NoError(t, l.LoadItemCSV(c, strings.NewReader("ItemID,IconPath,Name\nX,x.png,Ex\n")))
		rec, ok := c.ItemByID("x")
		require.True(t, ok)
		assert.Equal(t, "Ex", rec.Name)
		assert.Equal(t, testPrefix+"x.png", rec.Icon)
	})

	t.Run("no usable header", func(t *testing.T) {
		err := l.LoadItemCSV(New(), strings.NewReader("Foo,Bar\n1,2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgMissingHeader)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Error(t, l.LoadItemCSV(New(), strings.NewReader("")))
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		ItemCSV:      writeFile(t, dir, "items.csv", "Item ID,Name,Icon Path,Rarity\nSword,Iron Sword,icons/sword.png,Rare\n"),
		Localization: writeFile(t, dir, "en-us.json", `{"UI_Emote_Wave":"Wave","pvp_title_name":"Champion","num":3}`),
		Emotes:       writeFile(t, dir, "emotes.json", `[{"DisplayName":"ui_emote_wave","UiImage":"emotes/wave.png"},{"UiImage":"x.png"}]`),
		Housing:      writeFile(t, dir, "housing.json", `[{"HouseItemID":"House_Chair","Name":"@house_chair_name","IconPath":"housing/chair.png","ItemRarity":"Epic"}]`),
		GameEvents:   writeFile(t, dir, "events.json", `[{"EventID":"PvP_Coin_Event","CurrencyReward":1550,"FactionTokens":"200","Note":"n/a"},{"CurrencyReward":5}]`),
	}

	c := NewLoader(testPrefix).Load(context.Background(), paths)

	rec, ok := c.ItemByID("SWORD")
	require.True(t, ok)
	assert.Equal(t, "Iron Sword", rec.Name)

	v, ok := c.Localize("ui_emote_wave")
	require.True(t, ok)
	assert.Equal(t, "Wave", v)
	_, ok = c.Localize("num")
	assert.False(t, ok)

	icon, ok := c.EmoteIcon("UI_EMOTE_WAVE")
	require.True(t, ok)
	assert.Equal(t, testPrefix+"emotes/wave.png", icon)

	h, ok := c.Housing("house_chair")
	require.True(t, ok)
	assert.Equal(t, domain.CatalogRecord{ID: "House_Chair", Name: "@house_chair_name", Icon: testPrefix + "housing/chair.png", Rarity: "Epic"}, h)

	ev, ok := c.Event("pvp_coin_event")
	require.True(t, ok)
	cur, ok := ev.Reward("CurrencyReward")
	require.True(t, ok)
	assert.Equal(t, 1550.0, cur)
	tok, ok := ev.Reward("FactionTokens")
	require.True(t, ok)
	assert.Equal(t, 200.0, tok)
	_, ok = ev.Reward("Note")
	assert.False(t, ok)

	sizes := c.Sizes()
	assert.Equal(t, 1, sizes[NameItems])
	assert.Equal(t, 2, sizes[NameLocalization])
	assert.Equal(t, 1, sizes[NameEmotes])
	assert.Equal(t, 1, sizes[NameHousing])
	assert.Equal(t, 1, sizes[NameGameEvents])
}

func TestLoader_LoadDegradesGracefully(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		ItemCSV:      filepath.Join(dir, "missing.csv"),
		Localization: writeFile(t, dir, "en-us.json", `["not","an","object"]`),
		Emotes:       writeFile(t, dir, "emotes.json", `{broken`),
		Housing:      "",
	}

	c := NewLoader("").Load(context.Background(), paths)
	require.NotNil(t, c)
	for name, n := range c.Sizes() {
		assert.Zero(t, n, name)
	}
	_, ok := c.ItemByID("anything")
	assert.False(t, ok)
}

func TestNewLoader_DefaultPrefix(t *testing.T) {
	l := NewLoader("")
	assert.Equal(t, DefaultCDNPrefix, l.cdnPrefix)
}
