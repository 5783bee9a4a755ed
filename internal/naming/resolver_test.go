package naming

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/metrics"
)

func TestResolver_EnrichRewards(t *testing.T) {
	r, err := NewResolver(testCatalog(), "https://cdn.example/", 16)
	require.NoError(t, err)

	table := domain.RewardMetaTable{
		"PvP_Coin_Small": {RewardID: "PvP_Coin_Small", Name: "@pvp_coin_small_name", GameEvent: "Evt_Coin"},
		"PvP_FactionTokens_1": {
			RewardID: "PvP_FactionTokens_1", Name: "Faction Tokens", GameEvent: "Evt_Tokens",
		},
		"R_Sword": {RewardID: "R_Sword", Name: "IronSwordT2", RawItemField: "IronSwordT2"},
		"R_Chest": {RewardID: "R_Chest", Name: "[LTID]Chest", RawItemField: "[LTID]Chest", Icon: "icons/chest.png"},
		"R_Plain": {RewardID: "R_Plain", Name: "R_Plain"},
	}

	r.EnrichRewards(context.Background(), table)

	assert.True(t, strings.HasSuffix(table["PvP_Coin_Small"].Name, "(15.5)"))
	assert.Equal(t, "Coin Small (15.5)", table["PvP_Coin_Small"].Name)
	assert.Equal(t, "Faction Tokens (200)", table["PvP_FactionTokens_1"].Name)

	assert.Equal(t, "Iron Sword", table["R_Sword"].Name)
	assert.Equal(t, "https://cdn/icons/sword.png", table["R_Sword"].Icon)
	assert.Equal(t, "Common", table["R_Sword"].Rarity)

	assert.Equal(t, "[LTID]Chest", table["R_Chest"].Name)
	assert.Equal(t, "https://cdn.example/icons/chest.png", table["R_Chest"].Icon)
	assert.Empty(t, table["R_Chest"].Rarity)

	assert.Equal(t, "R_Plain", table["R_Plain"].Name)
	assert.Empty(t, table["R_Plain"].Icon)
}

func TestResolver_EnrichBuckets(t *testing.T) {
	r, err := NewResolver(testCatalog(), "", 0)
	require.NoError(t, err)

	contents := domain.BucketContents{
		"Weapons": {
			{ItemID: "IronSwordT2"},
			{ItemID: "Unknown_Item"},
		},
		"Emotes": {
			{ItemID: "@ui_emote_wave_name"},
		},
		"More": {
			{ItemID: "IronSwordT2"},
		},
		"Empty": {},
	}

	hitsBefore := testutil.ToFloat64(metrics.NameCacheLookups.WithLabelValues(metrics.ResultHit))

	r.EnrichBuckets(context.Background(), contents)

	w := contents["Weapons"]
	assert.Equal(t, "Iron Sword", w[0].DisplayName)
	assert.Equal(t, "https://cdn/icons/sword.png", w[0].Icon)
	assert.Equal(t, "Common", w[0].Rarity)

	assert.Equal(t, "Unknown_Item", w[1].DisplayName)
	assert.Empty(t, w[1].Icon)
	assert.Empty(t, w[1].Rarity)

	e := contents["Emotes"][0]
	assert.Equal(t, "Wave", e.DisplayName)
	assert.Equal(t, "https://cdn/emotes/wave.png", e.Icon)

	assert.Equal(t, "Iron Sword", contents["More"][0].DisplayName)
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(metrics.NameCacheLookups.WithLabelValues(metrics.ResultHit)))
}

func TestResolver_ResolveItemMemo(t *testing.T) {
	r, err := NewResolver(testCatalog(), "", 1)
	require.NoError(t, err)

	first := r.ResolveItem("RelicT5")
	assert.Equal(t, "Ancient Relic", first.Name)
	assert.Equal(t, "Artifact", first.Rarity)
	assert.Equal(t, first, r.ResolveItem("RelicT5"))

	// capacity one evicts older entries but results stay identical
	r.ResolveItem("IronSwordT2")
	assert.Equal(t, first, r.ResolveItem("RelicT5"))
}
