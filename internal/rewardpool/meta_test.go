package rewardpool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/sheet"
)

func TestParseRewardMeta(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		m := ParseRewardMeta(sheet.ParseRow(`{
			"RewardID":"R1","Item":"[LTID]Chest","Name":"@chest_name","Description":"d",
			"IconPath":"icons/x.png","RollOnPresent":"true","Quantity":"2",
			"BuyCategoricalProgressionCost":150.0,"BuyCategoricalProgressionCurrencyId":"Shards",
			"GameEvent":"PvP_Coin_1"}`))
		require.NotNil(t, m)
		assert.Equal(t, "R1", m.RewardID)
		assert.Equal(t, "@chest_name", m.Name)
		assert.Equal(t, "[LTID]Chest", m.RawItemField)
		assert.True(t, m.RollOnPresent)
		require.NotNil(t, m.Quantity)
		assert.Equal(t, 2, *m.Quantity)
		require.NotNil(t, m.BuyCost)
		assert.Equal(t, 150, *m.BuyCost)
		assert.Equal(t, "Shards", m.BuyCurrency)
		assert.Equal(t, "PvP_Coin_1", m.GameEvent)
	})

	t.Run("name falls back to item then id", func(t *testing.T) {
		m := ParseRewardMeta(sheet.ParseRow(`{"RewardId":"R2","Item":"IronOre"}`))
		assert.Equal(t, "IronOre", m.Name)
		assert.Nil(t, m.Quantity)

		m = ParseRewardMeta(sheet.ParseRow(`{"RewardId":"R3"}`))
		assert.Equal(t, "R3", m.Name)
	})

	t.Run("no id", func(t *testing.T) {
		assert.Nil(t, ParseRewardMeta(sheet.ParseRow(`{"Item":"x"}`)))
	})
}

func TestBuildRewardMeta(t *testing.T) {
	s, err := sheet.Parse("rewards", []byte(`[
		{"RewardID":"ITM_Artifacts_A","Item":"A"},
		{"RewardID":"R1","Item":"[LBID]B1","RollOnPresent":true},
		{"RewardID":"R1","Item":"second"},
		{"RewardID":"Relic","Item":"Relic"},
		{"Item":"orphan"}
	]`))
	require.NoError(t, err)

	table := BuildRewardMeta(context.Background(), s, []domain.RewardRow{
		{RewardID: "Relic", ExcludeTypeStage: "artifact"},
	})

	require.Len(t, table, 3)
	assert.True(t, table["ITM_Artifacts_A"].UniqueEligible)
	assert.True(t, table["Relic"].UniqueEligible)
	require.NotNil(t, table["R1"].DirectBucketID)
	assert.Equal(t, "B1", *table["R1"].DirectBucketID)
	assert.Equal(t, "[LBID]B1", table["R1"].RawItemField)
}
