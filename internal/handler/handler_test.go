package handler

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/PvPTrack_Go/internal/builder"
	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// MockTrackSource mocks the TrackSource interface
type MockTrackSource struct {
	mock.Mock
}

func (m *MockTrackSource) Result() *builder.Result {
	args := m.Called()
	if res := args.Get(0); res != nil {
		return res.(*builder.Result)
	}
	return nil
}

func newSource(res *builder.Result) *MockTrackSource {
	src := &MockTrackSource{}
	src.On("Result").Return(res)
	return src
}

func strPtr(s string) *string { return &s }

func fixtureResult() *builder.Result {
	return &builder.Result{
		RunID: "run-1",
		Levels: domain.LevelDistribution{
			"5": {
				"1": {TotalWeight: 2, Rewards: []domain.WeightedReward{
					{RewardID: "R_Common", Weight: 1, PercentSingle: 50, PercentAtLeastOneOfThree: 87.5},
					{RewardID: "R_Unique", Weight: 1, PercentSingle: 50, PercentAtLeastOneOfThree: 87.5},
				}},
				"2": {TotalWeight: 1, Rewards: []domain.WeightedReward{
					{RewardID: "R_Common", Weight: 1, PercentSingle: 100, PercentAtLeastOneOfThree: 100},
				}},
				"3": {TotalWeight: 0, Rewards: []domain.WeightedReward{}},
			},
		},
		RewardMeta: domain.RewardMetaTable{
			"R_Common": {RewardID: "R_Common", Name: "Coins", Rarity: "Common"},
			"R_Unique": {RewardID: "R_Unique", Name: "Relic", Rarity: "Artifact", UniqueEligible: true, LootTableID: strPtr("Chest")},
		},
		LootTables: map[string]domain.LootTable{
			"Chest": {ID: "Chest", Rule: domain.RuleOR, MaxRoll: 99, Tiers: []domain.LootTier{
				{Min: 0, GSRange: strPtr("None")},
				{Min: 50, GSRange: strPtr("600-625")},
			}},
		},
		LootContents: map[string]domain.LootContents{
			"Chest": {ID: "Chest", Rule: domain.RuleOR, MaxRoll: 99, Entries: []domain.LootEntry{
				{Raw: "A", MinRoll: 0},
				{Raw: "B", MinRoll: 50},
			}},
		},
		Buckets: domain.BucketContents{
			"Gold": {
				{ItemID: "Low", Tags: []string{"Level:0-19"}},
				{ItemID: "High", Tags: []string{"Level:20"}},
				{ItemID: "Any", Tags: []string{}},
			},
		},
	}
}
