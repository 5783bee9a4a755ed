package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PvPTrack_Go/internal/builder"
	"github.com/osse101/PvPTrack_Go/internal/domain"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/lootbucket"
	"github.com/osse101/PvPTrack_Go/internal/loottable"
	"github.com/osse101/PvPTrack_Go/internal/output"
	"github.com/osse101/PvPTrack_Go/internal/rewardpool"
)

// TrackSource exposes the latest published build, or nil before the first one.
type TrackSource interface {
	Result() *builder.Result
}

// current writes 503 and returns nil when nothing is built yet.
func current(w http.ResponseWriter, src TrackSource) *builder.Result {
	res := src.Result()
	if res == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgNotReady)
	}
	return res
}

// LevelRequest selects one progression level.
type LevelRequest struct {
	Level int      `query:"level" validate:"gte=0"`
	Owned []string `query:"owned" validate:"dive,max=128"`
}

// RewardChance is the chance to get a reward at least once at a level,
// across all three notches.
type RewardChance struct {
	RewardID    string  `json:"rewardId"`
	TrackChance float64 `json:"trackChance"`
}

// LevelResponse is the distribution of one level.
type LevelResponse struct {
	Level   int                         `json:"level"`
	Notches map[string]domain.NotchPool `json:"notches"`
	Chances []RewardChance              `json:"chances"`
}

// HandleGetLevel returns the three notch pools of a level. Unique rewards
// listed in ?owned= are removed and the pools recomputed.
func HandleGetLevel(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parseErrs := map[string]string{}
		req := LevelRequest{
			Level: intParam(chi.URLParam(r, ParamLevel), ParamLevel, -1, parseErrs),
			Owned: splitList(r.URL.Query().Get(ParamOwned)),
		}
		if !validateParams(w, r, &req, parseErrs) {
			return
		}

		res := current(w, src)
		if res == nil {
			return
		}
		level := strconv.Itoa(req.Level)
		if _, ok := res.Levels[level]; !ok {
			respondError(w, http.StatusNotFound, ErrMsgLevelNotFound)
			return
		}

		var owned map[string]bool
		isUnique := rewardpool.UniqueLookup(res.RewardMeta)
		if len(req.Owned) > 0 {
			owned = make(map[string]bool, len(req.Owned))
			for _, id := range req.Owned {
				owned[id] = true
			}
		}

		notches := make(map[string]domain.NotchPool, len(domain.Notches))
		for _, n := range domain.Notches {
			key := strconv.Itoa(n)
			pool, ok := res.Levels.Pool(level, key)
			if !ok {
				continue
			}
			if owned != nil {
				pool = rewardpool.ExcludeOwned(pool, owned, isUnique)
			}
			notches[key] = pool
		}

		respondJSON(w, http.StatusOK, LevelResponse{
			Level:   req.Level,
			Notches: notches,
			Chances: trackChances(notches),
		})
	}
}

// trackChances combines the at-least-once odds of every reward across the
// three notches. Ordered by chance, descending, then reward id.
func trackChances(notches map[string]domain.NotchPool) []RewardChance {
	type acc struct {
		pct      [len(domain.Notches)]float64
		onceOnly bool
	}
	byID := make(map[string]*acc)
	for i, n := range domain.Notches {
		for _, r := range notches[strconv.Itoa(n)].Rewards {
			a, ok := byID[r.RewardID]
			if !ok {
				a = &acc{}
				byID[r.RewardID] = a
			}
			a.pct[i] = r.PercentAtLeastOneOfThree
			a.onceOnly = a.onceOnly || r.SelectOnceOnly
		}
	}

	out := make([]RewardChance, 0, len(byID))
	for id, a := range byID {
		out = append(out, RewardChance{
			RewardID:    id,
			TrackChance: rewardpool.TrackChance(a.pct[0], a.pct[1], a.pct[2], a.onceOnly),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TrackChance != out[j].TrackChance {
			return out[i].TrackChance > out[j].TrackChance
		}
		return out[i].RewardID < out[j].RewardID
	})
	return out
}

// RewardResponse is one reward's metadata plus its display rarity class.
type RewardResponse struct {
	ID          string             `json:"id"`
	Meta        *domain.RewardMeta `json:"meta"`
	RarityClass string             `json:"rarityClass"`
	RarityColor string             `json:"rarityColor,omitempty"`
}

// HandleGetReward returns the resolved metadata of one reward.
func HandleGetReward(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := current(w, src)
		if res == nil {
			return
		}
		id := chi.URLParam(r, ParamID)
		meta, ok := res.RewardMeta[id]
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgRewardNotFound)
			return
		}
		respondJSON(w, http.StatusOK, RewardResponse{
			ID:          id,
			Meta:        meta,
			RarityClass: domain.RarityClass(meta.Rarity),
			RarityColor: domain.RarityColor[strings.ToLower(strings.TrimSpace(meta.Rarity))],
		})
	}
}

// LootTableResponse carries both views of a loot table.
type LootTableResponse struct {
	ID       string              `json:"id"`
	Tiers    domain.LootTable    `json:"tiers"`
	Contents domain.LootContents `json:"contents"`
}

// HandleGetLootTable returns the tier and roll-contents views of a table.
func HandleGetLootTable(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := current(w, src)
		if res == nil {
			return
		}
		id := chi.URLParam(r, ParamID)
		tiers, ok := res.LootTables[id]
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgLootTableNotFound)
			return
		}
		respondJSON(w, http.StatusOK, LootTableResponse{ID: id, Tiers: tiers, Contents: res.LootContents[id]})
	}
}

// EffectiveRequest holds the levels and parent odds of an effective lookup.
type EffectiveRequest struct {
	PlayerLevel int     `query:"player_level" validate:"gte=0"`
	TrackLevel  int     `query:"track_level" validate:"gte=0"`
	SinglePct   float64 `query:"single_pct" validate:"gte=0,lte=100"`
	AtLeastPct  float64 `query:"at_least_pct" validate:"gte=0,lte=100"`
}

// EffectiveResponse is a loot table after tier selection, with entry odds.
type EffectiveResponse struct {
	Model     loottable.Model       `json:"model"`
	Odds      []loottable.EntryOdds `json:"odds"`
	GearScore string                `json:"gearScore,omitempty"`
}

// HandleGetEffectiveLootTable evaluates a table for a player.
func HandleGetEffectiveLootTable(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		parseErrs := map[string]string{}
		req := EffectiveRequest{
			PlayerLevel: intParam(q.Get(ParamPlayerLevel), ParamPlayerLevel, 0, parseErrs),
			TrackLevel:  intParam(q.Get(ParamTrackLevel), ParamTrackLevel, 0, parseErrs),
			SinglePct:   floatParam(q.Get(ParamSinglePct), ParamSinglePct, 100, parseErrs),
			AtLeastPct:  floatParam(q.Get(ParamAtLeastPct), ParamAtLeastPct, 100, parseErrs),
		}
		if !validateParams(w, r, &req, parseErrs) {
			return
		}

		res := current(w, src)
		if res == nil {
			return
		}
		id := chi.URLParam(r, ParamID)
		eval := loottable.NewEvaluator(res.LootTables, res.LootContents)
		model, err := eval.Effective(r.Context(), id, req.PlayerLevel, req.TrackLevel)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgEffectiveError, "table_id", id, "error", err)
			respondError(w, statusForError(err), ErrMsgLootTableNotFound)
			return
		}

		respondJSON(w, http.StatusOK, EffectiveResponse{
			Model:     model,
			Odds:      loottable.Odds(model, req.SinglePct, req.AtLeastPct),
			GearScore: eval.GearScore(id, req.PlayerLevel, req.TrackLevel),
		})
	}
}

// BucketRequest optionally filters bucket items by player level.
type BucketRequest struct {
	PlayerLevel *int `query:"player_level" validate:"omitempty,gte=0"`
}

// BucketResponse lists the items of one loot bucket.
type BucketResponse struct {
	Name  string              `json:"name"`
	Items []domain.BucketItem `json:"items"`
}

// HandleGetBucket returns a loot bucket's items; with ?player_level= only
// the items whose level tags admit that level.
func HandleGetBucket(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parseErrs := map[string]string{}
		var req BucketRequest
		if raw := r.URL.Query().Get(ParamPlayerLevel); raw != "" {
			level := intParam(raw, ParamPlayerLevel, 0, parseErrs)
			req.PlayerLevel = &level
		}
		if !validateParams(w, r, &req, parseErrs) {
			return
		}

		res := current(w, src)
		if res == nil {
			return
		}
		name := chi.URLParam(r, ParamName)
		items, ok := res.Buckets[name]
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgBucketNotFound)
			return
		}
		if req.PlayerLevel != nil {
			items = lootbucket.Eligible(items, *req.PlayerLevel)
		}
		if items == nil {
			items = []domain.BucketItem{}
		}
		respondJSON(w, http.StatusOK, BucketResponse{Name: name, Items: items})
	}
}

// HandleDataJS serves the latest build as the front end's data.js.
func HandleDataJS(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := current(w, src)
		if res == nil {
			return
		}
		js, err := output.DataJS(res)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgRenderFailed)
			return
		}
		w.Header().Set("Content-Type", ContentTypeJavaScript)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(js)
	}
}
