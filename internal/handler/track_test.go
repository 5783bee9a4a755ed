package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

func newTestRouter(src TrackSource) http.Handler {
	r := chi.NewRouter()
	r.Get("/levels/{level}", HandleGetLevel(src))
	r.Get("/rewards/{id}", HandleGetReward(src))
	r.Get("/loot-tables/{id}", HandleGetLootTable(src))
	r.Get("/loot-tables/{id}/effective", HandleGetEffectiveLootTable(src))
	r.Get("/buckets/{name}", HandleGetBucket(src))
	r.Get("/data.js", HandleDataJS(src))
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandleGetLevel(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	t.Run("returns three notches with track chances", func(t *testing.T) {
		w := get(t, h, "/levels/5")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[LevelResponse](t, w)
		assert.Equal(t, 5, resp.Level)
		assert.Len(t, resp.Notches, 3)
		assert.Len(t, resp.Notches["1"].Rewards, 2)

		require.Len(t, resp.Chances, 2)
		assert.Equal(t, "R_Common", resp.Chances[0].RewardID)
		assert.InDelta(t, 100.0, resp.Chances[0].TrackChance, 1e-9)
		assert.Equal(t, "R_Unique", resp.Chances[1].RewardID)
		assert.InDelta(t, 87.5, resp.Chances[1].TrackChance, 1e-9)
	})

	t.Run("owned unique rewards are removed", func(t *testing.T) {
		w := get(t, h, "/levels/5?owned=R_Unique,R_Common")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[LevelResponse](t, w)
		pool := resp.Notches["1"]
		require.Len(t, pool.Rewards, 1)
		assert.Equal(t, "R_Common", pool.Rewards[0].RewardID)
		assert.InDelta(t, 100.0, pool.Rewards[0].PercentSingle, 1e-9)
		assert.Equal(t, 1, pool.TotalWeight)
		require.Len(t, resp.Chances, 1)
	})

	t.Run("unknown level", func(t *testing.T) {
		w := get(t, h, "/levels/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgLevelNotFound)
	})

	t.Run("invalid level", func(t *testing.T) {
		for _, target := range []string{"/levels/abc", "/levels/-2"} {
			w := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, w.Code, target)

			resp := decode[ValidationErrorResponse](t, w)
			assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
			assert.Contains(t, resp.Fields, ParamLevel)
		}
	})
}

func TestHandleGetReward(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	w := get(t, h, "/rewards/R_Unique")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[RewardResponse](t, w)
	assert.Equal(t, "R_Unique", resp.ID)
	assert.Equal(t, "Relic", resp.Meta.Name)
	assert.Equal(t, "rar-artifact", resp.RarityClass)
	assert.Equal(t, domain.RarityColor[domain.RarityArtifact], resp.RarityColor)
	assert.True(t, resp.Meta.UniqueEligible)

	w = get(t, h, "/rewards/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetLootTable(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	w := get(t, h, "/loot-tables/Chest")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[LootTableResponse](t, w)
	assert.Len(t, resp.Tiers.Tiers, 2)
	assert.Len(t, resp.Contents.Entries, 2)

	w = get(t, h, "/loot-tables/Missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgLootTableNotFound)
}

func TestHandleGetEffectiveLootTable(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	t.Run("OR table splits the roll range", func(t *testing.T) {
		w := get(t, h, "/loot-tables/Chest/effective?player_level=60&single_pct=50")
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[EffectiveResponse](t, w)
		assert.Equal(t, "OR", resp.Model.Mode)
		require.Len(t, resp.Odds, 2)
		for _, o := range resp.Odds {
			assert.InDelta(t, 50.0, o.TablePct, 1e-9, o.Raw)
			assert.InDelta(t, 25.0, o.MonoGlobalPct, 1e-9, o.Raw)
			assert.InDelta(t, 50.0, o.AtLeastGlobalPct, 1e-9, o.Raw)
		}
		assert.Equal(t, "600-625", resp.GearScore)
	})

	t.Run("gear score below the ranged tier", func(t *testing.T) {
		w := get(t, h, "/loot-tables/Chest/effective?player_level=10")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[EffectiveResponse](t, w).GearScore)
	})

	t.Run("unknown table", func(t *testing.T) {
		w := get(t, h, "/loot-tables/Missing/effective")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		w := get(t, h, "/loot-tables/Chest/effective?player_level=x&track_level=-1&at_least_pct=200")
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode[ValidationErrorResponse](t, w)
		assert.Equal(t, ErrMsgInvalidInteger, resp.Fields[ParamPlayerLevel])
		assert.Contains(t, resp.Fields, ParamTrackLevel)
		assert.Contains(t, resp.Fields, ParamAtLeastPct)
	})
}

func TestHandleGetBucket(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all items", "/buckets/Gold", []string{"Low", "High", "Any"}},
		{"low level", "/buckets/Gold?player_level=5", []string{"Low", "Any"}},
		{"high level", "/buckets/Gold?player_level=30", []string{"High", "Any"}},
		{"above default cap", "/buckets/Gold?player_level=71", []string{"Any"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[BucketResponse](t, w)
			var ids []string
			for _, it := range resp.Items {
				ids = append(ids, it.ItemID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	assert.Equal(t, http.StatusNotFound, get(t, h, "/buckets/Nope").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/buckets/Gold?player_level=-4").Code)
}

func TestHandleDataJS(t *testing.T) {
	h := newTestRouter(newSource(fixtureResult()))

	w := get(t, h, "/data.js")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeJavaScript, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "window.PVP_DATA="))
	assert.Contains(t, w.Body.String(), "window.PVP_BUCKET_CONTENTS=")
}

func TestHandlers_NotReady(t *testing.T) {
	h := newTestRouter(newSource(nil))

	for _, target := range []string{
		"/levels/5", "/rewards/R_Common", "/loot-tables/Chest",
		"/loot-tables/Chest/effective", "/buckets/Gold", "/data.js",
	} {
		w := get(t, h, target)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, target)
		assert.Contains(t, w.Body.String(), ErrMsgNotReady, target)
	}
}
