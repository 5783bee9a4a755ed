package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_QueryParams(t *testing.T) {
	InitValidator()
	v := GetValidator()

	level := func(n int) *int { return &n }

	tests := []struct {
		name    string
		req     interface{}
		wantErr bool
	}{
		// CASE 1: Best Case
		{"valid level", &LevelRequest{Level: 10}, false},
		{"valid effective", &EffectiveRequest{PlayerLevel: 60, TrackLevel: 200, SinglePct: 100, AtLeastPct: 100}, false},
		{"bucket without level", &BucketRequest{}, false},

		// CASE 2: Boundary Case
		{"level zero", &LevelRequest{Level: 0}, false},
		{"pct at bounds", &EffectiveRequest{SinglePct: 0, AtLeastPct: 100}, false},
		{"bucket level zero", &BucketRequest{PlayerLevel: level(0)}, false},

		// CASE 3: Invalid Case
		{"negative level", &LevelRequest{Level: -1}, true},
		{"pct above 100", &EffectiveRequest{SinglePct: 100.5}, true},
		{"negative track level", &EffectiveRequest{TrackLevel: -3}, true},
		{"negative bucket level", &BucketRequest{PlayerLevel: level(-1)}, true},
		{"owned id too long", &LevelRequest{Owned: []string{string(make([]byte, 129))}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(&EffectiveRequest{PlayerLevel: -1, SinglePct: 101})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at least 0", fields[ParamPlayerLevel])
	assert.Equal(t, "Must be at most 100", fields[ParamSinglePct])
	assert.NotContains(t, fields, "PlayerLevel")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}

func TestBufferPool_DropsOversized(t *testing.T) {
	buf := getBuffer()
	assert.Equal(t, 0, buf.Len())
	buf.WriteString("payload")
	putBuffer(buf)

	again := getBuffer()
	assert.Equal(t, 0, again.Len())
	putBuffer(again)

	big := getBuffer()
	big.Grow(maxPooledBufferSize * 2)
	putBuffer(big)
}
