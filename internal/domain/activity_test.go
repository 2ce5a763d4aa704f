package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesPoint_JSONPair(t *testing.T) {
	s := Series{
		{Period: "2024-W01", Value: 5},
		{Period: "2024-W02", Value: 0},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[["2024-W01",5],["2024-W02",0]]`, string(data))

	var decoded Series
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestSeriesPoint_UnmarshalRejectsMalformedPair(t *testing.T) {
	var p SeriesPoint
	assert.Error(t, json.Unmarshal([]byte(`{"period":"2024-W01"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`[5,"2024-W01"]`), &p))
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Alice", User{Login: "alice", Name: "Alice"}.DisplayName())
	assert.Equal(t, "alice", User{Login: "alice"}.DisplayName())
}
