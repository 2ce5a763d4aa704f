package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	var decoded domain.UserActivityReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "alice", decoded.User.Login)
	assert.Equal(t, 3, decoded.Summary.TotalContributions)
	if assert.NotNil(t, decoded.Aggregated) {
		assert.Equal(t, domain.Series{{Period: "2024-W05", Value: 2}}, decoded.Aggregated.Commits)
	}

	// Series encode as [period_key, value] pairs, not objects.
	assert.Contains(t, buf.String(), `"2024-W05",`)
	assert.NotContains(t, buf.String(), `"Period"`)
}

func TestWriteJSON_OmitsAggregatedWhenAbsent(t *testing.T) {
	report := sampleReport()
	report.Aggregated = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report))
	assert.NotContains(t, buf.String(), `"aggregated"`)
}
