package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvgate/kvgate/internal/handler/dto"
	"github.com/kvgate/kvgate/internal/model"
)

type fixedLog struct {
	entries []model.LogEntry
	asked   int
}

func (f *fixedLog) Recent(_ context.Context, n int) []model.LogEntry {
	f.asked = n
	if len(f.entries) > n {
		return f.entries[len(f.entries)-n:]
	}
	return f.entries
}

func TestLogsHandler(t *testing.T) {
	log := &fixedLog{entries: []model.LogEntry{
		{APIKey: "k", Endpoint: "/get", Timestamp: 1},
		{APIKey: "k", Endpoint: "/set", Timestamp: 2},
		{APIKey: "k", Endpoint: "/ttl", Timestamp: 3},
	}}
	h := NewLogsHandler(log, 2)

	rec := call(h.Logs, http.MethodGet, "/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, log.asked)

	var resp dto.LogsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Logs, 2)
	assert.Equal(t, "/set", resp.Logs[0].Endpoint)
	assert.Equal(t, "/ttl", resp.Logs[1].Endpoint)
}

func TestLogsHandler_Empty(t *testing.T) {
	h := NewLogsHandler(&fixedLog{entries: []model.LogEntry{}}, 50)

	rec := call(h.Logs, http.MethodGet, "/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"logs":[]}`, rec.Body.String())
}
