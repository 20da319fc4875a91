package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBody(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecode_SetRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantTag string
	}{
		{name: "key and value", body: `{"key":"k","value":"v"}`},
		{name: "numeric value", body: `{"key":"k","value":42}`},
		{name: "with ttl", body: `{"key":"k","value":"v","ttl":10}`},
		{name: "zero ttl", body: `{"key":"k","value":"v","ttl":0}`},
		{name: "missing value", body: `{"key":"k"}`, wantErr: true, wantTag: "required"},
		{name: "empty value", body: `{"key":"k","value":""}`, wantErr: true, wantTag: "required"},
		{name: "missing key", body: `{"value":"v"}`, wantErr: true, wantTag: "required"},
		{name: "negative ttl", body: `{"key":"k","value":"v","ttl":-1}`, wantErr: true, wantTag: TagGTE},
		{name: "string ttl", body: `{"key":"k","value":"v","ttl":"10"}`, wantErr: true},
		{name: "reserved key", body: `{"key":"apikey:abc","value":"v"}`, wantErr: true, wantTag: TagNotReserved},
		{name: "log key", body: `{"key":"api_logs","value":"v"}`, wantErr: true, wantTag: TagNotReserved},
		{name: "object value", body: `{"key":"k","value":{"a":1}}`, wantErr: true},
		{name: "not json", body: `key=k`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SetRequest
			err := Decode(newBody(tt.body), &req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantTag != "" {
				assert.True(t, FailedTag(err, tt.wantTag), "expected failure on %q, got %v", tt.wantTag, err)
			}
		})
	}
}

func TestDecode_ExpireRequiresTTL(t *testing.T) {
	var req ExpireRequest
	err := Decode(newBody(`{"key":"k"}`), &req)
	require.Error(t, err)
	assert.True(t, FailedTag(err, "required"))

	req = ExpireRequest{}
	require.NoError(t, Decode(newBody(`{"key":"k","ttl":0}`), &req))
	require.NotNil(t, req.TTL)
	assert.Equal(t, int64(0), *req.TTL)
}

func TestDecode_GenerateKeyRequest(t *testing.T) {
	tests := []struct {
		body    string
		wantErr bool
	}{
		{`{"user_id":"alice"}`, false},
		{`{"user_id":"alice","role":"admin"}`, false},
		{`{"user_id":"alice","role":"user"}`, false},
		{`{"user_id":"alice","role":"root"}`, true},
		{`{"role":"admin"}`, true},
		{`{}`, true},
	}

	for _, tt := range tests {
		var req GenerateKeyRequest
		err := Decode(newBody(tt.body), &req)
		assert.Equal(t, tt.wantErr, err != nil, "body %s: err = %v", tt.body, err)
	}
}

func TestScalar(t *testing.T) {
	var req HSetRequest
	require.NoError(t, Decode(newBody(`{"hash":"h","field":"f","value":12345678901234567890}`), &req))
	assert.Equal(t, "12345678901234567890", req.Value.String())

	require.NoError(t, Decode(newBody(`{"hash":"h","field":"f","value":true}`), &req))
	assert.Equal(t, "true", req.Value.String())

	require.NoError(t, Decode(newBody(`{"hash":"h","field":"f","value":1.5}`), &req))
	assert.Equal(t, "1.5", req.Value.String())
}

func TestValidate_Query(t *testing.T) {
	assert.NoError(t, Validate(&KeyQuery{Key: "k"}))
	assert.Error(t, Validate(&KeyQuery{}))
	assert.True(t, FailedTag(Validate(&KeyQuery{Key: "ratelimit:x"}), TagNotReserved))
	assert.True(t, FailedTag(Validate(&KeyQuery{Key: strings.Repeat("k", 1025)}), TagMax))
	assert.Error(t, Validate(&HGetQuery{Hash: "h"}))
	assert.NoError(t, Validate(&QueueQuery{Queue: "jobs"}))
}
