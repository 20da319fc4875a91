package model

// LogEntry is one record of the append-only request log.
type LogEntry struct {
	ID        string `json:"id,omitempty"`      // ULID (time-sortable)
	UserID    string `json:"user_id,omitempty"` // empty when the lookup failed
	APIKey    string `json:"api_key"`
	Endpoint  string `json:"endpoint"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
