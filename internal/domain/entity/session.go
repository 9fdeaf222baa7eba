package entity

// SessionData is the payload a session strategy encodes into a token when a session starts.
type SessionData struct {
	ListKey string `json:"listKey"` // The list the authenticated item belongs to, e.g. "User".
	ItemID  string `json:"itemId"`  // The primary key of the authenticated item.
}

// Session is the decoded, request-scoped view of an authenticated principal.
// Data is filled on every retrieval from the configured projection and is never part of the token.
type Session struct {
	ListKey string         `json:"listKey"`
	ItemID  string         `json:"itemId"`
	Data    map[string]any `json:"data,omitempty"`
}

// WithData returns a copy of the session carrying the given projection.
func (s *Session) WithData(data map[string]any) *Session {
	return &Session{
		ListKey: s.ListKey,
		ItemID:  s.ItemID,
		Data:    data,
	}
}
