package model

import "time"

// ExactMatch pairs a template slot with a high-confidence owned item.
type ExactMatch struct {
	TemplateItem TemplateItem
	UserItem     WardrobeItem
}

// SimilarMatch pairs a template slot with a medium-confidence owned item and
// a human-readable reason describing the gap.
type SimilarMatch struct {
	TemplateItem TemplateItem
	UserItem     WardrobeItem
	Reason       string
}

// MatchResult is the three-way partition of a template's slots against a
// user's inventory. It is derived data, recomputed on demand and never
// persisted.
type MatchResult struct {
	Exact   []ExactMatch
	Similar []SimilarMatch
	Missing []TemplateItem
}

// MatchedCount returns the number of template slots covered by an exact or
// similar match.
func (m *MatchResult) MatchedCount() int {
	return len(m.Exact) + len(m.Similar)
}

// ManualMatch is a user-confirmed link between a template slot and an owned
// item. It bypasses heuristic scoring for that slot.
type ManualMatch struct {
	CreatedAt      time.Time
	TemplateID     string
	TemplateItemID string
	ItemID         string
	ID             int64
}
