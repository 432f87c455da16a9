package model

// Card is a saved practice item: the notes that were played plus the
// analysis cached at creation time so the UI never re-derives it.
type Card struct {
	ID        string        `json:"id"`
	Notes     Notes         `json:"notes"`
	Analysis  ChordAnalysis `json:"analysis"`
	CreatedAt string        `json:"createdAt"`
}
