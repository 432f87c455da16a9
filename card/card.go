package card

import (
	"time"

	"github.com/d4j3y2k/keyboy/model"
	"github.com/google/uuid"
)

// New builds a practice card for a note set, caching the analysis so
// consumers never have to re-derive it.
func New(notes model.Notes, analysis model.ChordAnalysis) model.Card {
	return model.Card{
		ID:        uuid.New().String(),
		Notes:     notes,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
