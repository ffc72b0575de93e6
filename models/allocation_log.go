package models

import "time"

// AllocationLog is the audit record written for every successful allocation.
type AllocationLog struct {
	ID             string            `bson:"id" json:"id"`
	UserID         string            `bson:"user_id" json:"user_id"`
	Scheme         string            `bson:"scheme" json:"scheme"`
	Request        AllocationRequest `bson:"request" json:"request"`
	PriestID       string            `bson:"priest_id" json:"priest_id"`
	Score          float64           `bson:"score" json:"score"`
	ScoreBreakdown ScoreBreakdown    `bson:"score_breakdown" json:"score_breakdown"`
	AlternativeIDs []string          `bson:"alternative_ids" json:"alternative_ids"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
}
