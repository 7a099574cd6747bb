package model

import "time"

// Criterion is one evaluation dimension of a hackathon. MaxScore is the point
// ceiling a five-star rating converts to. Criteria are created by admins
// before evaluation opens and are treated as immutable once scored against.
// swagger:model Criterion
type Criterion struct {
	BaseModel
	HackathonID uint   `gorm:"not null;index" json:"hackathonId"`
	Name        string `gorm:"size:200;not null" json:"name"`
	MaxScore    int    `gorm:"not null" json:"maxScore"`
	Weight      int    `gorm:"default:1" json:"weight"`
	Category    string `gorm:"size:100" json:"category"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Criterion) TableName() string {
	return "criteria"
}

// Judge assigns a user to a hackathon as an evaluator. Deactivating a judge
// blocks new submissions without touching historical score entries.
// swagger:model Judge
type Judge struct {
	BaseModel
	HackathonID uint  `gorm:"not null;index" json:"hackathonId"`
	UserID      uint  `gorm:"not null;index" json:"userId"`
	IsActive    bool  `gorm:"default:true" json:"isActive"`
	User        *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Judge) TableName() string {
	return "judges"
}

// ScoreEntry is one judge's point-converted rating of one team on one
// criterion. At most one row exists per (judge, team, criterion, hackathon);
// resubmissions replace the whole (judge, team) set atomically.
// swagger:model ScoreEntry
type ScoreEntry struct {
	BaseModel
	JudgeID     uint `gorm:"not null;uniqueIndex:idx_scores_natural_key" json:"judgeId"`
	TeamID      uint `gorm:"not null;uniqueIndex:idx_scores_natural_key" json:"teamId"`
	CriterionID uint `gorm:"not null;uniqueIndex:idx_scores_natural_key" json:"criterionId"`
	HackathonID uint `gorm:"not null;uniqueIndex:idx_scores_natural_key;index" json:"hackathonId"`
	Stars       int  `gorm:"not null" json:"stars"`
	Points      int  `gorm:"not null" json:"points"`
	// MaxScore copies the criterion ceiling at submission time so entries stay
	// interpretable if the criterion definition later changes.
	MaxScore int `gorm:"not null" json:"maxScore"`
}

func (ScoreEntry) TableName() string {
	return "score_entries"
}

// ResultSnapshot freezes the ranked results of a hackathon at a point in
// time. The payload is written once and never recomputed on read.
// swagger:model ResultSnapshot
type ResultSnapshot struct {
	UUIDBase
	HackathonID uint   `gorm:"not null;index" json:"hackathonId"`
	Name        string `gorm:"size:200" json:"name"`
	Payload     []byte `gorm:"type:json" json:"-"`
}

func (ResultSnapshot) TableName() string {
	return "result_snapshots"
}

// SnapshotSummary is the listing projection of a snapshot, without payload.
type SnapshotSummary struct {
	ID          string    `json:"id"`
	HackathonID uint      `json:"hackathonId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
}
