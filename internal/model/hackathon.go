package model

import "time"

// Hackathon rows are managed by the admin CRUD module; the judging backend
// reads them for the evaluation window flag and tenant scoping only.
// swagger:model Hackathon
type Hackathon struct {
	BaseModel
	Name           string    `gorm:"size:200;not null" json:"name"`
	Slug           string    `gorm:"size:100;uniqueIndex" json:"slug"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	EvaluationOpen bool      `gorm:"default:false" json:"evaluationOpen"`
}

func (Hackathon) TableName() string {
	return "hackathons"
}

// swagger:model Team
type Team struct {
	BaseModel
	HackathonID uint   `gorm:"not null;uniqueIndex:idx_teams_hackathon_number" json:"hackathonId"`
	Name        string `gorm:"size:200;not null" json:"name"`
	// TeamNumber is the stable ordinal used for display and ranking tie-breaks.
	TeamNumber int `gorm:"not null;uniqueIndex:idx_teams_hackathon_number" json:"teamNumber"`
}

func (Team) TableName() string {
	return "teams"
}
