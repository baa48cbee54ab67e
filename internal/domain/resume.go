package domain

import "time"

// Resume is a persisted document owned by one user.
type Resume struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	ResumeDocument
	ATSScore             int       `json:"atsScore"`
	CompletionPercentage int       `json:"completionPercentage"`
	IsPublic             bool      `json:"isPublic"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
