package domain

import "time"

// SubjectType differentiates agent tokens from self-service guest tokens.
type SubjectType string

const (
	SubjectTypeAgent       SubjectType = "AGENT"
	SubjectTypeSelfService SubjectType = "SELF_SERVICE"
)

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
