package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Gamer is a registered player. Clients refer to gamers by UID, the
// external identifier issued by the auth provider, never by ID.
type Gamer struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	Bio       string    `json:"bio"`
	CreatedOn time.Time `json:"created_on"`
}

const (
	MaxUIDLength = 128
	MaxBioLength = 500
)

// RegisterGamerRequest is the payload for POST /register
type RegisterGamerRequest struct {
	UID string `json:"uid"`
	Bio string `json:"bio"`
}

// Validate checks if the register request is valid
func (r *RegisterGamerRequest) Validate() []FieldError {
	var errors []FieldError

	if fe := validateUID("uid", r.UID); fe != nil {
		errors = append(errors, *fe)
	}
	if utf8.RuneCountInString(r.Bio) > MaxBioLength {
		errors = append(errors, FieldError{Field: "bio", Message: "bio must be 500 characters or less"})
	}

	return errors
}

// GamerUIDRequest carries only the acting gamer's uid. Used by
// /checkuser and the event signup/leave actions.
type GamerUIDRequest struct {
	UID string `json:"uid"`
}

// Validate checks if the uid request is valid
func (r *GamerUIDRequest) Validate() []FieldError {
	if fe := validateUID("uid", r.UID); fe != nil {
		return []FieldError{*fe}
	}
	return nil
}

func validateUID(field, uid string) *FieldError {
	if strings.TrimSpace(uid) == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}
	if utf8.RuneCountInString(uid) > MaxUIDLength {
		return &FieldError{Field: field, Message: field + " must be 128 characters or less"}
	}
	return nil
}
