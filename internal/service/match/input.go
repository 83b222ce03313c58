package match

import (
	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

// SetPreferenceInput holds the parameters for recording a preference.
type SetPreferenceInput struct {
	SubjectID   uuid.UUID
	CandidateID uuid.UUID
	Preference  domain.MatchPreference
}

// Validate checks all fields and collects all errors.
func (i SetPreferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.CandidateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "required"})
	}
	if i.SubjectID != uuid.Nil && i.SubjectID == i.CandidateID {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "must differ from subject"})
	}
	if !i.Preference.IsSettable() {
		errs = append(errs, domain.FieldError{Field: "preference", Message: "must be like or dislike"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
