package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/saned/saned-backend/internal/domain"
)

// Row is the scan target for a users row.
type Row struct {
	ID           uuid.UUID `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	Organization string    `db:"organization"`
	Location     string    `db:"location"`
	Tags         []string  `db:"tags"`
	Interests    []string  `db:"interests"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ToDomain converts the row. NULL tag arrays stay nil so that
// CompareTags can tell an absent list from an empty one.
func (r Row) ToDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Role:         domain.UserRole(r.Role),
		Organization: r.Organization,
		Location:     r.Location,
		Tags:         r.Tags,
		Interests:    r.Interests,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
