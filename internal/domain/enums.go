package domain

// UserRole is the innovator category a user registered under.
type UserRole string

const (
	UserRoleStartup      UserRole = "startup"
	UserRoleIndividual   UserRole = "individual"
	UserRoleOrganization UserRole = "organization"
	UserRoleInvestor     UserRole = "investor"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStartup, UserRoleIndividual, UserRoleOrganization, UserRoleInvestor:
		return true
	}
	return false
}

// MatchPreference is the subject's recorded reaction to a match.
type MatchPreference string

const (
	MatchPreferencePending MatchPreference = "pending"
	MatchPreferenceLike    MatchPreference = "like"
	MatchPreferenceDislike MatchPreference = "dislike"
)

func (p MatchPreference) String() string { return string(p) }

func (p MatchPreference) IsValid() bool {
	switch p {
	case MatchPreferencePending, MatchPreferenceLike, MatchPreferenceDislike:
		return true
	}
	return false
}

// IsSettable reports whether a subject may explicitly choose p.
// Pending is only ever the initial state.
func (p MatchPreference) IsSettable() bool {
	return p == MatchPreferenceLike || p == MatchPreferenceDislike
}
