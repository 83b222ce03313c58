package scoring

import (
	"fmt"
	"strings"

	"github.com/saned/saned-backend/internal/domain"
)

const unknownOrganization = "the industry"

// Highlight explains in one sentence why the candidate matched.
// Rules are evaluated in order and the first one that applies wins.
func Highlight(subject, candidate *domain.User, shared []string) string {
	sameRole := candidate.Role == subject.Role
	sameLocation := candidate.Location == subject.Location
	listed := ListToString(shared)

	switch {
	case sameRole && len(shared) > 0:
		return fmt.Sprintf("Both %ss with shared interests in %s.", candidate.Role, listed)
	case sameRole:
		return fmt.Sprintf("Fellow %s in %s.", candidate.Role, organizationOf(candidate))
	case len(shared) >= 3:
		return fmt.Sprintf("Strong match with %s across multiple areas: %s.", candidate.FirstName, listed)
	case sameLocation && len(shared) > 0:
		return fmt.Sprintf("Based in %s with shared interests in %s.", candidate.Location, listed)
	case sameLocation:
		return fmt.Sprintf("Located in %s with complementary expertise.", candidate.Location)
	case len(shared) > 0:
		return fmt.Sprintf("%s shares your passion for %s.", candidate.FirstName, listed)
	default:
		return fmt.Sprintf("%s works in %s with complementary expertise.", candidate.FirstName, organizationOf(candidate))
	}
}

func organizationOf(u *domain.User) string {
	if u.Organization == "" {
		return unknownOrganization
	}
	return u.Organization
}

// ListToString joins items for prose: "a", "a and b", "a, b, and c".
func ListToString(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
