package query

import (
	"sort"
	"strings"

	"trainingdash/internal/domain"
)

// SortStudents returns a stably sorted copy of students by the given key and
// order. String keys compare case-insensitively. Equal keys keep their prior
// relative order, so re-sorting by the same key is a no-op.
func SortStudents(students []*domain.Student, key domain.StudentSortKey, order domain.SortOrder) []*domain.Student {
	out := make([]*domain.Student, len(students))
	copy(out, students)

	less := lessFunc(key)
	if order == domain.OrderDesc {
		asc := less
		less = func(a, b *domain.Student) bool { return asc(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func lessFunc(key domain.StudentSortKey) func(a, b *domain.Student) bool {
	switch key {
	case domain.SortByLicenseState:
		return func(a, b *domain.Student) bool {
			return strings.ToLower(a.License.State) < strings.ToLower(b.License.State)
		}
	case domain.SortByOccupation:
		return func(a, b *domain.Student) bool {
			return strings.ToLower(a.Occupation) < strings.ToLower(b.Occupation)
		}
	case domain.SortByProgress:
		return func(a, b *domain.Student) bool {
			return a.Progress.ProgressPercentage < b.Progress.ProgressPercentage
		}
	case domain.SortByCompletionStatus:
		return func(a, b *domain.Student) bool {
			return strings.ToLower(string(a.CompletionStatus)) < strings.ToLower(string(b.CompletionStatus))
		}
	default: // SortByLastName
		return func(a, b *domain.Student) bool {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
	}
}
