package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingdash/internal/domain"
)

func TestSortStudents_ByLastNameCaseInsensitive(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", LastName: "smith"},
		{ID: "2", LastName: "Anderson"},
		{ID: "3", LastName: "GARCIA"},
	}
	got := SortStudents(students, domain.SortByLastName, domain.OrderAsc)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2", "3", "1"}, ids(got))

	// Input is not mutated.
	assert.Equal(t, "1", students[0].ID)
}

func TestSortStudents_Descending(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", Progress: domain.CourseProgress{ProgressPercentage: 40}},
		{ID: "2", Progress: domain.CourseProgress{ProgressPercentage: 90}},
		{ID: "3", Progress: domain.CourseProgress{ProgressPercentage: 10}},
	}
	got := SortStudents(students, domain.SortByProgress, domain.OrderDesc)
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))
}

func TestSortStudents_StableOnEqualKeys(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", LastName: "Smith", Occupation: "PT"},
		{ID: "2", LastName: "Smith", Occupation: "PT"},
		{ID: "3", LastName: "Smith", Occupation: "PT"},
	}
	once := SortStudents(students, domain.SortByOccupation, domain.OrderAsc)
	assert.Equal(t, []string{"1", "2", "3"}, ids(once))

	// Re-sorting by the same key must not reorder equal elements.
	twice := SortStudents(once, domain.SortByOccupation, domain.OrderAsc)
	assert.Equal(t, ids(once), ids(twice))

	// Stability holds for descending order too.
	desc := SortStudents(students, domain.SortByOccupation, domain.OrderDesc)
	assert.Equal(t, []string{"1", "2", "3"}, ids(desc))
}

func TestSortStudents_ByLicenseStateAndCompletionStatus(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", License: domain.License{State: "TX"}, CompletionStatus: domain.CompletionWithdrawn},
		{ID: "2", License: domain.License{State: "az"}, CompletionStatus: domain.CompletionCompleted},
		{ID: "3", License: domain.License{State: "IN"}, CompletionStatus: domain.CompletionEnrolled},
	}
	byState := SortStudents(students, domain.SortByLicenseState, domain.OrderAsc)
	assert.Equal(t, []string{"2", "3", "1"}, ids(byState))

	byStatus := SortStudents(students, domain.SortByCompletionStatus, domain.OrderAsc)
	assert.Equal(t, []string{"2", "3", "1"}, ids(byStatus))
}

func TestSortStudents_UnknownKeyFallsBackToLastName(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", LastName: "Zhang"},
		{ID: "2", LastName: "Anderson"},
	}
	got := SortStudents(students, domain.StudentSortKey("bogus"), domain.OrderAsc)
	assert.Equal(t, []string{"2", "1"}, ids(got))
}

func ids(students []*domain.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.ID
	}
	return out
}
