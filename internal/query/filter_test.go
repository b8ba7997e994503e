package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingdash/internal/domain"
)

func sampleEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "1", Title: "IASTM Fundamentals", Description: "Intro course", Instructor: "Dr. Sarah Johnson", Status: domain.StatusUpcoming, RiskLevel: domain.RiskHigh, CEUCredits: 16},
		{ID: "2", Title: "Advanced Fascial Mobilization", Description: "Advanced techniques", Instructor: "Dr. Michael Chen", Status: domain.StatusUpcoming, RiskLevel: domain.RiskLow, CEUCredits: 24},
		{ID: "3", Title: "Pediatric Certification", Description: "Specialized pediatric training", Instructor: "Dr. Lisa Anderson", Status: domain.StatusCompleted, RiskLevel: domain.RiskMedium, CEUCredits: 20},
		{ID: "4", Title: "Sports Medicine", Description: "Applications for athletes", Instructor: "Dr. Robert Taylor", Status: domain.StatusCancelled, RiskLevel: domain.RiskHigh, CEUCredits: 8},
	}
}

func TestFilterEvents_NoFilterMatchesEverything(t *testing.T) {
	events := sampleEvents()
	got := FilterEvents(events, domain.EventFilter{})
	assert.Len(t, got, len(events))
}

func TestFilterEvents_SearchAcrossTitleDescriptionInstructor(t *testing.T) {
	events := sampleEvents()

	byTitle := FilterEvents(events, domain.EventFilter{Search: "fundamentals"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].ID)

	byDescription := FilterEvents(events, domain.EventFilter{Search: "athletes"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "4", byDescription[0].ID)

	byInstructor := FilterEvents(events, domain.EventFilter{Search: "CHEN"})
	require.Len(t, byInstructor, 1)
	assert.Equal(t, "2", byInstructor[0].ID)
}

func TestFilterEvents_StatusSetMembership(t *testing.T) {
	events := sampleEvents()

	// Empty set is no constraint, not "nothing matches".
	all := FilterEvents(events, domain.EventFilter{Status: nil})
	assert.Len(t, all, 4)

	upcoming := FilterEvents(events, domain.EventFilter{Status: []domain.EventStatus{domain.StatusUpcoming}})
	assert.Len(t, upcoming, 2)

	two := FilterEvents(events, domain.EventFilter{Status: []domain.EventStatus{domain.StatusCompleted, domain.StatusCancelled}})
	assert.Len(t, two, 2)
}

func TestFilterEvents_RiskLevelSetMembership(t *testing.T) {
	events := sampleEvents()
	high := FilterEvents(events, domain.EventFilter{RiskLevels: []domain.RiskLevel{domain.RiskHigh}})
	require.Len(t, high, 2)
	assert.Equal(t, "1", high[0].ID)
	assert.Equal(t, "4", high[1].ID)
}

func TestFilterEvents_MinCEUCredits(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, domain.EventFilter{MinCEUCredits: 20})
	assert.Len(t, got, 2)

	// Threshold of zero is a no-op.
	got = FilterEvents(events, domain.EventFilter{MinCEUCredits: 0})
	assert.Len(t, got, 4)
}

func TestFilterEvents_DimensionsCombineWithAND(t *testing.T) {
	events := sampleEvents()
	got := FilterEvents(events, domain.EventFilter{
		Search: "dr.",
		Status: []domain.EventStatus{domain.StatusUpcoming},
		RiskLevels: []domain.RiskLevel{domain.RiskHigh},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterEvents_OrderOfDimensionsIsIrrelevant(t *testing.T) {
	events := sampleEvents()
	statusFilter := domain.EventFilter{Status: []domain.EventStatus{domain.StatusUpcoming}}
	searchFilter := domain.EventFilter{Search: "advanced"}

	statusThenSearch := FilterEvents(FilterEvents(events, statusFilter), searchFilter)
	searchThenStatus := FilterEvents(FilterEvents(events, searchFilter), statusFilter)
	assert.Equal(t, statusThenSearch, searchThenStatus)
}

func TestFilterStudents(t *testing.T) {
	students := []*domain.Student{
		{ID: "1", FirstName: "John", LastName: "Smith", Occupation: "Physical Therapist", License: domain.License{State: "IN"}, Clinic: domain.Clinic{Name: "Advanced PT"}},
		{ID: "2", FirstName: "Maria", LastName: "Garcia", Occupation: "Chiropractor", License: domain.License{State: "IL"}, Clinic: domain.Clinic{Name: "Lakeside Clinic"}},
		{ID: "3", FirstName: "Wei", LastName: "Zhang", Occupation: "Athletic Trainer", License: domain.License{State: "AZ"}, Clinic: domain.Clinic{Name: "Desert Sports Med"}},
	}

	assert.Len(t, FilterStudents(students, ""), 3)

	byLast := FilterStudents(students, "garcia")
	require.Len(t, byLast, 1)
	assert.Equal(t, "2", byLast[0].ID)

	byState := FilterStudents(students, "az")
	require.Len(t, byState, 1)
	assert.Equal(t, "3", byState[0].ID)

	byClinic := FilterStudents(students, "lakeside")
	require.Len(t, byClinic, 1)
	assert.Equal(t, "2", byClinic[0].ID)

	byOccupation := FilterStudents(students, "therapist")
	require.Len(t, byOccupation, 1)
	assert.Equal(t, "1", byOccupation[0].ID)

	assert.Empty(t, FilterStudents(students, "nomatch"))
}
