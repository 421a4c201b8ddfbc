package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

func TestListEmployeeReports_IncludesEveryEmployeeOnce(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	loner, err := s.AddEmployee(ctx, "Barbara", "Liskov", nil, nil)
	require.NoError(t, err)

	reports, err := s.ListEmployeeReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	seen := map[int64]int{}
	for _, r := range reports {
		seen[r.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "employee %d appears %d times", id, n)
	}

	byID := map[int64]types.EmployeeReport{}
	for _, r := range reports {
		byID[r.ID] = r
	}

	grace := byID[1]
	assert.Equal(t, "Lead", grace.Title)
	assert.Equal(t, "Engineering", grace.Department)
	require.NotNil(t, grace.Salary)
	assert.Equal(t, 110000.0, *grace.Salary)
	assert.Equal(t, types.NotAssigned, grace.Manager)

	alan := byID[2]
	assert.Equal(t, "Grace Hopper", alan.Manager)

	b := byID[loner]
	assert.Equal(t, types.NotAssigned, b.Title)
	assert.Equal(t, types.NotAssigned, b.Department)
	assert.Nil(t, b.Salary)
	assert.Equal(t, types.NotAssigned, b.Manager)
}

func TestListEmployeesByManager(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	got, err := s.ListEmployeesByManager(ctx, "Grace Hopper")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alan", got[0].FirstName)
	assert.Equal(t, "Engineer", got[0].Title)
	assert.Equal(t, "Engineering", got[0].Department)
	assert.Equal(t, 90000.0, got[0].Salary)

	got, err = s.ListEmployeesByManager(ctx, "Nobody Here")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListEmployeesByManager_MatchesByName(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	// A second Grace Hopper with her own report: filtering by the shared
	// name returns the reports of both.
	other, err := s.AddEmployee(ctx, "Grace", "Hopper", nil, nil)
	require.NoError(t, err)
	_, err = s.AddEmployee(ctx, "Ken", "Thompson", ptr(1), &other)
	require.NoError(t, err)

	got, err := s.ListEmployeesByManager(ctx, "Grace Hopper")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListEmployeesByDepartment(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	got, err := s.ListEmployeesByDepartment(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	got, err = s.ListEmployeesByDepartment(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}
