package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

func TestAddRole_RoundTrip(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	id, err := s.AddRole(ctx, "Paralegal", 65000.5, 2)
	require.NoError(t, err)

	roles, err := s.ListRoles(ctx)
	require.NoError(t, err)

	var got *types.RoleListing
	for i := range roles {
		if roles[i].ID == id {
			got = &roles[i]
		}
	}
	require.NotNil(t, got, "new role missing from list")
	assert.Equal(t, "Paralegal", got.Title)
	assert.Equal(t, 65000.5, got.Salary)
	assert.Equal(t, int64(2), got.DepartmentID)
	assert.Equal(t, "Legal", got.Department)
}

func TestAddRole_Validation(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		salary       float64
		departmentID int64
		wantErr      error
	}{
		{name: "blank title", title: " ", salary: 1, departmentID: 1, wantErr: types.ErrInvalidName},
		{name: "zero salary", title: "Intern", salary: 0, departmentID: 1, wantErr: types.ErrInvalidSalary},
		{name: "negative salary", title: "Intern", salary: -5, departmentID: 1, wantErr: types.ErrInvalidSalary},
		{name: "unknown department", title: "Intern", salary: 1, departmentID: 42, wantErr: types.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t, minimalSeed)
			_, err := s.AddRole(context.Background(), tt.title, tt.salary, tt.departmentID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteRole(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	err := s.DeleteRole(ctx, 1)
	assert.ErrorIs(t, err, types.ErrRoleInUse)
	assert.True(t, types.IsGuard(err))

	roles, err := s.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2, "held role must remain")

	unused, err := s.AddRole(ctx, "Architect", 130000, 1)
	require.NoError(t, err)
	require.NoError(t, s.DeleteRole(ctx, unused))

	roles, err = s.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	assert.ErrorIs(t, s.DeleteRole(ctx, unused), types.ErrNotFound)
}

func TestDeleteRole_AfterEmployeesMoveAway(t *testing.T) {
	s := openTestStore(t, minimalSeed)
	ctx := context.Background()

	// Alan holds role 1; move him to role 2 and role 1 becomes deletable.
	require.NoError(t, s.UpdateEmployeeRole(ctx, 2, 2))
	require.NoError(t, s.DeleteRole(ctx, 1))
}
