package store

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// ListRoles returns every role with its department name, ordered by id.
// Roles whose department is missing still appear, with NotAssigned.
func (s *Store) ListRoles(ctx context.Context) ([]types.RoleListing, error) {
	const q = `SELECT
    r.id,
    r.title,
    r.salary,
    r.department_id,
    COALESCE(d.name, '` + types.NotAssigned + `') AS department
FROM role r
LEFT JOIN department d ON r.department_id = d.id
ORDER BY r.id`
	var out []types.RoleListing
	if err := s.selectAll(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return out, nil
}

// AddRole inserts a role under an existing department and returns its id.
func (s *Store) AddRole(ctx context.Context, title string, salary float64, departmentID int64) (int64, error) {
	title, err := types.ValidateName(title)
	if err != nil {
		return 0, err
	}
	if salary <= 0 {
		return 0, types.ErrInvalidSalary
	}
	ok, err := s.exists(ctx, tableDepartment, departmentID)
	if err != nil {
		return 0, fmt.Errorf("check department %d: %w", departmentID, err)
	}
	if !ok {
		return 0, fmt.Errorf("add role %q: department %d: %w", title, departmentID, types.ErrNotFound)
	}

	var id int64
	const q = "INSERT INTO role (title, salary, department_id) VALUES (?, ?, ?) RETURNING id"
	if err := s.get(ctx, &id, q, title, salary, departmentID); err != nil {
		return 0, fmt.Errorf("add role %q: %w", title, err)
	}
	return id, nil
}

// DeleteRole removes a role. It is rejected with ErrRoleInUse while any
// employee holds the role.
func (s *Store) DeleteRole(ctx context.Context, id int64) error {
	n, err := s.count(ctx, "SELECT COUNT(*) FROM employee WHERE role_id = ?", id)
	if err != nil {
		return fmt.Errorf("check employees for role %d: %w", id, err)
	}
	if n > 0 {
		return fmt.Errorf("delete role %d (%d employees): %w", id, n, types.ErrRoleInUse)
	}

	affected, err := s.exec(ctx, "DELETE FROM role WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete role %d: %w", id, types.ErrNotFound)
	}
	return nil
}
