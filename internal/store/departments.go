package store

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

const (
	tableDepartment = "department"
	tableRole       = "role"
	tableEmployee   = "employee"
)

// ListDepartments returns every department ordered by id.
func (s *Store) ListDepartments(ctx context.Context) ([]types.Department, error) {
	var out []types.Department
	if err := s.selectAll(ctx, &out, "SELECT id, name FROM department ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return out, nil
}

// AddDepartment inserts a department and returns its generated id.
func (s *Store) AddDepartment(ctx context.Context, name string) (int64, error) {
	name, err := types.ValidateName(name)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := s.get(ctx, &id, "INSERT INTO department (name) VALUES (?) RETURNING id", name); err != nil {
		return 0, fmt.Errorf("add department %q: %w", name, err)
	}
	return id, nil
}

// DeleteDepartment removes a department. It is rejected with
// ErrDepartmentInUse while any role still references the department.
func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	n, err := s.count(ctx, "SELECT COUNT(*) FROM role WHERE department_id = ?", id)
	if err != nil {
		return fmt.Errorf("check roles for department %d: %w", id, err)
	}
	if n > 0 {
		return fmt.Errorf("delete department %d (%d roles): %w", id, n, types.ErrDepartmentInUse)
	}

	affected, err := s.exec(ctx, "DELETE FROM department WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete department %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete department %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// DepartmentBudget sums the salary of every role held by an employee in the
// department. A role counts once per employee holding it.
func (s *Store) DepartmentBudget(ctx context.Context, departmentID int64) (float64, error) {
	var total float64
	const q = `SELECT COALESCE(SUM(r.salary), 0)
FROM employee e
INNER JOIN role r ON e.role_id = r.id
WHERE r.department_id = ?`
	if err := s.get(ctx, &total, q, departmentID); err != nil {
		return 0, fmt.Errorf("department budget %d: %w", departmentID, err)
	}
	return total, nil
}
