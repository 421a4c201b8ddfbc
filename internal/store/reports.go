package store

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// ListEmployeeReports returns one row per employee with role, department,
// salary, and manager resolved through outer joins. The manager join uses a
// second alias of the employee table.
func (s *Store) ListEmployeeReports(ctx context.Context) ([]types.EmployeeReport, error) {
	const q = `SELECT
    e.id,
    e.first_name,
    e.last_name,
    COALESCE(r.title, '` + types.NotAssigned + `') AS title,
    COALESCE(d.name, '` + types.NotAssigned + `') AS department,
    r.salary AS salary,
    COALESCE(m.first_name || ' ' || m.last_name, '` + types.NotAssigned + `') AS manager
FROM employee e
LEFT JOIN role r ON e.role_id = r.id
LEFT JOIN department d ON r.department_id = d.id
LEFT JOIN employee m ON e.manager_id = m.id
ORDER BY e.id`
	var out []types.EmployeeReport
	if err := s.selectAll(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list employee reports: %w", err)
	}
	return out, nil
}

const listingSelect = `SELECT
    e.id,
    e.first_name,
    e.last_name,
    r.title AS title,
    d.name AS department,
    r.salary AS salary
FROM employee e
INNER JOIN role r ON e.role_id = r.id
INNER JOIN department d ON r.department_id = d.id
`

// ListEmployeesByManager returns employees whose manager's full name equals
// managerName. Matching is by name, not id, so every manager sharing the
// name contributes their reports.
func (s *Store) ListEmployeesByManager(ctx context.Context, managerName string) ([]types.EmployeeListing, error) {
	q := listingSelect + `INNER JOIN employee m ON e.manager_id = m.id
WHERE m.first_name || ' ' || m.last_name = ?
ORDER BY e.id`
	var out []types.EmployeeListing
	if err := s.selectAll(ctx, &out, q, managerName); err != nil {
		return nil, fmt.Errorf("list employees by manager %q: %w", managerName, err)
	}
	return out, nil
}

// ListEmployeesByDepartment returns employees holding a role in the
// department.
func (s *Store) ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]types.EmployeeListing, error) {
	q := listingSelect + `WHERE d.id = ?
ORDER BY e.id`
	var out []types.EmployeeListing
	if err := s.selectAll(ctx, &out, q, departmentID); err != nil {
		return nil, fmt.Errorf("list employees by department %d: %w", departmentID, err)
	}
	return out, nil
}
