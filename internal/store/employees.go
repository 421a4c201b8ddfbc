package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

const employeeColumns = "id, first_name, last_name, role_id, manager_id"

// ListEmployees returns the raw employee rows ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]types.Employee, error) {
	var out []types.Employee
	if err := s.selectAll(ctx, &out, "SELECT "+employeeColumns+" FROM employee ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

// GetEmployee returns the employee with the given id, or ErrNotFound.
func (s *Store) GetEmployee(ctx context.Context, id int64) (types.Employee, error) {
	var e types.Employee
	err := s.get(ctx, &e, "SELECT "+employeeColumns+" FROM employee WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Employee{}, fmt.Errorf("get employee %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return types.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e, nil
}

// ListManagerCandidates returns every employee except excludeID, the pool of
// choices offered when changing excludeID's manager.
func (s *Store) ListManagerCandidates(ctx context.Context, excludeID int64) ([]types.Employee, error) {
	var out []types.Employee
	q := "SELECT " + employeeColumns + " FROM employee WHERE id <> ? ORDER BY id"
	if err := s.selectAll(ctx, &out, q, excludeID); err != nil {
		return nil, fmt.Errorf("list manager candidates: %w", err)
	}
	return out, nil
}

// ListTopLevelManagerNames returns the distinct full names of employees with
// no manager. Two people sharing a name collapse into one entry.
func (s *Store) ListTopLevelManagerNames(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT first_name || ' ' || last_name AS manager
FROM employee
WHERE manager_id IS NULL
ORDER BY manager`
	var out []string
	if err := s.selectAll(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return out, nil
}

// AddEmployee inserts an employee and returns the generated id. roleID and
// managerID may be nil; when set they must reference existing rows.
func (s *Store) AddEmployee(ctx context.Context, firstName, lastName string, roleID, managerID *int64) (int64, error) {
	firstName, err := types.ValidateName(firstName)
	if err != nil {
		return 0, err
	}
	lastName, err = types.ValidateName(lastName)
	if err != nil {
		return 0, err
	}
	if err := s.requireRef(ctx, tableRole, roleID); err != nil {
		return 0, fmt.Errorf("add employee: %w", err)
	}
	if err := s.requireRef(ctx, tableEmployee, managerID); err != nil {
		return 0, fmt.Errorf("add employee: %w", err)
	}

	var id int64
	const q = "INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?) RETURNING id"
	if err := s.get(ctx, &id, q, firstName, lastName, roleID, managerID); err != nil {
		return 0, fmt.Errorf("add employee %s %s: %w", firstName, lastName, err)
	}
	return id, nil
}

// UpdateEmployeeRole sets the role of one employee.
func (s *Store) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	if err := s.requireRef(ctx, tableRole, &roleID); err != nil {
		return fmt.Errorf("update employee %d role: %w", employeeID, err)
	}
	affected, err := s.exec(ctx, "UPDATE employee SET role_id = ? WHERE id = ?", roleID, employeeID)
	if err != nil {
		return fmt.Errorf("update employee %d role: %w", employeeID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update employee %d role: %w", employeeID, types.ErrNotFound)
	}
	return nil
}

// UpdateEmployeeManager sets or clears (managerID nil) the manager of one
// employee. The new manager must exist, and the assignment is rejected with
// ErrManagerCycle when the employee would end up managing itself, directly
// or through a chain of managers.
func (s *Store) UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID *int64) error {
	if managerID != nil {
		if err := s.requireRef(ctx, tableEmployee, managerID); err != nil {
			return fmt.Errorf("update employee %d manager: %w", employeeID, err)
		}
		if err := s.checkCycle(ctx, employeeID, *managerID); err != nil {
			return fmt.Errorf("update employee %d manager: %w", employeeID, err)
		}
	}

	affected, err := s.exec(ctx, "UPDATE employee SET manager_id = ? WHERE id = ?", managerID, employeeID)
	if err != nil {
		return fmt.Errorf("update employee %d manager: %w", employeeID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update employee %d manager: %w", employeeID, types.ErrNotFound)
	}
	return nil
}

// checkCycle walks the manager chain upward from managerID and fails if it
// reaches employeeID. A chain that already loops without touching
// employeeID ends the walk.
func (s *Store) checkCycle(ctx context.Context, employeeID, managerID int64) error {
	seen := map[int64]bool{}
	cur := &managerID
	for cur != nil {
		if *cur == employeeID {
			return types.ErrManagerCycle
		}
		if seen[*cur] {
			return nil
		}
		seen[*cur] = true

		var next *int64
		err := s.get(ctx, &next, "SELECT manager_id FROM employee WHERE id = ?", *cur)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// DeleteEmployee removes an employee. Anyone reporting to the employee is
// left without a manager. Both statements run in one transaction.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("UPDATE employee SET manager_id = NULL WHERE manager_id = ?"), id); err != nil {
		return fmt.Errorf("detach reports of employee %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM employee WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete employee %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}

// requireRef checks that id, when set, names an existing row of table.
func (s *Store) requireRef(ctx context.Context, table string, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := s.exists(ctx, table, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", table, *id, types.ErrNotFound)
	}
	return nil
}
