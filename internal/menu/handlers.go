package menu

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/emptrack/internal/prompt"
	"github.com/mesh-intelligence/emptrack/internal/render"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Every handler that offers a choice list queries it immediately before the
// prompt that shows it.

func (m *Menu) viewDepartments(ctx context.Context) error {
	m.out.Title("Viewing Departments")
	depts, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	m.out.Departments(depts)
	return nil
}

func (m *Menu) viewRoles(ctx context.Context) error {
	m.out.Title("Viewing Job Roles")
	roles, err := m.store.ListRoles(ctx)
	if err != nil {
		return err
	}
	m.out.Roles(roles)
	return nil
}

func (m *Menu) viewEmployees(ctx context.Context) error {
	m.out.Title("Viewing Employees")
	reports, err := m.store.ListEmployeeReports(ctx)
	if err != nil {
		return err
	}
	m.out.EmployeeReports(reports)
	return nil
}

func (m *Menu) addDepartment(ctx context.Context) error {
	m.out.Title("Adding New Department")
	name, err := m.prompt.Input("Enter the name of the department:", prompt.NonEmpty)
	if err != nil {
		return err
	}
	if _, err := m.store.AddDepartment(ctx, name); err != nil {
		return err
	}
	m.out.Message("Department '%s' added successfully.", name)
	return nil
}

func (m *Menu) addRole(ctx context.Context) error {
	m.out.Title("Adding Job Role")
	title, err := m.prompt.Input("Enter the title of the role:", prompt.NonEmpty)
	if err != nil {
		return err
	}
	rawSalary, err := m.prompt.Input("Enter the salary for the role:", prompt.PositiveNumber)
	if err != nil {
		return err
	}
	salary, err := types.ParseSalary(rawSalary)
	if err != nil {
		return err
	}

	depts, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	if len(depts) == 0 {
		m.out.Message("No departments found. Add a department first.")
		return nil
	}
	idx, err := m.prompt.Select("Select the department for the role:", departmentNames(depts))
	if err != nil {
		return err
	}

	if _, err := m.store.AddRole(ctx, title, salary, depts[idx].ID); err != nil {
		return err
	}
	m.out.Message("Role '%s' added successfully.", title)
	return nil
}

func (m *Menu) addEmployee(ctx context.Context) error {
	m.out.Title("Adding Employee")
	first, err := m.prompt.Input("Enter the employee's first name:", prompt.NonEmpty)
	if err != nil {
		return err
	}
	last, err := m.prompt.Input("Enter the employee's last name:", prompt.NonEmpty)
	if err != nil {
		return err
	}

	roles, err := m.store.ListRoles(ctx)
	if err != nil {
		return err
	}
	roleLabels := append(roleTitles(roles), noneChoice)
	idx, err := m.prompt.Select("Select the employee's role:", roleLabels)
	if err != nil {
		return err
	}
	var roleID *int64
	if idx < len(roles) {
		roleID = &roles[idx].ID
	}

	employees, err := m.store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	managerID, err := m.selectManager("Select the employee's manager:", employees)
	if err != nil {
		return err
	}

	if _, err := m.store.AddEmployee(ctx, first, last, roleID, managerID); err != nil {
		return err
	}
	m.out.Message("Employee added successfully.")
	return nil
}

func (m *Menu) updateEmployeeRole(ctx context.Context) error {
	m.out.Title("Updating Employee Role")
	employees, err := m.store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	ei, err := m.prompt.Select("Select the employee to update:", employeeNames(employees))
	if err != nil {
		return err
	}

	roles, err := m.store.ListRoles(ctx)
	if err != nil {
		return err
	}
	ri, err := m.prompt.Select("Select the new role:", roleTitles(roles))
	if err != nil {
		return err
	}

	emp := employees[ei]
	if err := m.store.UpdateEmployeeRole(ctx, emp.ID, roles[ri].ID); err != nil {
		return err
	}
	m.out.Message("Employee '%s' role updated successfully.", emp.FullName())
	return nil
}

func (m *Menu) updateEmployeeManager(ctx context.Context) error {
	m.out.Title("Updating Employee Manager")
	employees, err := m.store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	ei, err := m.prompt.Select("Select the employee to update:", employeeNames(employees))
	if err != nil {
		return err
	}
	emp := employees[ei]

	candidates, err := m.store.ListManagerCandidates(ctx, emp.ID)
	if err != nil {
		return err
	}
	managerID, err := m.selectManager("Select the new manager:", candidates)
	if err != nil {
		return err
	}

	if err := m.store.UpdateEmployeeManager(ctx, emp.ID, managerID); err != nil {
		return err
	}
	m.out.Message("Employee manager updated successfully.")
	return nil
}

// selectManager offers None followed by candidates. None yields nil.
func (m *Menu) selectManager(message string, candidates []types.Employee) (*int64, error) {
	labels := append([]string{noneChoice}, employeeNames(candidates)...)
	idx, err := m.prompt.Select(message, labels)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, nil
	}
	return &candidates[idx-1].ID, nil
}

func (m *Menu) viewByManager(ctx context.Context) error {
	m.out.Title("Viewing Employees by Manager")
	managers, err := m.store.ListTopLevelManagerNames(ctx)
	if err != nil {
		return err
	}
	idx, err := m.prompt.Select("Select a manager:", managers)
	if err != nil {
		return err
	}

	list, err := m.store.ListEmployeesByManager(ctx, managers[idx])
	if err != nil {
		return err
	}
	m.out.EmployeeListings(list)
	return nil
}

func (m *Menu) viewByDepartment(ctx context.Context) error {
	m.out.Title("Viewing Employees by Department")
	depts, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	idx, err := m.prompt.Select("Select a department:", departmentNames(depts))
	if err != nil {
		return err
	}

	list, err := m.store.ListEmployeesByDepartment(ctx, depts[idx].ID)
	if err != nil {
		return err
	}
	m.out.EmployeeListings(list)
	return nil
}

func (m *Menu) viewBudget(ctx context.Context) error {
	m.out.Title("Viewing Department Budget")
	depts, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	idx, err := m.prompt.Select("Select the department to view the budget:", departmentLabels(depts))
	if err != nil {
		return err
	}

	budget, err := m.store.DepartmentBudget(ctx, depts[idx].ID)
	if err != nil {
		return err
	}
	m.out.Highlight("Department Budget", render.Currency(budget))
	return nil
}

func (m *Menu) deleteDepartment(ctx context.Context) error {
	depts, err := m.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	idx, err := m.prompt.Select("Select the department you want to delete:", departmentLabels(depts))
	if err != nil {
		return err
	}
	if err := m.store.DeleteDepartment(ctx, depts[idx].ID); err != nil {
		return err
	}
	m.out.Message("Department deleted successfully!")
	return nil
}

func (m *Menu) deleteRole(ctx context.Context) error {
	roles, err := m.store.ListRoles(ctx)
	if err != nil {
		return err
	}
	labels := make([]string, len(roles))
	for i, r := range roles {
		labels[i] = fmt.Sprintf("%s (ID: %d)", r.Title, r.ID)
	}
	idx, err := m.prompt.Select("Select the role you want to delete:", labels)
	if err != nil {
		return err
	}
	if err := m.store.DeleteRole(ctx, roles[idx].ID); err != nil {
		return err
	}
	m.out.Message("Role deleted successfully!")
	return nil
}

func (m *Menu) deleteEmployee(ctx context.Context) error {
	employees, err := m.store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	idx, err := m.prompt.Select("Select the employee to delete:", employeeNames(employees))
	if err != nil {
		return err
	}
	ok, err := m.prompt.Confirm("Are you sure you want to delete this employee?", false)
	if err != nil {
		return err
	}
	if !ok {
		m.out.Message("Employee deletion canceled.")
		return nil
	}

	if err := m.store.DeleteEmployee(ctx, employees[idx].ID); err != nil {
		return err
	}
	m.out.Message("Employee deleted successfully.")
	return nil
}

func departmentNames(depts []types.Department) []string {
	out := make([]string, len(depts))
	for i, d := range depts {
		out[i] = d.Name
	}
	return out
}

// departmentLabels disambiguates duplicate names with the id.
func departmentLabels(depts []types.Department) []string {
	out := make([]string, len(depts))
	for i, d := range depts {
		out[i] = fmt.Sprintf("%s (ID: %d)", d.Name, d.ID)
	}
	return out
}

func roleTitles(roles []types.RoleListing) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.Title
	}
	return out
}

func employeeNames(employees []types.Employee) []string {
	out := make([]string, len(employees))
	for i, e := range employees {
		out[i] = e.FullName()
	}
	return out
}
