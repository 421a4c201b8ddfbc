package render

import (
	"strconv"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Departments prints the department list.
func (r *Renderer) Departments(depts []types.Department) {
	rows := make([][]string, len(depts))
	for i, d := range depts {
		rows[i] = []string{id(d.ID), d.Name}
	}
	r.Table([]string{"ID", "NAME"}, rows)
}

// Roles prints the role list.
func (r *Renderer) Roles(roles []types.RoleListing) {
	rows := make([][]string, len(roles))
	for i, ro := range roles {
		rows[i] = []string{id(ro.ID), ro.Title, Salary(ro.Salary), id(ro.DepartmentID), ro.Department}
	}
	r.Table([]string{"ID", "TITLE", "SALARY", "DEPT ID", "DEPARTMENT"}, rows)
}

// EmployeeReports prints the "View all employees" report.
func (r *Renderer) EmployeeReports(reports []types.EmployeeReport) {
	rows := make([][]string, len(reports))
	for i, e := range reports {
		salary := types.NotAssigned
		if e.Salary != nil {
			salary = Salary(*e.Salary)
		}
		rows[i] = []string{id(e.ID), e.FirstName, e.LastName, e.Title, e.Department, salary, e.Manager}
	}
	r.Table([]string{"ID", "FIRST NAME", "LAST NAME", "TITLE", "DEPARTMENT", "SALARY", "MANAGER"}, rows)
}

// EmployeeListings prints the by-manager and by-department views.
func (r *Renderer) EmployeeListings(list []types.EmployeeListing) {
	rows := make([][]string, len(list))
	for i, e := range list {
		rows[i] = []string{id(e.ID), e.FirstName, e.LastName, e.Title, e.Department, Salary(e.Salary)}
	}
	r.Table([]string{"ID", "FIRST NAME", "LAST NAME", "TITLE", "DEPARTMENT", "SALARY"}, rows)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
