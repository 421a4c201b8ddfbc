package types

// NotAssigned is rendered in place of a missing role, department, salary, or
// manager in report output.
const NotAssigned = "Not assigned"

// Employee is a person holding zero or one role and reporting to zero or one
// manager. An employee with a nil ManagerID is a top-level manager.
type Employee struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	RoleID    *int64 `db:"role_id" json:"role_id,omitempty"`
	ManagerID *int64 `db:"manager_id" json:"manager_id,omitempty"`
}

// FullName joins first and last name with a single space, the same form the
// store compares against when filtering by manager name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeReport is the denormalized row shown by "View all employees".
// Text fields carry NotAssigned when the referenced row is missing; Salary
// is nil in that case.
type EmployeeReport struct {
	ID         int64    `db:"id" json:"id"`
	FirstName  string   `db:"first_name" json:"first_name"`
	LastName   string   `db:"last_name" json:"last_name"`
	Title      string   `db:"title" json:"title"`
	Department string   `db:"department" json:"department"`
	Salary     *float64 `db:"salary" json:"salary"`
	Manager    string   `db:"manager" json:"manager"`
}

// EmployeeListing is a row of the by-manager and by-department views. Both
// views use inner joins, so every field is populated.
type EmployeeListing struct {
	ID         int64   `db:"id" json:"id"`
	FirstName  string  `db:"first_name" json:"first_name"`
	LastName   string  `db:"last_name" json:"last_name"`
	Title      string  `db:"title" json:"title"`
	Department string  `db:"department" json:"department"`
	Salary     float64 `db:"salary" json:"salary"`
}
