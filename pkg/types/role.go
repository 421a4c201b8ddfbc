package types

import (
	"math"
	"strconv"
	"strings"
)

// Role is a job title with a salary, belonging to exactly one department.
type Role struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	Salary       float64 `db:"salary" json:"salary"`
	DepartmentID int64   `db:"department_id" json:"department_id"`
}

// RoleListing is a role joined with its department name for display.
// Department is "Not assigned" when the department row is gone.
type RoleListing struct {
	Role
	Department string `db:"department" json:"department"`
}

// ParseSalary parses s as a salary. It returns ErrInvalidSalary unless s is a
// finite number greater than zero.
func ParseSalary(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidSalary
	}
	return v, nil
}
