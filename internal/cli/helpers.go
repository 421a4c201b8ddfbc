package cli

import (
	"errors"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

func hasDepartment(depts []types.Department, id int64) bool {
	for _, d := range depts {
		if d.ID == id {
			return true
		}
	}
	return false
}
