package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/emptrack/internal/render"
	"github.com/mesh-intelligence/emptrack/internal/store"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Entity names accepted by the list command.
const (
	listDepartments = "departments"
	listRoles       = "roles"
	listEmployees   = "employees"
)

func newListCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list <departments|roles|employees>",
		Short: "Print departments, roles, or employees without the menu",
		Long: `List prints one of the menu's views and exits.

Example:
  emptrack list departments
  emptrack list employees --json`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{listDepartments, listRoles, listEmployees},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(s *store.Store, out *render.Renderer) error {
				return runList(cmd, s, out, args[0], jsonOut)
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func runList(cmd *cobra.Command, s *store.Store, out *render.Renderer, what string, jsonOut bool) error {
	ctx := cmd.Context()
	var (
		data any
		show func()
	)
	switch what {
	case listDepartments:
		depts, err := s.ListDepartments(ctx)
		if err != nil {
			return err
		}
		data, show = depts, func() { out.Departments(depts) }
	case listRoles:
		roles, err := s.ListRoles(ctx)
		if err != nil {
			return err
		}
		data, show = roles, func() { out.Roles(roles) }
	case listEmployees:
		reports, err := s.ListEmployeeReports(ctx)
		if err != nil {
			return err
		}
		data, show = reports, func() { out.EmployeeReports(reports) }
	default:
		return fmt.Errorf("unknown list %q", what)
	}

	if jsonOut {
		return render.JSON(cmd.OutOrStdout(), data)
	}
	show()
	return nil
}

// budgetResult is the JSON shape of the budget command.
type budgetResult struct {
	DepartmentID int64   `json:"department_id"`
	Budget       float64 `json:"budget"`
}

func newBudgetCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "budget <department-id>",
		Short: "Print the salary budget of one department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid department id %q", args[0])
			}
			return withStore(cmd, func(s *store.Store, out *render.Renderer) error {
				depts, err := s.ListDepartments(cmd.Context())
				if err != nil {
					return err
				}
				if !hasDepartment(depts, id) {
					return fmt.Errorf("department %d: %w", id, types.ErrNotFound)
				}

				budget, err := s.DepartmentBudget(cmd.Context(), id)
				if err != nil {
					return err
				}
				if jsonOut {
					return render.JSON(cmd.OutOrStdout(), budgetResult{DepartmentID: id, Budget: budget})
				}
				out.Highlight("Department Budget", render.Currency(budget))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

// withStore opens the store for a one-shot command and always closes it.
// Query failures are system errors; a missing department is a user error.
func withStore(cmd *cobra.Command, fn func(*store.Store, *render.Renderer) error) error {
	_, cfg, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := store.Open(cmd.Context(), cfg)
	if err != nil {
		return sysError(fmt.Errorf("open store: %w", err))
	}
	defer s.Close()

	out := render.New(cmd.OutOrStdout(), cfg.Output, cfg.Color)
	if err := fn(s, out); err != nil {
		if types.IsGuard(err) || isNotFound(err) {
			return err
		}
		return sysError(err)
	}
	return nil
}
