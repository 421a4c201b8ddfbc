// Package menu implements the interactive menu loop: a fixed list of actions
// dispatched one at a time, with a nested delete menu. A failing action is
// logged and the loop returns to the top-level menu.
package menu

import (
	"context"
	"errors"
	"log"

	"github.com/mesh-intelligence/emptrack/internal/prompt"
	"github.com/mesh-intelligence/emptrack/internal/render"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Top-level menu choices, in display order.
const (
	ViewDepartments    = "View all departments"
	ViewRoles          = "View all roles"
	ViewEmployees      = "View all employees"
	AddDepartment      = "Add a department"
	AddRole            = "Add a role"
	AddEmployee        = "Add an employee"
	UpdateEmployeeRole = "Update an employee role"
	UpdateEmployeeMgr  = "Update an employee manager"
	ViewByManager      = "View employees by manager"
	ViewByDepartment   = "View employees by department"
	ViewBudget         = "View department budget"
	Delete             = "Delete"
	Exit               = "Exit"
)

const (
	mainMessage      = "Select an option:"
	deleteMessage    = "Select an option to delete:"
	noneChoice       = "None"
	goodbye          = "Goodbye!"
	cancelledMessage = "Cancelled."
	noChoicesMessage = "Nothing to choose from yet."
)

// Delete sub-menu choices, in display order.
const (
	DeleteDepartment = "Delete a department"
	DeleteRole       = "Delete a role"
	DeleteEmployee   = "Delete an employee"
	GoBack           = "Go back"
)

// MainChoices is the top-level menu.
var MainChoices = []string{
	ViewDepartments,
	ViewRoles,
	ViewEmployees,
	AddDepartment,
	AddRole,
	AddEmployee,
	UpdateEmployeeRole,
	UpdateEmployeeMgr,
	ViewByManager,
	ViewByDepartment,
	ViewBudget,
	Delete,
	Exit,
}

// DeleteChoices is the delete sub-menu.
var DeleteChoices = []string{
	DeleteDepartment,
	DeleteRole,
	DeleteEmployee,
	GoBack,
}

// Store is the query layer the menu drives.
type Store interface {
	ListDepartments(ctx context.Context) ([]types.Department, error)
	ListRoles(ctx context.Context) ([]types.RoleListing, error)
	ListEmployees(ctx context.Context) ([]types.Employee, error)
	ListEmployeeReports(ctx context.Context) ([]types.EmployeeReport, error)
	ListManagerCandidates(ctx context.Context, excludeID int64) ([]types.Employee, error)
	ListTopLevelManagerNames(ctx context.Context) ([]string, error)
	ListEmployeesByManager(ctx context.Context, managerName string) ([]types.EmployeeListing, error)
	ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]types.EmployeeListing, error)
	AddDepartment(ctx context.Context, name string) (int64, error)
	AddRole(ctx context.Context, title string, salary float64, departmentID int64) (int64, error)
	AddEmployee(ctx context.Context, firstName, lastName string, roleID, managerID *int64) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
	UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID *int64) error
	DeleteDepartment(ctx context.Context, id int64) error
	DeleteRole(ctx context.Context, id int64) error
	DeleteEmployee(ctx context.Context, id int64) error
	DepartmentBudget(ctx context.Context, departmentID int64) (float64, error)
}

type handler func(ctx context.Context) error

// Menu is the interactive state machine. It borrows the store; closing it is
// the caller's job once Run returns.
type Menu struct {
	store    Store
	prompt   prompt.Prompter
	out      *render.Renderer
	log      *log.Logger
	handlers map[string]handler
}

// New wires a Menu. logger receives handler failures.
func New(store Store, p prompt.Prompter, out *render.Renderer, logger *log.Logger) *Menu {
	m := &Menu{store: store, prompt: p, out: out, log: logger}
	m.handlers = map[string]handler{
		ViewDepartments:    m.viewDepartments,
		ViewRoles:          m.viewRoles,
		ViewEmployees:      m.viewEmployees,
		AddDepartment:      m.addDepartment,
		AddRole:            m.addRole,
		AddEmployee:        m.addEmployee,
		UpdateEmployeeRole: m.updateEmployeeRole,
		UpdateEmployeeMgr:  m.updateEmployeeManager,
		ViewByManager:      m.viewByManager,
		ViewByDepartment:   m.viewByDepartment,
		ViewBudget:         m.viewBudget,
		Delete:             m.deleteMenu,
		DeleteDepartment:   m.deleteDepartment,
		DeleteRole:         m.deleteRole,
		DeleteEmployee:     m.deleteEmployee,
	}
	return m
}

// Run shows the top-level menu until the user picks Exit or input ends.
// Action failures never end the loop; only a broken top-level prompt does.
func (m *Menu) Run(ctx context.Context) error {
	for {
		idx, err := m.prompt.Select(mainMessage, MainChoices)
		if errors.Is(err, prompt.ErrAborted) {
			m.out.Message(goodbye)
			return nil
		}
		if err != nil {
			return err
		}

		choice := MainChoices[idx]
		if choice == Exit {
			m.out.Message(goodbye)
			return nil
		}
		m.dispatch(ctx, choice)
	}
}

// dispatch runs one action and absorbs its error.
func (m *Menu) dispatch(ctx context.Context, choice string) {
	h, ok := m.handlers[choice]
	if !ok {
		m.log.Printf("no handler for %q", choice)
		return
	}
	if err := h(ctx); err != nil {
		m.report(choice, err)
	}
}

// report turns a handler error into output. Guard rejections and cancelled
// prompts are user messages; anything else is logged.
func (m *Menu) report(choice string, err error) {
	switch {
	case errors.Is(err, prompt.ErrAborted):
		m.out.Message(cancelledMessage)
	case errors.Is(err, prompt.ErrNoChoices):
		m.out.Message(noChoicesMessage)
	case errors.Is(err, types.ErrRoleInUse):
		m.out.Message("Cannot delete the role. There are employees assigned to this role.")
	case errors.Is(err, types.ErrDepartmentInUse):
		m.out.Message("Cannot delete the department. There are roles assigned to this department.")
	case errors.Is(err, types.ErrManagerCycle):
		m.out.Message("Cannot assign that manager. The employee would end up reporting to themselves.")
	default:
		m.log.Printf("%s: %v", choice, err)
	}
}

// deleteMenu is the delete sub-state. Go back returns to the top level
// without side effects.
func (m *Menu) deleteMenu(ctx context.Context) error {
	idx, err := m.prompt.Select(deleteMessage, DeleteChoices)
	if err != nil {
		return err
	}
	choice := DeleteChoices[idx]
	if choice == GoBack {
		return nil
	}
	m.dispatch(ctx, choice)
	return nil
}
