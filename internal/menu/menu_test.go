package menu

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/emptrack/internal/prompt"
	"github.com/mesh-intelligence/emptrack/internal/render"
	"github.com/mesh-intelligence/emptrack/internal/store"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

const testSeed = `
INSERT INTO department (name) VALUES ('Engineering'), ('Legal');
INSERT INTO role (title, salary, department_id) VALUES
    ('Engineer', 90000, 1),
    ('Lead', 110000, 1);
INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES
    ('Grace', 'Hopper', 2, NULL),
    ('Alan', 'Turing', 1, 1);
`

// scripted answers prompts from a queue. Select answers are labels, Input
// answers are strings, Confirm answers are bools. An empty queue aborts.
type scripted struct {
	answers []any
	offered map[string][]string
	// before runs a hook keyed by prompt message before it is answered.
	before map[string]func()
}

func (s *scripted) hook(message string) {
	if fn, ok := s.before[message]; ok {
		fn()
	}
}

func (s *scripted) next() (any, error) {
	if len(s.answers) == 0 {
		return nil, prompt.ErrAborted
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scripted) Select(message string, labels []string) (int, error) {
	s.hook(message)
	if s.offered == nil {
		s.offered = map[string][]string{}
	}
	s.offered[message] = labels
	if len(labels) == 0 {
		return 0, prompt.ErrNoChoices
	}
	a, err := s.next()
	if err != nil {
		return 0, err
	}
	for i, l := range labels {
		if l == a {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q not offered for %q: %v", a, message, labels)
}

func (s *scripted) Input(message string, validate func(string) error) (string, error) {
	s.hook(message)
	a, err := s.next()
	if err != nil {
		return "", err
	}
	str := a.(string)
	if validate != nil {
		if err := validate(str); err != nil {
			return "", err
		}
	}
	return str, nil
}

func (s *scripted) Confirm(message string, def bool) (bool, error) {
	a, err := s.next()
	if err != nil {
		return false, err
	}
	return a.(bool), nil
}

type harness struct {
	store  *store.Store
	prompt *scripted
	out    *bytes.Buffer
	logs   *bytes.Buffer
	menu   *Menu
}

func newHarness(t *testing.T, answers ...any) *harness {
	t.Helper()
	dataDir := t.TempDir()
	seedPath := filepath.Join(dataDir, "seeds.sql")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o644))

	s, err := store.Open(context.Background(), types.Config{
		Driver:   types.DriverSQLite,
		DataDir:  dataDir,
		DSN:      filepath.Join(dataDir, "employees.db"),
		SeedFile: seedPath,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	h := &harness{
		store:  s,
		prompt: &scripted{answers: answers},
		out:    &bytes.Buffer{},
		logs:   &bytes.Buffer{},
	}
	h.menu = New(s, h.prompt, render.New(h.out, types.OutputPlain, false), log.New(h.logs, "", 0))
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	require.NoError(t, h.menu.Run(context.Background()))
	assert.Empty(t, h.prompt.answers, "unused answers")
}

func TestRun_ExitEndsLoop(t *testing.T) {
	h := newHarness(t, Exit, ViewDepartments)
	require.NoError(t, h.menu.Run(context.Background()))

	assert.Equal(t, []any{ViewDepartments}, h.prompt.answers, "nothing read after Exit")
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestRun_EndOfInputExits(t *testing.T) {
	h := newHarness(t)
	h.run(t)
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestRun_OffersMainChoicesInOrder(t *testing.T) {
	h := newHarness(t, Exit)
	h.run(t)
	assert.Equal(t, MainChoices, h.prompt.offered[mainMessage])
	assert.Len(t, MainChoices, 13)
}

func TestViews(t *testing.T) {
	h := newHarness(t, ViewDepartments, ViewRoles, ViewEmployees, Exit)
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "== Viewing Departments ==")
	assert.Contains(t, out, "1 | Engineering\n")
	assert.Contains(t, out, "2 | Lead | 110,000.00 | 1 | Engineering\n")
	assert.Contains(t, out, "2 | Alan | Turing | Engineer | Engineering | 90,000.00 | Grace Hopper\n")
	assert.Contains(t, out, "1 | Grace | Hopper | Lead | Engineering | 110,000.00 | Not assigned\n")
}

func TestAddDepartmentThenView(t *testing.T) {
	h := newHarness(t, AddDepartment, "Sales", ViewDepartments, Exit)
	h.run(t)

	assert.Contains(t, h.out.String(), "Department 'Sales' added successfully.")
	assert.Contains(t, h.out.String(), "3 | Sales\n")
}

func TestAddRole(t *testing.T) {
	h := newHarness(t, AddRole, "Paralegal", "65000", "Legal", Exit)
	h.run(t)

	roles, err := h.store.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "Paralegal", roles[2].Title)
	assert.Equal(t, 65000.0, roles[2].Salary)
	assert.Equal(t, int64(2), roles[2].DepartmentID)
}

func TestAddRole_DepartmentsFetchedAfterSalary(t *testing.T) {
	h := newHarness(t, AddRole, "Auditor", "70000", "Compliance", Exit)
	h.prompt.before = map[string]func(){
		"Enter the salary for the role:": func() {
			_, err := h.store.AddDepartment(context.Background(), "Compliance")
			require.NoError(t, err)
		},
	}
	h.run(t)

	assert.Equal(t, []string{"Engineering", "Legal", "Compliance"}, h.prompt.offered["Select the department for the role:"])
	assert.Contains(t, h.out.String(), "Role 'Auditor' added successfully.")
}

func TestAddEmployee(t *testing.T) {
	h := newHarness(t, AddEmployee, "Ken", "Thompson", "Engineer", "Grace Hopper", Exit)
	h.run(t)

	assert.Contains(t, h.out.String(), "Employee added successfully.")
	e, err := h.store.GetEmployee(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *e.RoleID)
	assert.Equal(t, int64(1), *e.ManagerID)
}

func TestAddEmployee_NoRoleNoManager(t *testing.T) {
	h := newHarness(t, AddEmployee, "Ken", "Thompson", "None", "None", Exit)
	h.run(t)

	e, err := h.store.GetEmployee(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, e.RoleID)
	assert.Nil(t, e.ManagerID)
}

func TestUpdateEmployeeRole(t *testing.T) {
	h := newHarness(t, UpdateEmployeeRole, "Alan Turing", "Lead", Exit)
	h.run(t)

	e, err := h.store.GetEmployee(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *e.RoleID)
	assert.Contains(t, h.out.String(), "Employee 'Alan Turing' role updated successfully.")
}

func TestUpdateEmployeeRole_RolesFetchedAfterEmployee(t *testing.T) {
	h := newHarness(t, UpdateEmployeeRole, "Alan Turing", "Architect", Exit)
	h.prompt.before = map[string]func(){
		"Select the employee to update:": func() {
			_, err := h.store.AddRole(context.Background(), "Architect", 130000, 1)
			require.NoError(t, err)
		},
	}
	h.run(t)

	assert.Equal(t, []string{"Engineer", "Lead", "Architect"}, h.prompt.offered["Select the new role:"])
	e, err := h.store.GetEmployee(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), *e.RoleID)
}

func TestUpdateEmployeeManager_CandidatesExcludeEmployee(t *testing.T) {
	h := newHarness(t, UpdateEmployeeMgr, "Alan Turing", "None", Exit)
	h.run(t)

	assert.Equal(t, []string{"None", "Grace Hopper"}, h.prompt.offered["Select the new manager:"])
	e, err := h.store.GetEmployee(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, e.ManagerID)
}

func TestUpdateEmployeeManager_CycleIsUserMessage(t *testing.T) {
	h := newHarness(t, UpdateEmployeeMgr, "Grace Hopper", "Alan Turing", Exit)
	h.run(t)

	assert.Contains(t, h.out.String(), "Cannot assign that manager.")
	assert.Empty(t, h.logs.String())
}

func TestViewByManagerAndDepartment(t *testing.T) {
	h := newHarness(t, ViewByManager, "Grace Hopper", ViewByDepartment, "Legal", Exit)
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "2 | Alan | Turing | Engineer | Engineering | 90,000.00\n")
	assert.Contains(t, out, "No records found.")
	assert.Equal(t, []string{"Grace Hopper"}, h.prompt.offered["Select a manager:"])
}

func TestViewBudget(t *testing.T) {
	h := newHarness(t, ViewBudget, "Engineering (ID: 1)", Exit)
	h.run(t)
	assert.Contains(t, h.out.String(), "Department Budget: $200,000.00")
}

func TestDeleteMenu(t *testing.T) {
	tests := []struct {
		name    string
		answers []any
		wantOut string
		check   func(t *testing.T, s *store.Store)
	}{
		{
			name:    "go back has no side effects",
			answers: []any{Delete, GoBack, Exit},
			check: func(t *testing.T, s *store.Store) {
				depts, err := s.ListDepartments(context.Background())
				require.NoError(t, err)
				assert.Len(t, depts, 2)
			},
		},
		{
			name:    "delete empty department",
			answers: []any{Delete, DeleteDepartment, "Legal (ID: 2)", Exit},
			wantOut: "Department deleted successfully!",
			check: func(t *testing.T, s *store.Store) {
				depts, err := s.ListDepartments(context.Background())
				require.NoError(t, err)
				assert.Len(t, depts, 1)
			},
		},
		{
			name:    "department with roles is rejected",
			answers: []any{Delete, DeleteDepartment, "Engineering (ID: 1)", Exit},
			wantOut: "Cannot delete the department.",
		},
		{
			name:    "role held by employee is rejected",
			answers: []any{Delete, DeleteRole, "Engineer (ID: 1)", Exit},
			wantOut: "Cannot delete the role. There are employees assigned to this role.",
			check: func(t *testing.T, s *store.Store) {
				roles, err := s.ListRoles(context.Background())
				require.NoError(t, err)
				assert.Len(t, roles, 2)
			},
		},
		{
			name:    "employee deletion declined",
			answers: []any{Delete, DeleteEmployee, "Alan Turing", false, Exit},
			wantOut: "Employee deletion canceled.",
			check: func(t *testing.T, s *store.Store) {
				_, err := s.GetEmployee(context.Background(), 2)
				assert.NoError(t, err)
			},
		},
		{
			name:    "employee deletion confirmed",
			answers: []any{Delete, DeleteEmployee, "Alan Turing", true, Exit},
			wantOut: "Employee deleted successfully.",
			check: func(t *testing.T, s *store.Store) {
				_, err := s.GetEmployee(context.Background(), 2)
				assert.ErrorIs(t, err, types.ErrNotFound)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.answers...)
			h.run(t)
			if tt.wantOut != "" {
				assert.Contains(t, h.out.String(), tt.wantOut)
			}
			assert.Empty(t, h.logs.String())
			if tt.check != nil {
				tt.check(t, h.store)
			}
		})
	}
}

func TestHandlerFailureReturnsToMenu(t *testing.T) {
	h := newHarness(t, ViewDepartments, ViewRoles, Exit)
	require.NoError(t, h.store.Close())

	h.run(t)

	logs := h.logs.String()
	assert.Contains(t, logs, "View all departments: list departments: store is closed")
	assert.Contains(t, logs, "View all roles: list roles: store is closed")
	assert.Contains(t, h.out.String(), "Goodbye!")
}

func TestAbortInsideHandlerCancels(t *testing.T) {
	// Input ends while the department name prompt is waiting.
	h := newHarness(t, AddDepartment)
	h.run(t)

	out := h.out.String()
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, out, "Goodbye!")
}

func TestValidationFailureIsLogged(t *testing.T) {
	h := newHarness(t, AddDepartment, "  ", Exit)
	h.run(t)
	assert.Contains(t, h.logs.String(), "Add a department: name must not be empty")
}
