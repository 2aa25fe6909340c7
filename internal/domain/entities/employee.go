package entities

import "strings"

// Employee is a shop worker.
//
// Storage model (DynamoDB):
//   - PK: id
//
// There is no separate technician entity: a technician is simply an employee
// whose free-text role contains a technician-designating word. Workload and
// availability are never stored on the record; they are computed from the
// employee's active appointments on every read.

type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

var technicianRoleWords = []string{"technician", "mechanic"}

// IsTechnician reports whether this employee can be assigned appointments.
// The match is a case-insensitive substring check, so roles like
// "Senior Technician" or "mecanico/mechanic" qualify.
func (e Employee) IsTechnician() bool {
	role := strings.ToLower(e.Role)
	for _, w := range technicianRoleWords {
		if strings.Contains(role, w) {
			return true
		}
	}
	return false
}
