package usecase

import (
	"context"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"
)

// DefaultMaxConcurrentJobs is the fallback capacity when no value is
// configured. The business default is three concurrent jobs per technician.
const DefaultMaxConcurrentJobs = 3

// CapacityPolicy answers "how busy is this technician" and "can they take
// another job". Workload is never cached or stored: every check re-reads the
// technician's appointments from the store, which is what keeps the
// availability answer honest under concurrent assignment traffic.

type CapacityPolicy struct {
	appointments      interfaces.IAppointmentRepository
	maxConcurrentJobs int
}

func NewCapacityPolicy(appointments interfaces.IAppointmentRepository, maxConcurrentJobs int) *CapacityPolicy {
	if maxConcurrentJobs <= 0 {
		maxConcurrentJobs = DefaultMaxConcurrentJobs
	}
	return &CapacityPolicy{appointments: appointments, maxConcurrentJobs: maxConcurrentJobs}
}

func (p *CapacityPolicy) MaxConcurrentJobs() int {
	return p.maxConcurrentJobs
}

// ComputeWorkload counts the technician's appointments currently occupying a
// capacity slot (assigned or in_progress). Pure read, no side effects.
func (p *CapacityPolicy) ComputeWorkload(ctx context.Context, technicianID string) (int, error) {
	active, err := p.ActiveAppointments(ctx, technicianID)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

// IsAvailable reports whether the technician has a free capacity slot.
func (p *CapacityPolicy) IsAvailable(ctx context.Context, technicianID string) (bool, error) {
	workload, err := p.ComputeWorkload(ctx, technicianID)
	if err != nil {
		return false, err
	}
	return workload < p.maxConcurrentJobs, nil
}

// ActiveAppointments returns the technician's jobs in assigned or in_progress
// state, the same set ComputeWorkload counts.
func (p *CapacityPolicy) ActiveAppointments(ctx context.Context, technicianID string) ([]entities.Appointment, error) {
	all, err := p.appointments.ListByTechnicianID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	active := make([]entities.Appointment, 0, len(all))
	for _, a := range all {
		if a.Status.Active() {
			active = append(active, a)
		}
	}
	return active, nil
}
