package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"
)

// TechnicianWorkload is the per-technician view used by the dispatch board:
// the employee, their computed workload, and the jobs behind that number.
// All counts are derived on read; nothing here is stored.
type TechnicianWorkload struct {
	Technician        entities.Employee      `json:"technician"`
	WorkloadCount     int                    `json:"workload_count"`
	IsAvailable       bool                   `json:"is_available"`
	AppointmentsToday int                    `json:"appointments_today"`
	MaxCapacity       int                    `json:"max_capacity"`
	CurrentJobs       []entities.Appointment `json:"current_jobs"`
}

// WorkloadSummary aggregates the whole roster.
type WorkloadSummary struct {
	TotalTechnicians     int `json:"total_technicians"`
	AvailableTechnicians int `json:"available_technicians"`
	BusyTechnicians      int `json:"busy_technicians"`
}

// ITechnicianUseCase exposes technician-roster reads: who exists, how busy
// they are, and who can take another job.

type ITechnicianUseCase interface {
	Workload(ctx context.Context, technicianID string) (TechnicianWorkload, error)
	WorkloadReport(ctx context.Context) (WorkloadSummary, []TechnicianWorkload, error)
	AvailableTechnicians(ctx context.Context) ([]TechnicianWorkload, error)
}

type TechnicianUseCase struct {
	employees    interfaces.IEmployeeRepository
	appointments interfaces.IAppointmentRepository
	capacity     *CapacityPolicy
	now          func() time.Time
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(employees interfaces.IEmployeeRepository, appointments interfaces.IAppointmentRepository, capacity *CapacityPolicy) *TechnicianUseCase {
	return &TechnicianUseCase{
		employees:    employees,
		appointments: appointments,
		capacity:     capacity,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Workload computes one technician's current workload and availability.
func (u *TechnicianUseCase) Workload(ctx context.Context, technicianID string) (TechnicianWorkload, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return TechnicianWorkload{}, ErrInvalidTechnicianID
	}

	tech, err := u.employees.GetByID(ctx, technicianID)
	if err != nil {
		return TechnicianWorkload{}, err
	}
	if tech.ID == "" {
		return TechnicianWorkload{}, ErrTechnicianNotFound
	}
	if !tech.IsTechnician() {
		return TechnicianWorkload{}, ErrRoleMismatch
	}
	return u.workloadFor(ctx, tech)
}

// WorkloadReport builds the dispatch-board view for every technician on the
// roster plus a fleet summary.
func (u *TechnicianUseCase) WorkloadReport(ctx context.Context) (WorkloadSummary, []TechnicianWorkload, error) {
	techs, err := u.listTechnicians(ctx)
	if err != nil {
		return WorkloadSummary{}, nil, err
	}

	report := make([]TechnicianWorkload, 0, len(techs))
	summary := WorkloadSummary{TotalTechnicians: len(techs)}
	for _, tech := range techs {
		w, err := u.workloadFor(ctx, tech)
		if err != nil {
			return WorkloadSummary{}, nil, err
		}
		if w.IsAvailable {
			summary.AvailableTechnicians++
		} else {
			summary.BusyTechnicians++
		}
		report = append(report, w)
	}
	return summary, report, nil
}

// AvailableTechnicians returns only the technicians with a free capacity slot.
func (u *TechnicianUseCase) AvailableTechnicians(ctx context.Context) ([]TechnicianWorkload, error) {
	techs, err := u.listTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]TechnicianWorkload, 0, len(techs))
	for _, tech := range techs {
		w, err := u.workloadFor(ctx, tech)
		if err != nil {
			return nil, err
		}
		if w.IsAvailable {
			available = append(available, w)
		}
	}
	return available, nil
}

func (u *TechnicianUseCase) listTechnicians(ctx context.Context) ([]entities.Employee, error) {
	all, err := u.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	techs := make([]entities.Employee, 0, len(all))
	for _, e := range all {
		if e.IsTechnician() {
			techs = append(techs, e)
		}
	}
	return techs, nil
}

func (u *TechnicianUseCase) workloadFor(ctx context.Context, tech entities.Employee) (TechnicianWorkload, error) {
	active, err := u.capacity.ActiveAppointments(ctx, tech.ID)
	if err != nil {
		return TechnicianWorkload{}, err
	}

	today, err := u.appointmentsToday(ctx, tech.ID)
	if err != nil {
		return TechnicianWorkload{}, err
	}

	return TechnicianWorkload{
		Technician:        tech,
		WorkloadCount:     len(active),
		IsAvailable:       len(active) < u.capacity.MaxConcurrentJobs(),
		AppointmentsToday: today,
		MaxCapacity:       u.capacity.MaxConcurrentJobs(),
		CurrentJobs:       active,
	}, nil
}

// appointmentsToday counts the technician's appointments scheduled for the
// current date regardless of status.
func (u *TechnicianUseCase) appointmentsToday(ctx context.Context, technicianID string) (int, error) {
	all, err := u.appointments.ListByTechnicianID(ctx, technicianID)
	if err != nil {
		return 0, err
	}

	y, m, d := u.now().Date()
	count := 0
	for _, a := range all {
		ay, am, ad := a.ScheduledDate.UTC().Date()
		if ay == y && am == m && ad == d {
			count++
		}
	}
	return count, nil
}
