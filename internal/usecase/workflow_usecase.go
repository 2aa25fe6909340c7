package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"oficina_torque/internal/domain/entities"
	"oficina_torque/internal/usecase/interfaces"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrTechnicianNotFound   = errors.New("technician not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidTechnicianID  = errors.New("invalid technician id")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrCapacityExceeded     = errors.New("technician at capacity")
	ErrRoleMismatch         = errors.New("employee is not a technician")
)

// IWorkflowUseCase owns the appointment status state machine:
//
//	pending -> assigned -> in_progress -> completed
//
// with cancelled reachable from any non-terminal state. Every operation
// validates its precondition before touching the store and either applies the
// full transition or leaves the appointment byte-for-byte unchanged.

type IWorkflowUseCase interface {
	AssignTechnician(ctx context.Context, appointmentID, technicianID string) (entities.Appointment, error)
	StartWork(ctx context.Context, appointmentID string) (entities.Appointment, error)
	CompleteWork(ctx context.Context, appointmentID string) (entities.Appointment, error)
	UnassignTechnician(ctx context.Context, appointmentID string) (entities.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) (entities.Appointment, error)
}

type WorkflowUseCase struct {
	appointments interfaces.IAppointmentRepository
	employees    interfaces.IEmployeeRepository
	capacity     *CapacityPolicy
	now          func() time.Time

	// assignLocks serializes the capacity check and the assignment write per
	// technician. Without it two racing assignments could both observe a free
	// slot and overshoot MAX_CONCURRENT_JOBS.
	assignLocks keyedMutex
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(appointments interfaces.IAppointmentRepository, employees interfaces.IEmployeeRepository, capacity *CapacityPolicy) *WorkflowUseCase {
	return &WorkflowUseCase{
		appointments: appointments,
		employees:    employees,
		capacity:     capacity,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *WorkflowUseCase) AssignTechnician(ctx context.Context, appointmentID, technicianID string) (entities.Appointment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.Appointment{}, ErrInvalidTechnicianID
	}

	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	if appt.Status != entities.AppointmentStatusPending {
		return entities.Appointment{}, ErrInvalidTransition
	}

	tech, err := u.employees.GetByID(ctx, technicianID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if tech.ID == "" {
		return entities.Appointment{}, ErrTechnicianNotFound
	}
	if !tech.IsTechnician() {
		return entities.Appointment{}, ErrRoleMismatch
	}

	// Critical section: workload must be re-read and the assignment written
	// before any other assignment for this technician runs its own check.
	unlock := u.assignLocks.lock(tech.ID)
	defer unlock()

	available, err := u.capacity.IsAvailable(ctx, tech.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !available {
		log.Printf("[workflow][usecase] technician at capacity technician_id=%s max=%d", tech.ID, u.capacity.MaxConcurrentJobs())
		return entities.Appointment{}, ErrCapacityExceeded
	}

	updated, err := u.appointments.Assign(ctx, appt.ID, tech.ID, u.now())
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		// Lost a race: someone moved the appointment out of pending between
		// our read and the conditional write.
		return entities.Appointment{}, ErrInvalidTransition
	}
	log.Printf("[workflow][usecase] technician assigned appointment_id=%s technician_id=%s", updated.ID, tech.ID)
	return updated, nil
}

func (u *WorkflowUseCase) StartWork(ctx context.Context, appointmentID string) (entities.Appointment, error) {
	appt, err := u.getAppointment(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.Status != entities.AppointmentStatusAssigned || appt.AssignedTechnicianID == "" {
		return entities.Appointment{}, ErrInvalidTransition
	}

	updated, err := u.appointments.Start(ctx, appt.ID, u.now())
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrInvalidTransition
	}
	log.Printf("[workflow][usecase] work started appointment_id=%s technician_id=%s", updated.ID, updated.AssignedTechnicianID)
	return updated, nil
}

func (u *WorkflowUseCase) CompleteWork(ctx context.Context, appointmentID string) (entities.Appointment, error) {
	appt, err := u.getAppointment(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.Status != entities.AppointmentStatusInProgress {
		return entities.Appointment{}, ErrInvalidTransition
	}

	updated, err := u.appointments.Complete(ctx, appt.ID, u.now())
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrInvalidTransition
	}
	log.Printf("[workflow][usecase] work completed appointment_id=%s technician_id=%s", updated.ID, updated.AssignedTechnicianID)
	return updated, nil
}

// UnassignTechnician corrects a mis-assignment before work begins. Once the
// job is in_progress the only way out is completion or cancellation.
func (u *WorkflowUseCase) UnassignTechnician(ctx context.Context, appointmentID string) (entities.Appointment, error) {
	appt, err := u.getAppointment(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.Status != entities.AppointmentStatusAssigned {
		return entities.Appointment{}, ErrInvalidTransition
	}

	updated, err := u.appointments.Unassign(ctx, appt.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrInvalidTransition
	}
	log.Printf("[workflow][usecase] technician unassigned appointment_id=%s", updated.ID)
	return updated, nil
}

// Cancel moves any non-terminal appointment to cancelled. Timestamps already
// stamped stay as a historical record.
func (u *WorkflowUseCase) Cancel(ctx context.Context, appointmentID string) (entities.Appointment, error) {
	appt, err := u.getAppointment(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.Status.Terminal() {
		return entities.Appointment{}, ErrInvalidTransition
	}

	updated, err := u.appointments.Cancel(ctx, appt.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrInvalidTransition
	}
	log.Printf("[workflow][usecase] appointment cancelled appointment_id=%s previous_status=%s", updated.ID, appt.Status)
	return updated, nil
}

func (u *WorkflowUseCase) getAppointment(ctx context.Context, appointmentID string) (entities.Appointment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}
	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if appt.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return appt, nil
}

// keyedMutex hands out one mutex per key. Keys are technician ids; the map is
// never pruned, which is fine for a shop-sized roster.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
