package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_torque/internal/domain/entities"
	mock_interfaces "oficina_torque/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTechnicianUseCase_Workload(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewTechnicianUseCase(nil, nil, NewCapacityPolicy(nil, 3))
		_, err := uc.Workload(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("technician not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewTechnicianUseCase(employees, nil, NewCapacityPolicy(nil, 3))

		employees.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Employee{}, nil)

		_, err := uc.Workload(context.Background(), "tech-1")
		if !errors.Is(err, ErrTechnicianNotFound) {
			t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
		}
	})

	t.Run("non-technician role rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewTechnicianUseCase(employees, nil, NewCapacityPolicy(nil, 3))

		employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{
			ID:   "emp-1",
			Role: "receptionist",
		}, nil)

		_, err := uc.Workload(context.Background(), "emp-1")
		if !errors.Is(err, ErrRoleMismatch) {
			t.Fatalf("expected ErrRoleMismatch, got %v", err)
		}
	})

	t.Run("workload derived from appointments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		uc := NewTechnicianUseCase(employees, appointments, NewCapacityPolicy(appointments, 3))

		today := time.Now().UTC()
		jobs := []entities.Appointment{
			{ID: "a", Status: entities.AppointmentStatusAssigned, AssignedTechnicianID: "tech-1", ScheduledDate: today},
			{ID: "b", Status: entities.AppointmentStatusInProgress, AssignedTechnicianID: "tech-1", ScheduledDate: today.AddDate(0, 0, 1)},
			{ID: "c", Status: entities.AppointmentStatusCompleted, AssignedTechnicianID: "tech-1", ScheduledDate: today},
		}

		employees.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Employee{
			ID:   "tech-1",
			Name: "Ana",
			Role: "Master Technician",
		}, nil)
		// Once for the active set, once for the today count.
		appointments.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(jobs, nil).Times(2)

		got, err := uc.Workload(context.Background(), "tech-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkloadCount != 2 {
			t.Fatalf("expected workload 2, got %d", got.WorkloadCount)
		}
		if !got.IsAvailable {
			t.Fatalf("expected available at 2/3 jobs")
		}
		// Completed job today still counts toward the day's schedule.
		if got.AppointmentsToday != 2 {
			t.Fatalf("expected 2 appointments today, got %d", got.AppointmentsToday)
		}
		if got.MaxCapacity != 3 {
			t.Fatalf("expected max capacity 3, got %d", got.MaxCapacity)
		}
		if len(got.CurrentJobs) != 2 {
			t.Fatalf("expected 2 current jobs, got %d", len(got.CurrentJobs))
		}
	})
}

func TestTechnicianUseCase_WorkloadReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewTechnicianUseCase(employees, appointments, NewCapacityPolicy(appointments, 3))

	employees.EXPECT().List(gomock.Any()).Return([]entities.Employee{
		{ID: "tech-1", Role: "technician"},
		{ID: "emp-2", Role: "receptionist"}, // filtered out
		{ID: "tech-3", Role: "Mechanic"},
	}, nil)
	appointments.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(activeAppointments("tech-1", 3), nil).Times(2)
	appointments.EXPECT().ListByTechnicianID(gomock.Any(), "tech-3").Return(nil, nil).Times(2)

	summary, report, err := uc.WorkloadReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalTechnicians != 2 || summary.AvailableTechnicians != 1 || summary.BusyTechnicians != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 technicians in report, got %d", len(report))
	}
}

func TestTechnicianUseCase_AvailableTechnicians(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
	uc := NewTechnicianUseCase(employees, appointments, NewCapacityPolicy(appointments, 3))

	employees.EXPECT().List(gomock.Any()).Return([]entities.Employee{
		{ID: "tech-1", Role: "technician"},
		{ID: "tech-2", Role: "mechanic"},
	}, nil)
	appointments.EXPECT().ListByTechnicianID(gomock.Any(), "tech-1").Return(activeAppointments("tech-1", 3), nil).Times(2)
	appointments.EXPECT().ListByTechnicianID(gomock.Any(), "tech-2").Return(activeAppointments("tech-2", 1), nil).Times(2)

	available, err := uc.AvailableTechnicians(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].Technician.ID != "tech-2" {
		t.Fatalf("expected only tech-2 available, got %+v", available)
	}
}
