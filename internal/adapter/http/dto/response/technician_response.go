package response

import (
	"oficina_torque/internal/usecase"
)

type TechnicianWorkloadResponse struct {
	TechnicianID      string                `json:"technician_id"`
	Name              string                `json:"name"`
	Role              string                `json:"role"`
	WorkloadCount     int                   `json:"workload_count"`
	MaxCapacity       int                   `json:"max_capacity"`
	IsAvailable       bool                  `json:"is_available"`
	AppointmentsToday int                   `json:"appointments_today"`
	CurrentJobs       []AppointmentResponse `json:"current_jobs"`
}

type WorkloadReportResponse struct {
	Summary     WorkloadSummaryResponse      `json:"summary"`
	Technicians []TechnicianWorkloadResponse `json:"technicians"`
}

type WorkloadSummaryResponse struct {
	TotalTechnicians     int `json:"total_technicians"`
	AvailableTechnicians int `json:"available_technicians"`
	BusyTechnicians      int `json:"busy_technicians"`
}

func FromTechnicianWorkload(w usecase.TechnicianWorkload) TechnicianWorkloadResponse {
	return TechnicianWorkloadResponse{
		TechnicianID:      w.Technician.ID,
		Name:              w.Technician.Name,
		Role:              w.Technician.Role,
		WorkloadCount:     w.WorkloadCount,
		MaxCapacity:       w.MaxCapacity,
		IsAvailable:       w.IsAvailable,
		AppointmentsToday: w.AppointmentsToday,
		CurrentJobs:       FromAppointments(w.CurrentJobs),
	}
}

func FromWorkloadReport(summary usecase.WorkloadSummary, workloads []usecase.TechnicianWorkload) WorkloadReportResponse {
	technicians := make([]TechnicianWorkloadResponse, 0, len(workloads))
	for _, w := range workloads {
		technicians = append(technicians, FromTechnicianWorkload(w))
	}
	return WorkloadReportResponse{
		Summary: WorkloadSummaryResponse{
			TotalTechnicians:     summary.TotalTechnicians,
			AvailableTechnicians: summary.AvailableTechnicians,
			BusyTechnicians:      summary.BusyTechnicians,
		},
		Technicians: technicians,
	}
}
