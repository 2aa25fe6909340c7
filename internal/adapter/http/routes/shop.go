package routes

import (
	"oficina_torque/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathEmployees    = "/employees"
	PathTechnicians  = "/technicians"
	PathRepairOrders = "/repair-orders"
	PathPayments     = "/payments"
	PathCustomers    = "/customers"
	PathVehicles     = "/vehicles"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	appointmentHandler *handlers.AppointmentHandler,
	workflowHandler *handlers.WorkflowHandler,
	employeeHandler *handlers.EmployeeHandler,
	technicianHandler *handlers.TechnicianHandler,
	repairOrderHandler *handlers.RepairOrderHandler,
	paymentHandler *handlers.InvoicePaymentHandler,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.Book)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)

		appointments.POST("/:id/assign-technician", workflowHandler.AssignTechnician)
		appointments.POST("/:id/start-work", workflowHandler.StartWork)
		appointments.POST("/:id/complete-work", workflowHandler.CompleteWork)
		appointments.POST("/:id/unassign-technician", workflowHandler.UnassignTechnician)
		appointments.POST("/:id/cancel", workflowHandler.Cancel)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.POST("", employeeHandler.Register)
		employees.GET("", employeeHandler.List)
		employees.GET("/:id", employeeHandler.GetByID)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.GET("/workload", technicianHandler.WorkloadReport)
		technicians.GET("/available", technicianHandler.Available)
		technicians.GET("/:id/workload", technicianHandler.Workload)
	}

	repairOrders := rg.Group(PathRepairOrders)
	{
		repairOrders.POST("", repairOrderHandler.Open)
		repairOrders.GET("", repairOrderHandler.List)
		repairOrders.GET("/:id", repairOrderHandler.GetByID)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:repair_order_id", paymentHandler.CreatePaymentByRepairOrderID)
		payments.GET("/:repair_order_id", paymentHandler.GetPaymentByRepairOrderID)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Register)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.Register)
		vehicles.GET("", vehicleHandler.ListByCustomer)
		vehicles.GET("/:id", vehicleHandler.GetByID)
	}
}
