package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_torque/docs" // This will be auto-generated
	"oficina_torque/internal/adapter/http/handlers"
	repository2 "oficina_torque/internal/adapter/persistence/repository"
	"oficina_torque/internal/infrastructure/database"
	"oficina_torque/internal/infrastructure/payments"
	"oficina_torque/internal/usecase"
	"oficina_torque/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	repairOrderRepo := repository2.NewRepairOrderDynamoRepository(ddb)
	invoicePaymentRepo := repository2.NewInvoicePaymentDynamoRepository(ddb)

	capacity := usecase.NewCapacityPolicy(appointmentRepo, maxConcurrentJobs())

	workflowUseCase := usecase.NewWorkflowUseCase(appointmentRepo, employeeRepo, capacity)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, vehicleRepo)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	technicianUseCase := usecase.NewTechnicianUseCase(employeeRepo, appointmentRepo, capacity)
	repairOrderUseCase := usecase.NewRepairOrderUseCase(repairOrderRepo, appointmentRepo, vehicleRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	invoicePaymentUseCase := usecase.NewInvoicePaymentUseCase(invoicePaymentRepo, repairOrderUseCase, paymentGateway)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)
	repairOrderHandler := handlers.NewRepairOrderHandler(repairOrderUseCase)
	invoicePaymentHandler := handlers.NewInvoicePaymentHandler(invoicePaymentUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, appointmentHandler, workflowHandler, employeeHandler, technicianHandler, repairOrderHandler, invoicePaymentHandler, customerHandler, vehicleHandler)
}

func maxConcurrentJobs() int {
	raw := os.Getenv("MAX_CONCURRENT_JOBS")
	if raw == "" {
		return usecase.DefaultMaxConcurrentJobs
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[routes] invalid MAX_CONCURRENT_JOBS=%q; using default %d", raw, usecase.DefaultMaxConcurrentJobs)
		return usecase.DefaultMaxConcurrentJobs
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
