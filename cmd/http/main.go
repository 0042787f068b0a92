package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	coreappointments "medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/bookings"
	corepatients "medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/payments"
	"medibook-service/internal/app/services/core/slots"
	"medibook-service/internal/app/services/core/transactions"
	"medibook-service/internal/app/services/shared/notifications"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/pendingpayments"
	sharedredis "medibook-service/internal/app/services/shared/redis"
	upstreamappointments "medibook-service/internal/app/services/upstream/appointments"
	upstreampatients "medibook-service/internal/app/services/upstream/patients"
	upstreamschedules "medibook-service/internal/app/services/upstream/schedules"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		requestLogger.Infof("Listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	requestLogger.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Sugar().Fatalf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	httpClient := &http.Client{
		Timeout: time.Duration(internalConfig.Upstream.RequestTimeout) * time.Second,
	}

	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	pendingPaymentStore := pendingpayments.NewPendingPaymentStore(redisRepository, zapLogger, internalConfig)
	momoService := payment_gateway.NewMomoService(httpClient, zapLogger, internalConfig)
	notificationService, err := notifications.NewNotificationService(bootstrap.RabbitMQ, internalConfig.App.NotificationQueue)
	if err != nil {
		zapLogger.Sugar().Fatalf("Failed to initialize notification service: %v", err)
	}

	// Upstream clients
	patientClient := upstreampatients.NewPatientClient(internalConfig.Upstream.PatientBaseURL, httpClient, zapLogger)
	scheduleClient := upstreamschedules.NewScheduleClient(internalConfig.Upstream.AppointmentBaseURL, httpClient, zapLogger)
	appointmentClient := upstreamappointments.NewAppointmentClient(internalConfig.Upstream.AppointmentBaseURL, httpClient, zapLogger)

	// Repositories
	transactionRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)

	// Core usecases
	patientResolver := corepatients.NewPatientResolver(patientClient, zapLogger)
	appointmentUsecase := coreappointments.NewAppointmentUsecase(appointmentClient, zapLogger)
	slotUsecase := slots.NewSlotUsecase(scheduleClient, zapLogger)
	bookingUsecase := bookings.NewBookingUsecase(
		scheduleClient,
		patientResolver,
		appointmentUsecase,
		momoService,
		pendingPaymentStore,
		transactionRepository,
		notificationService,
		internalConfig,
		zapLogger,
	)

	scheduler := payments.NewScheduler(zapLogger)
	bootstrap.SchedulerStop = scheduler.Stop

	paymentUsecase := payments.NewPaymentUsecase(
		appointmentUsecase,
		pendingPaymentStore,
		transactionRepository,
		notificationService,
		scheduler,
		internalConfig,
		zapLogger,
	)

	// Controllers
	bookingController := bookings.NewBookingController(zapLogger, bookingUsecase)
	paymentController := payments.NewPaymentController(zapLogger, paymentUsecase)
	slotController := slots.NewSlotController(zapLogger, slotUsecase)

	mw := middlewares.NewMiddlewares(zapLogger, internalConfig)
	routers.SetupRoutes(bootstrap.Router, internalConfig, mw, bookingController, paymentController, slotController)
}
