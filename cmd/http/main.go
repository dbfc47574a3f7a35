package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/messaging"
	"doctors-portal-service/internal/app/drivers/storage"
	"doctors-portal-service/internal/app/services/core/auth"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/catalog"
	"doctors-portal-service/internal/app/services/core/doctors"
	"doctors-portal-service/internal/app/services/core/slot"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	messagingService "doctors-portal-service/internal/app/services/shared/messaging"
	redisService "doctors-portal-service/internal/app/services/shared/redis"
	storageService "doctors-portal-service/internal/app/services/shared/storage"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)
	redis := database.NewRedisClient(driverConfig, zapLogger)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, zapLogger)
	minio := storage.NewMinio(driverConfig, internalConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redis,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minio,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shared
	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	if err != nil {
		return err
	}
	redisRepository := redisService.NewRedisRepository(bootstrap.Redis)
	idempotencyStore := redisService.NewIdempotencyStore(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.IdempotencyTTLInHours)*time.Hour,
	)
	minioStorage := storageService.NewMinioStorage(bootstrap.Minio)

	var bookingNotifier contracts.BookingNotifier
	publisher, err := messagingService.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.BookingQueue)
	if err != nil {
		bootstrap.Logger.Warn("Booking notifications disabled, failed to open rabbitMQ channel", zap.Error(err))
	} else {
		bookingNotifier = messagingService.NewBookingNotifier(publisher, bootstrap.InternalConfig.RabbitMQ.BookingQueue)
	}

	// Repositories
	serviceMongoRepository := catalog.NewServiceMongoRepository(bootstrap.MongoDB)
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB)

	err = bookingMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	err = userMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	// Usecases
	accessPolicy := auth.NewAccessPolicy(userMongoRepository, bootstrap.Logger)
	serviceUsecase := catalog.NewServiceUsecase(serviceMongoRepository, bootstrap.Logger)
	availabilityUsecase := slot.NewAvailabilityUsecase(serviceMongoRepository, bookingMongoRepository, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(bookingMongoRepository, accessPolicy, idempotencyStore, bookingNotifier, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userMongoRepository, tokenManager, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	serviceController := controllers.NewServiceController(bootstrap.Logger, serviceUsecase, availabilityUsecase, bootstrap.InternalConfig)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, tokenManager, accessPolicy, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		serviceController,
		bookingController,
		userController,
		doctorController,
	)
	return nil
}
