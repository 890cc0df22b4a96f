package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_car"
	createUserHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_user"
	deleteUserHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/delete_user"
	getBookingHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_booking"
	getCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car"
	getCarBookingsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car_bookings"
	getCarQuotesHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car_quotes"
	getUserHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_user_bookings"
	listCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/list_cars"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/config"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/memory"
	userRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-CarRentalService/internal/service/bookings"
	carsService "github.com/m04kA/SMC-CarRentalService/internal/service/cars"
	usersService "github.com/m04kA/SMC-CarRentalService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
	getCarQuotesUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_car_quotes"
	"github.com/m04kA/SMC-CarRentalService/migrations"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/migrator"
	"github.com/m04kA/SMC-CarRentalService/pkg/txmanager"
)

// Репозитории, общие для PostgreSQL и хранилища в памяти
type (
	userStore interface {
		GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
		Save(ctx context.Context, user *domain.User) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	carStore interface {
		GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
		FindAll(ctx context.Context) ([]*domain.Car, error)
		Save(ctx context.Context, car *domain.Car) error
	}

	bookingStore interface {
		GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
		FindByUserAndRangeOverlap(ctx context.Context, userID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error)
		FindByCarAndRangeOverlap(ctx context.Context, carID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error)
		FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
		FindByCarID(ctx context.Context, carID uuid.UUID) ([]*domain.Booking, error)
		Save(ctx context.Context, booking *domain.Booking) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
)

func main() {
	// Загружаем конфигурацию
	configPath := config.Path("config.toml")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarRentalService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		users    userStore
		cars     carStore
		bookings bookingStore
		txMgr    txManager
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		users = memory.NewUserRepository(store)
		cars = memory.NewCarRepository(store)
		bookings = memory.NewBookingRepository(store)
		txMgr = memory.NewTxManager(store)
		log.Warn("In-memory storage selected: data is lost on restart")

	default:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Database.MigrateOnStart {
			if err := migrator.Up(context.Background(), db, migrations.FS, log); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
		}

		// Без метрик обёртка просто проксирует вызовы
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		if cfg.Metrics.Enabled {
			log.Info("Database metrics collection started")
		}

		users = userRepo.NewRepository(wrappedDB)
		cars = carRepo.NewRepository(wrappedDB)
		bookings = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, cfg.Booking.SerializationRetries)
	}

	// Блокировка по ключу автомобиля и пользователя
	var locker lock.Locker
	maxWait := time.Duration(cfg.Lock.MaxWaitMs) * time.Millisecond

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		locker = lock.NewRedisLocker(redisClient, lock.Options{
			TTL:           time.Duration(cfg.Lock.TTLMs) * time.Millisecond,
			MaxWait:       maxWait,
			RetryInterval: time.Duration(cfg.Lock.RetryIntervalMs) * time.Millisecond,
		}, log)
		log.Info("Redis lock enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker(maxWait)
		log.Info("In-process lock enabled")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookings, cars, txMgr, locker, log)
	carSvc := carsService.NewService(cars, log)
	userSvc := usersService.NewService(users, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		users,
		cars,
		bookings,
		txMgr,
		locker,
		cfg.Booking.Mode(),
		metricsCollector,
		log,
	)
	log.Info("Availability mode: %s", cfg.Booking.Mode())

	getCarQuotesUseCase := getCarQuotesUC.NewUseCase(cars, bookings, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCarBookings := getCarBookingsHandler.NewHandler(bookingSvc, log)
	getCarQuotes := getCarQuotesHandler.NewHandler(getCarQuotesUseCase, log)
	createCar := createCarHandler.NewHandler(carSvc, log)
	listCars := listCarsHandler.NewHandler(carSvc, log)
	getCar := getCarHandler.NewHandler(carSvc, log)
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Автомобили ---
	// /cars/quotes регистрируется раньше /cars/{carId}, иначе "quotes" попадёт в carId
	api.HandleFunc("/cars/quotes", getCarQuotes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/bookings", getCarBookings.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
