package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cyberlawyerhub/backend/internal/config"
	"github.com/cyberlawyerhub/backend/internal/db"
	"github.com/cyberlawyerhub/backend/internal/fir"
	"github.com/cyberlawyerhub/backend/internal/goroutine"
	httpRouter "github.com/cyberlawyerhub/backend/internal/http/router"
	"github.com/cyberlawyerhub/backend/internal/infrastructure/payment"
	"github.com/cyberlawyerhub/backend/internal/infrastructure/persistence"
	"github.com/cyberlawyerhub/backend/internal/interface/http/handler"
	"github.com/cyberlawyerhub/backend/internal/logger"
	"github.com/cyberlawyerhub/backend/internal/service"
	"github.com/cyberlawyerhub/backend/internal/usecase/availability"
	"github.com/cyberlawyerhub/backend/internal/usecase/booking"
	"github.com/cyberlawyerhub/backend/internal/usecase/dashboard"
	"github.com/cyberlawyerhub/backend/internal/usecase/lawyer"
	"github.com/cyberlawyerhub/backend/migrations"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.Env)
	log := logger.WithComponent("main")

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL, db.DefaultPoolConfig)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, migrations.FS); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Репозитории и внешние сервисы.
	bookingRepo := persistence.NewBookingRepository(dbConn)
	lawyerRepo := persistence.NewLawyerRepository(dbConn)
	slotRepo := persistence.NewAvailabilityRepository(dbConn)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, nil)

	tokens := service.NewTokenVerifier(cfg.SupabaseJWTSecret, service.DefaultAudience)
	cache := service.NewCacheService()
	defer cache.Close()

	// Use cases.
	createBookingUC := booking.NewCreateBookingUseCase(bookingRepo, lawyerRepo)
	createCheckoutUC := booking.NewCreateCheckoutUseCase(createBookingUC, bookingRepo, gateway, logger.WithComponent("checkout"))
	confirmCheckoutUC := booking.NewConfirmCheckoutUseCase(bookingRepo, gateway)
	confirmBookingUC := booking.NewConfirmBookingUseCase(bookingRepo, lawyerRepo)
	cancelBookingUC := booking.NewCancelBookingUseCase(bookingRepo, lawyerRepo, gateway)

	searchLawyersUC := lawyer.NewSearchLawyersUseCase(lawyerRepo, cache, cfg.DirectoryCacheTTL)
	getLawyerUC := lawyer.NewGetLawyerUseCase(lawyerRepo)
	registerLawyerUC := lawyer.NewRegisterLawyerUseCase(lawyerRepo, cache)

	createSlotUC := availability.NewCreateSlotUseCase(slotRepo, lawyerRepo, time.Now)
	listSlotsUC := availability.NewListUpcomingSlotsUseCase(slotRepo, time.Now)
	deleteSlotUC := availability.NewDeleteSlotUseCase(slotRepo, lawyerRepo)

	userDashboardUC := dashboard.NewGetUserDashboardUseCase(bookingRepo)
	lawyerDashboardUC := dashboard.NewGetLawyerDashboardUseCase(lawyerRepo, bookingRepo, slotRepo, time.Now)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Health:       handler.NewHealthHandler(dbConn),
		Checkout:     handler.NewCheckoutHandler(createCheckoutUC, cfg, cfg.PublicAppURL, logger.WithComponent("checkout")),
		Booking:      handler.NewBookingHandler(confirmCheckoutUC, confirmBookingUC, cancelBookingUC),
		Lawyer:       handler.NewLawyerHandler(searchLawyersUC, getLawyerUC, registerLawyerUC, listSlotsUC),
		Availability: handler.NewAvailabilityHandler(createSlotUC, deleteSlotUC),
		Dashboard:    handler.NewDashboardHandler(userDashboardUC, lawyerDashboardUC),
		FIR:          handler.NewFIRHandler(fir.NewGenerator(cfg.PublicAppURL+"/lawyers"), logger.WithComponent("fir")),
	}

	engine := httpRouter.SetupRouter(cfg, handlers, tokens)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.GoWithContext(ctx, log, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.Log.Errorf("main: ошибка закрытия базы: %v", err)
	}
}
