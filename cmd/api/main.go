package main

import (
	"context"
	"log"
	"time"

	"okean/internal/config"
	"okean/internal/handler"
	"okean/internal/i18n"
	"okean/internal/infra/db"
	infraRepo "okean/internal/infra/repository"
	"okean/internal/server"
	"okean/internal/session"
	"okean/internal/usecase"
	"okean/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// repositories
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	warehouseRepo := infraRepo.NewWarehouseGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	settingRepo := infraRepo.NewSettingGormRepository(gormDB)
	contactRepo := infraRepo.NewContactMessageGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	// usecases
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator(userRepo))
	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo, settingRepo)
	cartUC := usecase.NewCartUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, orderRepo, auditRepo)
	productUC := usecase.NewProductUsecase(productRepo, warehouseRepo, categoryRepo, auditRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo)
	userUC := usecase.NewUserUsecase(userRepo, authUC, auditRepo)
	reportUC := usecase.NewReportUsecase(orderRepo, productRepo, categoryRepo, userRepo, warehouseRepo, settingRepo)
	settingsUC := usecase.NewSettingsUsecase(settingRepo)
	contactUC := usecase.NewContactUsecase(contactRepo)

	catalog := i18n.Default()

	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC, cfg),
		Catalog:       handler.NewCatalogHandler(catalogUC),
		Cart:          handler.NewCartHandler(cartUC),
		Order:         handler.NewOrderHandler(orderUC),
		Account:       handler.NewAccountHandler(userUC),
		Prefs:         handler.NewPrefsHandler(catalog),
		Contact:       handler.NewContactHandler(contactUC),
		AdminProduct:  handler.NewAdminProductHandler(productUC),
		AdminCategory: handler.NewAdminCategoryHandler(categoryUC),
		AdminOrder:    handler.NewAdminOrderHandler(adminOrderUC),
		AdminUser:     handler.NewAdminUserHandler(userUC, authUC),
		AdminReport:   handler.NewAdminReportHandler(reportUC, contactUC),
		AdminSettings: handler.NewAdminSettingsHandler(settingsUC),
	}

	sessions := session.NewManager(cfg.SessionTTL)
	go func() {
		for range time.Tick(10 * time.Minute) {
			if n := sessions.Sweep(); n > 0 {
				log.Printf("sessions: swept %d idle", n)
			}
		}
	}()

	// drop long-expired refresh tokens once a day
	go func() {
		for range time.Tick(24 * time.Hour) {
			if n, err := rtRepo.DeleteExpiredBefore(context.Background(), time.Now()); err == nil && n > 0 {
				log.Printf("auth: purged %d expired refresh tokens", n)
			}
		}
	}()

	e := server.New(cfg, sessions, handlers, server.Deps{UserRepo: userRepo})
	if err := e.Start(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
