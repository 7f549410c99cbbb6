package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"vacation-tracker/internal/config"
	"vacation-tracker/internal/database"
	"vacation-tracker/internal/handlers"
	"vacation-tracker/internal/mailer"
	"vacation-tracker/internal/middleware"
	"vacation-tracker/internal/repositories"
	"vacation-tracker/internal/services"
	"vacation-tracker/internal/storage"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Выбор хранилища: MySQL или память (для разработки и тестов)
	var employeeRepo repositories.EmployeeRepositoryInterface
	var vacationRepo repositories.VacationRepositoryInterface

	if cfg.Database.Backend == "mysql" {
		db, err := database.NewConnection(cfg.Database)
		if err != nil {
			log.Fatalf("Ошибка подключения к базе данных: %v", err)
		}
		defer db.Close()

		if err := database.RunMigrations(context.Background(), db); err != nil {
			log.Fatalf("Ошибка применения миграций: %v", err)
		}

		employeeRepo = repositories.NewEmployeeRepository(db)
		vacationRepo = repositories.NewVacationRepository(db)
	} else {
		log.Println("ВНИМАНИЕ: используется хранилище в памяти, данные не переживут перезапуск")
		employeeRepo = repositories.NewMemoryEmployeeRepository()
		vacationRepo = repositories.NewMemoryVacationRepository()
	}

	// Выгрузка снимков в объектное хранилище включается заданным бакетом
	var uploader storage.SnapshotUploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("Ошибка инициализации объектного хранилища: %v", err)
		}
		uploader = s3Uploader
	}

	// Создание сервисов
	authService := services.NewAuthService(cfg.Admin, cfg.JWT.Secret)
	employeeService := services.NewEmployeeService(employeeRepo)
	vacationService := services.NewVacationService(vacationRepo, employeeRepo)
	reconciliationService := services.NewReconciliationService(employeeRepo, vacationRepo)
	// Единственный экземпляр сервиса резервного копирования на процесс
	backupService := services.NewBackupService(
		employeeRepo, vacationRepo, reconciliationService,
		mailer.NewSMTPMailer(cfg.SMTP), uploader,
		cfg.Backup.Recipient, cfg.Backup.Interval,
	)

	// Создание обработчиков
	authHandler := handlers.NewAuthHandler(authService)
	appHandler := handlers.NewAppHandler(employeeService, vacationService, reconciliationService, backupService)

	// Настройка маршрутизатора Gin
	router := gin.Default()
	router.Use(middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	// Публичные маршруты
	router.POST("/api/auth/login", authHandler.Login)
	router.GET("/api/employees", appHandler.GetEmployees)
	router.GET("/api/vacations", appHandler.GetVacations)
	router.GET("/api/backup", appHandler.GetBackupStatus)

	// Защищенные маршруты
	api := router.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWT.Secret), middleware.AdminOnly())
	{
		api.POST("/employees", appHandler.CreateEmployee)
		api.PUT("/employees", appHandler.ReplaceEmployees)

		api.POST("/vacations", appHandler.CreateVacation)
		api.DELETE("/vacations/:id", appHandler.DeleteVacation)

		api.POST("/reconcile", appHandler.RunReconciliation)
		api.POST("/backup", appHandler.TriggerBackup)
	}

	// Плановый запуск резервного копирования
	if cfg.Backup.Enabled {
		scheduler := cron.New()
		scheduler.Schedule(cron.Every(cfg.Backup.Interval), cron.FuncJob(func() {
			if err := backupService.PerformBackup(context.Background()); err != nil {
				log.Printf("Плановое резервное копирование завершилось ошибкой: %v", err)
			}
		}))
		scheduler.Start()
		defer scheduler.Stop()
		log.Printf("Планировщик резервного копирования запущен, интервал %s", cfg.Backup.Interval)
	}

	// Запуск сервера
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
