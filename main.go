package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"consultcare/config"
	_ "consultcare/docs"
	"consultcare/internal/domain"
	"consultcare/internal/repository"
	"consultcare/internal/service"
	"consultcare/internal/storage"
	"consultcare/internal/transport/rest"
	"consultcare/migrations"
	"consultcare/pkg/database"
	"consultcare/pkg/logger"
)

// @title ConsultCare API
// @version 1.0
// @description API расписания и доступности консультантов

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:           "consultcare",
		Short:         "Сервис расписания консультантов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(archiveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	log, err := logger.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать логгер: %w", err)
	}

	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runServer(cmd.Context(), cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "применить миграции перед запуском")

	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		migrator, err := database.NewMigrator(db, migrations.FS, log)
		if err != nil {
			return err
		}
		err = migrator.Up(ctx)
		migrator.Close()
		if err != nil {
			return err
		}
	}

	var archive storage.ArchiveStorage
	if cfg.S3.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			return fmt.Errorf("не удалось инициализировать S3 хранилище: %w", err)
		}
		archive = s3Storage
		log.Info("архив в S3 включен", zap.String("endpoint", cfg.S3.Endpoint), zap.String("bucket", cfg.S3.Bucket))
	} else {
		log.Warn("S3 хранилище не настроено, удаляемые расписания не будут архивироваться")
	}

	services := service.NewServices(service.Deps{
		Repos:   repository.NewRepositories(db),
		Logger:  log,
		Config:  cfg,
		Archive: archive,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	rest.NewHandler(services, log, cfg).InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	log.Info("сервер запущен", zap.String("addr", srv.Addr))

	select {
	case err := <-serverErr:
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	case <-ctx.Done():
	}

	log.Info("выключение сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Info("сервер успешно остановлен")
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Миграции базы данных",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Применить новые миграции",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
				return m.Up(ctx)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Показать состояние миграций",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
				return m.Status(ctx)
			})
		},
	})

	return cmd
}

func withMigrator(ctx context.Context, fn func(context.Context, *database.Migrator) error) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, migrations.FS, log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return fn(ctx, migrator)
}

func tokenCmd() *cobra.Command {
	var (
		userID string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Выпустить access token для оператора",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("неверный user-id: %w", err)
			}

			auth := service.NewAuthService(cfg.JWT, log, time.Now)
			tokens, err := auth.IssueAccessToken(id, domain.UserRole(role))
			if err != nil {
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(tokens)
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "ID пользователя")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleStaff), "роль: consultant, staff или admin")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Работа с архивом удаленных расписаний",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <key>",
		Short: "Вывести архивную запись",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cfg.S3.Enabled() {
				return errors.New("S3 хранилище не настроено")
			}

			s3Storage, err := storage.NewS3Storage(cmd.Context(), cfg.S3, log)
			if err != nil {
				return err
			}

			var record json.RawMessage
			if err := s3Storage.GetJSON(cmd.Context(), args[0], &record); err != nil {
				return err
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			return out.Encode(record)
		},
	})

	return cmd
}
