package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-helpdesk/internal/config"
	"github.com/spec-kit/campus-helpdesk/internal/events"
	"github.com/spec-kit/campus-helpdesk/internal/observability"
	"github.com/spec-kit/campus-helpdesk/internal/persistence"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/internal/seed"
	"github.com/spec-kit/campus-helpdesk/internal/service"
	"github.com/spec-kit/campus-helpdesk/internal/session"
	"github.com/spec-kit/campus-helpdesk/internal/ui"
)

// bootstrap holds everything the commands need after wiring.
type bootstrap struct {
	cfg    *config.Config
	logger *zap.Logger
	pg     *persistence.Postgres
	redis  *persistence.Redis

	userRepo         repository.UserRepository
	ticketRepo       repository.TicketRepository
	notificationRepo repository.NotificationRepository

	users         *service.UserService
	tickets       *service.TicketService
	notifications *service.NotificationService
}

func (b *bootstrap) close() {
	b.redis.Close()
	b.pg.Close()
	_ = b.logger.Sync()
}

func wire(ctx context.Context) (*bootstrap, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("connecting postgres: %w", err)
	}

	pool := pg.PoolHandle()
	if pool != nil && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
			pg.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)

	b := &bootstrap{cfg: cfg, logger: logger, pg: pg, redis: redis}

	if pool != nil {
		b.userRepo = repository.NewUserRepository(pool)
		b.ticketRepo = repository.NewTicketRepository(pool)
		b.notificationRepo = repository.NewNotificationRepository(pool)
	} else {
		b.userRepo = repository.NewMemoryUserRepository()
		b.ticketRepo = repository.NewMemoryTicketRepository()
		b.notificationRepo = repository.NewMemoryNotificationRepository(func(ctx context.Context, id string) (bool, error) {
			if _, err := b.userRepo.GetByID(ctx, id); err != nil {
				return false, nil
			}
			return true, nil
		})
	}

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterAuditLog(dispatcher, logger)

	b.users = service.NewUserService(b.userRepo, cfg.Auth)
	b.tickets = service.NewTicketService(service.TicketDependencies{
		TicketRepo: b.ticketRepo,
		UserRepo:   b.userRepo,
		Dispatcher: dispatcher,
	})
	b.notifications = service.NewNotificationService(b.notificationRepo, redis, dispatcher)

	return b, nil
}

func runSeed(ctx context.Context, b *bootstrap) error {
	seeder := seed.NewSeeder(b.userRepo, b.ticketRepo, b.cfg.Auth, b.logger)
	return seeder.Run(ctx)
}

func runConsole(ctx context.Context, b *bootstrap) error {
	if b.cfg.Seed.Enabled {
		if err := runSeed(ctx, b); err != nil {
			return err
		}
	}

	app := &ui.App{
		Ctx:           ctx,
		Users:         b.users,
		Tickets:       b.tickets,
		Notifications: b.notifications,
		Session:       session.New(),
		Metrics:       observability.NewMetrics(),
	}

	screen := ui.NewConsoleScreen(os.Stdout, b.cfg.App.ScreenWidth)
	input := ui.NewConsoleInput(os.Stdin, os.Stdout)

	fmt.Printf("%s %s\n", b.cfg.App.Name, b.cfg.App.Version)
	ui.Run(ui.NewLoginPage(app), screen, input, app.Metrics)
	fmt.Println("Goodbye!")
	return nil
}

func main() {
	ctx := context.Background()

	root := &cobra.Command{
		Use:          "helpdesk",
		Short:        "Campus helpdesk ticket console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wire(ctx)
			if err != nil {
				return err
			}
			defer b.close()
			return runConsole(ctx, b)
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Start the interactive console (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wire(ctx)
			if err != nil {
				return err
			}
			defer b.close()
			return runConsole(ctx, b)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Seed demo users and tickets, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := wire(ctx)
			if err != nil {
				return err
			}
			defer b.close()
			return runSeed(ctx, b)
		},
	})

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
