package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediquix/mediquix-server/internal/api"
	"github.com/mediquix/mediquix-server/internal/api/handler"
	"github.com/mediquix/mediquix-server/internal/core/ports"
	"github.com/mediquix/mediquix-server/internal/core/service"
	"github.com/mediquix/mediquix-server/internal/infrastructure/config"
	mongodb "github.com/mediquix/mediquix-server/internal/infrastructure/db/mongo"
	redisdb "github.com/mediquix/mediquix-server/internal/infrastructure/db/redis"
	httpserver "github.com/mediquix/mediquix-server/internal/infrastructure/http"
	"github.com/mediquix/mediquix-server/internal/infrastructure/payment"
	"github.com/mediquix/mediquix-server/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long: `Run the MediQuix API server.

Reads MONGO_URI, ACCESS_TOKEN_SECRET, STRIPE_SECRET_KEY and the other
options from the environment. The server keeps running when the database
is unreachable at boot; requests then fail one by one until it returns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}

		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: "mediquix",
		})
		return serve(ctx, cfg, logger.Get())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "4000", "listen port (overrides PORT)")
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongodb.Open(mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Username: cfg.Mongo.User,
		Password: cfg.Mongo.Password,
	})
	if err != nil {
		return err
	}
	if err := mongodb.Ping(ctx, db); err != nil {
		log.Error().Err(err).Msg("mongo unreachable at boot, serving anyway")
	} else {
		log.Info().Str("db", cfg.Mongo.Database).Msg("connected to mongo")
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("could not create indexes")
		}
	}

	checks := map[string]handler.DependencyCheck{"mongodb": mongodb.Pinger(db)}

	var (
		lock ports.RegistrationLock
		rdb  *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, registration lock disabled")
		} else {
			lock = redisdb.NewRegistrationLock(rdb)
			checks["redis"] = redisdb.Pinger(rdb)
		}
	}

	if cfg.Auth.AccessTokenSecret == "" {
		log.Warn().Msg("ACCESS_TOKEN_SECRET is empty, every protected route will answer 401")
	}
	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY is empty, payment intents will fail")
	}

	users := mongodb.NewUserRepository(db)
	camps := mongodb.NewCampRepository(db)
	svc := api.Services{
		Tokens:   service.NewTokenService(cfg.Auth.AccessTokenSecret, cfg.Auth.TokenTTL),
		Access:   service.NewAccessService(users, log),
		Feedback: service.NewFeedbackService(mongodb.NewFeedbackRepository(db)),
		Camps:    service.NewCampService(camps, log),
		Joins:    service.NewJoinService(mongodb.NewJoinRepository(db), camps, log),
		Users:    service.NewUserService(users, lock, log),
		Payments: service.NewPaymentService(payment.NewStripeProvider(cfg.Stripe.SecretKey, nil), log),
	}

	e := api.NewRouter(svc, api.Options{Checks: checks, Metrics: true, Swagger: true}, log)

	srv := httpserver.New(e, httpserver.Options{
		Addr:            ":" + cfg.Port,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, log)
	srv.OnShutdown("mongo", client.Disconnect)
	if rdb != nil {
		srv.OnShutdown("redis", func(context.Context) error { return rdb.Close() })
	}

	return srv.Run(ctx)
}
