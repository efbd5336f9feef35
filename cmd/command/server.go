package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dianestephani/laango-backend/internal/api"
	dispatchHandler "github.com/dianestephani/laango-backend/internal/api/handler/dispatch"
	interpreterHandler "github.com/dianestephani/laango-backend/internal/api/handler/interpreter"
	jobHandler "github.com/dianestephani/laango-backend/internal/api/handler/job"
	"github.com/dianestephani/laango-backend/internal/api/middleware"
	"github.com/dianestephani/laango-backend/internal/config"
	"github.com/dianestephani/laango-backend/internal/infra"
	"github.com/dianestephani/laango-backend/internal/provider"
	"github.com/dianestephani/laango-backend/internal/repository"
	assignmentService "github.com/dianestephani/laango-backend/internal/service/assignment"
	dispatchService "github.com/dianestephani/laango-backend/internal/service/dispatch"
	interpreterService "github.com/dianestephani/laango-backend/internal/service/interpreter"
	jobService "github.com/dianestephani/laango-backend/internal/service/job"
	matcherService "github.com/dianestephani/laango-backend/internal/service/matcher"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run staffing server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to postgresql"))
		return
	}

	redisClient, err := infra.NewRedisClient(ctx, cfg.Database.Redis, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
		return
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to close redis"))
		}
	}()

	statusWriter := infra.NewDispatchStatusWriter(cfg.Kafka)

	smsProvider, err := cmd.buildProvider(cfg)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to build sms provider"))
		return
	}

	// create repositories
	interpreterRepository := repository.NewInterpreterRepository(db.GetDb())
	jobRepository := repository.NewJobRepository(db.GetDb())
	contactRepository := repository.NewContactRepository(db.GetDb())

	// create services
	interpreterServiceInstance := interpreterService.NewInterpreterService(interpreterRepository)
	jobServiceInstance := jobService.NewJobService(jobRepository, contactRepository, interpreterRepository)
	matcherServiceInstance := matcherService.NewMatcherService(jobRepository, interpreterRepository, nil)
	assignmentServiceInstance := assignmentService.NewAssignmentService(interpreterRepository, jobRepository)
	dispatchServiceInstance := dispatchService.NewDispatchService(
		smsProvider,
		jobRepository,
		interpreterRepository,
		contactRepository,
		statusWriter,
		cmd.Logger,
		cfg.DispatchWorkers,
	)

	// create handlers
	interpreters := interpreterHandler.New(interpreterServiceInstance, assignmentServiceInstance)
	jobs := jobHandler.New(jobServiceInstance, matcherServiceInstance)
	dispatches := dispatchHandler.New(dispatchServiceInstance)

	// create middlewares
	idempotencyMiddleware := middleware.NewIdempotencyMiddleware(redisClient)

	server := api.New(cfg.AppEnv)
	server.SetupAPIRoutes(
		interpreters,
		jobs,
		dispatches,
		idempotencyMiddleware,
	)

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.Fatal(err)
	}
}

func (cmd Server) buildProvider(cfg *config.Config) (provider.SMSProvider, error) {
	switch cfg.SMS.Provider {
	case "twilio":
		return provider.NewTwilioProvider(cfg.SMS.Twilio)
	case "stub", "":
		cmd.Logger.Warn("sms provider is stubbed; no messages will leave the process")
		return provider.NewStubProvider(), nil
	default:
		return nil, errors.Errorf("sms provider : %s is not supported", cfg.SMS.Provider)
	}
}
