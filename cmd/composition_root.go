package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	apihttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/geo"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/engine"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/settings"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the long-lived collaborators of the service and builds
// the use case handlers on top of them.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory
	distances  ports.DistanceProvider
	publisher  ports.EventPublisher
	registry   *prometheus.Registry
	engineMtr  *metrics.Engine

	initial   settings.Config
	settings  *engine.ConfigStore
	section   *sync.Mutex
	notifier  engine.Notifier
	estimator engine.ArrivalEstimator
	evaluator engine.ScheduleEvaluator
	clock     *engine.VirtualClock

	closers []func() error
}

// NewCompositionRoot connects the configured infrastructure. Anything opened
// before a failure is closed again.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (_ *CompositionRoot, err error) {
	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		section:  &sync.Mutex{},
	}
	defer func() {
		if err != nil {
			_ = c.Close()
		}
	}()

	c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if c.engineMtr, err = metrics.NewEngine(c.registry); err != nil {
		return nil, fmt.Errorf("register engine metrics: %w", err)
	}

	if c.uowFactory, err = c.openStore(); err != nil {
		return nil, err
	}
	if c.distances, err = c.openDistances(ctx); err != nil {
		return nil, err
	}
	if c.publisher, err = c.openPublisher(); err != nil {
		return nil, err
	}

	start := config.ClockStart
	if start.IsZero() {
		start = time.Now().UTC().Truncate(time.Minute)
	}
	c.initial = settings.Defaults(start)
	if c.settings, err = engine.NewConfigStore(c.initial, c.distances, logger); err != nil {
		return nil, fmt.Errorf("create config store: %w", err)
	}

	c.notifier = engine.NewNotifier(c.publisher, logger)
	c.estimator = engine.NewArrivalEstimator(c.distances)
	c.evaluator = engine.NewScheduleEvaluator(c.estimator)
	reconciler := engine.NewReconciler(
		c.uowFactory, c.settings, c.estimator, c.newRandom(0), c.notifier, c.engineMtr, logger)
	c.clock = engine.NewVirtualClock(c.settings, c.section, reconciler, c.notifier, c.engineMtr, logger)

	return c, nil
}

func (c *CompositionRoot) openStore() (ports.UnitOfWorkFactory, error) {
	if c.config.Storage != StoragePostgres {
		c.logger.Info("using in-memory entity store")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), nil
	}

	db, err := postgres.Open(c.config.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}
	c.logger.Info("using postgres entity store", "host", c.config.DBHost, "db", c.config.DBName)
	return postgres.NewGormUnitOfWorkFactory(db), nil
}

func (c *CompositionRoot) openDistances(ctx context.Context) (ports.DistanceProvider, error) {
	var provider ports.DistanceProvider
	if c.config.ORSAPIKey != "" {
		ors, err := geo.NewORSProvider(geo.ORSConfig{
			APIKey:  c.config.ORSAPIKey,
			BaseURL: c.config.ORSBaseURL,
			Country: c.config.ORSCountry,
		}, c.logger)
		if err != nil {
			return nil, fmt.Errorf("create openrouteservice client: %w", err)
		}
		provider = ors
	} else {
		c.logger.Warn("ORS_API_KEY not set, using straight-line distances")
		provider = geo.NewAerialProvider(geo.DefaultDetour)
	}

	if c.config.RedisAddr == "" {
		return provider, nil
	}

	client := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", c.config.RedisAddr, err)
	}
	return geo.NewCachedProvider(provider, client, c.config.GeoCacheTTL, c.logger), nil
}

func (c *CompositionRoot) openPublisher() (ports.EventPublisher, error) {
	if len(c.config.KafkaBrokers) == 0 {
		return kafka.NopPublisher{}, nil
	}

	topic := c.config.KafkaTopic
	if topic == "" {
		topic = kafka.DefaultTopic
	}
	publisher, err := kafka.NewPublisher(c.config.KafkaBrokers, topic, c.logger)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	c.closers = append(c.closers, publisher.Close)
	return publisher, nil
}

// newRandom derives an independent source per consumer from the configured seed.
func (c *CompositionRoot) newRandom(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(c.config.RandomSeed, stream))
}

func (c *CompositionRoot) CreateResetDatabaseCommandHandler() *commands.ResetDatabaseCommandHandler {
	return commands.NewResetDatabaseCommandHandler(c.uowFactory, c.settings, c.section, c.initial, c.logger)
}

func (c *CompositionRoot) CreateAdvanceClockCommandHandler() *commands.AdvanceClockCommandHandler {
	return commands.NewAdvanceClockCommandHandler(c.clock)
}

// CreateHTTPHandlers builds every use case served by the API.
func (c *CompositionRoot) CreateHTTPHandlers() apihttp.Handlers {
	reset := c.CreateResetDatabaseCommandHandler()

	return apihttp.Handlers{
		AdvanceClock:   c.CreateAdvanceClockCommandHandler(),
		UpdateSettings: commands.NewUpdateSettingsCommandHandler(c.settings),

		CreateCourier: commands.NewCreateCourierCommandHandler(c.uowFactory, c.settings, c.section, c.logger),
		UpdateCourier: commands.NewUpdateCourierCommandHandler(c.uowFactory, c.section, c.logger),
		DeleteCourier: commands.NewDeleteCourierCommandHandler(c.uowFactory, c.section, c.logger),

		CreateOrder: commands.NewCreateOrderCommandHandler(c.uowFactory, c.settings, c.section, c.distances, c.logger),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(c.uowFactory, c.settings, c.section, c.distances, c.logger),
		DeleteOrder: commands.NewDeleteOrderCommandHandler(c.uowFactory, c.section, c.logger),
		CancelOrder: commands.NewCancelOrderCommandHandler(
			c.uowFactory, c.settings, c.section, c.notifier, c.engineMtr, c.logger),

		PickUpOrder: commands.NewPickUpOrderCommandHandler(
			c.uowFactory, c.settings, c.section, c.estimator, c.notifier, c.engineMtr, c.logger),
		DeliverOrder: commands.NewDeliverOrderCommandHandler(
			c.uowFactory, c.settings, c.section, c.notifier, c.engineMtr, c.logger),

		ResetDatabase:      reset,
		InitializeDatabase: commands.NewInitializeDatabaseCommandHandler(reset, c.newRandom(1), c.logger),

		GetClock:             queries.NewGetClockQueryHandler(c.settings),
		GetSettings:          queries.NewGetSettingsQueryHandler(c.settings),
		GetAllCouriers:       queries.NewGetAllCouriersQueryHandler(c.uowFactory),
		GetCourierDeliveries: queries.NewGetCourierDeliveriesQueryHandler(c.uowFactory),
		GetAvailableOrders:   queries.NewGetAvailableOrdersQueryHandler(c.uowFactory, c.settings, c.evaluator),
		GetOrders:            queries.NewGetOrdersQueryHandler(c.uowFactory, c.settings, c.evaluator),
		GetOrderStatus:       queries.NewGetOrderStatusQueryHandler(c.uowFactory, c.settings, c.evaluator),
	}
}

// CreateEcho builds the HTTP server with request metrics on the shared
// registry and request validation against the embedded OpenAPI document.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	httpMetrics, err := metrics.NewHTTP(c.registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}
	server := apihttp.NewServer(c.CreateHTTPHandlers(), c.logger)
	e, err := apihttp.NewEcho(server, httpMetrics, c.registry)
	if err != nil {
		return nil, fmt.Errorf("build http server: %w", err)
	}
	return e, nil
}

// CreateJobManager returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.ClockTickSpec == "" {
		return jobs.NewJobManager()
	}
	tick := jobs.NewClockTickJob(
		c.CreateAdvanceClockCommandHandler(), c.config.ClockTickSpec, c.config.ClockTickStep, c.logger)
	return jobs.NewJobManager(tick)
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}
