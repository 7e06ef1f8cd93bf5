package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/payment"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/adapters/out/weatherapi"
	"orders/internal/core/application/service"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/views"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
	}
}

func (c *CompositionRoot) OrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOrderService() *service.OrderService {
	weather := weatherapi.NewClient(c.config.WeatherAPIURL, c.config.WeatherAPIKey, http.DefaultClient, c.metrics)
	assembler := views.NewAssembler(weather, c.config.WeatherTimeout, c.logger)

	return service.NewOrderService(
		c.OrderUoWFactory(),
		orderrepo.NewGormOrderReader(c.gormDB),
		payment.NewSimulatedGateway(c.logger),
		assembler,
	)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(c.CreateOrderService(), c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		JWTSecret: []byte(c.config.JWTSecret),
		Metrics:   c.metrics,
		Gatherer:  c.registry,
		Logger:    c.logger,
	})
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler(publisher *kafka.Publisher) commands.PublishOutboxCommandHandler {
	return commands.NewPublishOutboxCommandHandler(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		publisher,
		c.metrics,
		c.logger,
	)
}

// CreateJobManager returns the jobs together with the publisher they write to; the caller
// closes the publisher after stopping the jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, *kafka.Publisher) {
	publisher := kafka.NewPublisher(kafka.ParseBrokers(c.config.KafkaHost), c.config.KafkaOrderChangedTopic)
	handler := c.CreatePublishOutboxCommandHandler(publisher)

	return jobs.NewJobManager(handler, c.config.OutboxBatchSize, c.logger), publisher
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
