package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	httpadapter "embroidery/internal/adapters/in/http"
	"embroidery/internal/adapters/out/email"
	"embroidery/internal/adapters/out/filestore"
	"embroidery/internal/adapters/out/identity"
	"embroidery/internal/adapters/out/postgres"
	"embroidery/internal/adapters/out/redisstore"
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"
	"embroidery/internal/jobs"
	"embroidery/internal/pkg/logger"
	"embroidery/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	redis      *redisstore.Client
	files      *filestore.Local
	mailer     *email.BrevoSender
	hasher     identity.BcryptHasher
	tokens     *identity.JWTIssuer
	registry   *prometheus.Registry
	ledger     *metrics.LedgerMetrics
	jobMetrics *metrics.JobMetrics
	log        *logger.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, redis *redisstore.Client, log *logger.Logger) (*CompositionRoot, error) {
	files, err := filestore.NewLocal(cfg.Storage.ImageDir, cfg.Storage.ImagePrefix)
	if err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	tokens, err := identity.NewJWTIssuer(identity.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		redis:      redis,
		files:      files,
		mailer: email.NewBrevoSender(email.Config{
			APIKey:      cfg.Mail.APIKey,
			APIURL:      cfg.Mail.APIURL,
			FromName:    cfg.Mail.FromName,
			FromAddress: cfg.Mail.FromAddress,
			Timeout:     cfg.Mail.Timeout,
		}, log),
		hasher:     identity.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens:     tokens,
		registry:   registry,
		ledger:     metrics.NewLedgerMetrics(registry),
		jobMetrics: metrics.NewJobMetrics(registry),
		log:        log,
	}, nil
}

func (c *CompositionRoot) assignmentUoWs() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) returnUoWs() commands.ReturnUoWFactory {
	return FuncReturnUoWFactory(func() commands.ReturnUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) deliveryUoWs() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) paymentUoWs() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) orderUoWs() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) catalogUoWs() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) accountUoWs() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateBulkAssignCommandHandler() commands.BulkAssignCommandHandler {
	return commands.NewBulkAssignCommandHandler(c.assignmentUoWs())
}

func (c *CompositionRoot) CreateSubmitReturnsCommandHandler() commands.SubmitReturnsCommandHandler {
	return commands.NewSubmitReturnsCommandHandler(c.returnUoWs())
}

func (c *CompositionRoot) CreateEditReturnsCommandHandler() commands.EditReturnsCommandHandler {
	return commands.NewEditReturnsCommandHandler(c.returnUoWs())
}

func (c *CompositionRoot) CreateDeleteReturnCommandHandler() commands.DeleteReturnCommandHandler {
	return commands.NewDeleteReturnCommandHandler(c.returnUoWs())
}

func (c *CompositionRoot) CreateConfirmReturnsCommandHandler() commands.ConfirmReturnsCommandHandler {
	return commands.NewConfirmReturnsCommandHandler(c.returnUoWs())
}

func (c *CompositionRoot) CreateBulkDeliverCommandHandler() commands.BulkDeliverCommandHandler {
	return commands.NewBulkDeliverCommandHandler(c.deliveryUoWs())
}

func (c *CompositionRoot) CreateSavePaymentCommandHandler() commands.SavePaymentCommandHandler {
	return commands.NewSavePaymentCommandHandler(c.paymentUoWs(), c.redis, c.cfg.Redis.IdempotencyTTL)
}

func (c *CompositionRoot) CreateCreateOrdersCommandHandler() commands.CreateOrdersCommandHandler {
	return commands.NewCreateOrdersCommandHandler(c.orderUoWs())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWs(), c.files)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWs(), c.files)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWs(), c.files)
}

func (c *CompositionRoot) CreateRegisterCommandHandler() commands.RegisterCommandHandler {
	return commands.NewRegisterCommandHandler(c.accountUoWs(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWs(), c.hasher, c.tokens, commands.PortalPolicy{
		AdminOrigin:  c.cfg.Auth.AdminOrigin,
		WorkerOrigin: c.cfg.Auth.WorkerOrigin,
		Enforce:      c.cfg.Auth.EnforcePortal,
	})
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.redis)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.accountUoWs(), c.hasher)
}

func (c *CompositionRoot) CreateForgotPasswordCommandHandler() commands.ForgotPasswordCommandHandler {
	return commands.NewForgotPasswordCommandHandler(c.accountUoWs(), c.mailer, c.cfg.Mail.ResetURLBase)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(c.accountUoWs(), c.hasher)
}

func (c *CompositionRoot) CreatePurgeResetTokensCommandHandler() commands.PurgeResetTokensCommandHandler {
	return commands.NewPurgeResetTokensCommandHandler(c.accountUoWs())
}

func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Register:       c.CreateRegisterCommandHandler(),
		Login:          c.CreateLoginCommandHandler(),
		Logout:         c.CreateLogoutCommandHandler(),
		ChangePassword: c.CreateChangePasswordCommandHandler(),
		ForgotPassword: c.CreateForgotPasswordCommandHandler(),
		ResetPassword:  c.CreateResetPasswordCommandHandler(),
		ListWorkers:    queries.NewListWorkersQueryHandler(c.gormDB),

		ListCatalog:   queries.NewListCatalogQueryHandler(c.gormDB),
		ListProducts:  queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:    queries.NewGetProductQueryHandler(c.gormDB),
		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		DeleteProduct: c.CreateDeleteProductCommandHandler(),

		CreateOrders:         c.CreateCreateOrdersCommandHandler(),
		ListUnassignedOrders: queries.NewListUnassignedOrdersQueryHandler(c.gormDB),

		BulkAssign:               c.CreateBulkAssignCommandHandler(),
		ListAvailableForDelivery: queries.NewListAvailableForDeliveryQueryHandler(c.gormDB),
		ListPendingAssignments:   queries.NewListPendingAssignmentsQueryHandler(c.gormDB),

		SubmitReturns:                c.CreateSubmitReturnsCommandHandler(),
		EditReturns:                  c.CreateEditReturnsCommandHandler(),
		DeleteReturn:                 c.CreateDeleteReturnCommandHandler(),
		ConfirmReturns:               c.CreateConfirmReturnsCommandHandler(),
		ListUnconfirmedReturns:       queries.NewListUnconfirmedReturnsQueryHandler(c.gormDB),
		ListWorkerUnconfirmedReturns: queries.NewListWorkerUnconfirmedReturnsQueryHandler(c.gormDB),
		ListShortage:                 queries.NewListShortageQueryHandler(c.gormDB),

		BulkDeliver:    c.CreateBulkDeliverCommandHandler(),
		ListDeliveries: queries.NewListDeliveriesQueryHandler(c.gormDB),
		GetDelivery:    queries.NewGetDeliveryQueryHandler(c.gormDB),

		SavePayment:    c.CreateSavePaymentCommandHandler(),
		PreviewPayment: queries.NewPreviewPaymentQueryHandler(c.gormDB),
		PaymentStats:   queries.NewPaymentStatsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateHTTPHandlers(), c.tokens, c.redis, c.log, httpadapter.Options{
		ImageDir:    c.files.Dir(),
		ImagePrefix: c.files.Prefix(),
		Gatherer:    c.registry,
		Metrics:     c.ledger,
		Health:      c.health,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewResetTokenCleanupJob(c.cfg.Jobs.ResetTokenCleanup, c.CreatePurgeResetTokensCommandHandler(), time.Now, c.log, c.jobMetrics),
		jobs.NewLedgerAuditJob(c.cfg.Jobs.LedgerAudit, queries.NewLedgerAuditQueryHandler(c.gormDB), c.ledger, c.log, c.jobMetrics),
	)
}

func (c *CompositionRoot) health(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return errors.Join(sqlDB.PingContext(ctx), c.redis.Ping(ctx))
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
