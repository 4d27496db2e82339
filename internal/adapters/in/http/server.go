package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"embroidery/internal/adapters/in/http/apidocs"
	"embroidery/internal/core/application/usecases/commands"
	"embroidery/internal/core/application/usecases/queries"
	"embroidery/internal/core/domain/model/account"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/errs"
	"embroidery/internal/pkg/logger"
	"embroidery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is a use case that answers with a value.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Executor is a use case that answers with an error only.
type Executor[In any] interface {
	Handle(ctx context.Context, in In) error
}

type CatalogLister interface {
	Categories(ctx context.Context, q queries.ListCatalogQuery) ([]queries.CategoryView, error)
	Sizes(ctx context.Context, q queries.ListCatalogQuery) ([]queries.SizeView, error)
	Difficulties(ctx context.Context, q queries.ListCatalogQuery) ([]queries.DifficultyView, error)
}

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	Register       Handler[commands.RegisterCommand, *account.Account]
	Login          Handler[commands.LoginCommand, commands.LoginResult]
	Logout         Executor[ports.Identity]
	ChangePassword Executor[commands.ChangePasswordCommand]
	ForgotPassword Executor[commands.ForgotPasswordCommand]
	ResetPassword  Executor[commands.ResetPasswordCommand]
	ListWorkers    Handler[queries.ListWorkersQuery, []queries.ListWorkersQueryResponse]

	ListCatalog   CatalogLister
	ListProducts  Handler[queries.ListProductsQuery, queries.ListProductsResponse]
	GetProduct    Handler[queries.GetProductQuery, queries.ProductView]
	CreateProduct Handler[commands.CreateProductCommand, kernel.UUID]
	UpdateProduct Executor[commands.UpdateProductCommand]
	DeleteProduct Executor[commands.DeleteProductCommand]

	CreateOrders         Handler[commands.CreateOrdersCommand, commands.CreateOrdersResult]
	ListUnassignedOrders Handler[queries.ListUnassignedOrdersQuery, queries.ListUnassignedOrdersResponse]

	BulkAssign               Handler[commands.BulkAssignCommand, commands.BulkAssignResult]
	ListAvailableForDelivery Handler[queries.ListAvailableForDeliveryQuery, queries.ListAvailableForDeliveryResponse]
	ListPendingAssignments   Handler[queries.ListPendingAssignmentsQuery, queries.ListPendingAssignmentsResponse]

	SubmitReturns                Handler[commands.SubmitReturnsCommand, []kernel.UUID]
	EditReturns                  Handler[commands.EditReturnsCommand, commands.EditReturnsResult]
	DeleteReturn                 Executor[commands.DeleteReturnCommand]
	ConfirmReturns               Handler[commands.ConfirmReturnsCommand, commands.ConfirmReturnsResult]
	ListUnconfirmedReturns       Handler[queries.ListUnconfirmedReturnsQuery, []queries.UnconfirmedReturnGroup]
	ListWorkerUnconfirmedReturns Handler[queries.ListWorkerUnconfirmedReturnsQuery, queries.ListWorkerUnconfirmedReturnsResponse]
	ListShortage                 Handler[queries.ListShortageQuery, queries.ListShortageResponse]

	BulkDeliver    Handler[commands.BulkDeliverCommand, commands.BulkDeliverResult]
	ListDeliveries Handler[queries.ListDeliveriesQuery, queries.ListDeliveriesResponse]
	GetDelivery    Handler[queries.GetDeliveryQuery, queries.DeliveryView]

	SavePayment    Handler[commands.SavePaymentCommand, kernel.UUID]
	PreviewPayment Handler[queries.PreviewPaymentQuery, queries.PreviewPaymentResponse]
	PaymentStats   Handler[queries.PaymentStatsQuery, queries.PaymentStatsResponse]
}

type Options struct {
	// ImageDir is served under ImagePrefix. Empty disables static files.
	ImageDir    string
	ImagePrefix string
	BodyLimit   string
	Gatherer    prometheus.Gatherer
	Metrics     *metrics.LedgerMetrics
	Clock       func() time.Time
	// Health reports dependency readiness. Nil means always healthy.
	Health func(ctx context.Context) error
}

// Server adapts HTTP requests onto the use cases.
type Server struct {
	h        Handlers
	tokens   TokenParser
	denylist ports.TokenDenylist
	log      *logger.Logger
	opts     Options
}

func NewServer(h Handlers, tokens TokenParser, denylist ports.TokenDenylist, log *logger.Logger, opts Options) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ImagePrefix == "" {
		opts.ImagePrefix = "/images"
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = "12M"
	}
	return &Server{h: h, tokens: tokens, denylist: denylist, log: log.Component("http"), opts: opts}
}

// Echo builds a configured echo instance with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(s.log)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(s.log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(s.opts.BodyLimit))

	s.Register(e)
	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.health)
	if s.opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}
	apidocs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if s.opts.ImageDir != "" {
		e.Static(s.opts.ImagePrefix, s.opts.ImageDir)
	}

	authed := Authenticate(s.tokens, s.denylist, s.log)

	auth := e.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)
	auth.POST("/forgot-password", s.forgotPassword)
	auth.POST("/reset-password", s.resetPassword)
	auth.POST("/logout", s.logout, authed)
	auth.POST("/change-password", s.changePassword, authed)

	admin := e.Group("/admin", authed, RequireRole(account.RoleAdmin))
	admin.GET("/users", s.listWorkers)

	admin.GET("/products", s.listProducts)
	admin.GET("/products/category", s.listCategories)
	admin.GET("/products/difficulty", s.listDifficulties)
	admin.GET("/products/size", s.listSizes)
	admin.GET("/products/:id", s.getProduct)
	admin.POST("/products", s.createProduct)
	admin.PATCH("/products/:id", s.updateProduct)
	admin.DELETE("/products/:id", s.deleteProduct)

	admin.GET("/orders/unassigned", s.listUnassignedOrders)
	admin.POST("/orders", s.createOrders)

	admin.GET("/assignments/available", s.listAvailableForDelivery)
	admin.GET("/assignments/pending", s.listPendingAssignments)
	admin.POST("/assignments", s.bulkAssign)

	admin.GET("/returns/unconfirm", s.listUnconfirmedReturns)
	admin.POST("/returns/confirm", s.confirmReturns)

	admin.GET("/deliveries", s.listDeliveries)
	admin.POST("/deliveries", s.bulkDeliver)
	admin.GET("/deliveries/:id/export", s.exportDelivery)

	admin.GET("/payments", s.previewPayment)
	admin.POST("/payments", s.savePayment)
	admin.GET("/payments/stats", s.paymentStats)

	user := e.Group("/user", authed)
	user.GET("/returns/shortage", s.listShortage)
	user.GET("/returns/unconfirmuser", s.listWorkerUnconfirmedReturns)
	user.POST("/returns", s.submitReturns)
	user.PATCH("/returns/unconfirm", s.editReturns)
	user.DELETE("/returns/:id", s.deleteReturn)
	user.GET("/payments/user", s.listWorkerPaymentsPreview)
}

func (s *Server) health(c echo.Context) error {
	if s.opts.Health != nil {
		if err := s.opts.Health(requestContext(c)); err != nil {
			s.log.Warn(s.log.WithField(requestContext(c), "error", err.Error()), "health check failed")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// count records the outcome of a ledger operation.
func (s *Server) count(operation string, err error) {
	var outcome string
	if err != nil {
		outcome = strings.ToLower(string(errs.CodeOf(err)))
	}
	s.opts.Metrics.CountOperation(operation, outcome)
}
