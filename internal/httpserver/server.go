package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/cartsync"
	"storefront/internal/domain"
	"storefront/internal/events"
)

// CommerceClient is the commerce platform surface the API forwards to.
type CommerceClient interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	FetchCart(ctx context.Context, id string) (*domain.Cart, error)
	AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	Products(ctx context.Context, first int, after string) (*domain.ProductPage, error)
	ProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
}

// ContentClient serves editorial product content from the CMS.
type ContentClient interface {
	ProductContent(ctx context.Context, handle string) (*domain.ProductContent, error)
}

// Deps wires the handlers. Content, Publisher and SessionStore are
// optional; missing ones disable their routes or side effects.
type Deps struct {
	Commerce     CommerceClient
	Content      ContentClient
	Publisher    events.Publisher
	SessionStore cartsync.KV
	CacheTTL     time.Duration
	AllowOrigins []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	db         *pgxpool.Pool
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, db *pgxpool.Pool, deps Deps) (*Server, error) {
	router := buildRouter(logger, db, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
