package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/handlers"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/health"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/metrics"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/telemetry"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracer, err := telemetry.InitTracer(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracer(ctx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// In-memory storage setup
	store := repository.NewStore(repository.SeedProducts())

	handler, err := newApp(cfg, store)
	if err != nil {
		slog.Error("❌ Error building the application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.Int("products", store.Products.Count(context.Background())),
		slog.Int("nthOrder", cfg.Discount.NthOrder))

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}

// newApp wires services and handlers over store and returns the fully
// wrapped router.
func newApp(cfg *config.Config, store *repository.Store) (http.Handler, error) {

	payments := service.NewSimulatedPaymentProcessor(cfg.Payment.Delay, cfg.Payment.SuccessRate)
	productService := service.NewProductService(store.Products)
	cartService := service.NewCartService(store.Carts, store.Products)
	discountService := service.NewDiscountService(store.Discounts, store.Orders, cfg.Discount.NthOrder)
	checkoutService := service.NewCheckoutService(store, cartService, discountService, payments)
	adminService := service.NewAdminService(store, discountService)

	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	discountHandler := handlers.NewDiscountHandler(discountService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	adminHandler := handlers.NewAdminHandler(adminService)
	adminAuth := middleware.NewAdminAuth([]byte(cfg.Security.AdminJWTKey))

	if !adminAuth.Enabled() {
		slog.Warn("Admin routes are unauthenticated: security.ADMIN_JWT_KEY is empty")
	}

	healthHandler, err := health.NewHealthHandler(&health.Endpoints{Store: store})
	if err != nil {
		return nil, err
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/cart", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("PATCH /api/cart/update", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/cart/remove", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/checkout", checkoutHandler.Checkout())
	routerMux.HandleFunc("GET /api/discount", discountHandler.GetCurrentDiscount())
	routerMux.HandleFunc("GET /api/admin/stats", adminAuth.RequireAdmin(adminHandler.Stats()))
	routerMux.HandleFunc("GET /api/admin/orders", adminAuth.RequireAdmin(adminHandler.Orders()))
	routerMux.HandleFunc("POST /api/admin/reset", adminAuth.RequireAdmin(adminHandler.Reset()))
	routerMux.HandleFunc("POST /api/admin/discount/generate", adminAuth.RequireAdmin(adminHandler.GenerateDiscount()))
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining, innermost first
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = telemetry.Middleware(handler, cfg.Otel.ServiceName)

	return handler, nil
}
