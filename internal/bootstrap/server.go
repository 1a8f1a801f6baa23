package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/api"
	"github.com/glossandgo/booking/config"
	"github.com/glossandgo/booking/internal/auth"
)

type Handlers struct {
	Slots    *api.SlotHandler
	Bookings *api.BookingHandler
	Content  *api.ContentHandler
	Auth     *api.AuthHandler
}

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, authSvc *auth.Service, h Handlers) error {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	public := engine.Group("/api")
	h.Slots.RegisterPublic(public.Group("/slots"))
	h.Bookings.RegisterPublic(public.Group("/bookings"))
	h.Content.RegisterPublic(public.Group("/content"))

	admin := engine.Group("/admin")
	h.Auth.Register(admin)

	protected := admin.Group("")
	protected.Use(authSvc.Middleware())
	h.Slots.RegisterAdmin(protected.Group("/slots"))
	h.Bookings.RegisterAdmin(protected.Group("/bookings"))
	h.Content.RegisterAdmin(protected.Group("/content"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
