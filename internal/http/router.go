package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"busline/internal/domain/models"
	h "busline/internal/http/handlers"
	"busline/internal/http/middleware"
)

// NewRouter wires the gin engine: middleware chain, public booking and
// refund surface, authenticated user management, admin transitions.
func NewRouter(a *h.API, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	authRequired := middleware.RequireAuth(a.JWTSecret, models.RoleUser, models.RoleAdmin)
	adminOnly := middleware.RequireAuth(a.JWTSecret, models.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)

		users := api.Group("/users", authRequired)
		users.GET("", a.GetUsers)
		users.GET("/:id", a.GetUserByID)
		users.POST("", a.CreateUser)

		trips := api.Group("/trips")
		trips.GET("", a.GetTrips)
		trips.GET("/:id", a.GetTripByID)
		trips.POST("", adminOnly, a.CreateTrip)

		tickets := api.Group("/tickets")
		tickets.GET("", a.GetTickets)
		tickets.GET("/:id", a.GetTicketByID)
		tickets.POST("", a.CreateTicket)
		tickets.GET("/:id/eligibility", a.GetTicketEligibility)
		tickets.GET("/:id/e-ticket", a.GetTicketPDF)

		cancellations := api.Group("/cancellations")
		cancellations.GET("", a.GetCancellations)
		cancellations.GET("/:id", a.GetCancellationByID)
		cancellations.POST("", a.CreateCancellation)
		cancellations.PUT("/:id/process", adminOnly, a.ProcessCancellation)
		cancellations.PUT("/:id/reject", adminOnly, a.RejectCancellation)

		refunds := api.Group("/refunds")
		refunds.GET("", a.GetRefunds)
		refunds.GET("/:id", a.GetRefundByID)
		refunds.POST("", a.CreateRefund)
		refunds.PUT("/:id/complete", adminOnly, a.CompleteRefund)
		refunds.PUT("/:id/fail", adminOnly, a.FailRefund)
		refunds.GET("/:id/receipt", a.GetRefundReceiptPDF)
	}

	return r
}
