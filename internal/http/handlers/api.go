package handlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"busline/internal/http/middleware"
	"busline/internal/repositories"
	"busline/internal/services"
)

// API carries the shared dependencies for all route handlers. Services
// are built per request so each carries the request ID into its logs.
type API struct {
	Ledger    repositories.Ledger
	Cache     *redis.Client
	Publisher message.Publisher
	JWTSecret []byte
}

func (a *API) tickets(c *gin.Context) services.TicketService {
	return services.TicketService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
}

func (a *API) cancellations(c *gin.Context) services.CancellationService {
	return services.CancellationService{
		Ledger:    a.Ledger,
		Publisher: a.Publisher,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) refunds(c *gin.Context) services.RefundService {
	return services.RefundService{
		Ledger:    a.Ledger,
		Publisher: a.Publisher,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) users(c *gin.Context) services.UserService {
	return services.UserService{
		Ledger:    a.Ledger,
		Cache:     a.Cache,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
}
