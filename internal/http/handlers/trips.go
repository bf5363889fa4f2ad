package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/http/middleware"
	"busline/internal/services"
	"busline/internal/utils"
)

func (a *API) trips(c *gin.Context) services.TripService {
	return services.TripService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
}

// GET /api/trips?page=1&limit=10
func (a *API) GetTrips(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	items, pageInfo := utils.Paginate(a.trips(c).List(), page, limit)
	RespondPage(c, items, pageInfo)
}

// GET /api/trips/:id
func (a *API) GetTripByID(c *gin.Context) {
	trip, err := a.trips(c).Get(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "trip retrieved", trip)
}

// POST /api/trips (admin)
func (a *API) CreateTrip(c *gin.Context) {
	var req services.NewTrip
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := a.trips(c).Create(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "trip created successfully", trip)
}
