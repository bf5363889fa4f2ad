package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/utils"
)

type createCancellationRequest struct {
	TicketID string `json:"ticketId"`
	Reason   string `json:"reason"`
}

// GET /api/cancellations?page=1&limit=10&userId=1&ticketId=2
func (a *API) GetCancellations(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	filter := repositories.CancellationFilter{
		UserID:   c.Query("userId"),
		TicketID: c.Query("ticketId"),
	}
	items, pageInfo := utils.Paginate(a.cancellations(c).List(filter), page, limit)
	RespondPage(c, items, pageInfo)
}

// GET /api/cancellations/:id
func (a *API) GetCancellationByID(c *gin.Context) {
	cancellation, err := a.cancellations(c).Get(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "cancellation retrieved", cancellation)
}

// POST /api/cancellations
func (a *API) CreateCancellation(c *gin.Context) {
	var req createCancellationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	cancellation, err := a.cancellations(c).Create(req.TicketID, req.Reason, models.CancelledByUser)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "cancellation request created successfully", cancellation)
}

// PUT /api/cancellations/:id/process (admin)
func (a *API) ProcessCancellation(c *gin.Context) {
	cancellation, err := a.cancellations(c).Process(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "cancellation processed", cancellation)
}

// PUT /api/cancellations/:id/reject (admin)
func (a *API) RejectCancellation(c *gin.Context) {
	cancellation, err := a.cancellations(c).Reject(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "cancellation rejected", cancellation)
}
