package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/repositories"
	"busline/internal/utils"
)

type createTicketRequest struct {
	UserID     string `json:"userId"`
	TripID     string `json:"tripId"`
	SeatNumber string `json:"seatNumber"`
}

// GET /api/tickets?page=1&limit=10&userId=1
func (a *API) GetTickets(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	filter := repositories.TicketFilter{UserID: c.Query("userId")}
	items, pageInfo := utils.Paginate(a.tickets(c).List(filter), page, limit)
	RespondPage(c, items, pageInfo)
}

// GET /api/tickets/:id
func (a *API) GetTicketByID(c *gin.Context) {
	ticket, err := a.tickets(c).Get(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "ticket retrieved", ticket)
}

// POST /api/tickets
func (a *API) CreateTicket(c *gin.Context) {
	var req createTicketRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	ticket, err := a.tickets(c).Create(req.UserID, req.TripID, req.SeatNumber)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "ticket created successfully", ticket)
}

// GET /api/tickets/:id/eligibility
//
// Evaluates the refund policy right now without recording anything.
// Unknown tickets still answer 200 with a diagnostic policy label, the
// same soft-failure the cancellation flow snapshots.
func (a *API) GetTicketEligibility(c *gin.Context) {
	eligibility := a.cancellations(c).Evaluate(c.Param("id"))
	RespondSuccess(c, http.StatusOK, "refund eligibility evaluated", eligibility)
}

// GET /api/tickets/:id/e-ticket
func (a *API) GetTicketPDF(c *gin.Context) {
	pdfBytes, filename, err := a.docs(c).GenerateETicket(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
