package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/repositories"
	"busline/internal/utils"
)

type createRefundRequest struct {
	CancellationID string `json:"cancellationId"`
}

// GET /api/refunds?page=1&limit=10&userId=1
func (a *API) GetRefunds(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	filter := repositories.RefundFilter{UserID: c.Query("userId")}
	items, pageInfo := utils.Paginate(a.refunds(c).List(filter), page, limit)
	RespondPage(c, items, pageInfo)
}

// GET /api/refunds/:id
func (a *API) GetRefundByID(c *gin.Context) {
	refund, err := a.refunds(c).Get(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "refund retrieved", refund)
}

// POST /api/refunds
func (a *API) CreateRefund(c *gin.Context) {
	var req createRefundRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	refund, err := a.refunds(c).Create(req.CancellationID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "refund initiated successfully", refund)
}

// PUT /api/refunds/:id/complete (admin)
func (a *API) CompleteRefund(c *gin.Context) {
	refund, err := a.refunds(c).Complete(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "refund completed", refund)
}

// PUT /api/refunds/:id/fail (admin)
func (a *API) FailRefund(c *gin.Context) {
	refund, err := a.refunds(c).Fail(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "refund marked failed", refund)
}

// GET /api/refunds/:id/receipt
func (a *API) GetRefundReceiptPDF(c *gin.Context) {
	pdfBytes, filename, err := a.docs(c).GenerateRefundReceipt(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
