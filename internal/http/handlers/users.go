package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busline/internal/utils"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// GET /api/users?page=1&limit=10
func (a *API) GetUsers(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, err)
		return
	}

	users := a.users(c).List(c.Request.Context())
	items, pageInfo := utils.Paginate(users, page, limit)
	RespondPage(c, items, pageInfo)
}

// GET /api/users/:id
func (a *API) GetUserByID(c *gin.Context) {
	user, err := a.users(c).Get(c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "user retrieved", user)
}

// POST /api/users
func (a *API) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := a.users(c).Create(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, "user created successfully", user)
}
