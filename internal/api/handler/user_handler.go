package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/api/metrics"
	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// UserHandler handles HTTP requests for accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type adminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Register stores the account unless one with the same email exists, in
// which case the duplicate sentinel is returned with 200.
//
// @Summary      Register an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Account document"
// @Success      200   {object}  domain.InsertResult
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Register(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	if res.Existing {
		metrics.UsersRegisteredTotal.WithLabelValues("existing").Inc()
		return c.JSON(http.StatusOK, domain.DuplicateUserResult{Message: domain.DuplicateUserMessage})
	}
	metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, res.Inserted)
}

// ToggleRole flips an account between Admin and Participant.
//
// @Summary      Toggle account role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.RoleToggleResult
// @Failure      404  {object}  map[string]string
// @Router       /users/role/{id} [patch]
func (h *UserHandler) ToggleRole(c echo.Context) error {
	res, err := h.service.ToggleRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// @Summary      Get an account by email
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Account email"
// @Success      200    {object}  map[string]interface{}
// @Router       /user [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	doc, err := h.service.GetByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return sendDocument(c, doc)
}

// @Summary      Update an account by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string                  true  "Account email"
// @Param        body   body      map[string]interface{}  true  "Fields to set"
// @Success      200    {object}  domain.UpdateResult
// @Router       /user [patch]
func (h *UserHandler) UpdateByEmail(c echo.Context) error {
	set, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.UpdateByEmail(c.Request().Context(), c.QueryParam("email"), set)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      403  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// AdminStatus answers whether the caller is an admin. Asking about any
// other email is forbidden.
//
// @Summary      Check own admin status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller's own email"
// @Success      200    {object}  adminStatusResponse
// @Failure      403    {object}  map[string]string
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	claimEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}
	isAdmin, err := h.service.AdminStatus(c.Request().Context(), claimEmail, c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{IsAdmin: isAdmin})
}
