package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// CampHandler handles HTTP requests for camp listings.
type CampHandler struct {
	service ports.CampService
}

func NewCampHandler(service ports.CampService) *CampHandler {
	return &CampHandler{service: service}
}

// Create stores the body as a camp document. Admin only.
//
// @Summary      Create a camp
// @Tags         camps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]interface{}  true  "Camp document"
// @Success      200   {object}  domain.InsertResult
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /camps [post]
func (h *CampHandler) Create(c echo.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary      List camps
// @Tags         camps
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /camps [get]
func (h *CampHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Get returns one camp, or null when the id matches nothing.
//
// @Summary      Get a camp
// @Tags         camps
// @Produce      json
// @Param        id   path      string  true  "Camp id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /camps/{id} [get]
func (h *CampHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return sendDocument(c, doc)
}

// Update merges the body into the camp with $set. Admin only.
//
// @Summary      Update a camp
// @Tags         camps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        campId  path      string                  true  "Camp id"
// @Param        body    body      map[string]interface{}  true  "Fields to set"
// @Success      200     {object}  domain.UpdateResult
// @Failure      403     {object}  map[string]string
// @Router       /update-camp/{campId} [patch]
func (h *CampHandler) Update(c echo.Context) error {
	set, err := bindDocument(c)
	if err != nil {
		return err
	}
	res, err := h.service.Update(c.Request().Context(), c.Param("campId"), set)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Delete removes a camp. Admin only.
//
// @Summary      Delete a camp
// @Tags         camps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Camp id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      403  {object}  map[string]string
// @Router       /delete-camp/{id} [delete]
func (h *CampHandler) Delete(c echo.Context) error {
	res, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
