package api

import (
	"context"
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds      commands.CatalogCommands
	spaces    queries.SpaceQueries
	resources queries.ResourceQueries
	clients   queries.ClientQueries
	limits    queries.PageLimits
}

func NewCatalogHandler(
	cmds commands.CatalogCommands,
	spaces queries.SpaceQueries,
	resources queries.ResourceQueries,
	clients queries.ClientQueries,
	cfg config.Config,
) *CatalogHandler {
	return &CatalogHandler{
		cmds:      cmds,
		spaces:    spaces,
		resources: resources,
		clients:   clients,
		limits: queries.PageLimits{
			Default: cfg.Booking.DefaultPageLimit,
			Max:     cfg.Booking.MaxPageLimit,
		},
	}
}

// @Summary Create space
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpaceRequest true "Space"
// @Success 201 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spaces [post]
func (h *CatalogHandler) CreateSpace(c *gin.Context) {
	var req reqdto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.CreateSpace(c.Request.Context(), req.ToInput())
	respondView[resdto.SpaceResponse](c, http.StatusCreated, view, err)
}

// @Summary List spaces
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size"
// @Param name query string false "Name contains"
// @Param active query bool false "Only active or only inactive"
// @Success 200 {object} resdto.PageResponse[resdto.SpaceResponse]
// @Router /spaces [get]
func (h *CatalogHandler) ListSpaces(c *gin.Context) {
	listCatalog[resdto.SpaceResponse](c, h.limits, h.spaces.List)
}

// @Summary Get space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 404 {object} httperr.Response
// @Router /spaces/{id} [get]
func (h *CatalogHandler) GetSpace(c *gin.Context) {
	getCatalog[resdto.SpaceResponse](c, h.spaces.Get)
}

// @Summary Update space
// @Description Partial update. Omitted fields keep their value.
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body reqdto.UpdateSpaceRequest true "Changes"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spaces/{id} [patch]
func (h *CatalogHandler) UpdateSpace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.UpdateSpace(c.Request.Context(), id, req.ToInput())
	respondView[resdto.SpaceResponse](c, http.StatusOK, view, err)
}

// @Summary Deactivate space
// @Tags spaces
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /spaces/{id} [delete]
func (h *CatalogHandler) DeactivateSpace(c *gin.Context) {
	deactivate(c, h.cmds.DeactivateSpace)
}

// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources [post]
func (h *CatalogHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.CreateResource(c.Request.Context(), req.ToInput())
	respondView[resdto.ResourceResponse](c, http.StatusCreated, view, err)
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size"
// @Param name query string false "Name contains"
// @Param active query bool false "Only active or only inactive"
// @Success 200 {object} resdto.PageResponse[resdto.ResourceResponse]
// @Router /resources [get]
func (h *CatalogHandler) ListResources(c *gin.Context) {
	listCatalog[resdto.ResourceResponse](c, h.limits, h.resources.List)
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *CatalogHandler) GetResource(c *gin.Context) {
	getCatalog[resdto.ResourceResponse](c, h.resources.Get)
}

// @Summary Update resource
// @Description Partial update. A negative quantity marks the resource unavailable.
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Changes"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources/{id} [patch]
func (h *CatalogHandler) UpdateResource(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.UpdateResource(c.Request.Context(), id, req.ToInput())
	respondView[resdto.ResourceResponse](c, http.StatusOK, view, err)
}

// @Summary Deactivate resource
// @Tags resources
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [delete]
func (h *CatalogHandler) DeactivateResource(c *gin.Context) {
	deactivate(c, h.cmds.DeactivateResource)
}

// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClientRequest true "Client"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clients [post]
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.cmds.CreateClient(c.Request.Context(), in)
	respondView[resdto.ClientResponse](c, http.StatusCreated, view, err)
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size"
// @Param name query string false "Name contains"
// @Param active query bool false "Only active or only inactive"
// @Success 200 {object} resdto.PageResponse[resdto.ClientResponse]
// @Router /clients [get]
func (h *CatalogHandler) ListClients(c *gin.Context) {
	listCatalog[resdto.ClientResponse](c, h.limits, h.clients.List)
}

// @Summary Get client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [get]
func (h *CatalogHandler) GetClient(c *gin.Context) {
	getCatalog[resdto.ClientResponse](c, h.clients.Get)
}

// @Summary Update client
// @Description Omitted fields keep their value.
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientRequest true "Changes"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clients/{id} [put]
func (h *CatalogHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.cmds.UpdateClient(c.Request.Context(), id, in)
	respondView[resdto.ClientResponse](c, http.StatusOK, view, err)
}

// @Summary Deactivate client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /clients/{id} [delete]
func (h *CatalogHandler) DeactivateClient(c *gin.Context) {
	deactivate(c, h.cmds.DeactivateClient)
}

func respondView[R any, V any](c *gin.Context, status int, view *V, err error) {
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromView[R](view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(status, res)
}

func getCatalog[R any, V any](c *gin.Context, get func(context.Context, uuid.UUID) (*V, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := get(c.Request.Context(), id)
	respondView[R](c, http.StatusOK, view, err)
}

func listCatalog[R any, V any](
	c *gin.Context,
	limits queries.PageLimits,
	list func(context.Context, queries.CatalogFilter) (*queries.Page[*V], error),
) {
	var query reqdto.ListCatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	filter, err := query.ToFilter(limits)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	page, err := list(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromViewPage[R](page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func deactivate(c *gin.Context, fn func(context.Context, uuid.UUID) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
