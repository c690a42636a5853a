package api

import (
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds   commands.ReservationCommands
	q      queries.ReservationQueries
	limits queries.PageLimits
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		cmds: cmds,
		q:    q,
		limits: queries.PageLimits{
			Default: cfg.Booking.DefaultPageLimit,
			Max:     cfg.Booking.MaxPageLimit,
		},
	}
}

// @Summary Create reservation
// @Description Book a space and one unit of a resource for a client
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List reservations, newest first, filtered by status, client CPF or space
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param status query string false "OPEN, APPROVED, CLOSED or CANCELED"
// @Param cpf query string false "Client CPF"
// @Param spaceId query string false "Space ID"
// @Success 200 {object} resdto.PageResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	filter, err := query.ToFilter(h.limits)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	page, err := h.q.FindAll(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationPage(page))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.FindOne(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Amend reservation
// @Description Change status, slot or closing time. Cancel has its own endpoint.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AmendReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Amend(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.AmendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.Amend(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel an OPEN reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
