//go:build e2e

package reservation_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/handler/dto/request"
	"facility-booking/internal/handler/dto/response"
	"facility-booking/internal/infra/cache"
	"facility-booking/internal/pkg/ptr"
	"facility-booking/tests/common/authtest"
	"facility-booking/tests/common/dbtest"
	"facility-booking/tests/common/httptest"
	"facility-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite

	adminToken  string
	viewerToken string
	spaceID     uuid.UUID
	resourceID  uuid.UUID
	clientID    uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.adminToken = authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.DefaultPassword)
	s.viewerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "viewer@example.com", string(user.RoleViewer))

	s.spaceID = dbtest.CreateTestSpace(t, s.DB, "Auditorium", 120)
	s.resourceID = dbtest.CreateTestResource(t, s.DB, "Projector", 5)
	s.clientID = dbtest.CreateTestClient(t, s.DB, "Maria Souza", "123.456.789-00")
}

func (s *reservationSuite) slot(startHour, endHour int) (time.Time, time.Time) {
	day := time.Now().UTC().Add(72 * time.Hour).Truncate(24 * time.Hour)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func (s *reservationSuite) createRequest(startHour, endHour int) request.CreateReservationRequest {
	start, end := s.slot(startHour, endHour)
	return request.CreateReservationRequest{
		ClientID:   s.clientID,
		SpaceID:    s.spaceID,
		ResourceID: s.resourceID,
		StartDate:  start,
		EndDate:    end,
	}
}

func (s *reservationSuite) book(startHour, endHour int) *response.ReservationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, s.createRequest(startHour, endHour), s.adminToken)
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *reservationSuite) TestCreate() {
	s.Run("books the slot and takes one unit", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(10, 12), s.adminToken)

		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		httptest.AssertHeaders(t, w, map[string]string{"Location": reservationsURL + "/" + res.ID.String()})
		require.Equal(t, "OPEN", res.Status)
		require.Equal(t, "Auditorium", res.Space.Name)
		require.Equal(t, "Projector", res.Resource.Name)
		require.Equal(t, "123.456.789-00", res.Client.CPF)
		require.Nil(t, res.ClosedAt)
		require.Equal(t, int32(4), dbtest.ResourceQuantity(t, s.DB, s.resourceID))
	})

	s.Run("rejects an overlapping slot in the same space", func() {
		t := s.T()
		s.book(10, 12)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(11, 13), s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "overlaps")
		require.Equal(t, int32(4), dbtest.ResourceQuantity(t, s.DB, s.resourceID))
	})

	s.Run("accepts back to back slots", func() {
		t := s.T()
		s.book(10, 12)
		s.book(12, 14)

		require.Equal(t, int32(3), dbtest.ResourceQuantity(t, s.DB, s.resourceID))
	})

	s.Run("unknown space", func() {
		t := s.T()
		req := s.createRequest(10, 12)
		req.SpaceID = uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "space not found")
	})

	s.Run("inverted slot", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(12, 10), s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "start date must be before end date")
	})

	s.Run("viewer cannot book", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(10, 12), s.viewerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("concurrent bookings of one slot admit a single winner", func() {
		t := s.T()
		const attempts = 8

		var created, rejected atomic.Int32
		var g errgroup.Group
		for range attempts {
			g.Go(func() error {
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(15, 17), s.adminToken)
				switch w.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusBadRequest:
					rejected.Add(1)
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(1), created.Load())
		require.Equal(t, int32(attempts-1), rejected.Load())
		require.Equal(t, int32(4), dbtest.ResourceQuantity(t, s.DB, s.resourceID))
	})
}

func (s *reservationSuite) TestListAndGet() {
	s.Run("filters by cpf and status", func() {
		t := s.T()
		first := s.book(8, 9)
		s.book(9, 10)

		other := dbtest.CreateTestClient(t, s.DB, "Joao Lima", "987.654.321-00")
		req := s.createRequest(10, 11)
		req.ClientID = other
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?cpf=123.456.789-00&limit=1", nil, s.viewerToken)
		var page response.PageResponse[*response.ReservationResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Data, 1)
		require.Equal(t, int64(2), page.Meta.Total)
		require.Equal(t, int32(2), page.Meta.TotalPages)

		s.amend(first.ID, request.AmendReservationRequest{Status: ptr.Of("APPROVED")}, http.StatusOK)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?status=approved", nil, s.viewerToken)
		page = response.PageResponse[*response.ReservationResponse]{}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Data, 1)
		require.Equal(t, first.ID, page.Data[0].ID)
	})

	s.Run("get by id", func() {
		t := s.T()
		created := s.book(10, 12)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.viewerToken)
		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, created.ID, res.ID)
		require.True(t, created.StartDate.Equal(res.StartDate))
	})

	s.Run("unknown id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/"+uuid.NewString(), nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "reservation not found")
	})
}

func (s *reservationSuite) TestLifecycle() {
	s.Run("open to approved to closed", func() {
		t := s.T()
		created := s.book(10, 12)

		approved := s.amend(created.ID, request.AmendReservationRequest{Status: ptr.Of("APPROVED")}, http.StatusOK)
		require.Equal(t, "APPROVED", approved.Status)

		closedAt := time.Now().UTC().Truncate(time.Second)
		closed := s.amend(created.ID, request.AmendReservationRequest{Status: ptr.Of("CLOSED"), ClosedAt: &closedAt}, http.StatusOK)
		require.Equal(t, "CLOSED", closed.Status)
		require.NotNil(t, closed.ClosedAt)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "only open reservations can be canceled")
	})

	s.Run("moving the slot onto another booking is rejected", func() {
		s.book(10, 12)
		second := s.book(13, 14)

		start, end := s.slot(11, 13)
		s.amend(second.ID, request.AmendReservationRequest{StartDate: &start, EndDate: &end}, http.StatusBadRequest)
	})

	s.Run("cancel keeps the slot taken", func() {
		t := s.T()
		created := s.book(10, 12)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, s.adminToken)
		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CANCELED", res.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, s.createRequest(10, 12), s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "overlaps")
	})

	s.Run("unknown status", func() {
		created := s.book(10, 12)
		s.amend(created.ID, request.AmendReservationRequest{Status: ptr.Of("ARCHIVED")}, http.StatusBadRequest)
	})
}

func (s *reservationSuite) TestViewCache() {
	s.Run("reads after a cancel see the canceled view", func() {
		t := s.T()
		created := s.book(10, 12)

		// Fill the cache with the open view first.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.viewerToken)
		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "OPEN", res.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, s.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil, s.viewerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "CANCELED", res.Status)
	})

	s.Run("an older view never replaces a newer one", func() {
		t := s.T()
		ctx := context.Background()
		client := redis.NewClient(&redis.Options{Addr: s.Config.Cache.Addr})
		defer client.Close()
		c := cache.NewReservationViewCache(client, time.Minute)

		created := s.book(10, 12)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL+"/"+created.ID.String()+"/cancel", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		newer, err := c.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, newer)
		require.Equal(t, "CANCELED", newer.Status)

		older := *newer
		older.Status = "OPEN"
		older.UpdatedAt = newer.UpdatedAt.Add(-time.Second)
		require.NoError(t, c.Set(ctx, &older))

		got, err := c.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "CANCELED", got.Status)
	})
}

func (s *reservationSuite) amend(id uuid.UUID, req request.AmendReservationRequest, wantStatus int) *response.ReservationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, reservationsURL+"/"+id.String(), req, s.adminToken)
	if wantStatus != http.StatusOK {
		require.Equal(s.T(), wantStatus, w.Code, w.Body.String())
		return nil
	}
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}
