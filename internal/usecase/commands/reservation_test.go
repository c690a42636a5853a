//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/ptr"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"
	"facility-booking/tests/common/builder"
	queriesmock "facility-booking/tests/mock/queries"
	sharedmock "facility-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// txMocks wires a mocked transaction whose accessors hand out the repository mocks.
type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	spaces       *sharedmock.MockSpaceRepository
	resources    *sharedmock.MockResourceRepository
	clients      *sharedmock.MockClientRepository
	users        *sharedmock.MockUserRepository
	reads        *sharedmock.MockCommandReads
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		spaces:       sharedmock.NewMockSpaceRepository(ctrl),
		resources:    sharedmock.NewMockResourceRepository(ctrl),
		clients:      sharedmock.NewMockClientRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Spaces().Return(m.spaces).AnyTimes()
	m.tx.EXPECT().Resources().Return(m.resources).AnyTimes()
	m.tx.EXPECT().Clients().Return(m.clients).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	return m
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	m     *txMocks
	cache *queriesmock.MockReservationViewCache
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.cache = queriesmock.NewMockReservationViewCache(s.ctrl)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) commands(policy commands.BookingPolicy) commands.ReservationCommands {
	clk := clock.NewMockClock(testNow)
	return commands.NewReservationCommands(s.m.uow, reservation.NewFactory(clk), s.cache, policy, clk)
}

type createFixture struct {
	space    *builder.SpaceBuilder
	resource *builder.ResourceBuilder
	client   *builder.ClientBuilder
	res      *builder.ReservationBuilder
}

func newCreateFixture() createFixture {
	f := createFixture{
		space:    builder.NewSpaceBuilder(),
		resource: builder.NewResourceBuilder(),
		client:   builder.NewClientBuilder(),
	}
	f.res = builder.NewReservationBuilder().ForParties(f.space.ID, f.resource.ID, f.client.ID)
	return f
}

func (s *ReservationCommandsTestSuite) expectParties(f createFixture) {
	s.m.spaces.EXPECT().FindByID(gomock.Any(), gomock.Any(), f.space.ID).Return(f.space.BuildDomain(), nil)
	s.m.resources.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), f.resource.ID).Return(f.resource.BuildDomain(), nil)
	s.m.clients.EXPECT().FindByID(gomock.Any(), gomock.Any(), f.client.ID).Return(f.client.BuildDomain(), nil)
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: allocates one unit and returns the view", func() {
		f := newCreateFixture()
		view := f.res.BuildView()
		s.expectParties(f)

		gomock.InOrder(
			s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), f.space.ID).Return(nil),
			s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, q shared.OverlapQuery) (bool, error) {
					s.Equal(f.space.ID, q.SpaceID)
					s.Nil(q.ExcludeID)
					s.False(q.IgnoreTerminal)
					return false, nil
				}),
			s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, rs *resource.Resource) error {
					s.Equal(f.resource.Quantity-1, rs.Quantity())
					return nil
				}),
			s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
					s.Equal(reservation.StatusOpen, res.Status())
					s.Equal(f.client.ID, res.ClientID())
					return nil
				}),
			s.m.reads.EXPECT().ReservationView(gomock.Any(), gomock.Any()).Return(view, nil),
		)

		got, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("success: zero stock is booked without a decrement", func() {
		f := newCreateFixture()
		f.resource.WithQuantity(0)
		s.expectParties(f)

		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), f.space.ID).Return(nil)
		s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), gomock.Any()).Return(f.res.BuildView(), nil)

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.NoError(err)
	})

	s.Run("success: the overlap policy is forwarded", func() {
		f := newCreateFixture()
		s.expectParties(f)

		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), f.space.ID).Return(nil)
		s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, q shared.OverlapQuery) (bool, error) {
				s.True(q.IgnoreTerminal)
				return false, nil
			})
		s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), gomock.Any()).Return(f.res.BuildView(), nil)

		_, err := s.commands(commands.BookingPolicy{OverlapIgnoresTerminal: true}).Create(ctx, f.res.BuildCreateInput())

		s.NoError(err)
	})

	s.Run("error: overlap is a validation failure and nothing is written", func() {
		f := newCreateFixture()
		s.expectParties(f)

		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), f.space.ID).Return(nil)
		s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(reservation.ErrOverlap.Error(), err.Error())
	})

	s.Run("error: inverted slot is rejected before the space lock", func() {
		f := newCreateFixture()
		f.res.WithSlot(f.res.EndDate, f.res.StartDate)
		s.expectParties(f)

		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(reservation.ErrInvalidTimeSlot.Error(), err.Error())
	})

	s.Run("error: inactive resource", func() {
		f := newCreateFixture()
		f.resource.AsInactive()
		s.expectParties(f)

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(resource.ErrInactive.Error(), err.Error())
	})

	s.Run("error: unknown space is not found", func() {
		f := newCreateFixture()
		s.m.spaces.EXPECT().FindByID(gomock.Any(), gomock.Any(), f.space.ID).
			Return(nil, infra.WrapRepoErr("space not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrNotFound))
		s.True(errs.Is(err, queries.ErrSpaceNotFound))
		s.Equal("space not found", err.Error())
	})

	s.Run("error: unknown client is not found", func() {
		f := newCreateFixture()
		s.m.spaces.EXPECT().FindByID(gomock.Any(), gomock.Any(), f.space.ID).Return(f.space.BuildDomain(), nil)
		s.m.resources.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), f.resource.ID).Return(f.resource.BuildDomain(), nil)
		s.m.clients.EXPECT().FindByID(gomock.Any(), gomock.Any(), f.client.ID).
			Return(nil, infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, queries.ErrClientNotFound))
	})

	s.Run("error: insert failure is a persistence failure", func() {
		f := newCreateFixture()
		s.expectParties(f)

		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), f.space.ID).Return(nil)
		s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to insert reservation", errors.New("connection reset")))

		_, err := s.commands(commands.BookingPolicy{}).Create(ctx, f.res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrPersistence))
		s.True(errs.Is(err, commands.ErrCreateReservationFailed))
		s.Equal("could not create reservation", err.Error())
	})

	s.Run("error: a commit failure is a persistence failure", func() {
		uow := sharedmock.NewMockUnitOfWork(s.ctrl)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("commit: connection reset"))
		clk := clock.NewMockClock(testNow)
		cmds := commands.NewReservationCommands(uow, reservation.NewFactory(clk), s.cache, commands.BookingPolicy{}, clk)

		_, err := cmds.Create(ctx, newCreateFixture().res.BuildCreateInput())

		s.True(errs.Is(err, errs.ErrPersistence))
		s.Equal("could not create reservation", err.Error())
	})
}

func (s *ReservationCommandsTestSuite) TestAmend() {
	ctx := context.Background()

	s.Run("success: approve keeps the slot and skips the overlap check", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				s.Equal(reservation.StatusApproved, res.Status())
				return nil
			})
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.WithStatus(reservation.StatusApproved).BuildView(), nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("approved")})

		s.Require().NoError(err)
		s.Equal("APPROVED", got.Status)
	})

	s.Run("success: a slot change is checked for overlap excluding itself", func() {
		rb := builder.NewReservationBuilder()
		newEnd := rb.EndDate.Add(time.Hour)
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), rb.SpaceID).Return(nil)
		s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, q shared.OverlapQuery) (bool, error) {
				s.Require().NotNil(q.ExcludeID)
				s.Equal(rb.ID, *q.ExcludeID)
				s.True(newEnd.Equal(q.Slot.End()))
				return false, nil
			})
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{EndDate: &newEnd})

		s.NoError(err)
	})

	s.Run("success: closing restores inventory when the policy asks for it", func() {
		rb := builder.NewReservationBuilder().WithStatus(reservation.StatusApproved)
		rsb := builder.NewResourceBuilder().WithQuantity(0)
		rb.ResourceID = rsb.ID

		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.resources.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsb.ID).Return(rsb.BuildDomain(), nil)
		s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rs *resource.Resource) error {
				s.Equal(int32(1), rs.Quantity())
				return nil
			})
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		policy := commands.BookingPolicy{RestoreInventoryOnRelease: true}
		_, err := s.commands(policy).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("CLOSED")})

		s.NoError(err)
	})

	s.Run("error: unknown status is a validation failure and nothing is written", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("PAID")})

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(reservation.ErrInvalidStatus.Error(), err.Error())
	})

	s.Run("error: unknown reservation wins over an unknown status", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).
			Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("foo")})

		s.True(errs.Is(err, errs.ErrNotFound))
		s.Equal("reservation not found", err.Error())
	})

	s.Run("success: closing with a new slot locks the resource before the space", func() {
		rb := builder.NewReservationBuilder().WithStatus(reservation.StatusApproved)
		rsb := builder.NewResourceBuilder().WithQuantity(2)
		rb.ResourceID = rsb.ID
		newEnd := rb.EndDate.Add(time.Hour)

		gomock.InOrder(
			s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil),
			s.m.resources.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rsb.ID).Return(rsb.BuildDomain(), nil),
			s.m.reservations.EXPECT().LockSpace(gomock.Any(), gomock.Any(), rb.SpaceID).Return(nil),
			s.m.reservations.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			s.m.resources.EXPECT().UpdateQuantity(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, rs *resource.Resource) error {
					s.Equal(int32(3), rs.Quantity())
					return nil
				}),
			s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.BuildView(), nil),
			s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil),
		)

		policy := commands.BookingPolicy{RestoreInventoryOnRelease: true}
		_, err := s.commands(policy).Amend(ctx, rb.ID, commands.AmendReservationInput{
			Status:  ptr.Of("CLOSED"),
			EndDate: &newEnd,
		})

		s.NoError(err)
	})

	s.Run("error: cancel through amend", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("CANCELED")})

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(reservation.ErrCancelThroughAmend.Error(), err.Error())
	})

	s.Run("error: unknown reservation", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).
			Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.commands(commands.BookingPolicy{}).Amend(ctx, rb.ID, commands.AmendReservationInput{Status: ptr.Of("APPROVED")})

		s.True(errs.Is(err, errs.ErrNotFound))
		s.Equal("reservation not found", err.Error())
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("success: open reservation is canceled and stock is kept by default", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				s.Equal(reservation.StatusCanceled, res.Status())
				return nil
			})
		s.m.resources.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.WithStatus(reservation.StatusCanceled).BuildView(), nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.commands(commands.BookingPolicy{}).Cancel(ctx, rb.ID)

		s.Require().NoError(err)
		s.Equal("CANCELED", got.Status)
	})

	s.Run("success: the committed view is written to the cache", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		view := rb.WithStatus(reservation.StatusCanceled).BuildView()
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(view, nil)
		s.cache.EXPECT().Set(gomock.Any(), view).Return(nil)
		s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Cancel(ctx, rb.ID)

		s.NoError(err)
	})

	s.Run("success: a cache failure drops the entry and does not fail the cancel", func() {
		rb := builder.NewReservationBuilder()
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.m.reads.EXPECT().ReservationView(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		s.cache.EXPECT().Invalidate(gomock.Any(), rb.ID).Return(errors.New("redis down"))

		_, err := s.commands(commands.BookingPolicy{}).Cancel(ctx, rb.ID)

		s.NoError(err)
	})

	s.Run("error: approved reservation cannot be canceled", func() {
		rb := builder.NewReservationBuilder().WithStatus(reservation.StatusApproved)
		s.m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		s.m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands(commands.BookingPolicy{}).Cancel(ctx, rb.ID)

		s.True(errs.Is(err, errs.ErrValidation))
		s.Equal(reservation.ErrCancelRequiresOpen.Error(), err.Error())
	})
}
