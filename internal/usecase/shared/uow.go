package shared

import (
	"context"

	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Spaces() SpaceRepository
	Resources() ResourceRepository
	Clients() ClientRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are read models resolved inside the write transaction, so a
// command can return what it just wrote.
type CommandReads interface {
	ReservationView(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

// OverlapQuery asks for reservations on SpaceID whose slot intersects Slot.
type OverlapQuery struct {
	SpaceID        uuid.UUID
	Slot           reservation.TimeSlot
	ExcludeID      *uuid.UUID
	IgnoreTerminal bool
}

type ReservationRepository interface {
	// LockSpace serializes bookings on one space until the transaction ends.
	LockSpace(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID) error
	HasOverlap(ctx context.Context, tx sqlc.DBTX, q OverlapQuery) (bool, error)
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type SpaceRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*space.Space, error)
	Create(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error
	Update(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error
	UpdateActive(ctx context.Context, tx sqlc.DBTX, sp *space.Space) error
}

type ResourceRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
	Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
	Update(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
	UpdateActive(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error
}

type ClientRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*client.Client, error)
	Create(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error
	Update(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error
	UpdateActive(ctx context.Context, tx sqlc.DBTX, cl *client.Client) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
