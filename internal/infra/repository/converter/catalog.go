package converter

import (
	"fmt"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/domain/client"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/space"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/pgconv"
)

func SpaceToInsertParams(sp *space.Space) sqlc.InsertSpaceParams {
	return sqlc.InsertSpaceParams{
		ID:          sp.ID(),
		Name:        sp.Name(),
		Description: sp.Description(),
		Capacity:    sp.Capacity(),
		IsActive:    sp.Active().Int16(),
		CreatedAt:   pgconv.TimeToPgtype(sp.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(sp.UpdatedAt()),
	}
}

func SpaceFromRow(row sqlc.Spaces) (*space.Space, error) {
	flag, err := activity.NewFlag(int(row.IsActive))
	if err != nil {
		return nil, fmt.Errorf("space %s: %w", row.ID, err)
	}
	return space.ReconstructSpace(
		row.ID,
		row.Name,
		row.Description,
		row.Capacity,
		flag,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ResourceToInsertParams(rs *resource.Resource) sqlc.InsertResourceParams {
	return sqlc.InsertResourceParams{
		ID:          rs.ID(),
		Name:        rs.Name(),
		Description: rs.Description(),
		Quantity:    rs.Quantity(),
		IsActive:    rs.Active().Int16(),
		CreatedAt:   pgconv.TimeToPgtype(rs.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(rs.UpdatedAt()),
	}
}

func ResourceFromRow(row sqlc.Resources) (*resource.Resource, error) {
	flag, err := activity.NewFlag(int(row.IsActive))
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", row.ID, err)
	}
	return resource.ReconstructResource(
		row.ID,
		row.Name,
		row.Description,
		row.Quantity,
		flag,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ClientToInsertParams(cl *client.Client) sqlc.InsertClientParams {
	return sqlc.InsertClientParams{
		ID:          cl.ID(),
		Name:        cl.Name(),
		Cpf:         cl.CPF().String(),
		Email:       cl.Email(),
		Phone:       cl.Phone(),
		DateOfBirth: pgconv.DateToPgtype(cl.DateOfBirth()),
		IsActive:    cl.Active().Int16(),
		CreatedAt:   pgconv.TimeToPgtype(cl.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(cl.UpdatedAt()),
	}
}

func ClientFromRow(row sqlc.Clients) (*client.Client, error) {
	flag, err := activity.NewFlag(int(row.IsActive))
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", row.ID, err)
	}
	cpf, err := client.NewCPF(row.Cpf)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", row.ID, err)
	}
	return client.ReconstructClient(
		row.ID,
		row.Name,
		cpf,
		row.Email,
		row.Phone,
		pgconv.DateFromPgtype(row.DateOfBirth),
		flag,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
