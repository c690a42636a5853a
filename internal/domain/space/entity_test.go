//go:build unit

package space_test

import (
	"strings"
	"testing"
	"time"

	"facility-booking/internal/domain/activity"
	"facility-booking/internal/domain/space"
	"facility-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpace(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spaceName string
		desc      string
		capacity  int32
		wantErr   error
	}{
		{name: "valid", spaceName: "Auditorium", desc: "Main hall", capacity: 100},
		{name: "empty name", spaceName: "", desc: "Main hall", capacity: 100, wantErr: space.ErrEmptyName},
		{name: "name too long", spaceName: strings.Repeat("x", space.MaxNameLength+1), desc: "Main hall", capacity: 100, wantErr: space.ErrNameTooLong},
		{name: "empty description", spaceName: "Auditorium", desc: " ", capacity: 100, wantErr: space.ErrEmptyDesc},
		{name: "zero capacity", spaceName: "Auditorium", desc: "Main hall", capacity: 0, wantErr: space.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := space.NewSpace(tt.spaceName, tt.desc, tt.capacity, now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, activity.Active, sp.Active())
			assert.Equal(t, tt.capacity, sp.Capacity())
			assert.True(t, now.Equal(sp.CreatedAt()))
		})
	}
}

func TestSpace_Deactivate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sp, err := space.NewSpace("Auditorium", "Main hall", 10, now)
	require.NoError(t, err)

	sp.Deactivate(now.Add(time.Hour))

	assert.ErrorIs(t, sp.EnsureActive(), space.ErrInactive)
	assert.True(t, now.Add(time.Hour).Equal(sp.UpdatedAt()))
}

func TestSpace_Update(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	tests := []struct {
		name    string
		changes space.Changes
		wantErr error
		check   func(t *testing.T, sp *space.Space)
	}{
		{
			name:    "capacity only",
			changes: space.Changes{Capacity: ptr.Of(int32(40))},
			check: func(t *testing.T, sp *space.Space) {
				assert.Equal(t, int32(40), sp.Capacity())
				assert.Equal(t, "Auditorium", sp.Name())
			},
		},
		{
			name:    "name is trimmed",
			changes: space.Changes{Name: ptr.Of("  Hall B ")},
			check: func(t *testing.T, sp *space.Space) {
				assert.Equal(t, "Hall B", sp.Name())
				assert.Equal(t, "Main hall", sp.Description())
			},
		},
		{name: "empty name", changes: space.Changes{Name: ptr.Of(" ")}, wantErr: space.ErrEmptyName},
		{name: "empty description", changes: space.Changes{Description: ptr.Of("")}, wantErr: space.ErrEmptyDesc},
		{name: "zero capacity", changes: space.Changes{Capacity: ptr.Of(int32(0))}, wantErr: space.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := space.NewSpace("Auditorium", "Main hall", 10, now)
			require.NoError(t, err)

			err = sp.Update(tt.changes, later)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Auditorium", sp.Name())
				assert.Equal(t, int32(10), sp.Capacity())
				assert.True(t, now.Equal(sp.UpdatedAt()))
				return
			}
			require.NoError(t, err)
			assert.True(t, later.Equal(sp.UpdatedAt()))
			tt.check(t, sp)
		})
	}
}
