package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/shared/constants"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType apperrors.ErrorType
	}{
		{"not found", checkout.ErrPilotNotFound, apperrors.ErrorTypeNotFound},
		{"wrapped not found", errors.Join(errors.New("ctx"), checkout.ErrCheckoutNotFound), apperrors.ErrorTypeNotFound},
		{"exists", checkout.ErrCheckoutExists, apperrors.ErrorTypeConflict},
		{"invalid", checkout.ErrInvalidIdent, apperrors.ErrorTypeValidation},
		{"already app error", apperrors.NewForbiddenError("no"), apperrors.ErrorTypeForbidden},
		{"unknown", errors.New("disk full"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAppError(tt.err, "do thing")
			appErr := apperrors.GetAppError(got)
			if tt.wantType == "" {
				assert.Nil(t, appErr)
				assert.ErrorIs(t, got, tt.err)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
		})
	}
}

func TestAdminIndexUseCase_Execute(t *testing.T) {
	perms := mapPermissions{
		"instructor:pilots:read":         true,
		"instructor:airstrips:read":      true,
		"instructor:aircraft-types:read": true,
		"instructor:checkouts:read":      true,
		"instructor:checkouts:write":     true,
	}

	result, err := NewAdminIndexUseCase(perms, "/emerald").
		Execute(context.Background(), AdminIndexQuery{Username: "cfi", Role: constants.RoleInstructor})
	require.NoError(t, err)

	require.Len(t, result.Resources, 4)
	assert.Equal(t, "/emerald/pilots/", result.Resources[0].Path)
	assert.False(t, result.Resources[0].CanWrite)
	assert.Equal(t, constants.ResourceCheckouts, result.Resources[3].Name)
	assert.True(t, result.Resources[3].CanWrite)

	empty, err := NewAdminIndexUseCase(perms, "/emerald").
		Execute(context.Background(), AdminIndexQuery{Username: "x", Role: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, empty.Resources)
}

func TestManagePilotsUseCase_Create(t *testing.T) {
	repo := &mockPilotRepository{}
	uc := NewManagePilotsUseCase(repo, logger.Nop())

	created, err := uc.Create(context.Background(), CreatePilotCommand{Username: "amy", FirstName: "Amy", LastName: "Baker"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Baker, Amy", created.Label)

	_, err = uc.Create(context.Background(), CreatePilotCommand{Username: "amy", FirstName: "Amy", LastName: "Baker"})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Create(context.Background(), CreatePilotCommand{Username: "bad name", LastName: "X"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestManagePilotsUseCase_DeleteMissing(t *testing.T) {
	uc := NewManagePilotsUseCase(&mockPilotRepository{}, logger.Nop())
	err := uc.Delete(context.Background(), 42)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestManageAirstripsUseCase_AttachToBase(t *testing.T) {
	repo := &mockAirstripRepository{
		airstrips: map[uint]*checkout.Airstrip{
			1: checkout.ReconstructAirstrip(1, "WAJJ", "Sentani", true),
			2: checkout.ReconstructAirstrip(2, "WAJW", "Wamena", false),
		},
	}
	uc := NewManageAirstripsUseCase(repo, newTestTxManager(t), logger.Nop())

	tests := []struct {
		name        string
		cmd         BaseAttachmentCommand
		wantErrType apperrors.ErrorType
	}{
		{"attach to base", BaseAttachmentCommand{AirstripID: 2, BaseID: 1}, ""},
		{"target is not a base", BaseAttachmentCommand{AirstripID: 1, BaseID: 2}, apperrors.ErrorTypeValidation},
		{"self attach", BaseAttachmentCommand{AirstripID: 1, BaseID: 1}, apperrors.ErrorTypeValidation},
		{"missing airstrip", BaseAttachmentCommand{AirstripID: 9, BaseID: 1}, apperrors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.AttachToBase(context.Background(), tt.cmd)
			if tt.wantErrType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrType, apperrors.GetAppError(err).Type)
				return
			}
			require.NoError(t, err)
		})
	}

	assert.Equal(t, [][2]uint{{2, 1}}, repo.attached)
}

func TestManageCheckoutsUseCase_Create(t *testing.T) {
	pilots := &mockPilotRepository{pilots: map[uint]*checkout.Pilot{
		1: checkout.ReconstructPilot(1, "amy", "Amy", "Baker"),
	}}
	airstrips := &mockAirstripRepository{airstrips: map[uint]*checkout.Airstrip{
		2: checkout.ReconstructAirstrip(2, "WAJW", "Wamena", false),
	}}
	types := &mockAircraftTypeRepository{types: map[uint]*checkout.AircraftType{
		3: checkout.ReconstructAircraftType(3, "PC6"),
	}}

	t.Run("success", func(t *testing.T) {
		uc := NewManageCheckoutsUseCase(pilots, airstrips, types, &mockCheckoutRepository{}, newTestTxManager(t), logger.Nop())

		result, err := uc.Create(context.Background(), CreateCheckoutCommand{PilotID: 1, AirstripID: 2, AircraftTypeID: 3})
		require.NoError(t, err)
		assert.Equal(t, uint(10), result.ID)
		assert.Equal(t, "amy", result.Pilot.Username)
		assert.Equal(t, "WAJW", result.Airstrip.Ident)
		assert.Equal(t, "PC6", result.AircraftType.Name)
	})

	t.Run("unknown aircraft type", func(t *testing.T) {
		uc := NewManageCheckoutsUseCase(pilots, airstrips, types, &mockCheckoutRepository{}, newTestTxManager(t), logger.Nop())

		_, err := uc.Create(context.Background(), CreateCheckoutCommand{PilotID: 1, AirstripID: 2, AircraftTypeID: 99})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := &mockCheckoutRepository{
			CreateFunc: func(ctx context.Context, c *checkout.Checkout) error { return checkout.ErrCheckoutExists },
		}
		uc := NewManageCheckoutsUseCase(pilots, airstrips, types, repo, newTestTxManager(t), logger.Nop())

		_, err := uc.Create(context.Background(), CreateCheckoutCommand{PilotID: 1, AirstripID: 2, AircraftTypeID: 3})
		assert.True(t, apperrors.IsConflictError(err))
	})
}
