package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/settings"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsCommandHandler_Success(t *testing.T) {
	ctx := t.Context()

	repo := &MockSettingsRepository{}
	var saved *settings.Settings
	repo.On("Save", ctx, mock.AnythingOfType("*settings.Settings")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*settings.Settings)
	}).Return(nil)

	handler := commands.NewUpdateSettingsCommandHandler(repo)
	cmd := commands.NewUpdateSettingsCommand(12.5, 50.00, 45)

	require.NoError(t, handler.Handle(ctx, cmd))
	require.NotNil(t, saved)
	assert.InDelta(t, 12.5, saved.TaxRate(), 0.0001)
	assert.Equal(t, int64(5000), saved.DeliveryFee().Cents())
	assert.Equal(t, 45, saved.DeliveryTimeMinutes())
}

func TestUpdateSettingsCommandHandler_AllViolationsReported(t *testing.T) {
	ctx := t.Context()

	repo := &MockSettingsRepository{}
	handler := commands.NewUpdateSettingsCommandHandler(repo)
	cmd := commands.NewUpdateSettingsCommand(75, -10, 0)

	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateSettingsCommandHandler_BoundaryTaxRate(t *testing.T) {
	ctx := t.Context()

	repo := &MockSettingsRepository{}
	repo.On("Save", ctx, mock.AnythingOfType("*settings.Settings")).Return(nil)

	handler := commands.NewUpdateSettingsCommandHandler(repo)

	require.NoError(t, handler.Handle(ctx, commands.NewUpdateSettingsCommand(0, 0, 1)))
	require.NoError(t, handler.Handle(ctx, commands.NewUpdateSettingsCommand(50, 0, 1)))
}
