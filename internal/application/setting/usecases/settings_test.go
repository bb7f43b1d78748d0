package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/setting"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type mockSettingRepository struct {
	FindFunc   func(ctx context.Context) (*setting.SystemSettings, error)
	SaveFunc   func(ctx context.Context, s *setting.SystemSettings) error
	UpdateFunc func(ctx context.Context, s *setting.SystemSettings) error
}

func (m *mockSettingRepository) Find(ctx context.Context) (*setting.SystemSettings, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx)
	}
	return nil, errors.NewNotFoundError("settings not found")
}

func (m *mockSettingRepository) Save(ctx context.Context, s *setting.SystemSettings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) Update(ctx context.Context, s *setting.SystemSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestGetSettingsUseCase_Execute_LazyCreate(t *testing.T) {
	created := false
	repo := &mockSettingRepository{
		SaveFunc: func(ctx context.Context, s *setting.SystemSettings) error {
			created = true
			return nil
		},
	}

	uc := NewGetSettingsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, created, "first read creates the row")
	assert.Equal(t, setting.DefaultAutoCloseDays, result.AutoCloseDays)
}

func TestGetSettingsUseCase_Execute_ExistingRow(t *testing.T) {
	existing, err := setting.ReconstructSettings(1, 14, "logo.png")
	require.NoError(t, err)

	repo := &mockSettingRepository{
		FindFunc: func(ctx context.Context) (*setting.SystemSettings, error) { return existing, nil },
		SaveFunc: func(ctx context.Context, s *setting.SystemSettings) error {
			t.Fatal("existing row must not be recreated")
			return nil
		},
	}

	uc := NewGetSettingsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 14, result.AutoCloseDays)
	assert.Equal(t, "logo.png", result.LogoPath)
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	existing, err := setting.ReconstructSettings(1, 7, "")
	require.NoError(t, err)

	repo := &mockSettingRepository{
		FindFunc: func(ctx context.Context) (*setting.SystemSettings, error) { return existing, nil },
	}

	days := 30
	uc := NewUpdateSettingsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateSettingsCommand{
		ActorRole:     authorization.RoleAdministrator,
		AutoCloseDays: &days,
	})

	require.NoError(t, err)
	assert.Equal(t, 30, result.AutoCloseDays)
}

func TestUpdateSettingsUseCase_Execute_InvalidDays(t *testing.T) {
	existing, err := setting.ReconstructSettings(1, 7, "")
	require.NoError(t, err)

	repo := &mockSettingRepository{
		FindFunc: func(ctx context.Context) (*setting.SystemSettings, error) { return existing, nil },
	}

	days := 0
	uc := NewUpdateSettingsUseCase(repo, &mockLogger{})
	_, err = uc.Execute(context.Background(), UpdateSettingsCommand{
		ActorRole:     authorization.RoleAdministrator,
		AutoCloseDays: &days,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSettingsUseCase_Execute_NonAdminForbidden(t *testing.T) {
	uc := NewUpdateSettingsUseCase(&mockSettingRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), UpdateSettingsCommand{
		ActorRole: authorization.RoleTechnician,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
