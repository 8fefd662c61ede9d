package memory

import (
	"context"
	"sync"

	"github.com/mkadiri/dentassist-api/internal/model"
)

// SettingsRepository holds the process-lifetime settings singleton.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings model.Settings
}

func NewSettingsRepository(defaults model.Settings) *SettingsRepository {
	return &SettingsRepository{settings: defaults}
}

func (r *SettingsRepository) Get(_ context.Context) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := r.settings
	return &settings, nil
}

func (r *SettingsRepository) Update(_ context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = *settings
	return nil
}
