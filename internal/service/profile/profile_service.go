package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/greenthumb/internal/domain/models"
	"github.com/mamadbah2/greenthumb/internal/latency"
	"github.com/mamadbah2/greenthumb/internal/store"
)

// AvatarURL is where every uploaded avatar ends up.
const AvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"

// Service manages the single gardener profile.
type Service struct {
	profile *store.Singleton[models.Profile]
	delay   latency.Simulator
	logger  *zap.Logger
}

// NewService builds the profile service over the single gardener profile.
func NewService(profile *store.Singleton[models.Profile], delay latency.Simulator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Service{profile: profile, delay: delay, logger: logger}
}

// Get returns the gardener profile.
func (s *Service) Get(ctx context.Context) (models.Profile, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.Profile{}, err
	}
	return s.profile.Get(), nil
}

// Update merges patch into the profile.
func (s *Service) Update(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	if err := s.delay.Wait(ctx, latency.Heavy); err != nil {
		return models.Profile{}, err
	}
	return s.profile.Update(patch.Apply), nil
}

// UploadAvatar pretends to store the image and records the hosted URL on
// the profile.
func (s *Service) UploadAvatar(ctx context.Context, image []byte) (string, error) {
	if err := s.delay.Wait(ctx, latency.Heavy); err != nil {
		return "", err
	}

	s.profile.Update(func(p models.Profile) models.Profile {
		url := AvatarURL
		p.Avatar = &url
		return p
	})
	s.logger.Debug("avatar uploaded", zap.Int("bytes", len(image)))
	return AvatarURL, nil
}

// UpdatePreferences merges patch into the notification preferences.
func (s *Service) UpdatePreferences(ctx context.Context, patch models.PreferencesPatch) (models.Preferences, error) {
	if err := s.delay.Wait(ctx, latency.Read); err != nil {
		return models.Preferences{}, err
	}

	updated := s.profile.Update(func(p models.Profile) models.Profile {
		p.Preferences = patch.Apply(p.Preferences)
		return p
	})
	return updated.Preferences, nil
}

// DeleteAccount always succeeds and keeps the profile in place.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if err := s.delay.Wait(ctx, latency.Heavy); err != nil {
		return err
	}
	s.logger.Info("account deletion requested")
	return nil
}
