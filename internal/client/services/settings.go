package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stockdesk/internal/dbx"
)

const (
	preferencesKey   = "settings.preferences"
	notificationsKey = "settings.notifications"
)

// SettingsService keeps the user's preferences and notification toggles in
// the local metadata store. Nothing here talks to the API.
type SettingsService interface {
	Preferences(ctx context.Context) (models.Preferences, error)
	SetPreference(ctx context.Context, key, value string) (models.Preferences, error)
	Notifications(ctx context.Context) (models.NotificationSettings, error)
	ToggleNotification(ctx context.Context, name string) (models.NotificationSettings, error)
	Reset(ctx context.Context) error
}

var (
	ErrUnknownPreference   = errors.New("unknown preference")
	ErrUnknownNotification = errors.New("unknown notification channel")
)

type settingsService struct {
	db        *sql.DB
	validator Validator
}

func NewSettingsService(db *sql.DB, v Validator) SettingsService {
	return &settingsService{db: db, validator: v}
}

func (s *settingsService) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *settingsService) Preferences(ctx context.Context) (models.Preferences, error) {
	p := models.DefaultPreferences()
	if _, err := metadata.GetJSON(ctx, s.repo(), preferencesKey, &p); err != nil {
		return models.DefaultPreferences(), err
	}
	return p, nil
}

func (s *settingsService) SetPreference(ctx context.Context, key, value string) (models.Preferences, error) {
	p, err := s.Preferences(ctx)
	if err != nil {
		return p, err
	}
	if !p.Set(key, value) {
		return p, fmt.Errorf("%w: %s", ErrUnknownPreference, key)
	}
	if err := s.validator.Validate(p); err != nil {
		return p, err
	}
	if err := metadata.SetJSON(ctx, s.repo(), preferencesKey, p); err != nil {
		return p, err
	}
	return p, nil
}

func (s *settingsService) Notifications(ctx context.Context) (models.NotificationSettings, error) {
	n := models.DefaultNotificationSettings()
	if _, err := metadata.GetJSON(ctx, s.repo(), notificationsKey, &n); err != nil {
		return models.DefaultNotificationSettings(), err
	}
	return n, nil
}

// ToggleNotification flips one channel. The read and the write share a
// transaction.
func (s *settingsService) ToggleNotification(ctx context.Context, name string) (models.NotificationSettings, error) {
	var out models.NotificationSettings

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		n := models.DefaultNotificationSettings()
		if _, err := metadata.GetJSON(ctx, repo, notificationsKey, &n); err != nil {
			return err
		}
		if !n.Toggle(name) {
			return fmt.Errorf("%w: %s", ErrUnknownNotification, name)
		}
		if err := metadata.SetJSON(ctx, repo, notificationsKey, n); err != nil {
			return err
		}
		out = n
		return nil
	})
	return out, err
}

// Reset restores the defaults by dropping both settings entries.
func (s *settingsService) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, preferencesKey); err != nil {
			return err
		}
		return repo.Delete(ctx, notificationsKey)
	})
}
