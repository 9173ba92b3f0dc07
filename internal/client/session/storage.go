package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/stockdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stockdesk/internal/common"
)

// Storage persists the raw bearer token. Load returns "" when nothing is
// stored.
type Storage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MetadataStorage keeps the token in the local metadata table.
type MetadataStorage struct {
	repo metadata.Repository
}

func NewMetadataStorage(repo metadata.Repository) *MetadataStorage {
	return &MetadataStorage{repo: repo}
}

func (m *MetadataStorage) Load(ctx context.Context) (string, error) {
	tok, _, err := metadata.GetString(ctx, m.repo, common.AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return tok, nil
}

func (m *MetadataStorage) Save(ctx context.Context, token string) error {
	if err := m.repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (m *MetadataStorage) Clear(ctx context.Context) error {
	if err := m.repo.Delete(ctx, common.AccessTokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// MemoryStorage keeps the token in process memory only.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStorage(token string) *MemoryStorage {
	return &MemoryStorage{token: token}
}

func (m *MemoryStorage) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStorage) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
