package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// ListingService fetches pages of the read-only listings: movements,
// purchases, suppliers, clients, reports, alerts and projections.
type ListingService struct {
	client   client.Client
	session  SessionStore
	pageSize int
}

func NewListingService(c client.Client, s SessionStore, pageSize int) *ListingService {
	return &ListingService{client: c, session: s, pageSize: pageSize}
}

// Fetch decodes one page of resource into out, a *models.Page[T].
func (l *ListingService) Fetch(ctx context.Context, resource models.Resource, q models.ListQuery, out any) error {
	if err := l.client.List(ctx, resource, q.Normalize(l.pageSize), out); err != nil {
		return fmt.Errorf("%s: %w", resource, endOnUnauthorized(ctx, l.session, err))
	}
	return nil
}

// FetchPage is the typed form of ListingService.Fetch.
func FetchPage[T any](ctx context.Context, l *ListingService, resource models.Resource, q models.ListQuery) (*models.Page[T], error) {
	var page models.Page[T]
	if err := l.Fetch(ctx, resource, q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
