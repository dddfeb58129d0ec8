package service

import (
	"context"

	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// HistoryService serves the notification history screen.
type HistoryService struct {
	upstream UpstreamInterface
	perPage  int
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(upstream UpstreamInterface, perPage int) *HistoryService {
	return &HistoryService{upstream: upstream, perPage: perPage}
}

// List returns one page of notification history rows.
// A failed fetch yields an empty page; List never returns an error.
func (s *HistoryService) List(ctx context.Context, q model.ListQuery) (*model.HistoryPage, error) {
	history, err := s.upstream.ListNotificationHistory(ctx)
	if err != nil {
		degrade("notification_history", err)
		history = nil
	}

	items, pagination := paginate(history, HistoryOptions(s.perPage), q)
	return &model.HistoryPage{Items: items, Pagination: pagination}, nil
}
