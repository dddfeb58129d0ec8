package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/metrics"
	"github.com/fairyhunter13/subscription-admin/internal/model"
)

// DispatchRecorder stores sent notifications.
type DispatchRecorder interface {
	Record(ctx context.Context, d *model.Dispatch, recipients []string) error
}

// NotificationService sends notifications through the remote API and records
// every accepted send.
type NotificationService struct {
	upstream UpstreamInterface
	recorder DispatchRecorder
	now      func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(upstream UpstreamInterface, recorder DispatchRecorder) *NotificationService {
	return &NotificationService{upstream: upstream, recorder: recorder, now: time.Now}
}

// Send e-mails the given users. An empty UserIDs list addresses every customer.
// Returns ErrNoRecipients when nobody would receive the notification.
func (s *NotificationService) Send(ctx context.Context, req *model.SendNotificationRequest) (*model.SendResult, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	audience := model.AudienceCustom
	recipients := uniqueIDs(req.UserIDs)
	if len(req.UserIDs) == 0 {
		res, err := s.upstream.ListCustomers(ctx)
		if err != nil {
			return nil, mutationError("load recipients", err)
		}
		recipients = customerIDs(res.Users, model.AudienceAll)
		audience = model.AudienceAll
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	payload := &model.SendNotificationRequest{UserIDs: recipients, Title: req.Title, Text: req.Text}
	if err := s.upstream.SendEmail(ctx, payload); err != nil {
		return nil, mutationError("send notification", err)
	}

	return s.record(ctx, req.Title, req.Text, audience, recipients), nil
}

// SendBySubscription e-mails every customer of a subscription tier, or all
// customers for the "all" audience.
func (s *NotificationService) SendBySubscription(ctx context.Context, req *model.SendBySubscriptionRequest) (*model.SendResult, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	audience := strings.ToLower(req.SubscriptionType)
	payload := &model.SendBySubscriptionRequest{SubscriptionType: audience, Title: req.Title, Text: req.Text}
	if err := s.upstream.SendEmailBySubscription(ctx, payload); err != nil {
		return nil, mutationError("send notification", err)
	}

	// The remote API resolves the tier itself; the local log is best effort.
	var recipients []string
	res, err := s.upstream.ListCustomers(ctx)
	if err != nil {
		log.Warn().Err(err).Str("audience", audience).Msg("failed to resolve recipients for dispatch log")
	} else {
		recipients = customerIDs(res.Users, audience)
	}

	return s.record(ctx, req.Title, req.Text, audience, recipients), nil
}

// record logs an accepted send. The e-mail is already out, so a storage
// failure is logged and reported as Recorded=false instead of an error.
func (s *NotificationService) record(ctx context.Context, title, text, audience string, recipients []string) *model.SendResult {
	metrics.NotificationsDispatched.WithLabelValues(audience).Inc()

	d := &model.Dispatch{
		ID:             uuid.NewString(),
		Title:          title,
		Text:           text,
		Audience:       audience,
		RecipientCount: len(recipients),
		CreatedAt:      s.now().UTC(),
	}
	result := &model.SendResult{
		DispatchID:     d.ID,
		Audience:       audience,
		RecipientCount: d.RecipientCount,
		Recorded:       true,
	}

	if err := s.recorder.Record(context.WithoutCancel(ctx), d, recipients); err != nil {
		log.Error().
			Err(err).
			Str("dispatch_id", d.ID).
			Str("audience", audience).
			Msg("failed to record dispatch")
		result.DispatchID = ""
		result.Recorded = false
		return result
	}

	log.Info().
		Str("dispatch_id", d.ID).
		Str("audience", audience).
		Int("recipients", d.RecipientCount).
		Msg("notification dispatched")
	return result
}

// customerIDs returns the ids of customers in the audience, skipping blanks.
func customerIDs(customers []model.Customer, audience string) []string {
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		if c.ID == "" {
			continue
		}
		if audience != model.AudienceAll && !strings.EqualFold(c.Subscription, audience) {
			continue
		}
		ids = append(ids, c.ID)
	}
	return uniqueIDs(ids)
}

// uniqueIDs trims ids and drops blanks and duplicates, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
