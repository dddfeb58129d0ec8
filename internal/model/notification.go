package model

import "time"

// NotificationHistory is one row of the notification history screen.
type NotificationHistory struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Last   string `json:"last"`
	Plan   string `json:"plan"`
	Count  int    `json:"count"`
}

// HistoryPage is the API response for GET /api/notifications/history
type HistoryPage struct {
	Items      []NotificationHistory `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

// SendNotificationRequest is the DTO for sending a notification to users.
// An empty UserIDs list addresses every customer.
type SendNotificationRequest struct {
	UserIDs []string `json:"userId" validate:"omitempty,dive,required,notblank"`
	Title   string   `json:"title" validate:"required,notblank,max=120"`
	Text    string   `json:"text" validate:"required,notblank,max=2000"`
}

// SendBySubscriptionRequest is the DTO for sending a notification to a subscription tier.
type SendBySubscriptionRequest struct {
	SubscriptionType string `json:"subscriptionType" validate:"required,audience"`
	Title            string `json:"title" validate:"required,notblank,max=120"`
	Text             string `json:"text" validate:"required,notblank,max=2000"`
}

// Dispatch is a locally recorded notification send.
type Dispatch struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Text           string    `json:"text"`
	Audience       string    `json:"audience"`
	RecipientCount int       `json:"recipient_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// DispatchResponse is the API response DTO for GET /api/dispatches/:id
type DispatchResponse struct {
	Dispatch
	Recipients []string `json:"recipients"`
}

// DispatchPage is the API response for GET /api/dispatches
type DispatchPage struct {
	Items      []Dispatch `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// SendResult is the API response for notification sends.
type SendResult struct {
	DispatchID     string `json:"dispatch_id,omitempty"`
	Audience       string `json:"audience"`
	RecipientCount int    `json:"recipient_count"`
	Recorded       bool   `json:"recorded"`
}
