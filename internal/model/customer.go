package model

import (
	"encoding/json"
	"time"
)

// Subscription tiers used by customers and notification audiences.
const (
	SubscriptionFree = "free"
	SubscriptionPaid = "paid"
	AudienceAll      = "all"
	AudienceCustom   = "custom"
)

// Customer represents a registered user of the subscription product.
type Customer struct {
	ID                   string    `json:"_id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Avatar               string    `json:"avatar,omitempty"`
	Subscription         string    `json:"subscription"`
	SubscriptionDuration int       `json:"subscriptionDuration"`
	CreatedAt            time.Time `json:"createdAt"`
}

// UnmarshalJSON decodes a customer, leaving CreatedAt zero when the remote
// timestamp is missing, empty or malformed. One odd row must not fail the list.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.CreatedAt = parseTimestamp(aux.CreatedAt)
	return nil
}

func parseTimestamp(raw json.RawMessage) time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CustomerCounts is the summary returned next to the customer list.
type CustomerCounts struct {
	All  int `json:"all"`
	Free int `json:"free"`
	Paid int `json:"paid"`
}

// CustomerList is the remote payload of GET /user.
type CustomerList struct {
	Users  []Customer      `json:"users"`
	Counts *CustomerCounts `json:"counts"`
}

// CustomerPage is the API response for customer list screens.
type CustomerPage struct {
	Items      []Customer     `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Counts     CustomerCounts `json:"counts"`
}
