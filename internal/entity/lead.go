package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead status values. A lead is nurtured only while active.
const (
	LeadStatusActive    = "active"
	LeadStatusConverted = "converted"
)

type Lead struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Source      string     `json:"source"`
	LeadMagnet  string     `json:"lead_magnet,omitempty"`
	Status      string     `json:"status"` // active, converted
	LastEngaged time.Time  `json:"last_engaged"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	// Upsert inserts by email or, on conflict, refreshes last_engaged and
	// fills name fields only when newly provided. The struct is populated
	// with the stored row either way; Created reports which branch ran.
	Upsert(ctx context.Context, lead *Lead) (created bool, err error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	MarkConverted(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
