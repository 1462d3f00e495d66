package resource

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Unit is one allocable unit of an external resource, e.g. an exam coupon.
// Units are created by inventory import and never physically deleted.
type Unit struct {
	id           uuid.UUID
	provider     string
	serviceCode  ServiceCode
	resourceCode string
	status       Status
	sentAt       *time.Time
	expiresAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUnit builds an imported unit. The provider is derived from the service
// code so a unit can never be filed under the wrong provider.
func NewUnit(code ServiceCode, resourceCode string, status Status, sentAt, expiresAt *time.Time, now time.Time) (*Unit, error) {
	resourceCode = strings.TrimSpace(resourceCode)
	if resourceCode == "" {
		return nil, ErrEmptyResourceCode
	}
	if _, ok := serviceCodeProviders[code]; !ok {
		return nil, ErrUnknownServiceCode
	}
	if _, ok := statusRank[status]; !ok {
		return nil, ErrUnknownStatus
	}

	return &Unit{
		id:           uuid.New(),
		provider:     code.Provider(),
		serviceCode:  code,
		resourceCode: resourceCode,
		status:       status,
		sentAt:       sentAt,
		expiresAt:    expiresAt,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUnit(
	id uuid.UUID,
	provider string,
	code ServiceCode,
	resourceCode string,
	status Status,
	sentAt, expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:           id,
		provider:     provider,
		serviceCode:  code,
		resourceCode: resourceCode,
		status:       status,
		sentAt:       sentAt,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// TransitionTo enforces the forward-only lifecycle.
func (u *Unit) TransitionTo(next Status, now time.Time) error {
	if _, ok := statusRank[next]; !ok {
		return ErrUnknownStatus
	}
	if u.status.IsTerminal() {
		return ErrTerminalResource
	}
	if statusRank[next] <= statusRank[u.status] {
		return ErrBackwardTransition
	}
	u.status = next
	u.updatedAt = now
	return nil
}

func (u *Unit) MarkSent(now time.Time) error {
	if err := u.TransitionTo(StatusSent, now); err != nil {
		return err
	}
	t := now
	u.sentAt = &t
	return nil
}

// ExpirableAt reports whether the daily sweep should expire this unit.
func (u *Unit) ExpirableAt(now time.Time) bool {
	if u.status.IsTerminal() {
		return false
	}
	return u.expiresAt != nil && u.expiresAt.Before(now)
}

func (u *Unit) ID() uuid.UUID            { return u.id }
func (u *Unit) Provider() string         { return u.provider }
func (u *Unit) ServiceCode() ServiceCode { return u.serviceCode }
func (u *Unit) ResourceCode() string     { return u.resourceCode }
func (u *Unit) Status() Status           { return u.status }
func (u *Unit) SentAt() *time.Time       { return u.sentAt }
func (u *Unit) ExpiresAt() *time.Time    { return u.expiresAt }
func (u *Unit) CreatedAt() time.Time     { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time     { return u.updatedAt }
