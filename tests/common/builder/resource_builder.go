//go:build unit || e2e

package builder

import (
	"time"

	"talent-services/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID           uuid.UUID
	ServiceCode  resource.ServiceCode
	ResourceCode string
	Status       resource.Status
	SentAt       *time.Time
	ExpiresAt    *time.Time
	Now          time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(30 * 24 * time.Hour)
	return &ResourceBuilder{
		ID:           uuid.New(),
		ServiceCode:  resource.CodeDuolingoTestProctored,
		ResourceCode: "ACC123456",
		Status:       resource.StatusAvailable,
		ExpiresAt:    &expires,
		Now:          now,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) WithStatus(s resource.Status) *ResourceBuilder {
	b.Status = s
	return b
}

func (b *ResourceBuilder) WithExpiresAt(t *time.Time) *ResourceBuilder {
	b.ExpiresAt = t
	return b
}

func (b *ResourceBuilder) BuildDomain() (*resource.Unit, error) {
	return resource.NewUnit(b.ServiceCode, b.ResourceCode, b.Status, b.SentAt, b.ExpiresAt, b.Now)
}

// Reconstruct bypasses creation validation; use it to build units already in
// a lifecycle state.
func (b *ResourceBuilder) Reconstruct() *resource.Unit {
	return resource.ReconstructUnit(
		b.ID,
		b.ServiceCode.Provider(),
		b.ServiceCode,
		b.ResourceCode,
		b.Status,
		b.SentAt,
		b.ExpiresAt,
		b.Now,
		b.Now,
	)
}
