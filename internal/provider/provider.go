// Package provider holds the registration table mapping a provider key to
// the roles the assignment engine needs from it: resource allocation,
// inventory import, and follow-up task policy. The table is built once at
// process start and validated eagerly, replacing runtime discovery.
package provider

import (
	"context"
	"io"

	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/usecase/shared"

	"github.com/google/uuid"
)

// TaskName identifies a task template in the external task catalog.
type TaskName string

// TaskPolicy prescribes the follow-up tasks to instantiate for a candidate
// on each lifecycle event. An empty list is a valid no-op.
type TaskPolicy interface {
	TasksOnAssigned(ev events.Event) []TaskName
	TasksOnRedeemed(ev events.Event) []TaskName
	TasksOnExpired(ev events.Event) []TaskName
}

// Allocator reserves one resource unit for a candidate. It runs inside the
// caller's transaction so the reservation and the assignment write commit
// or roll back together.
type Allocator interface {
	AllocateFor(ctx context.Context, store shared.ResourceRepository, candidateID uuid.UUID) (*resource.Unit, error)
}

// Importer bulk-loads resource units from an uploaded file. The whole file
// is imported in the caller's transaction or none of it is.
type Importer interface {
	ImportFile(ctx context.Context, store shared.ResourceRepository, file io.Reader, code resource.ServiceCode) error
}

// AllocatorFactory yields an allocator scoped to one (provider, serviceCode)
// pair.
type AllocatorFactory func(code resource.ServiceCode) Allocator

// Provider bundles everything registered for one provider key.
type Provider struct {
	Key          string
	ServiceCodes []resource.ServiceCode
	Allocator    AllocatorFactory
	Importer     Importer
	Policy       TaskPolicy
}

// Supports reports whether the provider offers the given service code.
func (p Provider) Supports(code resource.ServiceCode) bool {
	for _, c := range p.ServiceCodes {
		if c == code {
			return true
		}
	}
	return false
}
