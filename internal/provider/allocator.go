package provider

import (
	"context"

	"talent-services/internal/domain/resource"
	"talent-services/internal/infra"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/usecase/shared"

	"github.com/google/uuid"
)

// StoreAllocator is the default allocator: it draws the oldest AVAILABLE
// unit from the resource store, which reserves it in the same statement.
type StoreAllocator struct {
	provider string
	code     resource.ServiceCode
}

func NewStoreAllocator(providerKey string, code resource.ServiceCode) *StoreAllocator {
	return &StoreAllocator{provider: providerKey, code: code}
}

// StoreAllocatorFactory builds StoreAllocators for each of a provider's
// service codes.
func StoreAllocatorFactory(providerKey string) AllocatorFactory {
	return func(code resource.ServiceCode) Allocator {
		return NewStoreAllocator(providerKey, code)
	}
}

func (a *StoreAllocator) AllocateFor(ctx context.Context, store shared.ResourceRepository, candidateID uuid.UUID) (*resource.Unit, error) {
	unit, err := store.LockNextAvailable(ctx, a.provider, a.code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(
				errs.Newf("there are no available %s resources to assign to candidate %s; please import more from the settings page",
					a.code, candidateID),
				errs.ErrResourceExhausted)
		}
		return nil, errs.Wrap(err, "allocation failed")
	}
	return unit, nil
}
