// Package duolingo registers the Duolingo English Test provider: coupon
// inventory imported from the vendor's CSV export, allocated one coupon per
// candidate per test type.
package duolingo

import (
	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/provider"
)

const Key = "DUOLINGO"

const (
	// TaskClaimCoupon prompts the candidate to claim the coupon sent to them.
	TaskClaimCoupon provider.TaskName = "claimCouponButton"
	// TaskDuolingoTest tracks completion of the test itself.
	TaskDuolingoTest provider.TaskName = "duolingoTest"
)

// Policy maps coupon lifecycle events onto candidate follow-up tasks.
type Policy struct{}

func NewPolicy() *Policy { return &Policy{} }

func (Policy) TasksOnAssigned(events.Event) []provider.TaskName {
	return []provider.TaskName{TaskClaimCoupon}
}

func (Policy) TasksOnRedeemed(events.Event) []provider.TaskName {
	return nil
}

// An expired coupon means the candidate has to retake the test flow once a
// new coupon is assigned, so the test task is re-issued.
func (Policy) TasksOnExpired(events.Event) []provider.TaskName {
	return []provider.TaskName{TaskDuolingoTest}
}

// New assembles the full Duolingo registration.
func New() provider.Provider {
	return provider.Provider{
		Key: Key,
		ServiceCodes: []resource.ServiceCode{
			resource.CodeDuolingoTestProctored,
			resource.CodeDuolingoTestNonProctored,
		},
		Allocator: provider.StoreAllocatorFactory(Key),
		Importer:  NewCouponImporter(),
		Policy:    NewPolicy(),
	}
}
