package response

import (
	"time"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/usecase/queries"

	"github.com/google/uuid"
)

type AssignmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Provider    string    `json:"provider"`
	ServiceCode string    `json:"serviceCode"`
	ResourceID  uuid.UUID `json:"resourceId"`
	CandidateID uuid.UUID `json:"candidateId"`
	ActorID     uuid.UUID `json:"actorId"`
	Status      string    `json:"status"`
	AssignedAt  time.Time `json:"assignedAt"`
}

type AssignmentViewResponse struct {
	ID             uuid.UUID  `json:"id"`
	Provider       string     `json:"provider"`
	ServiceCode    string     `json:"serviceCode"`
	CandidateID    uuid.UUID  `json:"candidateId"`
	ActorID        uuid.UUID  `json:"actorId"`
	Status         string     `json:"status"`
	AssignedAt     time.Time  `json:"assignedAt"`
	ResourceID     uuid.UUID  `json:"resourceId"`
	ResourceCode   string     `json:"resourceCode"`
	ResourceStatus string     `json:"resourceStatus"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

type ResourceViewResponse struct {
	ID           uuid.UUID  `json:"id"`
	Provider     string     `json:"provider"`
	ServiceCode  string     `json:"serviceCode"`
	ResourceCode string     `json:"resourceCode"`
	Status       string     `json:"status"`
	SentAt       *time.Time `json:"sentAt,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

type AvailableCountResponse struct {
	Provider    string `json:"provider"`
	ServiceCode string `json:"serviceCode"`
	Available   int64  `json:"available"`
}

func FromAssignment(a *assignment.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          a.ID(),
		Provider:    a.Provider(),
		ServiceCode: string(a.ServiceCode()),
		ResourceID:  a.ResourceID(),
		CandidateID: a.CandidateID(),
		ActorID:     a.ActorID(),
		Status:      string(a.Status()),
		AssignedAt:  a.AssignedAt(),
	}
}

func FromAssignments(as []*assignment.Assignment) []*AssignmentResponse {
	out := make([]*AssignmentResponse, len(as))
	for i, a := range as {
		out[i] = FromAssignment(a)
	}
	return out
}

func FromAssignmentView(v *queries.AssignmentView) *AssignmentViewResponse {
	return &AssignmentViewResponse{
		ID:             v.ID,
		Provider:       v.Provider,
		ServiceCode:    v.ServiceCode,
		CandidateID:    v.CandidateID,
		ActorID:        v.ActorID,
		Status:         v.Status,
		AssignedAt:     v.AssignedAt,
		ResourceID:     v.ResourceID,
		ResourceCode:   v.ResourceCode,
		ResourceStatus: v.ResourceStatus,
		SentAt:         v.SentAt,
		ExpiresAt:      v.ExpiresAt,
	}
}

func FromAssignmentViews(vs []*queries.AssignmentView) []*AssignmentViewResponse {
	out := make([]*AssignmentViewResponse, len(vs))
	for i, v := range vs {
		out[i] = FromAssignmentView(v)
	}
	return out
}

func FromResourceView(v *queries.ResourceView) *ResourceViewResponse {
	return &ResourceViewResponse{
		ID:           v.ID,
		Provider:     v.Provider,
		ServiceCode:  v.ServiceCode,
		ResourceCode: v.ResourceCode,
		Status:       v.Status,
		SentAt:       v.SentAt,
		ExpiresAt:    v.ExpiresAt,
	}
}

func FromResourceViews(vs []*queries.ResourceView) []*ResourceViewResponse {
	out := make([]*ResourceViewResponse, len(vs))
	for i, v := range vs {
		out[i] = FromResourceView(v)
	}
	return out
}
