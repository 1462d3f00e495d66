package request

import (
	"github.com/google/uuid"
)

type AssignToListRequest struct {
	CandidateIDs []uuid.UUID `json:"candidate_ids" binding:"required,min=1"`
}

type UpdateResourceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
