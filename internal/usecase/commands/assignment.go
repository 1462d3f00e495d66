package commands

import (
	"context"
	"log/slog"

	"talent-services/internal/domain/assignment"
	"talent-services/internal/domain/resource"
	"talent-services/internal/events"
	"talent-services/internal/infra"
	"talent-services/internal/pkg/clock"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/provider"
	"talent-services/internal/usecase/shared"

	"github.com/google/uuid"
)

type serviceCommandsImpl struct {
	registry  *provider.Registry
	uow       shared.UnitOfWork
	directory CandidateDirectory
	clock     clock.Clock
	logger    *slog.Logger
}

func NewServiceCommands(
	registry *provider.Registry,
	uow shared.UnitOfWork,
	directory CandidateDirectory,
	clk clock.Clock,
	logger *slog.Logger,
) ServiceCommands {
	return &serviceCommandsImpl{
		registry:  registry,
		uow:       uow,
		directory: directory,
		clock:     clk,
		logger:    logger,
	}
}

func (s *serviceCommandsImpl) Assign(ctx context.Context, providerKey string, code resource.ServiceCode, candidateID, actorID uuid.UUID) (*assignment.Assignment, error) {
	p, err := s.registry.ForService(providerKey, code)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, actorID); err != nil {
		return nil, err
	}
	if err := s.checkCandidate(ctx, candidateID); err != nil {
		return nil, err
	}

	var created *assignment.Assignment
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = s.assignInTx(ctx, tx, p, code, candidateID, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("service assigned",
		"provider", p.Key,
		"service_code", code.String(),
		"candidate_id", candidateID.String(),
		"assignment_id", created.ID().String())
	return created, nil
}

// assignInTx is the allocation core shared by Assign and AssignToList. The
// supersede, the reservation and the assignment insert ride one transaction
// so a failure leaks no RESERVED unit.
func (s *serviceCommandsImpl) assignInTx(ctx context.Context, tx shared.Tx, p provider.Provider, code resource.ServiceCode, candidateID, actorID uuid.UUID) (*assignment.Assignment, error) {
	now := s.clock.Now()

	prior, err := tx.Assignments().FindActiveByCandidate(ctx, candidateID, p.Key, code)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if prior != nil {
		if err := prior.Supersede(now); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		if err := tx.Assignments().Update(ctx, prior); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	unit, err := p.Allocator(code).AllocateFor(ctx, tx.Resources(), candidateID)
	if err != nil {
		return nil, err
	}

	// The unit leaves RESERVED as soon as the engine hands it to the
	// candidate.
	if err := unit.MarkSent(now); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStateTransition)
	}
	if err := tx.Resources().Save(ctx, unit); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	created := assignment.NewAssignment(code, unit.ID(), candidateID, actorID, now)
	if err := tx.Assignments().Create(ctx, created); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tx.Record(events.ServiceAssigned(created, unit.ResourceCode(), now))
	return created, nil
}

func (s *serviceCommandsImpl) AssignToList(ctx context.Context, providerKey string, code resource.ServiceCode, candidateIDs []uuid.UUID, actorID uuid.UUID) ([]*assignment.Assignment, error) {
	p, err := s.registry.ForService(providerKey, code)
	if err != nil {
		return nil, err
	}

	if err := s.checkActor(ctx, actorID); err != nil {
		return nil, err
	}

	var done []*assignment.Assignment
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		available, err := tx.Resources().CountAvailable(ctx, p.Key, code)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if available == 0 || int64(len(candidateIDs)) > available {
			return errs.Mark(
				errs.Newf("there are not enough available %s resources to assign to all %d candidates in the list; please import more from the settings page",
					code, len(candidateIDs)),
				errs.ErrResourceExhausted)
		}

		for _, candidateID := range candidateIDs {
			// List assignment never supersedes: candidates already holding
			// an active assignment are skipped.
			_, findErr := tx.Assignments().FindActiveByCandidate(ctx, candidateID, p.Key, code)
			if findErr == nil {
				continue
			}
			if !infra.IsKind(findErr, infra.KindNotFound) {
				return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
			}

			created, assignErr := s.assignInTx(ctx, tx, p, code, candidateID, actorID)
			if assignErr != nil {
				return assignErr
			}
			done = append(done, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("service assigned to list",
		"provider", p.Key,
		"service_code", code.String(),
		"requested", len(candidateIDs),
		"assigned", len(done))
	return done, nil
}

func (s *serviceCommandsImpl) Redeem(ctx context.Context, assignmentID, actorID uuid.UUID) (*assignment.Assignment, error) {
	var redeemed *assignment.Assignment
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := s.clock.Now()

		a, err := tx.Assignments().FindByID(ctx, assignmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := a.Redeem(now); err != nil {
			return errs.Mark(
				errs.Newf("assignment %s is already %s", a.ID(), a.Status()),
				errs.ErrInvalidStateTransition)
		}
		if err := tx.Assignments().Update(ctx, a); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		unit, err := tx.Resources().FindByID(ctx, a.ResourceID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !unit.Status().IsTerminal() {
			if err := unit.TransitionTo(resource.StatusRedeemed, now); err != nil {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
			if err := tx.Resources().Save(ctx, unit); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		tx.Record(events.ServiceRedeemed(a, unit.ResourceCode(), now))
		redeemed = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("service redeemed",
		"assignment_id", redeemed.ID().String(),
		"actor_id", actorID.String())
	return redeemed, nil
}

func (s *serviceCommandsImpl) UpdateResourceStatus(ctx context.Context, providerKey, resourceCode string, status resource.Status) error {
	p, err := s.registry.ForProvider(providerKey)
	if err != nil {
		return err
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		unit, err := tx.Resources().FindByCode(ctx, p.Key, resourceCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := unit.TransitionTo(status, s.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		if err := tx.Resources().Save(ctx, unit); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (s *serviceCommandsImpl) checkActor(ctx context.Context, actorID uuid.UUID) error {
	exists, err := s.directory.ActorExists(ctx, actorID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return errs.Mark(
			errs.Newf("actor %s not found", actorID),
			errs.ErrNotFound)
	}
	return nil
}

func (s *serviceCommandsImpl) checkCandidate(ctx context.Context, candidateID uuid.UUID) error {
	exists, err := s.directory.CandidateExists(ctx, candidateID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return errs.Mark(
			errs.Newf("candidate %s not found", candidateID),
			errs.ErrNotFound)
	}
	return nil
}
