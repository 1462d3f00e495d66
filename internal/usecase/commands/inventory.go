package commands

import (
	"context"
	"io"

	"talent-services/internal/domain/resource"
	"talent-services/internal/usecase/shared"
)

// ImportInventory resolves the provider's importer and runs it inside one
// transaction: the whole file lands or none of it does.
func (s *serviceCommandsImpl) ImportInventory(ctx context.Context, providerKey string, code resource.ServiceCode, file io.Reader) error {
	p, err := s.registry.ForService(providerKey, code)
	if err != nil {
		return err
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return p.Importer.ImportFile(ctx, tx.Resources(), file, code)
	})
	if err != nil {
		return err
	}

	s.logger.Info("inventory imported",
		"provider", p.Key,
		"service_code", code.String())
	return nil
}
