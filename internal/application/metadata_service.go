package application

import (
	"context"

	"tokenmeta-proxy/internal/application/port"
	"tokenmeta-proxy/internal/domain/entity"
	domainRepo "tokenmeta-proxy/internal/domain/repository"

	"go.uber.org/zap"
)

// sourceNone labels a resolution that ended with the empty value.
const sourceNone = "none"

// ResolutionRecorder receives per-lookup and per-resolution events.
type ResolutionRecorder interface {
	RecordLookup(provider string, outcome entity.LookupOutcome)
	RecordResolution(source string)
}

type nopRecorder struct{}

func (nopRecorder) RecordLookup(string, entity.LookupOutcome) {}
func (nopRecorder) RecordResolution(string)                  {}

// Compile-time check to ensure metadataService implements MetadataService
var _ port.MetadataService = (*metadataService)(nil)

// metadataService asks the primary provider first and the secondary only when the primary has nothing.
// It keeps no state between calls.
type metadataService struct {
	primary   domainRepo.MetadataProvider
	secondary domainRepo.MetadataProvider
	recorder  ResolutionRecorder
	logger    *zap.Logger
}

// NewMetadataService creates a new instance of the metadata service.
func NewMetadataService(
	primary domainRepo.MetadataProvider,
	secondary domainRepo.MetadataProvider,
	recorder ResolutionRecorder,
	logger *zap.Logger,
) port.MetadataService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &metadataService{
		primary:   primary,
		secondary: secondary,
		recorder:  recorder,
		logger:    logger.Named("MetadataService"),
	}
}

// ResolveTokenMetadata returns the primary's metadata when it hits, otherwise the secondary's,
// otherwise the empty value. Each provider is called at most once.
func (s *metadataService) ResolveTokenMetadata(ctx context.Context, ref entity.TokenRef) entity.TokenMetadata {
	for _, provider := range []domainRepo.MetadataProvider{s.primary, s.secondary} {
		lookup := provider.LookupMetadata(ctx, ref)
		s.recorder.RecordLookup(lookup.Provider, lookup.Outcome)

		if lookup.Found() {
			s.logger.Debug("Metadata resolved",
				zap.String("chain", ref.Chain.String()),
				zap.String("address", ref.Address),
				zap.String("source", lookup.Provider),
			)
			s.recorder.RecordResolution(lookup.Provider)
			return lookup.Metadata.Normalized()
		}

		s.logger.Debug("Provider had no metadata",
			zap.String("provider", provider.Name()),
			zap.String("outcome", string(lookup.Outcome)),
			zap.String("chain", ref.Chain.String()),
			zap.String("address", ref.Address),
			zap.Error(lookup.Err),
		)
	}

	s.logger.Info("No metadata found for token",
		zap.String("chain", ref.Chain.String()),
		zap.String("address", ref.Address),
	)
	s.recorder.RecordResolution(sourceNone)
	return entity.EmptyTokenMetadata()
}
