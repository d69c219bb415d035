package entity

// LookupOutcome classifies the result of a single provider call.
type LookupOutcome string

const (
	// LookupHit means the provider returned metadata the caller should use.
	LookupHit LookupOutcome = "hit"
	// LookupMiss means the provider answered but had nothing usable.
	LookupMiss LookupOutcome = "miss"
	// LookupFailed means transport, status or decoding failed. The error is for logging only.
	LookupFailed LookupOutcome = "failed"
)

// MetadataLookup is the result of asking one provider for token metadata.
// Providers never return errors to their callers; failures are folded into Outcome and Err.
type MetadataLookup struct {
	Provider string
	Outcome  LookupOutcome
	Metadata TokenMetadata
	Err      error
}

// LookupHitFrom wraps metadata produced by a provider.
func LookupHitFrom(provider string, md TokenMetadata) MetadataLookup {
	return MetadataLookup{Provider: provider, Outcome: LookupHit, Metadata: md.Normalized()}
}

// LookupMissFrom records that a provider had no usable data.
func LookupMissFrom(provider string) MetadataLookup {
	return MetadataLookup{Provider: provider, Outcome: LookupMiss}
}

// LookupFailedFrom records a swallowed provider failure.
func LookupFailedFrom(provider string, err error) MetadataLookup {
	return MetadataLookup{Provider: provider, Outcome: LookupFailed, Err: err}
}

// Found reports whether the lookup produced metadata.
func (l MetadataLookup) Found() bool {
	return l.Outcome == LookupHit
}
