package entity

import (
	"fmt"

	"tokenmeta-proxy/internal/domain"
)

// ChainID is the canonical, caller-facing name of a blockchain network (e.g. "ethereum", "solana").
type ChainID string

// Canonical chains with known provider mappings.
const (
	ChainEthereum  ChainID = "ethereum"
	ChainBSC       ChainID = "bsc"
	ChainPolygon   ChainID = "polygon"
	ChainAvalanche ChainID = "avalanche"
	ChainArbitrum  ChainID = "arbitrum"
	ChainOptimism  ChainID = "optimism"
	ChainBase      ChainID = "base"
	ChainSolana    ChainID = "solana"
)

// String returns the string representation of the ChainID.
func (c ChainID) String() string {
	return string(c)
}

// TokenRef identifies a token by chain and contract address.
// The address is opaque: no format validation is applied.
type TokenRef struct {
	Chain   ChainID
	Address string
}

// NewTokenRef builds a TokenRef, rejecting an empty chain or address. Values are kept verbatim.
func NewTokenRef(chain, address string) (TokenRef, error) {
	if chain == "" || address == "" {
		return TokenRef{}, fmt.Errorf("%w: chain=%q address=%q", domain.ErrMissingTokenRef, chain, address)
	}
	return TokenRef{Chain: ChainID(chain), Address: address}, nil
}

// CacheKey returns the response cache key. The chain is kept as given since the primary provider receives it verbatim.
func (r TokenRef) CacheKey() string {
	return r.Chain.String() + "|" + r.Address
}
