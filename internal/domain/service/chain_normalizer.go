package service

import (
	"sort"
	"strings"

	"tokenmeta-proxy/internal/domain/entity"
)

// ChainSlugTable maps canonical chain identifiers to the slug a specific provider expects.
type ChainSlugTable map[entity.ChainID]string

// GeckoTerminalNetworks is the chain -> GeckoTerminal network table.
var GeckoTerminalNetworks = ChainSlugTable{
	entity.ChainEthereum:  "eth",
	entity.ChainBSC:       "bsc",
	entity.ChainPolygon:   "polygon_pos",
	entity.ChainAvalanche: "avax",
	entity.ChainArbitrum:  "arbitrum",
	entity.ChainOptimism:  "optimism",
	entity.ChainBase:      "base",
	entity.ChainSolana:    "solana",
}

// Normalize lower-cases chain and returns its provider slug.
// Unknown chains are returned unchanged as given.
func (t ChainSlugTable) Normalize(chain entity.ChainID) string {
	if slug, ok := t[entity.ChainID(strings.ToLower(chain.String()))]; ok {
		return slug
	}
	return chain.String()
}

// Chains returns the known chains in lexical order.
func (t ChainSlugTable) Chains() []entity.ChainID {
	chains := make([]entity.ChainID, 0, len(t))
	for c := range t {
		chains = append(chains, c)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	return chains
}
