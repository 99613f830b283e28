package domain

import "strings"

// Category classifies an article into the fixed set used by the database.
type Category string

// article categories
const (
	CategoryDeFi   Category = "DeFi"
	CategoryNFT    Category = "NFT"
	CategoryLayer1 Category = "Layer1"
	CategoryLayer2 Category = "Layer2"
	CategoryDAO    Category = "DAO"
	CategoryAI     Category = "AI"
	CategoryOther  Category = "Other"
)

// categoryKeywords maps each category to its trigger keywords. Matching is
// case-insensitive against title and text. Order of evaluation is fixed by
// categoryOrder below, so the assignment is deterministic; Layer2 is checked
// before Layer1 because rollup articles routinely mention base chains too.
var categoryKeywords = map[Category][]string{
	CategoryAI: {"artificial intelligence", " ai ", "ai-", "llm", "machine learning",
		"neural network", "gpt", "chatgpt", "openai", "anthropic", "deep learning"},
	CategoryDeFi: {"defi", "decentralized finance", "dex", "lending protocol", "yield",
		"stablecoin", "liquidity pool", "amm", "staking", "perps", "derivatives protocol"},
	CategoryNFT: {"nft", "non-fungible", "collectible", "opensea", "pfp", "digital art"},
	CategoryLayer2: {"layer 2", "layer-2", "l2 ", "rollup", "optimistic rollup", "zk-rollup",
		"arbitrum", "optimism", "zksync", "starknet", "base chain"},
	CategoryLayer1: {"layer 1", "layer-1", "l1 ", "ethereum", "bitcoin", "solana",
		"mainnet", "consensus", "validator", "blockchain protocol"},
	CategoryDAO: {"dao ", "dao,", "dao.", "decentralized autonomous", "governance proposal",
		"on-chain governance", "treasury vote"},
}

var categoryOrder = []Category{CategoryAI, CategoryDeFi, CategoryNFT, CategoryLayer2, CategoryLayer1, CategoryDAO}

// Categorize assigns a category from the fixed set based on keyword matches in
// title and text. Pure function, identical input always yields the same result.
// Falls back to Other when nothing matches.
func Categorize(title, text string) Category {
	// pad with spaces so word-boundary-ish keywords like " ai " match at the edges
	haystack := " " + strings.ToLower(title) + " " + strings.ToLower(text) + " "

	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(haystack, kw) {
				return cat
			}
		}
	}
	return CategoryOther
}
