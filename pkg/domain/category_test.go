package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  Category
	}{
		{
			name:  "defi lending article",
			title: "New lending protocol launches on mainnet",
			text:  "The DeFi protocol offers yield on stablecoin deposits",
			want:  CategoryDeFi,
		},
		{
			name:  "nft marketplace",
			title: "OpenSea volume drops",
			text:  "NFT trading activity continues to decline",
			want:  CategoryNFT,
		},
		{
			name:  "layer2 beats layer1 when both mentioned",
			title: "Arbitrum rollup surpasses Ethereum in daily transactions",
			text:  "The layer 2 network processed more transfers than the base chain",
			want:  CategoryLayer2,
		},
		{
			name:  "layer1 consensus",
			title: "Solana validator update",
			text:  "consensus changes improve mainnet stability",
			want:  CategoryLayer1,
		},
		{
			name:  "dao governance",
			title: "Community passes governance proposal",
			text:  "the decentralized autonomous organization approved the treasury vote",
			want:  CategoryDAO,
		},
		{
			name:  "ai article",
			title: "GPT models and the future of machine learning",
			text:  "large language model research accelerates",
			want:  CategoryAI,
		},
		{
			name:  "ai wins over crypto keywords",
			title: "OpenAI partners with Ethereum foundation",
			text:  "",
			want:  CategoryAI,
		},
		{
			name:  "no match falls back to other",
			title: "Weekly market recap",
			text:  "stocks closed higher on friday",
			want:  CategoryOther,
		},
		{
			name:  "empty input",
			title: "",
			text:  "",
			want:  CategoryOther,
		},
		{
			name:  "case insensitive",
			title: "DEFI SUMMER RETURNS",
			text:  "",
			want:  CategoryDeFi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.title, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorize_Deterministic(t *testing.T) {
	title := "Arbitrum DAO votes on NFT incentives for DeFi users"
	text := "governance proposal affecting the rollup ecosystem"

	first := Categorize(title, text)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Categorize(title, text), "identical input must yield identical category")
	}
}

func TestAnalysis_Complete(t *testing.T) {
	assert.False(t, Analysis{}.Complete())
	assert.False(t, Analysis{Summary: "s", Outline: "o"}.Complete())
	assert.True(t, Analysis{Summary: "s", Outline: "o", Insights: "i"}.Complete())
}
