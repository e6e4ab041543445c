package outcome

import (
	"testing"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

func BenchmarkComputeContribution_Variable(b *testing.B) {
	policy := domain.VariableContribution{BasePercentage: d("10"), DecayRate: d("0.1")}
	stake, pool := d("125.50"), d("48213.77")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ComputeContribution(policy, stake, pool)
	}
}

func BenchmarkComputeWinChance_Variable(b *testing.B) {
	policy := domain.VariableReward{BaseChance: d("0.1"), Increment: d("0.5"), Threshold: d("10000")}
	pool := d("48213.77")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ComputeWinChance(policy, pool)
	}
}

func BenchmarkDecideWin(b *testing.B) {
	src := NewRandomSource(1)
	chance := d("2.5")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecideWin(chance, src)
	}
}
