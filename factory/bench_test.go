package factory_test

import (
	"testing"

	"github.com/beltworks/beltflow/factory"
)

// BenchmarkPlanProduction measures a full feasible plan on the reference
// plant, formulation and simplex included.
func BenchmarkPlanProduction(b *testing.B) {
	p := greenCircuits(1800)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := factory.PlanProduction(p)
		if res.Status != factory.StatusOK {
			b.Fatalf("unexpected status %s", res.Status)
		}
	}
}
