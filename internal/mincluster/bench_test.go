package mincluster_test

import (
	"math/rand"
	"testing"

	"github.com/mawngo/mincluster/internal/mincluster"
)

func BenchmarkCluster(b *testing.B) {
	data := make([]float64, 10000)
	r := rand.New(rand.NewSource(1))
	for i := range data {
		data[i] = r.Float64() * 1000
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mincluster.Cluster(16, data, mincluster.WithSeed(1)); err != nil {
			b.Fatalf("Cluster failed: %v", err)
		}
	}
}
