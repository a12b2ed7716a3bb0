package genetic_test

import (
	"testing"

	"github.com/katalvlaran/waypath/genetic"
)

func benchmarkRun(b *testing.B, workers int) {
	cfg := genetic.DefaultConfig()
	cfg.Generations = 50
	cfg.Workers = workers
	e, err := genetic.NewEngine[int](&matchProblem{n: 20}, cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Run()
	}
}

func BenchmarkRun_Sequential(b *testing.B) { benchmarkRun(b, 1) }
func BenchmarkRun_Workers4(b *testing.B)   { benchmarkRun(b, 4) }
