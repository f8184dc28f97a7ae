//go:build ignore

// Standalone performance verification test
// Run with: go run test_performance.go
package main

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"zeroenh/internal/prompt"
)

func main() {
	fmt.Println("🧪 Testing Enhancement Pipeline Performance\n")

	prof := prompt.DefaultProfile()
	opts := prompt.Options{}

	// Test 1: Single-run throughput
	fmt.Println("Test 1: Single-Run Throughput")
	const runs = 10000
	start := time.Now()
	for i := 0; i < runs; i++ {
		_ = prompt.Enhance("a cat", uint32(i), prompt.IntensityModerate, prof, opts)
	}
	elapsed := time.Since(start)
	perRun := elapsed / runs
	fmt.Printf("  ✅ %d runs in %v\n", runs, elapsed)
	fmt.Printf("  ✅ %v per run (%.0f runs/sec)\n\n", perRun, float64(runs)/elapsed.Seconds())

	// Test 2: Determinism under concurrency
	fmt.Println("Test 2: Determinism Under Concurrency")
	baseline := prompt.Enhance("cyberpunk samurai, neon lighting", 42, prompt.IntensityFull, prof, opts)
	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	var mu sync.Mutex
	mismatches := 0
	start = time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				out := prompt.Enhance("cyberpunk samurai, neon lighting", 42, prompt.IntensityFull, prof, opts)
				if out != baseline {
					mu.Lock()
					mismatches++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	concurrent := time.Since(start)
	fmt.Printf("  ✅ %d goroutines x 500 runs in %v\n", workers, concurrent)
	if mismatches == 0 {
		fmt.Printf("  ✅ All %d concurrent outputs identical to baseline\n\n", workers*500)
	} else {
		fmt.Printf("  ⚠️  %d outputs diverged from baseline\n\n", mismatches)
	}

	// Test 3: Seed dispersion
	fmt.Println("Test 3: Seed Dispersion (1000 seeds)")
	seen := make(map[string]struct{}, 1000)
	start = time.Now()
	for seed := uint32(0); seed < 1000; seed++ {
		seen[prompt.Enhance("a lighthouse", seed, prompt.IntensityModerate, prof, opts)] = struct{}{}
	}
	dispersion := time.Since(start)
	fmt.Printf("  ✅ 1000 seeds produced %d distinct outputs in %v\n", len(seen), dispersion)
	fmt.Printf("  ✅ Dispersion rate: %.1f%%\n\n", float64(len(seen))/10.0)

	// Test 4: Batch enhancement
	fmt.Println("Test 4: Batch Enhancement (200 prompts, worker pool)")
	prompts := make([]string, 200)
	for i := range prompts {
		prompts[i] = fmt.Sprintf("scene number %d, dramatic lighting", i)
	}
	results := make([]string, len(prompts))
	sem := make(chan struct{}, workers)
	start = time.Now()
	for i, text := range prompts {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, text string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = prompt.Enhance(text, 7, prompt.IntensityModerate, prof, opts)
		}(i, text)
	}
	wg.Wait()
	batchTime := time.Since(start)
	empty := 0
	for _, r := range results {
		if r == "" {
			empty++
		}
	}
	fmt.Printf("  ✅ %d prompts enhanced in %v\n", len(prompts), batchTime)
	fmt.Printf("  ✅ Empty results: %d\n\n", empty)

	// Summary
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("📊 Performance Test Results Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("✅ Throughput: %.0f runs/sec single-threaded\n", float64(runs)/elapsed.Seconds())
	fmt.Printf("✅ Concurrency: %d parallel runs, %d mismatches\n", workers*500, mismatches)
	fmt.Printf("✅ Dispersion: %d/1000 distinct outputs across seeds\n", len(seen))
	fmt.Printf("✅ Batch: %d prompts in %v\n", len(prompts), batchTime)
	if mismatches == 0 && empty == 0 {
		fmt.Println("\n🎉 All performance checks passed!")
	} else {
		fmt.Println("\n⚠️  Some checks reported issues, see above")
	}
}
