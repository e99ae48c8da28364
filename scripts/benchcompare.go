package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Path        string // "fast" or "portable"
	Iterations  int
	NsPerOp     float64
	AllocsPerOp int64
}

// ComparisonResult pairs the fast and portable variants of one benchmark.
type ComparisonResult struct {
	Operation  string
	FastNs     float64
	PortableNs float64
	Speedup    float64
	Unpaired   bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons)

	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// BenchmarkReverseBytes64/fast-8    1000000000    0.25 ns/op    0 B/op    0 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Unwrap JSON test events (from go test -json)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var allocsPerOp int64
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		// Name format: Benchmark<Operation>/<path>-<procs> for paired runs,
		// Benchmark<Operation>-<procs> for standalone ones.
		operation, path := splitBenchmarkName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Path:        path,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// splitBenchmarkName extracts the operation and the path variant ("fast",
// "portable", or "" for standalone benchmarks) from a benchmark name.
func splitBenchmarkName(name string) (string, string) {
	parts := strings.Split(name, "/")
	operation := strings.TrimPrefix(parts[0], "Benchmark")

	if len(parts) < 2 {
		// Standalone: strip the -N procs suffix from the operation itself.
		if dashIdx := strings.LastIndex(operation, "-"); dashIdx > 0 {
			operation = operation[:dashIdx]
		}
		return operation, ""
	}

	path := parts[len(parts)-1]
	if dashIdx := strings.LastIndex(path, "-"); dashIdx > 0 {
		path = path[:dashIdx]
	}
	return operation, path
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	grouped := make(map[string]map[string]BenchmarkResult)
	for _, result := range results {
		if grouped[result.Operation] == nil {
			grouped[result.Operation] = make(map[string]BenchmarkResult)
		}
		grouped[result.Operation][result.Path] = result
	}

	var comparisons []ComparisonResult
	for operation, paths := range grouped {
		fast, hasFast := paths["fast"]
		portable, hasPortable := paths["portable"]

		switch {
		case hasFast && hasPortable:
			comparisons = append(comparisons, ComparisonResult{
				Operation:  operation,
				FastNs:     fast.NsPerOp,
				PortableNs: portable.NsPerOp,
				Speedup:    portable.NsPerOp / fast.NsPerOp,
			})
		case hasFast:
			comparisons = append(comparisons, ComparisonResult{
				Operation: operation,
				FastNs:    fast.NsPerOp,
				Unpaired:  true,
			})
		default:
			// Standalone benchmarks land here with their single timing.
			for _, r := range paths {
				comparisons = append(comparisons, ComparisonResult{
					Operation: operation,
					FastNs:    r.NsPerOp,
					Unpaired:  true,
				})
			}
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].Operation < comparisons[j].Operation
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult) string {
	var sb strings.Builder

	sb.WriteString("# Fast vs. Portable Path Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	paired := 0
	totalSpeedup := 0.0
	for _, comp := range comparisons {
		if !comp.Unpaired {
			paired++
			totalSpeedup += comp.Speedup
		}
	}
	avgSpeedup := 0.0
	if paired > 0 {
		avgSpeedup = totalSpeedup / float64(paired)
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Benchmarks**: %d\n", len(comparisons)))
	sb.WriteString(fmt.Sprintf("- **Paired** (fast and portable): %d\n", paired))
	sb.WriteString(fmt.Sprintf("- **Average speedup**: %.2fx\n\n", avgSpeedup))

	sb.WriteString("## Results\n\n")
	sb.WriteString("| Benchmark | fast (ns/op) | portable (ns/op) | Speedup |\n")
	sb.WriteString("|-----------|--------------|------------------|---------|\n")

	for _, comp := range comparisons {
		if comp.Unpaired {
			sb.WriteString(fmt.Sprintf("| %s | %s | *N/A* | *single path* |\n",
				comp.Operation, formatNumber(comp.FastNs)))
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2fx |\n",
			comp.Operation,
			formatNumber(comp.FastNs),
			formatNumber(comp.PortableNs),
			comp.Speedup,
		))
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: the dispatch/copy path beats the shift reference\n")
	sb.WriteString("- Both paths must produce identical bytes; only the timing may differ\n")
	sb.WriteString("- Collect input with: `go test -bench . -run '^$' ./... > bench.txt`\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.2f", n)
}
