// Command jetpart partitions a METIS-format graph file using the Jet
// multilevel refinement pipeline and writes the resulting partition to a
// file, alongside balance and cut statistics on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	jet "github.com/partkit/jet"
	"github.com/partkit/jet/internal/multilevel"
)

func main() {
	graphFile := flag.String("graph", "", "Input graph file in METIS format")
	nparts := flag.Int("nparts", 2, "Number of partitions")
	imbRatio := flag.Float64("imbalance", 1.03, "Maximum allowed imbalance ratio")
	coarseningAlg := flag.Int("coarsening", int(jet.CoarsenHEC), "Coarsening algorithm: 0=mtmetis, 1=HEC, 2=matching")
	numIter := flag.Int("iterations", 1, "Number of independent trials (best cut wins)")
	ultra := flag.Bool("ultra", false, "Use the extended temperature schedule")
	outFile := flag.String("output", "partition.txt", "Output partition file")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	if *graphFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -graph <file> -nparts <n> [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Reading graph from %s...\n", *graphFile)
	}

	file, err := os.Open(*graphFile)
	if err != nil {
		log.Fatalf("Failed to open graph file: %v", err)
	}
	defer file.Close()

	g, err := jet.ReadGraphFile(file)
	if err != nil {
		log.Fatalf("Failed to read graph: %v", err)
	}

	if *verbose {
		fmt.Printf("Graph loaded: %d vertices, %d edges\n", g.NumVertices(), int(g.NumEdges()))
	}

	cfg := jet.DefaultConfig()
	cfg.NumParts = int32(*nparts)
	cfg.MaxImbRatio = *imbRatio
	cfg.CoarseningAlg = jet.CoarseningAlg(*coarseningAlg)
	cfg.NumIter = *numIter
	cfg.UltraSettings = *ultra
	cfg.Verbose = *verbose

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *verbose {
		fmt.Printf("\nPartitioning graph into %d parts (%d trial(s))...\n", cfg.NumParts, cfg.NumIter)
	}

	start := time.Now()
	result := multilevel.Partition(g, cfg)
	elapsed := time.Since(start)

	fmt.Printf("\nPartitioning completed in %v\n", elapsed)
	fmt.Printf("Edge cut: %d\n", result.Cut)

	fmt.Printf("\nPartition statistics:\n")
	for p, sz := range result.PartSizes {
		fmt.Printf("  Partition %d: weight %d\n", p, sz)
	}

	opt := jet.OptimalSize(g.TotalVertexWeight(), cfg.NumParts)
	largest := jet.LargestPartSize(result.PartSizes)
	fmt.Printf("\nBalance: %.3f (largest/opt)\n", float64(largest)/float64(opt))

	out, err := os.Create(*outFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	if err := jet.WritePartitioning(out, result.Part); err != nil {
		log.Fatalf("Failed to write partitioning: %v", err)
	}

	fmt.Printf("\nPartitioning written to %s\n", *outFile)
}
