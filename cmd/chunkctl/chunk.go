package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/ingest"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/pipeline"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/router"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/validator"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

var (
	chunkOut     string
	chunkWorkers int
)

var chunkCmd = &cobra.Command{
	Use:   "chunk <path>",
	Short: "Chunk a document into retrieval-ready JSONL",
	Long: `Chunk a markdown or PDF document. Markdown is sectioned on page
markers and top-level headings; PDFs yield one section per page. Each
section is classified and routed to the matching splitting strategy,
and the resulting chunks are written as newline-delimited JSON.

Examples:
  chunkctl chunk notes.md --out chunks.jsonl
  chunkctl chunk textbook.pdf --out chunks.jsonl --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runChunk,
}

func init() {
	chunkCmd.Flags().StringVarP(&chunkOut, "out", "o", "chunks.jsonl", "Output JSONL path")
	chunkCmd.Flags().IntVar(&chunkWorkers, "workers", 0, "Concurrent routing workers (default: CPU count)")
}

func runChunk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	spans, err := loadSpans(path)
	if err != nil {
		return err
	}
	if len(spans) == 0 {
		return fmt.Errorf("no content found in %s", path)
	}

	logger := charmlog.New(os.Stderr)
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}

	cfg := config()
	rt, err := router.New(cfg, router.WithLogger(logger))
	if err != nil {
		return err
	}
	val := validator.New(validator.Policy{MinSize: cfg.MinChunkSize, MaxSize: cfg.MaxChunkSize})

	p := pipeline.New(rt, val,
		pipeline.WithWorkers(chunkWorkers),
		pipeline.WithLogger(logger),
	)

	chunks, stats, err := p.Run(ctx, spans)
	if err != nil {
		return fmt.Errorf("chunking failed: %w", err)
	}

	if err := pipeline.WriteJSONLFile(chunkOut, chunks); err != nil {
		return err
	}

	snap := p.Stats()
	fmt.Printf("Wrote %d chunks from %d sections to %s in %s\n",
		stats.ChunksCreated, stats.SpansProcessed, chunkOut, stats.Duration.Round(time.Millisecond))
	fmt.Printf("Routing: narrative=%d code=%d formula=%d mixed=%d\n",
		snap.Narrative, snap.Code, snap.Formula, snap.Mixed)
	if stats.SpansFailed > 0 {
		fmt.Printf("Failed sections: %d\n", stats.SpansFailed)
		for _, msg := range stats.ErrorMessages {
			fmt.Printf("  %s\n", msg)
		}
	}
	if stats.Violations > 0 {
		fmt.Printf("Validation violations: %d (see log)\n", stats.Violations)
	}

	return nil
}

// loadSpans picks the ingestion path from the file extension.
func loadSpans(path string) ([]types.Span, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ingest.FromPDF(path)
	default:
		doc, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return ingest.Sections(string(doc), filepath.Base(path)), nil
	}
}
