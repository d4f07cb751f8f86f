package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/quintus/internal/cli"
	"codeberg.org/snonux/quintus/internal/cts"
	"codeberg.org/snonux/quintus/internal/labeler"
	"codeberg.org/snonux/quintus/internal/logging"
	"codeberg.org/snonux/quintus/internal/phonology"
	"codeberg.org/snonux/quintus/internal/speeches"
	"codeberg.org/snonux/quintus/internal/table"
)

// Summary reports what a pipeline run produced
type Summary struct {
	RunID       string
	Lines       int
	Words       int
	SpeechLines int
	Sounds      int // Distinct sound columns
	CSVPath     string
	SQLitePath  string
	CacheHits   int64
	StoredRuns  int // Runs in the database after this one was saved
}

// Processor handles the main pipeline logic
type Processor struct {
	flags    *cli.Flags
	profiler *phonology.Profiler
	out      io.Writer
}

// NewProcessor creates a new processor. A custom rules file, when set,
// replaces the default Greek table.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	rules := phonology.Greek
	if flags.RulesFile != "" {
		t, err := phonology.LoadRules(flags.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = t
		logging.Info("using custom replacement rules", "path", flags.RulesFile)
	}

	profiler, err := phonology.NewProfiler(rules, flags.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Processor{
		flags:    flags,
		profiler: profiler,
		out:      os.Stdout,
	}, nil
}

// Table returns the replacement table in use
func (p *Processor) Table() *phonology.Table {
	return p.profiler.Table()
}

// Run executes the whole pipeline and prints a summary
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)

	lines, err := p.loadLines(ctx)
	if err != nil {
		return nil, err
	}
	logging.InfoContext(ctx, "loaded lines", "count", len(lines))

	ranges, err := p.loadRanges(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(lines))
	for i, l := range lines {
		keys[i] = l.ID
	}
	labels := labeler.Apply(keys, ranges, labeler.Narration)
	speechLines := labeler.Count(labels, labeler.Speech)
	logging.InfoContext(ctx, "labeled lines", "speech", speechLines, "narration", len(lines)-speechLines)

	rows, err := p.profileLines(ctx, lines, labels)
	if err != nil {
		return nil, err
	}
	tbl := table.New(rows)

	summary := &Summary{
		RunID:       runID,
		Lines:       len(lines),
		SpeechLines: speechLines,
		Sounds:      len(tbl.Columns()),
	}
	for _, r := range rows {
		if r.Word != "" {
			summary.Words++
		}
	}
	hits, misses := p.profiler.Stats()
	summary.CacheHits = hits
	logging.Debug("profile cache", "hits", hits, "misses", misses)

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary.CSVPath = filepath.Join(p.flags.OutputDir, p.flags.CSVFile)
	if err := tbl.WriteCSVFile(summary.CSVPath); err != nil {
		return nil, err
	}
	logging.InfoContext(ctx, "wrote CSV", "path", summary.CSVPath, "rows", tbl.Len())

	if p.flags.SQLiteFile != "" {
		summary.SQLitePath = filepath.Join(p.flags.OutputDir, p.flags.SQLiteFile)
		runs, err := p.store(ctx, runID, summary.SQLitePath, tbl)
		if err != nil {
			return nil, err
		}
		summary.StoredRuns = runs
	}

	p.printSummary(summary)
	return summary, nil
}

// loadLines reads the text from a local TEI file or from the CTS endpoint
func (p *Processor) loadLines(ctx context.Context) ([]cts.Line, error) {
	if p.flags.TEIFile != "" {
		logging.InfoContext(ctx, "reading text from file", "path", p.flags.TEIFile)
		return cts.LoadFile(p.flags.TEIFile)
	}

	client := cts.NewClient(&cts.Config{
		Endpoint: p.flags.CTSEndpoint,
		CacheDir: p.flags.CacheDir,
		Timeout:  p.flags.Timeout,
	})
	logging.InfoContext(ctx, "retrieving text", "urn", p.flags.URN, "url", client.URL(p.flags.URN))
	return client.Fetch(ctx, p.flags.URN)
}

// loadRanges reads speeches from a local list or from DICES. Without a
// file and without an author every line is narration.
func (p *Processor) loadRanges(ctx context.Context) ([]labeler.Range, error) {
	var list []speeches.Speech
	var err error

	switch {
	case p.flags.SpeechesFile != "":
		list, err = speeches.ReadFile(p.flags.SpeechesFile)
	case p.flags.Author != "":
		list, err = speeches.NewClient(p.flags.DICESURL, p.flags.Timeout).ByAuthor(ctx, p.flags.Author)
	default:
		logging.WarnContext(ctx, "no speech source configured, labeling everything as narration")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	logging.InfoContext(ctx, "loaded speeches", "count", len(list))
	return speeches.Ranges(list, labeler.Speech)
}

// profileLines splits each line into words and profiles them with a
// bounded number of workers. Rows keep document order. A line without
// words yields a single row with an empty word.
func (p *Processor) profileLines(ctx context.Context, lines []cts.Line, labels []string) ([]table.Row, error) {
	var rows []table.Row
	spans := make([][2]int, len(lines))

	for i, l := range lines {
		start := len(rows)
		words := phonology.Words(l.Text)
		if len(words) == 0 {
			words = []string{""}
		}
		for _, w := range words {
			rows = append(rows, table.Row{
				ID:    l.ID,
				Book:  l.Book,
				Line:  l.Line,
				Label: labels[i],
				Word:  w,
			})
		}
		spans[i] = [2]int{start, len(rows)}
	}

	workers := p.flags.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, span := range spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := span[0]; j < span[1]; j++ {
				rows[j].Sounds = p.profiler.Profile(rows[j].Word)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// store saves the run and returns how many runs the database now holds
func (p *Processor) store(ctx context.Context, runID, path string, tbl *table.Table) (int, error) {
	store, err := table.OpenStore(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	source := p.flags.URN
	if p.flags.TEIFile != "" {
		source = p.flags.TEIFile
	}
	if _, err := store.Save(ctx, runID, source, tbl); err != nil {
		return 0, err
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list runs: %w", err)
	}
	logging.InfoContext(ctx, "stored run", "path", path, "runs", len(runs))
	return len(runs), nil
}

func (p *Processor) printSummary(s *Summary) {
	fmt.Fprintf(p.out, "\n=== Processing Summary ===\n")
	fmt.Fprintf(p.out, "Run: %s\n", s.RunID)
	fmt.Fprintf(p.out, "Lines: %d\n", s.Lines)
	fmt.Fprintf(p.out, "Speech lines: %d\n", s.SpeechLines)
	fmt.Fprintf(p.out, "Words: %d\n", s.Words)
	fmt.Fprintf(p.out, "Distinct sounds: %d\n", s.Sounds)
	fmt.Fprintf(p.out, "CSV: %s\n", s.CSVPath)
	if s.SQLitePath != "" {
		fmt.Fprintf(p.out, "SQLite: %s (%d runs)\n", s.SQLitePath, s.StoredRuns)
	}
	fmt.Fprintf(p.out, "==========================\n")
}
