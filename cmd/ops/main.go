// Command ops is the season operator's toolbox: batch board generation for
// a roster and label-map dumps, without going through the HTTP service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/draft"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/label"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "boards":
		if err := cmdBoards(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "boards failed:", err)
			os.Exit(1)
		}
	case "labels":
		if err := cmdLabels(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "labels failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  ops boards -tier <tier> [-count N] [-variant] [-mode weighted|random|easiest] [-seed N] [-label-seed S] [-deck path] [-out path]
  ops labels -seed <season-seed> [-deck path]`)
}

type boardEntry struct {
	Tier      card.Tier       `json:"tier"`
	Variant   bool            `json:"variant"`
	Selection board.Selection `json:"selection"`
	Grid      [][]string      `json:"grid"`
	// Labels is the masked grid players see, present when a label seed
	// was given.
	Labels [][]string `json:"labels,omitempty"`
}

type boardsOutput struct {
	GeneratedAt string       `json:"generated_at"`
	Seed        int64        `json:"seed"`
	LabelSeed   string       `json:"label_seed,omitempty"`
	Boards      []boardEntry `json:"boards"`
}

func cmdBoards(args []string) error {
	fs := flag.NewFlagSet("boards", flag.ContinueOnError)
	tierFlag := fs.String("tier", "beginner", "player tier (accepts aliases)")
	count := fs.Int("count", 1, "number of boards to generate")
	variant := fs.Bool("variant", false, "enable tier wild variants")
	mode := fs.String("mode", "weighted", "draft mode: weighted, random or easiest")
	alpha := fs.Float64("alpha", 0.9, "difficulty penalty for weighted draft")
	seed := fs.Int64("seed", 0, "rng seed (0 = time-based)")
	labelSeed := fs.String("label-seed", "", "season seed; when set, emit masked label grids too")
	deckPath := fs.String("deck", "", "markdown deck file (default: built-in deck)")
	out := fs.String("out", "", "output path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tier, err := card.NormalizeTier(*tierFlag)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(*deckPath)
	if err != nil {
		return err
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	drafter := draft.NewDrafter(cat)
	gen := board.NewGenerator(cat)
	counts := board.RequiredCounts(tier, *variant)
	wildMode := board.WildModeFor(tier, *variant)
	opts := draft.DefaultOptions()
	opts.Mode = draft.Mode(*mode)
	opts.Alpha = *alpha

	var labelMap *label.Map
	if *labelSeed != "" {
		labelMap = label.Build(*labelSeed, cat)
	}

	output := boardsOutput{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        rngSeed,
		LabelSeed:   *labelSeed,
	}
	for i := 0; i < *count; i++ {
		sel, err := drafter.Draft(tier, counts, rng, opts)
		if err != nil {
			return err
		}
		placement, err := gen.Generate(sel, wildMode, rng)
		if err != nil {
			return fmt.Errorf("board %d: %w", i+1, err)
		}
		entry := boardEntry{
			Tier:      tier,
			Variant:   *variant,
			Selection: sel,
			Grid:      placement.Grid(),
		}
		if labelMap != nil {
			entry.Labels, err = maskGrid(placement.Grid(), labelMap)
			if err != nil {
				return err
			}
		}
		output.Boards = append(output.Boards, entry)
	}

	return writeOutput(*out, output)
}

func cmdLabels(args []string) error {
	fs := flag.NewFlagSet("labels", flag.ContinueOnError)
	seed := fs.String("seed", "", "season seed")
	deckPath := fs.String("deck", "", "markdown deck file (default: built-in deck)")
	out := fs.String("out", "", "output path (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seed == "" {
		return fmt.Errorf("-seed is required")
	}

	cat, err := loadCatalog(*deckPath)
	if err != nil {
		return err
	}

	m := label.Build(*seed, cat)
	return writeOutput(*out, map[string]any{
		"seed":   *seed,
		"labels": m.Labels(),
	})
}

func loadCatalog(deckPath string) (*card.Catalog, error) {
	if deckPath == "" {
		return card.DefaultCatalog(), nil
	}
	return card.LoadDeck(deckPath)
}

func maskGrid(grid [][]string, m *label.Map) ([][]string, error) {
	out := make([][]string, len(grid))
	for r, row := range grid {
		out[r] = make([]string, len(row))
		for c, code := range row {
			l, err := m.Label(code)
			if err != nil {
				return nil, err
			}
			out[r][c] = l
		}
	}
	return out, nil
}

func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
