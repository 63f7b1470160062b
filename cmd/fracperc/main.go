// Command fracperc estimates the mean Euler characteristic of fractal
// percolation by Monte Carlo simulation.
//
// Parameters come from a JSON config file (FractalPercolationMink.json by
// default) and may be overridden on the command line. The result record is
// written to <prefix><name>.dat; images and a database row are optional.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/katalvlaran/fracperc/field"
	"github.com/katalvlaran/fracperc/internal/config"
	"github.com/katalvlaran/fracperc/internal/monitoring"
	"github.com/katalvlaran/fracperc/internal/store"
	"github.com/katalvlaran/fracperc/montecarlo"
	"github.com/katalvlaran/fracperc/percolation"
	"github.com/katalvlaran/fracperc/render"
)

const version = "0.3.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("fracperc: %v", err)
	}
}

// options are the parsed command line.
type options struct {
	configPath string
	explicit   bool
	version    bool
	overrides  config.Config
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fset := flag.NewFlagSet("fracperc", flag.ContinueOnError)
	fset.SetOutput(stderr)

	var (
		o           options
		prefix      string
		p           float64
		m, s, n     int
		seed        uint
		bins        int
		labeler, db string
		image, png  bool
		perc, mix   bool
	)
	fset.StringVar(&o.configPath, "config", config.DefaultPath, "Path to the JSON config file")
	fset.StringVar(&prefix, "o", config.DefaultPrefix, "Output prefix (directory ending in / or file stem)")
	fset.StringVar(&prefix, "prefix", config.DefaultPrefix, "Alias of -o")
	fset.StringVar(&prefix, "prefix_of", config.DefaultPrefix, "Alias of -o")
	fset.Float64Var(&p, "p", config.DefaultSurvivalProb, "Survival probability of each cell at each level")
	fset.Float64Var(&p, "survival_prob", config.DefaultSurvivalProb, "Alias of -p")
	fset.IntVar(&m, "M", config.DefaultSubdivision, "Subdivision per axis at every level")
	fset.IntVar(&m, "subdivision", config.DefaultSubdivision, "Alias of -M")
	fset.IntVar(&s, "n", config.DefaultNApproximations, "Number of approximation levels")
	fset.IntVar(&s, "n_approximations", config.DefaultNApproximations, "Alias of -n")
	fset.IntVar(&n, "R", config.DefaultNRuns, "Number of Monte Carlo runs")
	fset.IntVar(&n, "Nruns", config.DefaultNRuns, "Alias of -R")
	fset.UintVar(&seed, "seed", config.DefaultSeed, "Random seed")
	fset.UintVar(&seed, "s", config.DefaultSeed, "Alias of -seed")
	fset.BoolVar(&image, "i", false, "Write a PGM image of the last run")
	fset.BoolVar(&image, "image", false, "Alias of -i")
	fset.BoolVar(&perc, "percolating", false, "Measure only the percolating cluster")
	fset.BoolVar(&mix, "mix-seed", config.DefaultMixSeed, "Mix p, M, n and R into the seed (-mix-seed=false uses the seed as given)")
	fset.StringVar(&labeler, "labeler", "backward-scan", "Cluster labeler: backward-scan, union-find or flood-fill")
	fset.StringVar(&db, "db", "", "SQLite database to record the result in")
	fset.BoolVar(&png, "png", false, "Write a heat map of the last run and a histogram of χ")
	fset.IntVar(&bins, "bins", config.DefaultHistogramBins, "Number of histogram bins")
	fset.BoolVar(&o.version, "version", false, "Print the version and exit")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if fset.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}

	// Only flags given explicitly override the config file.
	ov := &o.overrides
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			o.explicit = true
		case "o", "prefix", "prefix_of":
			ov.PrefixOf = &prefix
		case "p", "survival_prob":
			ov.SurvivalProb = &p
		case "M", "subdivision":
			ov.Subdivision = &m
		case "n", "n_approximations":
			ov.NApproximations = &s
		case "R", "Nruns":
			ov.NRuns = &n
		case "seed", "s":
			v := uint32(seed)
			ov.Seed = &v
		case "i", "image":
			ov.Image = &image
		case "percolating":
			ov.PercolatingOnly = &perc
		case "mix-seed":
			ov.MixSeed = &mix
		case "labeler":
			ov.Labeler = &labeler
		case "db":
			ov.Database = &db
		case "png":
			ov.PNG = &png
		case "bins":
			ov.HistogramBins = &bins
		}
	})
	if seed > uint(^uint32(0)) {
		return options{}, fmt.Errorf("seed %d does not fit 32 bits", seed)
	}
	return o, nil
}

// loadConfig reads the config file and applies the command-line overrides.
// A missing default config file means built-in defaults.
func loadConfig(o options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	switch {
	case err == nil:
	case !o.explicit && errors.Is(err, fs.ErrNotExist):
		monitoring.Logf("no config file %s, using defaults", o.configPath)
		cfg = &config.Config{}
	default:
		return nil, err
	}
	cfg.Merge(&o.overrides)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if o.version {
		fmt.Fprintf(stdout, "fracperc %s\n", version)
		return nil
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	prefix := cfg.GetPrefixOf()

	monitoring.Logf("fractal percolation: p=%v M=%d S=%d N=%d seed=%d (stream seed %d) percolating=%v labeler=%s",
		params.P, params.Subdivision, params.Levels, params.Runs, params.Seed, params.StreamSeed(),
		params.PercolatingOnly, params.Strategy)

	wantImages := cfg.GetImage() || cfg.GetPNG()
	var (
		last percolation.Snapshot
		chis []int
		opts []montecarlo.Option
	)
	if wantImages {
		if params.PercolatingOnly {
			opts = append(opts, montecarlo.WithSnapshotObserver(func(_ int, s percolation.Snapshot) {
				last = s.Clone()
			}))
		} else {
			opts = append(opts, montecarlo.WithFieldObserver(func(_ int, f *field.Binary) {
				last = percolation.Snapshot{Field: f.Clone()}
			}))
		}
	}
	if cfg.GetPNG() {
		opts = append(opts, montecarlo.WithTrialObserver(func(t montecarlo.Trial) {
			chis = append(chis, t.Chi)
		}))
	}

	res, err := montecarlo.Run(ctx, params, opts...)
	if err != nil {
		return err
	}
	if res.IntegrityWarnings > 0 {
		monitoring.Logf("%d runs produced a non-integer Euler characteristic", res.IntegrityWarnings)
	}

	if dir := filepath.Dir(prefix + "x"); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	datPath := res.FileName(prefix)
	if err := os.WriteFile(datPath, []byte(res.Record()+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	monitoring.Logf("wrote %s", datPath)

	stem := prefix + params.BaseName()
	if cfg.GetImage() {
		if err := writePGM(stem+".pgm", last); err != nil {
			return err
		}
	}
	if cfg.GetPNG() {
		title := fmt.Sprintf("p=%v M=%d S=%d", params.P, params.Subdivision, params.Levels)
		if err := render.SaveHeatMap(stem+".png", title, last); err != nil {
			return err
		}
		if err := render.SaveHistogram(stem+"-chi.png", title, chis, cfg.GetHistogramBins()); err != nil {
			return err
		}
	}

	if path := cfg.GetDatabase(); path != "" {
		db, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		id, err := db.InsertExperiment(ctx, res)
		if err != nil {
			return err
		}
		monitoring.Logf("stored experiment %s in %s", id, path)
	}

	fmt.Fprintln(stdout, res.Record())
	return nil
}

func writePGM(path string, snap percolation.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := render.WritePGM(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
