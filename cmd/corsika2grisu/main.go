// Command corsika2grisu converts a decoded CORSIKA simulation stream into
// the GrISU/kascade ASCII format: one run header block, one "S" line per
// shower and one "P" line per Cherenkov photon, with optional "C"
// supplement lines, a sqlite run summary and diagnostics plots.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nkorzoun/corsikaIOreader/internal/config"
	"github.com/nkorzoun/corsikaIOreader/internal/coords"
	"github.com/nkorzoun/corsikaIOreader/internal/corsika"
	"github.com/nkorzoun/corsikaIOreader/internal/diag"
	"github.com/nkorzoun/corsikaIOreader/internal/grisu"
	"github.com/nkorzoun/corsikaIOreader/internal/monitoring"
	"github.com/nkorzoun/corsikaIOreader/internal/simio"
	"github.com/nkorzoun/corsikaIOreader/internal/stats"
	"github.com/nkorzoun/corsikaIOreader/internal/version"
)

var (
	inPath      = flag.String("in", "-", `decoded event stream (JSON lines, "-" for stdin)`)
	outDest     = flag.String("out", grisu.StdoutDestination, `output destination ("stdout" or a file path)`)
	cfgPath     = flag.String("config", "", "run configuration JSON")
	atmID       = flag.Int("atm", -1, "built-in atmosphere model id (negative disables slant depth)")
	atmProfile  = flag.String("atmprofile", "", "tabulated atmosphere profile (atmprof format)")
	cLine       = flag.Bool("cline", false, "emit supplemental C lines")
	statsPath   = flag.String("stats", "", "sqlite path for run summaries")
	plotsDir    = flag.String("plots", "", "directory for diagnostics plots")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Tag())
		return
	}

	cfg := loadConfig()

	atm, err := cfg.BuildAtmosphere()
	if err != nil {
		log.Fatalf("failed to set up atmosphere model: %v", err)
	}

	in := io.Reader(os.Stdin)
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("failed to open event stream: %v", err)
		}
		defer f.Close()
		in = f
	}

	// A destination that cannot be created is fatal before any record is
	// emitted; there is nothing to recover.
	sink, err := grisu.NewSink(cfg.GetOutput())
	if err != nil {
		log.Fatalf("corsika2grisu: %v", err)
	}
	defer sink.Close()

	writer := grisu.NewWriter(sink, cfg.GetVersionTag(), atm)
	writer.SetQeff(cfg.GetQeff())

	var summaryDB *stats.DB
	if path := cfg.GetStatsDB(); path != "" {
		summaryDB, err = stats.Open(path)
		if err != nil {
			log.Fatalf("failed to open stats database: %v", err)
		}
		defer summaryDB.Close()
	}

	var recorder *diag.Recorder
	if dir := cfg.GetPlotsDir(); dir != "" {
		recorder = diag.NewRecorder(dir)
	}

	if err := convert(simio.NewReader(in), writer, cfg, summaryDB, recorder); err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	if summaryDB != nil {
		s, err := summaryDB.SessionSummary()
		if err != nil {
			monitoring.Logf("failed to summarise run: %v", err)
		} else {
			monitoring.Logf("converted %d showers, %d photons (energy %.4f-%.4f TeV)",
				s.Showers, s.Photons, s.EnergyMin, s.EnergyMax)
		}
	}
	if recorder != nil {
		if err := recorder.WritePlots(); err != nil {
			monitoring.Logf("failed to write diagnostics plots: %v", err)
		}
	}
}

// loadConfig merges the optional config file with the command line; any
// flag set explicitly wins over the file.
func loadConfig() *config.RunConfig {
	cfg := config.Empty()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = outDest
		case "atm":
			cfg.AtmosphereModel = atmID
		case "atmprofile":
			cfg.AtmosphereProfile = atmProfile
		case "cline":
			cfg.WriteCLine = cLine
		case "stats":
			cfg.StatsDB = statsPath
		case "plots":
			cfg.PlotsDir = plotsDir
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// convert drains the event stream into the record writer. Malformed
// stream lines are logged and skipped; write failures on the sink abort
// the run.
func convert(r *simio.Reader, w *grisu.Writer, cfg *config.RunConfig, summaryDB *stats.DB, recorder *diag.Recorder) error {
	runNumber := 0
	var current *corsika.Shower
	photons := 0

	flush := func() {
		if summaryDB == nil || current == nil {
			return
		}
		if err := summaryDB.RecordShower(runNumber, current.ShowerID, current.Energy, current.FirstInt, photons); err != nil {
			monitoring.Logf("%v", err)
		}
	}

	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			monitoring.Logf("skipping event: %v", err)
			continue
		}

		switch e.Type {
		case simio.KindRunHeader:
			header, err := corsika.RunHeaderFromBlock(e.Block)
			if err != nil {
				return err
			}
			runNumber = header.RunNumber
			if err := w.WriteRunHeader(header, corsika.VerbatimHeader(e.HeaderText)); err != nil {
				return err
			}
		case simio.KindShower:
			flush()
			current = e.Shower
			photons = 0
			if err := w.WriteShower(*e.Shower, cfg.GetWriteCLine()); err != nil {
				return err
			}
		case simio.KindPhoton:
			if err := w.WritePhotons(*e.Photon, e.Photon.Telescope); err != nil {
				return err
			}
			photons++
			if recorder != nil {
				_, x, y := coords.Transform(0, e.Photon.X, e.Photon.Y)
				recorder.AddPhoton(x, y, e.Photon.Lambda)
			}
		}
	}
	flush()
	return nil
}
