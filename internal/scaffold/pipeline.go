package scaffold

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aellingwood/anvil/internal/logging"
	"github.com/aellingwood/anvil/internal/source"
)

// Step failure classes. Each step converts any underlying I/O error into
// one of these so callers can tell which stage of the pipeline gave up.
var (
	ErrFetch   = errors.New("fetching starter template failed")
	ErrExtract = errors.New("extracting starter template failed")
	ErrMirror  = errors.New("copying template to destination failed")
)

// Request describes one scaffold invocation. It is built once from user
// input and never modified afterwards.
type Request struct {
	Label       string // human-readable theme name, e.g. "My Theme"
	MachineName string // normalized slug, e.g. "my_theme"
	Source      string // starter template location: URL or local path
	DestDir     string // final theme directory, fixed before the pipeline runs
}

// State is the scratch space threaded through the pipeline steps. It is
// owned by exactly one step at a time; steps run strictly in order.
type State struct {
	Request

	WorkDir    string // temporary workspace, unique per invocation
	PackedPath string // downloaded/copied artifact, set by the fetch step
	SourceDir  string // resolved template root, updated by extract and collapse

	Logger zerolog.Logger
}

// Extractor unpacks one archive into a target directory.
type Extractor interface {
	ExtractTo(destDir string) error
}

// ExtractorFactory returns an extractor for the archive at path, or an
// error when the format is not recognized.
type ExtractorFactory func(path string) (Extractor, error)

// Generator rewrites placeholder tokens inside the scaffolded theme.
type Generator interface {
	Generate(destDir, machineName, displayName string) error
}

// Step is one unit of work in the scaffold pipeline.
type Step interface {
	Name() string
	Run(st *State) error
}

// Run executes the scaffold pipeline for req. Remote sources go through
// fetch, extract, and collapse before the mirror; local sources are
// mirrored directly. The first failing step halts the pipeline; steps
// already applied to the destination are not rolled back.
//
// The temporary workspace is removed on every exit path.
func Run(req Request, factory ExtractorFactory, gen Generator) error {
	log := logging.GetLogger("scaffold")

	workDir, err := os.MkdirTemp("", "anvil-")
	if err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	st := &State{
		Request: req,
		WorkDir: workDir,
		Logger:  log,
	}

	var steps []Step
	if source.IsRemote(req.Source) {
		steps = append(steps, &fetchExtractStep{factory: factory}, &collapseStep{})
	} else {
		st.SourceDir = req.Source
	}
	steps = append(steps, &mirrorStep{}, &finalizeStep{gen: gen})

	for _, s := range steps {
		log.Debug().Str("step", s.Name()).Msg("running pipeline step")
		if err := s.Run(st); err != nil {
			return err
		}
	}

	log.Info().Str("theme", req.MachineName).Str("dest", req.DestDir).Msg("theme scaffolded")
	return nil
}
