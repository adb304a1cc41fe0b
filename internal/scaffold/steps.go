package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aellingwood/anvil/internal/source"
)

// fetchExtractStep downloads (or copies) the packed starter template into
// the workspace and extracts it. Only runs for remote sources.
type fetchExtractStep struct {
	factory ExtractorFactory
}

func (s *fetchExtractStep) Name() string { return "fetch-extract" }

func (s *fetchExtractStep) Run(st *State) error {
	packDir := filepath.Join(st.WorkDir, "pack")
	if err := os.MkdirAll(packDir, 0o755); err != nil {
		st.Logger.Error().Err(err).Msg("creating pack directory")
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}

	packed := filepath.Join(packDir, source.DeriveFileName(st.Source))
	if err := source.Fetch(st.Source, packed); err != nil {
		st.Logger.Error().Err(err).Str("source", st.Source).Msg("fetching starter template")
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	st.PackedPath = packed

	extractor, err := s.factory(packed)
	if err != nil {
		st.Logger.Error().Err(err).Str("artifact", packed).Msg("resolving archive format")
		return fmt.Errorf("%w: %v", ErrExtract, err)
	}

	recipeDir := filepath.Join(st.WorkDir, "recipe")
	if err := os.MkdirAll(recipeDir, 0o755); err != nil {
		st.Logger.Error().Err(err).Msg("creating extraction directory")
		return fmt.Errorf("%w: %v", ErrExtract, err)
	}
	if err := extractor.ExtractTo(recipeDir); err != nil {
		st.Logger.Error().Err(err).Str("artifact", packed).Msg("extracting starter template")
		return fmt.Errorf("%w: %v", ErrExtract, err)
	}

	st.SourceDir = recipeDir
	return nil
}

// collapseStep skips a single wrapper directory left behind by the archive.
type collapseStep struct{}

func (s *collapseStep) Name() string { return "collapse" }

func (s *collapseStep) Run(st *State) error {
	root, err := Collapse(st.SourceDir)
	if err != nil {
		st.Logger.Error().Err(err).Msg("resolving template root")
		return fmt.Errorf("%w: %v", ErrExtract, err)
	}
	st.SourceDir = root
	return nil
}

// mirrorStep copies the resolved template root into the destination.
type mirrorStep struct{}

func (s *mirrorStep) Name() string { return "mirror" }

func (s *mirrorStep) Run(st *State) error {
	if err := os.MkdirAll(st.DestDir, 0o755); err != nil {
		st.Logger.Error().Err(err).Str("dest", st.DestDir).Msg("creating theme directory")
		return fmt.Errorf("%w: %v", ErrMirror, err)
	}
	if err := Mirror(st.SourceDir, st.DestDir); err != nil {
		st.Logger.Error().Err(err).Str("dest", st.DestDir).Msg("copying template")
		return fmt.Errorf("%w: %v", ErrMirror, err)
	}
	return nil
}

// finalizeStep hands the populated destination to the token generator.
type finalizeStep struct {
	gen Generator
}

func (s *finalizeStep) Name() string { return "finalize" }

func (s *finalizeStep) Run(st *State) error {
	if err := s.gen.Generate(st.DestDir, st.MachineName, st.Label); err != nil {
		st.Logger.Error().Err(err).Msg("rewriting template tokens")
		return fmt.Errorf("generating theme: %w", err)
	}
	return nil
}
