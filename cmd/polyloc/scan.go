package main

import (
	"context"
	"fmt"

	"github.com/Br3nda/polyloc/internal/aggregate"
	"github.com/Br3nda/polyloc/internal/config"
	"github.com/Br3nda/polyloc/internal/detect"
	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/plog"
	"github.com/Br3nda/polyloc/internal/probe"
	"github.com/Br3nda/polyloc/internal/scanners"
	"github.com/Br3nda/polyloc/internal/walker"
)

// runConfig is the merged, ready-to-use settings for a single CLI
// invocation, resolved once by loadRunConfig and passed to whichever
// subcommand needs it.
type runConfig struct {
	cfg      config.Config
	pipeline *detect.Pipeline
}

func loadRunConfig() (runConfig, error) {
	fileCfg, err := config.Load(configPathFlag)
	if err != nil {
		return runConfig{}, err
	}
	merged := config.Merge(fileCfg, config.Flags{Exclusions: excludeFlag, NoColor: noColorFlag})

	fileProber := probe.NewFileCommandProber()
	extProbe := func(path string) (string, error) {
		return fileProber.Probe(context.Background(), path)
	}
	return runConfig{cfg: merged, pipeline: detect.New(extProbe)}, nil
}

func (rc runConfig) walkOptions() walker.Options {
	return walker.Options{Exclusions: rc.cfg.Exclusions, SkipDotfiles: true}
}

// detectFile classifies one file, returning (lang, ok).
func (rc runConfig) detectFile(fc *entity.FileContext) (entity.Lang, bool) {
	return rc.pipeline.Detect(fc)
}

// scanRoots walks roots, detects and scans each file, and accumulates
// per-language and per-file counts into a single aggregate.Report.
// Files whose language cannot be resolved, or whose language has no
// registered scanner, are silently skipped from counting — they still
// surface via the "detect" subcommand.
func scanRoots(rc runConfig, roots []string) (*aggregate.Report, error) {
	report := aggregate.New()
	err := walker.Walk(roots, rc.walkOptions(), func(fc *entity.FileContext) error {
		lang, ok := rc.detectFile(fc)
		if !ok {
			return nil
		}
		scanner, ok := scanners.Lookup(lang)
		if !ok {
			return nil
		}
		content, err := fc.Content()
		if err != nil {
			plog.Warn("skipping file: read failed", "path", fc.Path, "error", err)
			return nil
		}
		scanner.Count(content, aggregate.NewSink(report, fc.Path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking roots: %w", err)
	}
	return report, nil
}
