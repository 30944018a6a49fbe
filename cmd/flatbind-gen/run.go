package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"flatbind/internal/analyze"
	"flatbind/internal/config"
	"flatbind/internal/gen"
	"flatbind/internal/layout"
	"flatbind/internal/plan"
)

// run generates one file per layout and writes them once all succeeded.
func run(ctx context.Context, cfg *config.Config) error {
	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:      cfg.Generator.PackageName,
		PackagePath:      cfg.Generator.PackagePath,
		OutputDir:        cfg.Generator.OutputDir,
		GenerateComments: cfg.Generator.Comments,
	})

	files := make([]*gen.GeneratedFile, len(cfg.Layouts))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range cfg.Layouts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := generateLayout(generator, cfg.Generator.Dir, path)
			if err != nil {
				return errors.Wrapf(err, "layout %s", path)
			}

			files[i] = file

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	seen := make(map[string]string, len(files))
	out := make([]gen.GeneratedFile, 0, len(files))

	for i, f := range files {
		if prev, ok := seen[f.Filename]; ok {
			return errors.Errorf("layouts %s and %s both write %s", prev, cfg.Layouts[i], f.Filename)
		}

		seen[f.Filename] = cfg.Layouts[i]
		out = append(out, *f)
	}

	if err := gen.WriteFiles(out, cfg.Generator.OutputDir); err != nil {
		return errors.Wrap(err, "write files")
	}

	logrus.WithFields(logrus.Fields{
		"files":  len(out),
		"output": cfg.Generator.OutputDir,
	}).Info("binding code generated")

	return nil
}

func generateLayout(generator *gen.Generator, dir, path string) (*gen.GeneratedFile, error) {
	log := logrus.WithField("layout", path)

	f, err := layout.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if f.Package == "" {
		return nil, errors.New("layout names no package")
	}

	graph, err := analyze.NewAnalyzer(dir).LoadPackages(f.Package)
	if err != nil {
		return nil, err
	}

	p := plan.NewResolver(graph).Resolve(f)
	for _, w := range p.Diagnostics.Warnings {
		log.Warn(w.String())
	}

	for _, e := range p.Diagnostics.Errors {
		log.Error(e.String())
	}

	if p.Diagnostics.HasErrors() {
		return nil, errors.Errorf("%d layout errors", len(p.Diagnostics.Errors))
	}

	log.WithField("entities", len(p.Entities)).Debug("layout resolved")

	return generator.Generate(p)
}
