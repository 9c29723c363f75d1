package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/zerr"
)

// Init lays out a new project in dir, which may be relative to the working
// directory. It returns the files written.
func (a *App) Init(_ context.Context, dir, title string) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(err, "dir", dir)
	}
	written, err := a.scaffolder.Init(root, title)
	if err != nil {
		return written, err
	}
	a.logger.Info("site initialized", "root", root, "files", len(written))
	return written, nil
}

// NewContent creates a post or page skeleton in the project.
func (a *App) NewContent(_ context.Context, kind domain.ContentKind, title string) (string, error) {
	path, err := a.scaffolder.NewContent(a.project.Root, kind, title)
	if err != nil {
		return "", err
	}
	a.logger.Info("document created", "path", path, "kind", string(kind))
	return path, nil
}

// Doctor checks the build dependencies, the config, the project layout and
// the build cache. The diagnosis is returned in every case; the error wraps
// domain.ErrChecksFailed when any check failed.
func (a *App) Doctor(ctx context.Context) (*domain.Diagnosis, error) {
	var d domain.Diagnosis

	if err := a.checker.Check(ctx); err != nil {
		d.Add(domain.CheckFail, "Build dependencies", err.Error())
	} else {
		d.Add(domain.CheckOK, "Build dependencies", "available")
	}

	a.diagnoseConfig(&d)

	for _, dir := range []struct{ name, path string }{
		{domain.ContentSourceDir, a.project.ContentDir()},
		{domain.TemplatesDir, a.project.TemplatesDir()},
		{domain.StaticDir, a.project.StaticDir()},
	} {
		if info, err := os.Stat(dir.path); err == nil && info.IsDir() {
			d.Add(domain.CheckOK, dir.name+"/", "found")
		} else {
			d.Add(domain.CheckWarn, dir.name+"/", "not found")
		}
	}

	a.diagnoseCache(&d)

	if d.Failed() {
		return &d, domain.ErrChecksFailed
	}
	return &d, nil
}

func (a *App) diagnoseConfig(d *domain.Diagnosis) {
	path := a.loader.Path(a.project.Root)
	if path == "" {
		d.Add(domain.CheckWarn, "Config file", "not found (run 'folio init' to create)")
		return
	}

	kind := "preferred"
	if filepath.Base(path) == domain.ConfigYAML {
		kind = "legacy"
	}
	d.Add(domain.CheckOK, "Config file", fmt.Sprintf("%s (%s)", filepath.Base(path), kind))

	cfg, err := a.loader.Load(a.project.Root)
	if err != nil {
		d.Add(domain.CheckFail, "Site configuration", err.Error())
		return
	}
	title := cfg.Title
	if title == "" {
		title = "Not set"
	}
	d.Add(domain.CheckOK, "Site title", title)
	d.Add(domain.CheckOK, "Output directory", cfg.OutputDir)
	d.Add(domain.CheckOK, "Output formats", strings.Join(cfg.OutputFormats, ", "))
}

func (a *App) diagnoseCache(d *domain.Diagnosis) {
	err := a.cache.Open()
	if err == nil {
		err = a.cache.Validate()
	}
	if err != nil {
		d.Add(domain.CheckWarn, "Build cache", "unusable, the next build starts over: "+domain.KindOf(err).String())
		return
	}
	info, err := a.cache.Info()
	if err != nil {
		d.Add(domain.CheckWarn, "Build cache", err.Error())
		return
	}
	d.Add(domain.CheckOK, "Build cache", fmt.Sprintf("%d files tracked", info.FilesTracked))
}

// Convert renders one markdown file into formats without touching the build
// cache. Outputs are written next to input, or into outDir when it is set.
// Every format is attempted; the error wraps domain.ErrConvertFailed when
// any of them failed.
func (a *App) Convert(ctx context.Context, input string, formats []string, outDir string) ([]domain.ConvertResult, error) {
	if !filepath.IsAbs(input) {
		input = filepath.Join(a.project.Root, input)
	}
	src := domain.MustSourcePath(input)
	if info, err := os.Stat(src.String()); err != nil || info.IsDir() {
		if err == nil {
			err = zerr.New("not a file")
		}
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}

	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		formats = domain.DefaultFormats
	}

	page, err := a.processor.Process(ctx, src)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(src.String()), filepath.Ext(src.String()))
	base := filepath.Join(filepath.Dir(src.String()), stem)
	if outDir != "" {
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(a.project.Root, outDir)
		}
		base = filepath.Join(outDir, stem)
	}

	results := make([]domain.ConvertResult, 0, len(formats))
	failed := false
	for _, format := range formats {
		out, err := a.generator.Generate(ctx, cfg, page, src, base, format)
		if err != nil {
			failed = true
			a.logger.Warn("conversion failed", "path", src.String(), "format", format, "error", err)
		}
		results = append(results, domain.ConvertResult{Format: format, Path: out, Err: err})
	}
	if failed {
		return results, domain.ErrConvertFailed
	}
	return results, nil
}
