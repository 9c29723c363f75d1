// Package scaffold creates new projects and content documents.
package scaffold

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultTitle is used by Init when no title is given.
const DefaultTitle = "My Site"

const (
	siteRoot    = "site"
	placeholder = "Write your content here...\n"
)

//go:embed site
var starter embed.FS

// starterDirs are created even when the starter site puts no file in them.
var starterDirs = []string{
	filepath.Join(domain.ContentSourceDir, domain.PostsDir),
	domain.TemplatesDir,
	filepath.Join(domain.StaticDir, "css"),
	filepath.Join(domain.StaticDir, "js"),
}

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffolder writes the starter site and document skeletons.
type Scaffolder struct {
	fs     afero.Fs
	config ports.ConfigLoader
	logger ports.Logger
	now    func() time.Time
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithNow sets the clock used to date new posts.
func WithNow(now func() time.Time) Option {
	return func(s *Scaffolder) {
		s.now = now
	}
}

// New creates a Scaffolder writing to the OS filesystem.
func New(config ports.ConfigLoader, logger ports.Logger, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		fs:     afero.NewOsFs(),
		config: config,
		logger: logger,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init writes the starter site under root.
func (s *Scaffolder) Init(root, title string) ([]string, error) {
	if title == "" {
		title = DefaultTitle
	}

	for _, dir := range starterDirs {
		if err := s.fs.MkdirAll(filepath.Join(root, dir), domain.DirPerm); err != nil {
			return nil, errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "dir", dir))
		}
	}

	var written []string
	err := fs.WalkDir(starter, siteRoot, func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(siteRoot, filepath.FromSlash(name))
		target := filepath.Join(root, rel)
		ok, err := s.create(target, func() ([]byte, error) { return starter.ReadFile(name) })
		if ok {
			written = append(written, target)
		}
		return err
	})
	if err != nil {
		return written, err
	}

	if existing := s.config.Path(root); existing != "" {
		s.logger.Debug("kept existing config", "path", existing)
		return written, nil
	}
	cfg := domain.DefaultSiteConfig()
	cfg.Title = title
	cfg.URL = "http://localhost:8000"
	cfg.Description = "A static site built with folio"
	cfg.Author = "Your Name"
	cfg.OutputFormats = []string{"html", "plain", "xml", "json"}
	cfgPath, err := s.config.Write(root, cfg)
	if err != nil {
		return written, err
	}
	return append(written, cfgPath), nil
}

// create writes the bytes returned by data to target unless target already
// exists. It reports whether the file was written.
func (s *Scaffolder) create(target string, data func() ([]byte, error)) (bool, error) {
	exists, err := afero.Exists(s.fs, target)
	if err != nil {
		return false, errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", target))
	}
	if exists {
		s.logger.Debug("kept existing file", "path", target)
		return false, nil
	}

	content, err := data()
	if err != nil {
		return false, errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", target))
	}
	if err := s.fs.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return false, errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", target))
	}
	if err := afero.WriteFile(s.fs, target, content, domain.FilePerm); err != nil {
		return false, errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", target))
	}
	return true, nil
}

type frontMatter struct {
	Title  string `yaml:"title"`
	Date   string `yaml:"date,omitempty"`
	Layout string `yaml:"layout"`
}

// NewContent writes a document skeleton. Posts are named after the current
// date and the title; pages after the title alone.
func (s *Scaffolder) NewContent(root string, kind domain.ContentKind, title string) (string, error) {
	if s.config.Path(root) == "" {
		return "", errors.Join(domain.ErrConfigNotFound,
			zerr.With(zerr.New("no config.toml or config.yaml found, run 'folio init' first"), "root", root))
	}
	slug := domain.ContentSlug(title)
	if slug == "" {
		return "", errors.Join(domain.ErrInvalidContentName,
			zerr.With(zerr.New("title has no usable characters"), "title", title))
	}

	fm := frontMatter{Title: title, Layout: "default"}
	rel := slug + ".md"
	if kind == domain.KindPost {
		now := s.now()
		fm.Date = now.Format(time.RFC3339)
		fm.Layout = "post"
		rel = path.Join(domain.PostsDir, now.Format(time.DateOnly)+"-"+rel)
	}
	target := filepath.Join(root, domain.ContentSourceDir, filepath.FromSlash(rel))

	if exists, _ := afero.Exists(s.fs, target); exists {
		return "", errors.Join(domain.ErrContentExists, zerr.With(zerr.New("refusing to overwrite"), "path", target))
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", errors.Join(domain.ErrScaffoldFailed, zerr.With(err, "path", target))
	}
	body := "---\n" + string(header) + "---\n\n" + placeholder

	if _, err := s.create(target, func() ([]byte, error) { return []byte(body), nil }); err != nil {
		return "", err
	}
	s.logger.Debug("created document", "path", target, "kind", string(kind))
	return target, nil
}
