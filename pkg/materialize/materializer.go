package materialize

import (
	"context"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/filesystem"
	"github.com/arthur-debert/fprime-bootstrap/pkg/internal/hashutil"
	"github.com/arthur-debert/fprime-bootstrap/pkg/logging"
	"github.com/arthur-debert/fprime-bootstrap/pkg/template"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
	"github.com/rs/zerolog"
)

// Materializer expands one template root into destination trees
type Materializer struct {
	src    fs.FS
	dst    types.FS
	perms  Permissions
	logger zerolog.Logger
}

// Option configures a Materializer
type Option func(*Materializer)

// WithPermissions sets the modes generated entries are created with
func WithPermissions(p Permissions) Option {
	return func(m *Materializer) {
		m.perms = p
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Materializer) {
		m.logger = logger
	}
}

// New creates a Materializer reading templates from src and writing to dst
func New(src fs.FS, dst types.FS, opts ...Option) *Materializer {
	m := &Materializer{
		src:    src,
		dst:    dst,
		perms:  DefaultPermissions(),
		logger: logging.GetLogger("materialize"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result describes a finished materialization
type Result struct {
	DestinationRoot string                   `json:"destinationRoot"`
	Entries         []types.DestinationEntry `json:"entries"`
}

// Files returns the number of files written
func (r *Result) Files() int {
	n := 0
	for _, e := range r.Entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}

// Directories returns the number of directories created
func (r *Result) Directories() int {
	return len(r.Entries) - r.Files()
}

// Substituted returns the number of files whose content had placeholders replaced
func (r *Result) Substituted() int {
	n := 0
	for _, e := range r.Entries {
		if e.Substituted {
			n++
		}
	}
	return n
}

// Plan walks the template root and returns the destination entry of every
// template entry, in walk order, without writing anything.
func (m *Materializer) Plan() ([]types.DestinationEntry, error) {
	var entries []types.DestinationEntry

	// template directory -> destination directory, both relative
	destDirs := map[string]string{".": ""}
	// destination path -> template path that claimed it
	claimed := make(map[string]string)

	err := fs.WalkDir(m.src, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.Wrap(walkErr, errors.ErrSourceRead, "cannot read template entry").WithPath(p)
		}
		if p == "." {
			if !d.IsDir() {
				return errors.New(errors.ErrSourceRead, "template root is not a directory").WithPath(p)
			}
			return nil
		}

		src, err := m.describe(p, d)
		if err != nil {
			return err
		}

		name := template.TransformName(src.RawName)
		if err := template.ValidateName(name); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidDestinationName,
				"template entry %q has no valid destination name", src.RawName).WithPath(p)
		}
		if template.HasMarker(name) {
			return errors.Newf(errors.ErrInvalidDestinationName,
				"template entry %q would still end in %q after renaming", src.RawName, template.MarkerSuffix).WithPath(p)
		}

		parent, ok := destDirs[path.Dir(p)]
		if !ok {
			return errors.Newf(errors.ErrInternal, "parent of %q was not visited", p).WithPath(p)
		}
		destRel := path.Join(parent, name)
		if other, taken := claimed[destRel]; taken {
			return errors.Newf(errors.ErrInvalidDestinationName,
				"destination %q is produced by both %q and %q", destRel, other, p).WithPath(p)
		}
		claimed[destRel] = p

		if src.Kind == types.KindDirectory {
			destDirs[p] = destRel
		}

		entries = append(entries, types.DestinationEntry{
			Source:       src,
			RelativePath: destRel,
			Kind:         src.Kind,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug().Int("entries", len(entries)).Msg("Planned template tree")
	return entries, nil
}

// describe classifies a walked entry. Anything that is neither a directory
// nor, after following links, a regular file is rejected.
func (m *Materializer) describe(p string, d fs.DirEntry) (types.TemplateEntry, error) {
	entry := types.TemplateEntry{RelativePath: p, RawName: d.Name()}

	if d.IsDir() {
		entry.Kind = types.KindDirectory
		return entry, nil
	}

	var (
		info fs.FileInfo
		err  error
	)
	if d.Type().IsRegular() {
		info, err = d.Info()
	} else {
		info, err = fs.Stat(m.src, p)
	}
	if err != nil {
		return entry, errors.Wrap(err, errors.ErrSourceRead, "cannot stat template entry").WithPath(p)
	}
	if !info.Mode().IsRegular() {
		return entry, errors.Newf(errors.ErrSourceRead, "unsupported template entry type %s", info.Mode().Type()).WithPath(p)
	}

	entry.Kind = types.KindFile
	entry.Mode = info.Mode()
	return entry, nil
}

// Materialize expands the template into destRoot
func (m *Materializer) Materialize(destRoot string, binding template.Binding) (*Result, error) {
	return m.MaterializeContext(context.Background(), destRoot, binding)
}

// MaterializeContext expands the template into destRoot. ctx is checked
// before each top-level template entry; a canceled run stops there and
// leaves what was already written.
func (m *Materializer) MaterializeContext(ctx context.Context, destRoot string, binding template.Binding) (*Result, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	if destRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination root cannot be empty")
	}

	planned, err := m.Plan()
	if err != nil {
		return nil, err
	}

	if err := m.dst.MkdirAll(destRoot, m.perms.Directory); err != nil {
		return nil, errors.Wrap(err, errors.ErrDestinationWrite, "cannot create destination root").WithPath(".")
	}

	result := &Result{
		DestinationRoot: destRoot,
		Entries:         make([]types.DestinationEntry, 0, len(planned)),
	}
	for _, entry := range planned {
		if entry.Source.IsTopLevel() {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, errors.ErrCanceled, "materialization canceled").WithPath(entry.Source.RelativePath)
			}
		}

		written, err := m.apply(destRoot, entry, binding)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, written)
	}

	m.logger.Info().
		Str("destination", destRoot).
		Int("files", result.Files()).
		Int("directories", result.Directories()).
		Int("substituted", result.Substituted()).
		Msg("Materialized template")

	return result, nil
}

func (m *Materializer) apply(destRoot string, entry types.DestinationEntry, binding template.Binding) (types.DestinationEntry, error) {
	target := filepath.Join(destRoot, filepath.FromSlash(entry.RelativePath))
	srcPath := entry.Source.RelativePath

	if entry.IsDir() {
		if err := m.dst.MkdirAll(target, m.perms.Directory); err != nil {
			return entry, errors.Wrap(err, errors.ErrDestinationWrite, "cannot create directory").WithPath(srcPath)
		}
		m.logger.Trace().Str("source", srcPath).Str("target", target).Msg("Created directory")
		return entry, nil
	}

	content, err := fs.ReadFile(m.src, srcPath)
	if err != nil {
		return entry, errors.Wrap(err, errors.ErrSourceRead, "cannot read template file").WithPath(srcPath)
	}

	out := content
	if template.IsText(content) {
		out, entry.Substituted = template.SubstituteBytes(content, binding)
	} else {
		entry.Binary = true
	}

	if err := filesystem.WriteFileAtomic(m.dst, target, out, m.perms.fileMode(entry.Source.Mode)); err != nil {
		return entry, errors.Wrap(err, errors.ErrDestinationWrite, "cannot write file").WithPath(srcPath)
	}

	entry.Size = int64(len(out))
	entry.Checksum = hashutil.Checksum(out)

	m.logger.Trace().
		Str("source", srcPath).
		Str("target", target).
		Bool("substituted", entry.Substituted).
		Bool("binary", entry.Binary).
		Msg("Wrote file")

	return entry, nil
}
