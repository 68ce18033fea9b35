// Package content reads the site's JSON content documents from a file
// system: the embedded defaults, or an operator-provided directory.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jsamuelsen11/exclusive-events/assets"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ContentLoader = (*Loader)(nil)
	_ ports.HealthChecker = (*Loader)(nil)
)

// Loader implements [ports.ContentLoader] over an [fs.FS]. Each resource is
// a file named by [catalog.Resource.File] at the root of the file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewLoaderFromConfig reads from cfg.Dir when set, or from the embedded
// default content otherwise.
func NewLoaderFromConfig(cfg *config.ContentConfig) *Loader {
	if cfg.Dir == "" {
		return NewLoader(assets.Data())
	}
	return NewLoader(os.DirFS(cfg.Dir))
}

// Load reads and decodes the resource's document. The document must be a
// JSON object; anything else is reported as a shape error.
func (l *Loader) Load(ctx context.Context, res catalog.Resource) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.LoadError{Resource: res.Name, Kind: domain.LoadUnreadable, Err: err}
	}

	data, err := fs.ReadFile(l.fsys, res.File)
	if err != nil {
		kind := domain.LoadUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.LoadMissing
		}
		return nil, &domain.LoadError{Resource: res.Name, Kind: kind, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.LoadError{Resource: res.Name, Kind: domain.LoadMalformed, Err: err}
	}

	if _, ok := doc.(map[string]any); !ok {
		return nil, &domain.LoadError{
			Resource: res.Name,
			Kind:     domain.LoadShape,
			Err:      fmt.Errorf("top level is %s, want object", jsonKind(doc)),
		}
	}
	return doc, nil
}

// Name implements [ports.HealthChecker].
func (l *Loader) Name() string {
	return "content"
}

// HealthCheck reports whether the content root can be listed. Individual
// missing documents are not a failure; the catalog falls back for them.
func (l *Loader) HealthCheck(_ context.Context) error {
	if _, err := fs.ReadDir(l.fsys, "."); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
