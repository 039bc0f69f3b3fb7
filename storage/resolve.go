package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cardata/models"
)

// Error taxonomy for source resolution. All are fatal for the run.
var (
	ErrSourceNotFound       = errors.New("storage: source could not be resolved")
	ErrUnsupportedExtension = errors.New("storage: unsupported file type for data source")
	ErrNoSuchProvider       = errors.New("storage: provider namespace does not expose entry")
)

// ProviderFunc produces a table without arguments, the programmatic
// counterpart of a dataset file.
type ProviderFunc func() (*models.Table, error)

// providers maps namespace -> entry name -> provider. The empty entry name
// is the namespace default, so both "generator" and
// "generator.raw_equipment" can resolve.
var providers = map[string]map[string]ProviderFunc{}

// RegisterProvider registers a named table provider. An empty name registers
// the namespace default.
func RegisterProvider(namespace, name string, fn ProviderFunc) {
	ns, ok := providers[namespace]
	if !ok {
		ns = make(map[string]ProviderFunc)
		providers[namespace] = ns
	}
	ns[name] = fn
}

type funcProvider struct {
	ref string
	fn  ProviderFunc
}

func (p funcProvider) Name() string                 { return p.ref }
func (p funcProvider) Load() (*models.Table, error) { return p.fn() }

// ResolveSource turns a source string into a TableProvider. Path candidates
// are tried first (the literal path, then the path under the executable's
// directory, then under its parent); only when no file exists is the string
// treated as a provider reference. First existing match wins, never merged.
func ResolveSource(source string) (TableProvider, error) {
	if path, ok := resolveCandidatePath(source); ok {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			return csvProvider{path: path}, nil
		case ".json":
			return jsonProvider{path: path}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
		}
	}
	return lookupProvider(source)
}

// resolveCandidatePath returns the first existing path matching source in
// likely locations.
func resolveCandidatePath(source string) (string, bool) {
	var candidates []string
	if filepath.IsAbs(source) {
		candidates = []string{source}
	} else {
		candidates = []string{source}
		if exe, err := os.Executable(); err == nil {
			exeDir := filepath.Dir(exe)
			candidates = append(candidates,
				filepath.Join(exeDir, source),
				filepath.Join(filepath.Dir(exeDir), source),
			)
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			abs, err := filepath.Abs(c)
			if err != nil {
				return c, true
			}
			return abs, true
		}
	}
	return "", false
}

// lookupProvider resolves a "namespace" or "namespace.name" reference. A
// known namespace with an unknown entry is a distinct error from an unknown
// namespace, mirroring a loadable source that lacks the expected entry point.
func lookupProvider(ref string) (TableProvider, error) {
	namespace, name := ref, ""
	if i := strings.LastIndex(ref, "."); i >= 0 {
		namespace, name = ref[:i], ref[i+1:]
	}

	ns, ok := providers[namespace]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, ref)
	}
	fn, ok := ns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no %q", ErrNoSuchProvider, namespace, name)
	}
	return funcProvider{ref: ref, fn: fn}, nil
}
