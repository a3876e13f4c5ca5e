// Package config implements the editor's startup script discovery (spec
// §6 "Configuration discovery"): load $HOME/<name> then ./<name>,
// collecting every failure instead of stopping at the first, the way
// garaekz-tfx's flowfx.Parallel collects task errors with
// go.uber.org/multierr.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/kylelemons/kilua-go/script"
)

// Discover attempts to load name from $HOME and the current directory,
// in that order, evaluating each as script source against rt. It returns
// how many of the two candidates loaded successfully and every error
// encountered along the way, joined with multierr so the caller can
// report all of them at once rather than only the last (spec §6).
func Discover(rt script.Runtime, name string) (loaded int, err error) {
	var candidates []string
	if home, ok := os.LookupEnv("HOME"); ok && home != "" {
		candidates = append(candidates, filepath.Join(home, name))
	}
	candidates = append(candidates, filepath.Join(".", name))

	var errs error
	for _, path := range candidates {
		if loadErr := loadFile(rt, path); loadErr != nil {
			errs = multierr.Append(errs, loadErr)
			continue
		}
		loaded++
	}
	return loaded, errs
}

func loadFile(rt script.Runtime, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if err := rt.Eval(string(data)); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
