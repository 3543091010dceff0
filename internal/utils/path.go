package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves config and corpus locations for the binary
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and platform config dir
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     platformConfigDir(runtime.GOOS, homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

func platformConfigDir(goos, homeDir string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordgrid")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordgrid")
		}
		return filepath.Join(homeDir, ".config", "wordgrid")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordgrid")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordgrid")
	default:
		return filepath.Join(homeDir, ".wordgrid")
	}
}

// ConfigDir returns the platform config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// ResolveCorpus finds a corpus file. Absolute paths are returned as is;
// relative ones are tried against the working dir, the executable dir and
// the config dir, in that order. An empty path stays empty.
func (pr *PathResolver) ResolveCorpus(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	)
	for _, candidate := range candidates {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			log.Debugf("Found corpus file: %s", candidate)
			return candidate
		}
		log.Debugf("Corpus candidate not found: %s", candidate)
	}
	return path
}
