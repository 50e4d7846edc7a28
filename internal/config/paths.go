package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the single source of truth for file system paths. All paths are
// relative to the executable directory, never the current working
// directory, so the binary behaves the same wherever it is invoked from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known output files
	CleanedCSV string
}

// cleanedCSVName is the fixed file name of the cleaned dataset; the
// directory it lands in is the configurable part.
const cleanedCSVName = "cleaned_cafe_sales.csv"

// GetPaths returns the application paths relative to the executable
// location.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── data/
//	  │   └── reports/   (cleaned dataset + aggregate tables)
//	  └── logs/
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at the given directory. Split out of
// GetPaths so tests can root it at a temp dir.
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),
		CleanedCSV:    filepath.Join(reportsDir, cleanedCSVName),
	}
}

// Apply overlays configured directories on the defaults. Relative entries
// are resolved against the executable directory.
func (p *Paths) Apply(cfg PathsConfig) {
	resolve := func(dir string) string {
		if dir == "" || filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(p.ExecutableDir, dir)
	}

	if cfg.DataDir != "" {
		p.DataDir = resolve(cfg.DataDir)
	}
	if cfg.ReportsDir != "" {
		p.ReportsDir = resolve(cfg.ReportsDir)
	}
	if cfg.LogsDir != "" {
		p.LogsDir = resolve(cfg.LogsDir)
	}
	p.CleanedCSV = filepath.Join(p.ReportsDir, cleanedCSVName)
}

// SetReportsDir redirects report output to dir and keeps the derived file
// paths in sync. A relative dir is resolved against the current working
// directory, since it comes from a command-line flag rather than config.
func (p *Paths) SetReportsDir(dir string) {
	if !filepath.IsAbs(dir) {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}
	p.ReportsDir = dir
	p.CleanedCSV = filepath.Join(dir, cleanedCSVName)
}

// EnsureDirectories creates all required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.ReportsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the path for a report file.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
