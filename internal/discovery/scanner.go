package discovery

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"ggtest/internal/domain"
)

// Discovery is the outcome of scanning a test root
type Discovery struct {
	Classifications []domain.Classification // every candidate directory, in scan order
	Cases           []domain.TestCase       // runnable cases only, in scan order
}

// Scanner finds case directories under a test root
type Scanner struct {
	realWorldDir string
	stateDir     string
	inputFile    string
	outputFile   string
}

// NewScanner creates a new Scanner. stateDir names the harness's own
// directory under the root, which is never a candidate.
func NewScanner(realWorldDir, stateDir, inputFile, outputFile string) *Scanner {
	return &Scanner{
		realWorldDir: realWorldDir,
		stateDir:     stateDir,
		inputFile:    inputFile,
		outputFile:   outputFile,
	}
}

// Scan lists the candidate directories under root and classifies each one.
// It never modifies the tree.
func (s *Scanner) Scan(root string, includeRealWorld bool) (*Discovery, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	dirs, err := listDirs(root, s.stateDir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		dir       string
		realWorld bool
	}
	candidates := make([]candidate, 0, len(dirs))
	hasRealWorld := false
	for _, d := range dirs {
		candidates = append(candidates, candidate{dir: d})
		if d == s.realWorldDir {
			hasRealWorld = true
		}
	}

	if includeRealWorld && hasRealWorld {
		nested, err := listDirs(filepath.Join(root, s.realWorldDir), "")
		if err != nil {
			return nil, err
		}
		for _, d := range nested {
			candidates = append(candidates, candidate{dir: path.Join(s.realWorldDir, d), realWorld: true})
		}
	}

	result := &Discovery{}
	for _, c := range candidates {
		caseDir := filepath.Join(root, filepath.FromSlash(c.dir))
		input := filepath.Join(caseDir, s.inputFile)
		output := filepath.Join(caseDir, s.outputFile)

		status := domain.StatusOK
		if !exists(input) {
			status = domain.StatusMissingInput
		} else if !exists(output) {
			status = domain.StatusMissingOutput
		}

		result.Classifications = append(result.Classifications, domain.Classification{
			Dir:       c.dir,
			RealWorld: c.realWorld,
			Status:    status,
		})
		if status != domain.StatusOK {
			continue
		}

		result.Cases = append(result.Cases, domain.TestCase{
			Dir:        c.dir,
			InputPath:  input,
			OutputPath: output,
			RealWorld:  c.realWorld,
		})
	}

	return result, nil
}

// listDirs returns the names of the immediate subdirectories of dir in
// lexical order, leaving out skip.
func listDirs(dir, skip string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var dirs []string
	for _, e := range entries {
		if skip != "" && e.Name() == skip {
			continue
		}
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			// Follow links so a symlinked case directory is still a case
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
