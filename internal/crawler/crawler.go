package crawler

import (
	"io/fs"
	"path/filepath"
	"strings"

	"droidlens/internal/extractor"
)

// Crawler scans a directory tree for Java source files.
type Crawler struct {
	extractor *extractor.Extractor
	ignored   []string
}

// NewCrawler creates a new crawler instance. extra lists additional
// directory names to skip on top of the defaults.
func NewCrawler(ext *extractor.Extractor, extra ...string) *Crawler {
	ignored := []string{".git", ".gradle", "build", "out", "vendor", "testdata"}
	return &Crawler{
		extractor: ext,
		ignored:   append(ignored, extra...),
	}
}

// ScanProject walks the root directory and extracts every Java file.
// It streams per-file results through the callback to avoid buffering
// the whole project in memory.
func (c *Crawler) ScanProject(root string, onFile func(*extractor.FileResult)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		result, err := c.extractor.ExtractFromFile(path)
		if err != nil {
			// Broken or unparsable file; skip it rather than failing
			// the whole scan.
			return nil
		}

		onFile(result)
		return nil
	})
}
