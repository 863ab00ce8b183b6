package index

import (
	"fmt"

	"droidlens/internal/crawler"
	"droidlens/internal/extractor"
	"droidlens/internal/hierarchy"
)

// Indexer orchestrates crawling a source tree into a class hierarchy.
type Indexer struct {
	crawler *crawler.Crawler
}

func NewIndexer(c *crawler.Crawler) *Indexer {
	return &Indexer{crawler: c}
}

// BuildHierarchy scans the project root, links every declaration, and
// returns the finished hierarchy along with type-resolution stats.
func (i *Indexer) BuildHierarchy(root string) (*hierarchy.Hierarchy, []hierarchy.StageStats, error) {
	b := hierarchy.NewBuilder()

	err := i.crawler.ScanProject(root, func(f *extractor.FileResult) {
		b.AddFile(f)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}

	h, stats := b.Build()
	return h, stats, nil
}
