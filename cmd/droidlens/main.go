package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"droidlens/internal/analysis"
	"droidlens/internal/config"
	"droidlens/internal/crawler"
	"droidlens/internal/extractor"
	"droidlens/internal/git"
	"droidlens/internal/hierarchy"
	"droidlens/internal/index"
	"droidlens/internal/lifecycle"
	"droidlens/internal/report"
	"droidlens/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "droidlens",
		Short: "Android component and lifecycle entry-point analyzer",
	}
	dbPath     string
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the analysis database (SQLite); overrides config")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	reportCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(entrypointsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(updateCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	return cfg
}

func initStore(cfg *config.Config) *storage.SQLiteStore {
	store, err := storage.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return store
}

func buildHierarchy(cfg *config.Config, root string) *hierarchy.Hierarchy {
	ext, err := extractor.NewExtractor("java")
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}

	cr := crawler.NewCrawler(ext, cfg.Project.Ignore...)
	idx := index.NewIndexer(cr)

	fmt.Println("🚀 Building class hierarchy...")
	start := time.Now()
	h, stats, err := idx.BuildHierarchy(root)
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}
	fmt.Printf("✅ Hierarchy built in %v. %d classes known.\n", time.Since(start), h.Size())
	for _, s := range stats {
		if s.Resolved > 0 {
			fmt.Printf("   type resolution [%s]: %d\n", s.Resolver, s.Resolved)
		}
	}
	return h
}

// buildTables extends the built-in lifecycle tables with configured
// extras. Roles without a built-in table (Application, Plain) cannot
// gain one through configuration; that would change entry-point
// semantics.
func buildTables(cfg *config.Config) lifecycle.MethodTables {
	tables := lifecycle.DefaultMethodTables()
	for role, sigs := range cfg.Lifecycle.ExtraMethods {
		set, ok := tables[lifecycle.ComponentType(role)]
		if !ok {
			fmt.Printf("⚠️  Ignoring extra lifecycle methods for %q: role has no lifecycle table\n", role)
			continue
		}
		for _, sig := range sigs {
			set.Add(sig)
		}
	}
	return tables
}

func newClassifier(cfg *config.Config, h *hierarchy.Hierarchy) *lifecycle.Classifier {
	return lifecycle.NewClassifier(h, h, buildTables(cfg))
}

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan Java sources and persist the class hierarchy",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		root := cfg.Project.Root
		if len(args) > 0 {
			root = args[0]
		}

		fmt.Printf("📂 Scanning directory: %s\n", root)

		store := initStore(cfg)
		defer store.Close()

		h := buildHierarchy(cfg, root)

		fmt.Println("💾 Saving to database...")
		if err := store.SaveHierarchy(context.Background(), h); err != nil {
			log.Fatalf("Failed to save hierarchy: %v", err)
		}

		fmt.Printf("🎉 Scan complete! Database: %s\n", cfg.Database.Path)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every scanned class into its Android component role",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		store := initStore(cfg)
		defer store.Close()

		fmt.Println("🔄 Loading class hierarchy...")
		h, err := store.LoadHierarchy(ctx)
		if err != nil {
			log.Fatalf("Failed to load hierarchy: %v", err)
		}

		classifier := newClassifier(cfg, h)

		counts := make(map[lifecycle.ComponentType]int)
		var results []storage.ComponentRow
		for _, c := range h.Classes() {
			if c.Phantom {
				continue
			}
			ctype := classifier.ComponentTypeOf(c)
			counts[ctype]++
			results = append(results, storage.ComponentRow{
				Class:     c.Name,
				Component: string(ctype),
			})
		}

		if err := store.SaveClassification(ctx, results); err != nil {
			log.Fatalf("Failed to save classification: %v", err)
		}

		fmt.Printf("📊 Classified %d classes:\n", len(results))
		for _, ctype := range lifecycle.AllComponentTypes() {
			if counts[ctype] > 0 {
				fmt.Printf("   %-22s %d\n", ctype, counts[ctype])
			}
		}
	},
}

var entrypointsCmd = &cobra.Command{
	Use:   "entrypoints",
	Short: "List lifecycle entry-point methods of the scanned project",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		store := initStore(cfg)
		defer store.Close()

		h, err := store.LoadHierarchy(ctx)
		if err != nil {
			log.Fatalf("Failed to load hierarchy: %v", err)
		}

		classifier := newClassifier(cfg, h)

		var eps []storage.EntryPointRow
		for _, c := range h.Classes() {
			if c.Phantom {
				continue
			}
			for _, m := range c.Methods {
				isEntry, err := classifier.IsEntryPointMethod(m)
				if err != nil {
					log.Fatalf("Entry-point check failed: %v", err)
				}
				if isEntry {
					eps = append(eps, storage.EntryPointRow{
						Class:        c.Name,
						SubSignature: m.SubSignature(),
					})
				}
			}
		}

		if err := store.SaveEntryPoints(ctx, eps); err != nil {
			log.Fatalf("Failed to save entry points: %v", err)
		}

		fmt.Printf("🎯 Found %d lifecycle entry points:\n", len(eps))
		for _, ep := range eps {
			fmt.Printf("   %s: %s\n", ep.Class, ep.SubSignature)
		}
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a markdown component report with a class diagram",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		store := initStore(cfg)
		defer store.Close()

		h, err := store.LoadHierarchy(ctx)
		if err != nil {
			log.Fatalf("Failed to load hierarchy: %v", err)
		}

		gen := report.NewGenerator(h, newClassifier(cfg, h))
		md, err := gen.Markdown()
		if err != nil {
			log.Fatalf("Failed to generate report: %v", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Print(md)
			return
		}
		if err := os.WriteFile(output, []byte(md), 0o644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("✅ Report written to %s\n", output)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [base-ref]",
	Short: "Re-scan and report which entry points recent git changes touch",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		ctx := context.Background()

		baseRef := "HEAD"
		if len(args) > 0 {
			baseRef = args[0]
		}

		changes, err := git.ChangedJavaFiles(baseRef)
		if err != nil {
			log.Fatalf("Failed to get git changes: %v", err)
		}
		if len(changes) == 0 {
			fmt.Println("✅ No Java changes detected.")
			return
		}
		fmt.Printf("📝 Detected %d changed Java files.\n", len(changes))

		store := initStore(cfg)
		defer store.Close()

		// The hierarchy is immutable per run, so a changed tree means a
		// fresh scan rather than patching the loaded one.
		h := buildHierarchy(cfg, cfg.Project.Root)
		if err := store.SaveHierarchy(ctx, h); err != nil {
			log.Fatalf("Failed to save hierarchy: %v", err)
		}

		classifier := newClassifier(cfg, h)

		fmt.Println("🔍 Analyzing impact...")
		analyzer := analysis.NewAnalyzer(h, classifier)
		rep, err := analyzer.AnalyzeChanges(changes)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}

		fmt.Printf("  -> %d classes changed\n", len(rep.ChangedClasses))
		fmt.Printf("  -> %d lifecycle entry points affected\n", len(rep.AffectedEntryPoints))
		for _, hit := range rep.AffectedEntryPoints {
			fmt.Printf("     [%s] %s: %s\n", hit.Component, hit.Class.Name, hit.SubSignature)
		}
	},
}
