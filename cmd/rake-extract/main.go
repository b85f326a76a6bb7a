package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
	"github.com/cognicore/rake/pkg/rake/store"
	"github.com/cognicore/rake/pkg/rake/store/sqlite"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to text file (default: stdin)")
		cfgPath     = flag.String("config", "", "Config YAML file (alternative to individual flags)")
		stoplistCfg = flag.String("stoplist", "", "Stoplist YAML file (required unless set in --config)")
		topK        = flag.Int("top", 0, "Limit output to the top K keywords (0 = all)")
		dbPath      = flag.String("db", "", "Optional: SQLite database to record the run in")
		source      = flag.String("source", "", "Optional: source label stored with the run (default: input path)")
	)
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		// Individual flags win over config file values
		if *stoplistCfg == "" {
			*stoplistCfg = cfg.StoplistPath
		}
		if *topK == 0 {
			*topK = cfg.TopK
		}
		if *dbPath == "" {
			*dbPath = cfg.DBPath
		}
	}

	if *stoplistCfg == "" {
		log.Fatal("--stoplist required")
	}

	loader := config.Loader{StoplistPath: *stoplistCfg}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	engine := rake.New(components.StopWords)
	keywords := engine.Run(text)
	if *topK > 0 && *topK < len(keywords) {
		keywords = keywords[:*topK]
	}

	for _, kw := range keywords {
		fmt.Printf("%g\t%s\n", kw.Score, kw.Keyword)
	}

	if *dbPath == "" {
		return
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	label := *source
	if label == "" {
		label = *input
	}
	if label == "" {
		label = "stdin"
	}

	run := store.Extraction{
		ID:          store.NewID(),
		Source:      label,
		ExtractedAt: time.Now(),
		Keywords:    keywords,
	}
	if err := st.SaveExtraction(ctx, run); err != nil {
		log.Fatalf("save extraction: %v", err)
	}
	log.Printf("saved extraction %s (%d keywords)", run.ID, len(run.Keywords))
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
