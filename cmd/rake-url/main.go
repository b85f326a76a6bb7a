package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
)

func main() {
	var (
		url         = flag.String("url", "", "Page URL to fetch")
		input       = flag.String("input", "", "Local HTML file (alternative to --url)")
		stoplistCfg = flag.String("stoplist", "", "Stoplist YAML file (required)")
		topK        = flag.Int("top", 20, "Limit output to the top K keywords (0 = all)")
	)
	flag.Parse()

	if *stoplistCfg == "" {
		log.Fatal("--stoplist required")
	}
	if *url == "" && *input == "" {
		log.Fatal("--url or --input required")
	}

	loader := config.Loader{StoplistPath: *stoplistCfg}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	markup, err := readMarkup(*url, *input)
	if err != nil {
		log.Fatalf("read page: %v", err)
	}

	engine := rake.New(components.StopWords)
	keywords := engine.Run(stripHTML(markup))
	if *topK > 0 && *topK < len(keywords) {
		keywords = keywords[:*topK]
	}

	for _, kw := range keywords {
		fmt.Printf("%g\t%s\n", kw.Score, kw.Keyword)
	}
}

func readMarkup(url, path string) (string, error) {
	if url != "" {
		resp, err := http.Get(url)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return "", fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}

	data, err := os.ReadFile(path)
	return string(data), err
}
