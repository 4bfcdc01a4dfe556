// Command checkmodels scans the Gemini account for models that support
// content generation and reports which one the server would pick at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"mentorhub/config"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if cfg.Gemini.ApiKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY not set; nothing to scan")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		fmt.Fprintln(os.Stderr, "gemini client setup failed:", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("Scanning for models that support generateContent...")

	var usable []string
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "model listing failed:", err)
			os.Exit(1)
		}

		supported := false
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				supported = true
				break
			}
		}
		fmt.Printf("  %-50s generateContent=%v\n", m.Name, supported)
		if supported {
			usable = append(usable, m.Name)
		}
	}

	if len(usable) == 0 {
		fmt.Println("No usable models found.")
		os.Exit(1)
	}

	// Mirror the server's preference: a flash model when one exists.
	chosen := usable[0]
	for _, name := range usable {
		if strings.Contains(name, "flash") {
			chosen = name
			break
		}
	}
	fmt.Printf("\n%d usable models, server would choose: %s\n", len(usable), chosen)
}
