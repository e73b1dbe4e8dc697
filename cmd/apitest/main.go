package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	llmtools "github.com/creativitylabs/llm-tools"
	"github.com/creativitylabs/llm-tools/probe"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("apitest", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	url := fs.String("url", envOrDefault("LLM_API_URL", llmtools.DefaultBaseURL), "base URL of the LLM API")
	model := fs.String("model", envOrDefault("LLM_MODEL", llmtools.DefaultModel), "model name used for completion probes")
	apiKey := fs.String("api-key", strings.TrimSpace(os.Getenv("LLM_API_KEY")), "bearer token sent with each request")
	skipHealth := fs.Bool("skip-health", false, "skip the /health probe")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q", rest[0])
	}

	printHeader(os.Stdout, *url, *model)

	report, err := probe.Run(context.Background(), probe.Config{
		BaseURL:    *url,
		Model:      *model,
		APIKey:     *apiKey,
		SkipHealth: *skipHealth,
		OnEvent: func(res probe.Result) {
			printResult(os.Stdout, res)
		},
	})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, report)
	if !report.AllPassed() {
		return fmt.Errorf("%d of %d probes failed", len(report.Results)-report.Passed(), len(report.Results))
	}
	return nil
}

func envOrDefault(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
