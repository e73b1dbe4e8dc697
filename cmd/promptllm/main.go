package main

import (
	"context"
	"fmt"
	"os"

	llmtools "github.com/creativitylabs/llm-tools"
	"github.com/creativitylabs/llm-tools/api"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	if opts.Params.Stream {
		fmt.Fprintln(os.Stderr, "warning: streaming is not implemented, sending a non-streaming request")
		opts.Params.Stream = false
	}

	client := llmtools.New(llmtools.Config{
		BaseURL: opts.URL,
		APIKey:  opts.APIKey,
		Debug:   opts.Debug,
	})

	if !opts.JSONOutput {
		printBanner(os.Stdout, opts)
	}

	ctx := context.Background()
	var ex *llmtools.Exchange
	switch opts.Mode {
	case api.ModeChat:
		ex, err = client.Chat(ctx, api.BuildChat(opts.Model, opts.System, opts.UserMessage, opts.Params))
	default:
		ex, err = client.Completion(ctx, api.BuildCompletion(opts.Model, opts.Prompt, opts.Params))
	}
	if err != nil {
		return err
	}

	if opts.JSONOutput {
		out, err := renderJSON(ex.Body, ex.Elapsed)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	renderHuman(os.Stdout, &ex.Response, ex.Elapsed, opts.ShowMetadata)
	return nil
}
