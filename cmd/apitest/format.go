package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creativitylabs/llm-tools/probe"
)

func printHeader(w io.Writer, url, model string) {
	fmt.Fprintf(w, "=== %s ===\n", styleTitle("LLM API smoke test"))
	fmt.Fprintf(w, "url=%s model=%s\n\n", url, model)
}

func printResult(w io.Writer, res probe.Result) {
	fmt.Fprintf(w, "  %-16s %s\n", res.Name, styleStatus(res.OK))
	if res.Detail != "" {
		fmt.Fprintf(w, "    %s\n", res.Detail)
	}
	if res.Err != "" {
		fmt.Fprintf(w, "    err: %s\n", res.Err)
	}
}

func printSummary(w io.Writer, report *probe.Report) {
	fmt.Fprintf(w, "\npassed %d/%d\n", report.Passed(), len(report.Results))
}

func styleTitle(v string) string {
	return colorize(v, "1;36")
}

func styleStatus(ok bool) string {
	if ok {
		return colorize("PASS", "1;32")
	}
	return colorize("FAIL", "1;31")
}

func colorize(v, code string) string {
	if !isColorEnabled() || strings.TrimSpace(v) == "" {
		return v
	}
	return "\033[" + code + "m" + v + "\033[0m"
}

func isColorEnabled() bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && term != "dumb"
}
