package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/signal-companion/internal/common"
	"github.com/Veraticus/signal-companion/internal/engine"
	"github.com/schollz/progressbar/v3"
)

// BatchLine is the JSON line written for each processed request.
type BatchLine struct {
	Result any    `json:"result,omitempty"`
	Op     string `json:"op"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line"`
}

// BatchSummary counts the outcome of a batch run.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
}

// BatchRunner evaluates "operation<TAB>argument" lines and emits one JSON line per request.
type BatchRunner struct {
	calc        engine.Calculator
	out         io.Writer
	progress    io.Writer
	progressBar *progressbar.ProgressBar
}

// NewBatchRunner creates a runner writing results to out and progress to progress.
// A nil progress writer disables the progress bar.
func NewBatchRunner(calc engine.Calculator, out, progress io.Writer) *BatchRunner {
	return &BatchRunner{calc: calc, out: out, progress: progress}
}

type batchRequest struct {
	req  engine.Request
	err  error
	line int
}

func readRequests(in io.Reader) ([]batchRequest, error) {
	var reqs []batchRequest
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		req, err := engine.ParseRequest(text)
		reqs = append(reqs, batchRequest{req: req, err: err, line: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return reqs, nil
}

// Run processes every request in in. Failing requests are reported inline and do not stop the run.
func (b *BatchRunner) Run(ctx context.Context, in io.Reader) (BatchSummary, error) {
	reqs, err := readRequests(in)
	if err != nil {
		return BatchSummary{}, err
	}

	summary := BatchSummary{Total: len(reqs)}
	b.initProgressBar(len(reqs))
	enc := json.NewEncoder(b.out)

	for _, r := range reqs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		line := BatchLine{Line: r.line, Op: string(r.req.Op)}
		runErr := r.err
		if runErr == nil {
			line.Result, runErr = engine.Run(ctx, b.calc, r.req)
		}

		if runErr != nil {
			summary.Failed++
			line.Error = common.UserMessage(runErr)
			common.LogDebug(ctx, "batch request failed", common.Fields{
				"line":  r.line,
				"op":    r.req.Op,
				"error": runErr,
			})
		} else {
			summary.Succeeded++
		}

		if err := enc.Encode(line); err != nil {
			return summary, fmt.Errorf("failed to write result for line %d: %w", r.line, err)
		}
		b.advance()
	}

	b.finish()
	return summary, nil
}

func (b *BatchRunner) initProgressBar(total int) {
	if b.progress == nil {
		return
	}
	b.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Evaluating expressions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (b *BatchRunner) advance() {
	if b.progressBar == nil {
		return
	}
	if err := b.progressBar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

func (b *BatchRunner) finish() {
	if b.progressBar == nil {
		return
	}
	if err := b.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	if _, err := fmt.Fprintln(b.progress); err != nil {
		slog.Warn("Failed to write newline", "error", err)
	}
}

// FormatSummary renders the closing line of a batch run.
func FormatSummary(s BatchSummary) string {
	msg := fmt.Sprintf("%d requests: %d succeeded, %d failed", s.Total, s.Succeeded, s.Failed)
	if s.Failed > 0 {
		return FormatWarning(msg)
	}
	return FormatSuccess(msg)
}
