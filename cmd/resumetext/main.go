// Command resumetext runs the resume extraction pipeline on local files.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"

	"resumeparser/internal/extract"
	"resumeparser/internal/logging"
	"resumeparser/internal/model"
	"resumeparser/internal/service"
)

type options struct {
	MinLength int  `short:"m" long:"min-length" description:"minimum characters of trimmed text" default:"50"`
	JSON      bool `short:"j" long:"json" description:"print one JSON object per file instead of raw text"`
	Args      struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

// result is one line of --json output.
type result struct {
	File       string             `json:"file"`
	Kind       model.DocumentKind `json:"kind"`
	Outcome    model.Outcome      `json:"outcome"`
	TextLength int                `json:"text_length"`
	Text       string             `json:"text,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, nil, slog.LevelInfo)
	results := run(context.Background(), extract.New(opts.MinLength), opts.Args.Files)

	if err := write(os.Stdout, results, opts.JSON); err != nil {
		logger.Error("write_failed", "error", err.Error())
		os.Exit(1)
	}

	failed := lo.Filter(results, func(r result, _ int) bool { return r.Outcome != model.OutcomeSuccess })
	for _, r := range failed {
		logger.Warn("extraction_rejected", "file", r.File, "outcome", string(r.Outcome), "error", r.Error)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, ext service.TextExtractor, files []string) []result {
	return lo.Map(files, func(path string, _ int) result {
		kind := model.KindFromFilename(path)
		r := result{File: path, Kind: kind}

		data, err := os.ReadFile(path)
		if err == nil {
			r.Text, err = ext.Extract(ctx, model.UploadedDocument{
				OriginalName: filepath.Base(path),
				Kind:         kind,
				RawBytes:     data,
			})
		}
		r.Outcome = service.Classify(err)
		if err != nil {
			r.Error = err.Error()
		}
		r.TextLength = len([]rune(r.Text))
		return r
	})
}

func write(w io.Writer, results []result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	ok := lo.Filter(results, func(r result, _ int) bool { return r.Outcome == model.OutcomeSuccess })
	for i, r := range ok {
		if len(ok) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", r.File); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, r.Text); err != nil {
			return err
		}
		if i < len(ok)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
