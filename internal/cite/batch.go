// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pubtex/internal/csl"
	"github.com/pdiddy/pubtex/internal/pubmed"
	"github.com/pdiddy/pubtex/pkg/types"
)

// ItemResult is the outcome for one identifier in a batch.
type ItemResult struct {
	PMID     string
	Metadata types.Metadata
	Err      error
}

// BatchResult holds the per-item outcomes of a batch run, in input order.
type BatchResult struct {
	Items []ItemResult
}

// Failed returns the number of identifiers that failed.
func (r BatchResult) Failed() int {
	n := 0
	for _, item := range r.Items {
		if item.Err != nil {
			n++
		}
	}
	return n
}

// HasFailures reports whether any identifier failed.
func (r BatchResult) HasFailures() bool { return r.Failed() > 0 }

// RunBatch resolves each identifier in order, one fully before the next.
// A failure is reported with one line on errOut and never affects other
// items. BibTeX records are printed to out as they resolve, separated by
// blank lines; in CSL mode the successful items are collected and
// emitted as a single list after the batch. The aggregate outcome is
// computed from the collected per-item results once all are processed.
func RunBatch(ctx context.Context, c *pubmed.Client, pmids []string, cfg types.FetchConfig, out, errOut io.Writer) BatchResult {
	var result BatchResult
	printed := 0

	for _, pmid := range pmids {
		meta, err := Resolve(ctx, c, pmid, cfg.JournalMode)
		result.Items = append(result.Items, ItemResult{PMID: pmid, Metadata: meta, Err: err})
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if cfg.Format != types.OutputCSL {
			if printed > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, RenderBibTeX(meta))
			printed++
		}
	}

	if cfg.Format == types.OutputCSL {
		var metas []types.Metadata
		for _, item := range result.Items {
			if item.Err == nil {
				metas = append(metas, item.Metadata)
			}
		}
		if err := csl.Format(metas, out); err != nil {
			fmt.Fprintf(errOut, "error: writing CSL output: %v\n", err)
		}
	}

	return result
}
