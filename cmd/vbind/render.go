package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/internal/export"
	"github.com/vango-dev/vbind/internal/preview"
	"github.com/vango-dev/vbind/pkg/dom"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		format string
		steps  int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a snapshot of the demo page",
		Long: `Render the demo page after a number of update steps and store it.

The output is HTML, or a msgpack reset batch that a preview client can
apply directly. Destinations are file paths or s3://bucket/key.

Examples:
  vbind render
  vbind render --steps=3 --out=demo.html
  vbind render --format=msgpack --out=s3://snapshots/demo.msgpack`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if steps < 0 {
				return errors.New("E141").WithValuef("--steps=%d", steps)
			}

			data, ext, err := renderDemo(format, steps)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(cfg.Export.Dir, export.DefaultName(time.Now(), ext))
			}

			store, name, err := export.Resolve(out, cfg.Export)
			if err != nil {
				return err
			}
			location, err := store.Put(cmd.Context(), name, export.ContentType(name), data)
			if err != nil {
				return err
			}
			success("Wrote %s (%d bytes)", location, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File path or s3://bucket/key (default: timestamped file in export.dir)")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or msgpack")
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "Number of demo updates to apply first")

	return cmd
}

// renderDemo builds the demo, advances it and encodes the document.
func renderDemo(format string, steps int) ([]byte, string, error) {
	doc := dom.NewDocument(dom.WithHydrationIDs())
	demo := preview.NewDemo(doc)
	demo.Root().Mount(doc)
	defer demo.Dispose()

	for i := 0; i < steps; i++ {
		demo.Step()
	}

	switch format {
	case "html":
		var buf bytes.Buffer
		if err := doc.Render(&buf); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), ".html", nil
	case "msgpack":
		data, err := dom.PatchBatch{Patches: doc.Snapshot(), Reset: true}.Encode()
		return data, ".msgpack", err
	default:
		return nil, "", errors.New("E141").
			WithValue(fmt.Sprintf("--format=%s", format)).
			WithSuggestion("Use html or msgpack")
	}
}
