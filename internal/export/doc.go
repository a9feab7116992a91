// Package export writes rendered snapshots to the filesystem or to S3.
//
// A destination is either a file path or an s3://bucket/key URL:
//
//	store, name, err := export.Resolve("s3://snaps/demo.html", cfg.Export)
//	loc, err := store.Put(ctx, name, "text/html; charset=utf-8", data)
package export
