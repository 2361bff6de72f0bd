// Package export writes rendered pages and stylesheets to a Sink.
//
// DirSink writes to the local filesystem and S3Sink to an S3 bucket:
//
//	sink := export.NewS3Sink(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	ex := export.New(export.Config{Sink: sink})
//	loc, err := ex.Page(ctx, "index.html", page)
package export
