// Package build provides the generation run that turns the catalog into
// artist pages.
//
// # Builder
//
// The Builder coordinates one run:
//
//  1. Load the overrides data file (missing file: no overrides)
//  2. Scan the MP3 library for album timelines (optional)
//  3. Report slugs shared by different artist names
//  4. For every genre and artist: resolve, render, write <slug>.html
//  5. Write artist thumbnails referenced by overrides
//  6. Emit one completion notice
//
// # Basic Usage
//
//	cat, err := build.LoadCatalog(settings)
//	builder := build.NewBuilder(settings, cat, func(event build.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := builder.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	result, err := builder.Run(ctx)
//
// # Ordering
//
// Pages are written one at a time in catalog order. When two artists share
// a slug the later one overwrites the earlier page, so the order must stay
// deterministic.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Slug    string
//	}
package build
