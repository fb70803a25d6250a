// Package ioutils provides file system and image utilities for the page
// generator.
//
// # Identifiers
//
// Slugify turns an artist's display name into the identifier used as the
// overrides lookup key and as the page filename stem:
//
//	ioutils.Slugify("Mor ve Ötesi")          // "mor-ve-otesi"
//	ioutils.Slugify("Pentagram (Mezarkabul)") // "pentagram-mezarkabul"
//
// # File Operations
//
//	err := ioutils.EnsureDir("artist")
//	err = ioutils.WriteFile(ctx, "artist/queen.html", page)
//
// # Thumbnails
//
// The ImageService scales artist photos down for the page hero:
//
//	svc := ioutils.NewImageService()
//	jpeg, err := svc.Thumbnail(ctx, photo, 400)
package ioutils
