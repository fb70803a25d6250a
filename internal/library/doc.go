// Package library reads album timelines out of a local MP3 collection.
//
// Every .mp3 file under the library root is opened with id3v2 and its
// artist, album and year frames are collected. Albums are grouped by the
// artist's slug, so "Mor ve Ötesi" tags feed the mor-ve-otesi page:
//
//	idx, err := library.Scan(ctx, "/music")
//	albums := idx.Albums("mor-ve-otesi")
//
// Files without tags, or with an empty artist or album frame, are skipped.
package library
