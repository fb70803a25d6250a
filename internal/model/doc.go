// Package model defines the core data structures used throughout
// the musicgenres artist page generator.
//
// # Override
//
// Override is the sparse, hand-maintained record read from the data file
// (data/artists.json). Every field is optional; a nil field means "use
// the computed default":
//
//	{
//	  "queen": {
//	    "about": "Legendary UK rock band.",
//	    "albums": [{"year": 1975, "title": "A Night at the Opera"}],
//	    "compare_with": "Nirvana"
//	  }
//	}
//
// # Artist
//
// Artist is the merged record: every field resolved, ready to be rendered
// into a page. It is built fresh for each artist and never persisted.
//
//	artist := resolver.Resolve(resolver.Input{...})
//	fmt.Println(artist.Slug, artist.CompareWith)
package model
