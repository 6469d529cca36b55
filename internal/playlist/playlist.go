package playlist

import "iter"

// WatchURLPrefix is the fixed prefix every emitted watch URL starts with.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// Triple is the final output unit for one video.
type Triple struct {
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Title    string `json:"title"`
}

// Triple builds the output triple for a parsed video record.
func (v Video) Triple() Triple {
	return Triple{
		URL:      WatchURLPrefix + v.ID,
		Duration: v.Duration,
		Title:    v.Title,
	}
}

// Triples runs the full extraction pipeline over a page document:
// locate the format, split the video-list region into blocks, parse each
// block, and format the triple. Triples are produced one at a time, in
// source order, so the caller can stream them as they arrive. The
// sequence stops at the first failed stage, yielding that error last;
// malformed individual blocks are not skipped.
func Triples(page string) iter.Seq2[Triple, error] {
	return func(yield func(Triple, error) bool) {
		region, err := Detect(page)
		if err != nil {
			yield(Triple{}, err)
			return
		}
		for block, err := range region.Blocks() {
			if err != nil {
				yield(Triple{}, err)
				return
			}
			video, err := ParseBlock(region.Layout, block)
			if err != nil {
				yield(Triple{}, err)
				return
			}
			if !yield(video.Triple(), nil) {
				return
			}
		}
	}
}
