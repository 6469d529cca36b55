package playlist

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

// RawBlock is one video's unparsed data, isolated from its source
// document. Both layouts serialize blocks to text so that downstream
// parsing is uniform regardless of origin.
type RawBlock string

// legacyRowSelector matches playlist-video rows by class substring, the
// same contains-match the legacy pages were scraped with.
const legacyRowSelector = `tr[class*="pl-video"]`

// currentListPath is the fixed, exact path from the root of the embedded
// state to the playlist's contents array. It mirrors an external,
// undocumented shape: when a step goes missing upstream, splitting fails
// with a *NavigationError naming that step, and only this path needs
// updating.
var currentListPath = []string{
	"contents",
	"twoColumnBrowseResultsRenderer",
	"tabs",
	"0",
	"tabRenderer",
	"content",
	"sectionListRenderer",
	"contents",
	"0",
	"itemSectionRenderer",
	"contents",
	"0",
	"playlistVideoListRenderer",
	"contents",
}

// Blocks splits the region into per-video raw blocks, one per entry, in
// document order. The sequence is lazy and finite; zero entries is a
// valid empty sequence. A sequence error, once yielded, is terminal.
func (r Region) Blocks() iter.Seq2[RawBlock, error] {
	switch r.Layout {
	case LayoutCurrent:
		return r.currentBlocks()
	default:
		return r.legacyBlocks()
	}
}

func (r Region) legacyBlocks() iter.Seq2[RawBlock, error] {
	return func(yield func(RawBlock, error) bool) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(r.markup))
		if err != nil {
			yield("", &FormatError{Reason: "parsing page markup: " + err.Error()})
			return
		}
		rows := doc.Find(legacyRowSelector)
		for i := 0; i < rows.Length(); i++ {
			html, err := goquery.OuterHtml(rows.Eq(i))
			if err != nil {
				yield("", &FormatError{Reason: "serializing video row: " + err.Error()})
				return
			}
			if !yield(RawBlock(html), nil) {
				return
			}
		}
	}
}

func (r Region) currentBlocks() iter.Seq2[RawBlock, error] {
	return func(yield func(RawBlock, error) bool) {
		node := gjson.Parse(r.state)
		for _, step := range currentListPath {
			node = node.Get(step)
			if !node.Exists() {
				yield("", &NavigationError{Step: step})
				return
			}
		}
		if !node.IsArray() {
			yield("", &NavigationError{Step: "contents"})
			return
		}
		for _, entry := range node.Array() {
			if !yield(RawBlock(entry.Raw), nil) {
				return
			}
		}
	}
}
