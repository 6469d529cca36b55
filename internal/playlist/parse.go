package playlist

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Video is the normalized record parsed from one raw block. Duration is
// the pre-formatted time text from the page (H:MM:SS or M:SS), passed
// through verbatim.
type Video struct {
	ID       string
	Title    string
	Duration string
}

// ParseBlock extracts a video record from one raw block under the given
// layout. Absence of any required field is a *FieldError naming the
// field; a block never yields a partial record.
func ParseBlock(layout Layout, block RawBlock) (Video, error) {
	if layout == LayoutCurrent {
		return parseCurrentBlock(block)
	}
	return parseLegacyBlock(block)
}

// parseLegacyBlock re-parses a serialized table row. A bare <tr> does not
// survive a full-document parse, so the fragment is parsed in a tbody
// context and queried from the row element itself.
func parseLegacyBlock(block RawBlock) (Video, error) {
	row, err := parseRowFragment(string(block))
	if err != nil {
		return Video{}, err
	}

	id, ok := row.Attr("data-video-id")
	if !ok || id == "" {
		return Video{}, &FieldError{Field: "data-video-id"}
	}
	title, ok := row.Attr("data-title")
	if !ok {
		return Video{}, &FieldError{Field: "data-title"}
	}
	stamp := row.Find("div.timestamp span")
	if stamp.Length() == 0 {
		return Video{}, &FieldError{Field: "timestamp"}
	}

	return Video{
		ID:       id,
		Title:    title,
		Duration: strings.TrimSpace(stamp.First().Text()),
	}, nil
}

// parseRowFragment parses a <tr> fragment and returns a selection rooted
// at the row element.
func parseRowFragment(fragment string) (*goquery.Selection, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "tbody", DataAtom: atom.Tbody}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, &FormatError{Reason: "parsing video row: " + err.Error()}
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			return goquery.NewDocumentFromNode(n).Selection, nil
		}
	}
	return nil, &FormatError{Reason: "video block is not a table row"}
}

// parseCurrentBlock re-parses a serialized playlistVideoRenderer entry.
func parseCurrentBlock(block RawBlock) (Video, error) {
	renderer := gjson.Get(string(block), "playlistVideoRenderer")
	if !renderer.Exists() {
		return Video{}, &FieldError{Field: "playlistVideoRenderer"}
	}

	id := renderer.Get("videoId")
	if !id.Exists() || id.String() == "" {
		return Video{}, &FieldError{Field: "videoId"}
	}
	title := renderer.Get("title.runs.0.text")
	if !title.Exists() {
		return Video{}, &FieldError{Field: "title.runs.0.text"}
	}
	duration := renderer.Get("lengthText.simpleText")
	if !duration.Exists() {
		return Video{}, &FieldError{Field: "lengthText.simpleText"}
	}

	return Video{
		ID:       id.String(),
		Title:    title.String(),
		Duration: duration.String(),
	}, nil
}
