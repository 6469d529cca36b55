// Package playlist extracts per-video metadata from a YouTube playlist
// page. Two page layouts are supported: the legacy server-rendered HTML
// table and the current embedded JSON state blob. The layout is resolved
// once per document and threaded through splitting and parsing.
package playlist

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Layout identifies which supported page layout a document uses.
type Layout int

const (
	// LayoutLegacy is the older server-rendered table of pl-video rows.
	LayoutLegacy Layout = iota
	// LayoutCurrent embeds the video list in a JSON state assignment.
	LayoutCurrent
)

func (l Layout) String() string {
	switch l {
	case LayoutLegacy:
		return "legacy"
	case LayoutCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Markers identifying each layout. The current layout assigns the state
// blob to window["ytInitialData"] and the next statement assigns
// window["ytInitialPlayerResponse"]; the JSON payload sits between them.
const (
	stateStartMarker = `window["ytInitialData"] = `
	stateEndMarker   = `window["ytInitialPlayerResponse"]`
	legacyRowMarker  = "pl-video"
)

// Region is the video-list sub-document isolated from a page: the full
// markup for the legacy layout, or the serialized JSON state blob for
// the current one.
type Region struct {
	Layout Layout

	markup string // legacy: the page markup
	state  string // current: the JSON payload
}

// Detect determines which supported layout a page document uses and
// isolates its video-list region. A document carrying the embedded-state
// marker must yield valid JSON between the markers; a document carrying
// the legacy row token is taken as markup wholesale. Anything else is a
// *FormatError — no further sniffing is attempted.
func Detect(page string) (Region, error) {
	if i := strings.Index(page, stateStartMarker); i >= 0 {
		rest := page[i+len(stateStartMarker):]
		j := strings.Index(rest, stateEndMarker)
		if j < 0 {
			return Region{}, &FormatError{Reason: "embedded state has no terminating assignment"}
		}
		payload := strings.TrimSpace(rest[:j])
		payload = strings.TrimSuffix(payload, ";")
		payload = strings.TrimSpace(payload)
		if !gjson.Valid(payload) {
			return Region{}, &FormatError{Reason: "embedded state is not valid JSON"}
		}
		return Region{Layout: LayoutCurrent, state: payload}, nil
	}

	if strings.Contains(page, legacyRowMarker) {
		return Region{Layout: LayoutLegacy, markup: page}, nil
	}

	return Region{}, &FormatError{Reason: "neither supported layout's markers were found"}
}
