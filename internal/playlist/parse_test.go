package playlist

import (
	"errors"
	"testing"
)

const legacyRow = `<tr class="pl-video yt-uix-tile" data-video-id="xyz" data-title="Hello">
  <td class="pl-video-title"><a href="/watch?v=xyz">Hello</a></td>
  <td class="pl-video-time"><div class="timestamp"><span>2:30</span></div></td>
</tr>`

func TestParseLegacyBlock(t *testing.T) {
	video, err := ParseBlock(LayoutLegacy, RawBlock(legacyRow))
	if err != nil {
		t.Fatalf("ParseBlock() error: %v", err)
	}

	if video.ID != "xyz" {
		t.Errorf("ID = %q, want xyz", video.ID)
	}
	if video.Title != "Hello" {
		t.Errorf("Title = %q, want Hello", video.Title)
	}
	if video.Duration != "2:30" {
		t.Errorf("Duration = %q, want 2:30", video.Duration)
	}
}

func TestParseLegacyBlockMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		wantField string
	}{
		{
			"no timestamp element",
			`<tr class="pl-video" data-video-id="xyz" data-title="Hello"><td></td></tr>`,
			"timestamp",
		},
		{
			"no video id",
			`<tr class="pl-video" data-title="Hello"><td><div class="timestamp"><span>2:30</span></div></td></tr>`,
			"data-video-id",
		},
		{
			"empty video id",
			`<tr class="pl-video" data-video-id="" data-title="Hello"><td><div class="timestamp"><span>2:30</span></div></td></tr>`,
			"data-video-id",
		},
		{
			"no title attribute",
			`<tr class="pl-video" data-video-id="xyz"><td><div class="timestamp"><span>2:30</span></div></td></tr>`,
			"data-title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(LayoutLegacy, RawBlock(tt.block))
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("ParseBlock() error = %v, want *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}

func TestParseLegacyBlockNotARow(t *testing.T) {
	_, err := ParseBlock(LayoutLegacy, RawBlock(`<div>not a table row</div>`))

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("ParseBlock() error = %v, want *FormatError", err)
	}
}

func TestParseLegacyBlockEmptyTitle(t *testing.T) {
	block := `<tr class="pl-video" data-video-id="xyz" data-title=""><td><div class="timestamp"><span>2:30</span></div></td></tr>`

	video, err := ParseBlock(LayoutLegacy, RawBlock(block))
	if err != nil {
		t.Fatalf("ParseBlock() error: %v", err)
	}
	if video.Title != "" {
		t.Errorf("Title = %q, want empty string", video.Title)
	}
}

func TestParseCurrentBlock(t *testing.T) {
	block := `{"playlistVideoRenderer":{"videoId":"abc123","title":{"runs":[{"text":"My Video"}]},"lengthText":{"simpleText":"1:02:03"}}}`

	video, err := ParseBlock(LayoutCurrent, RawBlock(block))
	if err != nil {
		t.Fatalf("ParseBlock() error: %v", err)
	}

	if video.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", video.ID)
	}
	if video.Title != "My Video" {
		t.Errorf("Title = %q, want My Video", video.Title)
	}
	if video.Duration != "1:02:03" {
		t.Errorf("Duration = %q, want 1:02:03", video.Duration)
	}
}

func TestParseCurrentBlockMissingFields(t *testing.T) {
	tests := []struct {
		name      string
		block     string
		wantField string
	}{
		{
			"no renderer",
			`{"continuationItemRenderer":{}}`,
			"playlistVideoRenderer",
		},
		{
			"no video id",
			`{"playlistVideoRenderer":{"title":{"runs":[{"text":"My Video"}]},"lengthText":{"simpleText":"1:02:03"}}}`,
			"videoId",
		},
		{
			"empty video id",
			`{"playlistVideoRenderer":{"videoId":"","title":{"runs":[{"text":"My Video"}]},"lengthText":{"simpleText":"1:02:03"}}}`,
			"videoId",
		},
		{
			"no title runs",
			`{"playlistVideoRenderer":{"videoId":"abc123","title":{"runs":[]},"lengthText":{"simpleText":"1:02:03"}}}`,
			"title.runs.0.text",
		},
		{
			"no length text",
			`{"playlistVideoRenderer":{"videoId":"abc123","title":{"runs":[{"text":"My Video"}]}}}`,
			"lengthText.simpleText",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlock(LayoutCurrent, RawBlock(tt.block))
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("ParseBlock() error = %v, want *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}
