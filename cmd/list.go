package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ytlist/internal/config"
	"ytlist/internal/history"
	"ytlist/internal/httputil"
	"ytlist/internal/page"
	"ytlist/internal/playlist"
	"ytlist/internal/ui"
)

// listRun is the default command: ytlist <url>
func listRun(cmd *cobra.Command, args []string) error {
	url := args[0]

	client := httputil.NewClient(time.Duration(cfg.Timeout) * time.Second)
	loader := page.NewLoader(client, cfg.UserAgent)

	text, charset, err := loader.Load(url)
	if err != nil {
		return err
	}
	debugf("loaded %d bytes (charset %s)", len(text), charset)

	count := 0
	if flagPick {
		count, err = pickVideo(text)
	} else {
		count, err = printTriples(text)
	}
	if err != nil {
		return err
	}
	debugf("extracted %d videos", count)

	if cfg.History {
		if herr := recordFetch(url, count); herr != nil {
			debugf("recording history failed: %v", herr)
		}
	}

	return nil
}

// printTriples streams triples to stdout as they are parsed, so anything
// emitted before a mid-document failure stays printed.
func printTriples(text string) (int, error) {
	enc := json.NewEncoder(os.Stdout)

	count := 0
	for triple, err := range playlist.Triples(text) {
		if err != nil {
			return count, err
		}
		if flagJSON {
			if err := enc.Encode(triple); err != nil {
				return count, fmt.Errorf("encoding output: %w", err)
			}
		} else {
			fmt.Println(triple.URL, triple.Duration, triple.Title)
		}
		count++
	}
	return count, nil
}

// pickVideo materializes the triples, lets the user pick one, and prints
// only the chosen video's watch URL.
func pickVideo(text string) (int, error) {
	var triples []playlist.Triple
	for triple, err := range playlist.Triples(text) {
		if err != nil {
			return len(triples), err
		}
		triples = append(triples, triple)
	}

	if len(triples) == 0 {
		return 0, nil
	}

	items := make([]ui.Item, len(triples))
	for i, t := range triples {
		items[i] = ui.Item{
			Label:  t.Title,
			Detail: t.Duration + "  " + t.URL,
		}
	}

	idx, err := ui.Select("Videos", items)
	if err != nil {
		return len(triples), err
	}

	fmt.Println(triples[idx].URL)
	return len(triples), nil
}

func recordFetch(url string, videos int) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(url, videos)
}
