// Command songlist prints the song library in a chosen sort order.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tapbeat/tapbeat/config"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/songsort"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

func main() {
	libraryPath := flag.String("library", "", "song index yaml (default: config, then the built-in demo)")
	sortLabel := flag.String("sort", "", "sort order: Title, Artist, Creator, BPM or Length")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *libraryPath == "" {
		*libraryPath = cfg.Library
	}
	if *sortLabel == "" {
		*sortLabel = cfg.Sort
	}

	s, err := songsort.Parse(*sortLabel)
	if err != nil {
		log.Fatal(err)
	}

	var lib *library.Library
	if *libraryPath != "" {
		lib, err = library.Load(*libraryPath)
	} else {
		lib, err = library.LoadDefault()
	}
	if err != nil {
		log.Fatal(err)
	}

	render(os.Stdout, lib, s)
}

func render(w io.Writer, lib *library.Library, s songsort.Sort) {
	groups := slices.Clone(lib.Groups)
	songsort.NewRegistry(s).Sort(groups)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Songs by %s", s)))

	tracks := 0
	var total time.Duration
	for i, g := range groups {
		first := g.First()
		length := time.Duration(g.LongestEndTime()) * time.Millisecond
		tracks += len(g.Tracks)
		total += length

		meta := []string{formatBPM(first), formatLength(length)}
		if first.Creator != "" {
			meta = append(meta, "by "+first.Creator)
		}
		fmt.Fprintf(w, "%3d. %s  %s\n", i+1, titleStyle.Render(g.Label()), metaStyle.Render(strings.Join(meta, " · ")))
	}

	fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("%s groups, %s tracks, %s total",
		humanize.Comma(int64(len(groups))), humanize.Comma(int64(tracks)), formatLength(total))))
}

func formatBPM(t *library.Track) string {
	if t.BPMMin > 0 && t.BPMMin != t.BPMMax {
		return fmt.Sprintf("%d-%d BPM", t.BPMMin, t.BPMMax)
	}
	return fmt.Sprintf("%d BPM", t.BPMMax)
}

func formatLength(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
