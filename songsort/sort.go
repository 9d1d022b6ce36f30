// Package songsort orders song groups for the browser and lays out the sort tabs.
package songsort

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tapbeat/tapbeat/library"
	"golang.org/x/text/cases"
)

var ErrUnknownSort = errors.New("songsort: unknown sort")

// Sort is one of the fixed sort criteria. Its value is the tab position.
type Sort int

const (
	Title Sort = iota
	Artist
	Creator
	BPM
	Length
)

// Count is the number of sort criteria.
const Count = int(Length) + 1

type criterion struct {
	name    string
	compare func(a, b *library.Group) int
}

var criteria = [Count]criterion{
	Title:   {"Title", byTitle},
	Artist:  {"Artist", byArtist},
	Creator: {"Creator", byCreator},
	BPM:     {"BPM", byBPM},
	Length:  {"Length", byLength},
}

// All returns every criterion in tab order.
func All() []Sort {
	return []Sort{Title, Artist, Creator, BPM, Length}
}

func (s Sort) Valid() bool {
	return s >= Title && s <= Length
}

// ID is the tab position of the sort.
func (s Sort) ID() int {
	return int(s)
}

func (s Sort) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sort(%d)", int(s))
	}
	return criteria[s].name
}

// Compare orders a before b (<0), equal (0), or after (>0).
func (s Sort) Compare(a, b *library.Group) int {
	if !s.Valid() {
		s = Title
	}
	return criteria[s].compare(a, b)
}

// Parse resolves a sort by its label, ignoring case.
func Parse(label string) (Sort, error) {
	label = strings.TrimSpace(label)
	for _, s := range All() {
		if strings.EqualFold(criteria[s].name, label) {
			return s, nil
		}
	}
	return Title, fmt.Errorf("%w: %q", ErrUnknownSort, label)
}

// compareFold compares with Unicode case folding. A Caser keeps state, so each call gets its own.
func compareFold(a, b string) int {
	fold := cases.Fold()
	return strings.Compare(fold.String(a), fold.String(b))
}

func byTitle(a, b *library.Group) int {
	return compareFold(a.First().Title, b.First().Title)
}

func byArtist(a, b *library.Group) int {
	return compareFold(a.First().Artist, b.First().Artist)
}

func byCreator(a, b *library.Group) int {
	return compareFold(a.First().Creator, b.First().Creator)
}

func byBPM(a, b *library.Group) int {
	return cmp.Compare(a.First().BPMMax, b.First().BPMMax)
}

// byLength uses the longest track in each group.
func byLength(a, b *library.Group) int {
	return cmp.Compare(a.LongestEndTime(), b.LongestEndTime())
}

// Registry holds the active sort for one browser.
type Registry struct {
	current Sort
}

func NewRegistry(initial Sort) *Registry {
	if !initial.Valid() {
		initial = Title
	}
	return &Registry{current: initial}
}

func (r *Registry) Current() Sort {
	return r.current
}

// SetCurrent switches the active sort. Invalid values are ignored.
func (r *Registry) SetCurrent(s Sort) {
	if !s.Valid() {
		return
	}
	r.current = s
}

func (r *Registry) Compare(a, b *library.Group) int {
	return r.current.Compare(a, b)
}

// Sort orders groups in place with the active criterion. Ties keep their input order.
func (r *Registry) Sort(groups []*library.Group) {
	slices.SortStableFunc(groups, r.Compare)
}
