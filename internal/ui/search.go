package ui

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"mindala/internal/model"
)

// SearchResult describes the outcome of a key event in search mode
type SearchResult int

const (
	// SearchContinue means search mode is still active
	SearchContinue SearchResult = iota
	// SearchJump means the user picked a match
	SearchJump
	// SearchCancel means the user dismissed search mode
	SearchCancel
)

// SearchMatch is one matching node
type SearchMatch struct {
	ID   string
	Text string
}

const maxSearchMatches = 8

// SearchMode finds nodes by fuzzy-matching their text. Matching ignores
// collapse state so nodes inside collapsed subtrees can be found; the
// caller expands the path to the chosen node.
type SearchMode struct {
	active   bool
	input    []rune
	cursor   int
	matches  []SearchMatch
	selected int
	history  *History
}

// NewSearchMode creates a new search mode instance
func NewSearchMode() *SearchMode {
	return &SearchMode{
		history: NewHistory(100),
	}
}

// Activate enters search mode with an empty query
func (s *SearchMode) Activate() {
	s.active = true
	s.input = s.input[:0]
	s.cursor = 0
	s.matches = nil
	s.selected = 0
	s.history.Reset()
}

// Deactivate leaves search mode
func (s *SearchMode) Deactivate() {
	s.active = false
	s.input = s.input[:0]
	s.cursor = 0
	s.matches = nil
	s.selected = 0
}

// IsActive returns true while search mode is receiving input
func (s *SearchMode) IsActive() bool {
	return s.active
}

// Query returns the current search query
func (s *SearchMode) Query() string {
	return string(s.input)
}

// Selected returns the currently highlighted match, if any
func (s *SearchMode) Selected() (SearchMatch, bool) {
	if s.selected < 0 || s.selected >= len(s.matches) {
		return SearchMatch{}, false
	}
	return s.matches[s.selected], true
}

// Update recomputes the match list against every node in the tree
func (s *SearchMode) Update(tree *model.Tree) {
	s.matches = s.matches[:0]
	s.selected = 0

	query := string(s.input)
	if query == "" {
		return
	}

	nodes := tree.All()
	texts := make([]string, len(nodes))
	for i, n := range nodes {
		texts[i] = n.Text
	}

	ranks := fuzzy.RankFindNormalizedFold(query, texts)
	sort.Sort(ranks)

	for _, r := range ranks {
		if len(s.matches) >= maxSearchMatches {
			break
		}
		s.matches = append(s.matches, SearchMatch{
			ID:   nodes[r.OriginalIndex].ID,
			Text: r.Target,
		})
	}
}

// HandleKey processes a key event. The caller must call Update after any
// event that returns SearchContinue, since the query may have changed.
func (s *SearchMode) HandleKey(ev *tcell.EventKey) SearchResult {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.Deactivate()
		return SearchCancel
	case tcell.KeyEnter:
		if _, ok := s.Selected(); !ok {
			s.Deactivate()
			return SearchCancel
		}
		s.history.Add(string(s.input))
		return SearchJump
	case tcell.KeyUp, tcell.KeyCtrlP:
		if s.selected > 0 {
			s.selected--
		}
	case tcell.KeyDown, tcell.KeyCtrlN, tcell.KeyTab:
		if s.selected < len(s.matches)-1 {
			s.selected++
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursor > 0 {
			s.input = append(s.input[:s.cursor-1], s.input[s.cursor:]...)
			s.cursor--
		} else if len(s.input) == 0 {
			s.Deactivate()
			return SearchCancel
		}
	case tcell.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
	case tcell.KeyRight:
		if s.cursor < len(s.input) {
			s.cursor++
		}
	case tcell.KeyCtrlU:
		s.input = append([]rune{}, s.input[s.cursor:]...)
		s.cursor = 0
	case tcell.KeyRune:
		r := ev.Rune()
		s.input = append(s.input[:s.cursor], append([]rune{r}, s.input[s.cursor:]...)...)
		s.cursor++
	}
	return SearchContinue
}

// Height returns the number of screen rows the search widget occupies
func (s *SearchMode) Height() int {
	if !s.active {
		return 0
	}
	return len(s.matches) + 1
}

// Render draws the match list and query line so the query ends on lastRow
func (s *SearchMode) Render(screen *Screen, lastRow int) {
	if !s.active {
		return
	}

	width, _ := screen.Size()

	matchTop := lastRow - len(s.matches)
	for i, match := range s.matches {
		y := matchTop + i
		style := screen.SearchTextStyle()
		if i == s.selected {
			style = screen.SearchMatchStyle()
		}
		screen.FillLine(0, y, style)
		screen.DrawStringLimited(2, y, match.Text, width-2, style)
	}

	screen.FillLine(0, lastRow, screen.SearchTextStyle())
	screen.DrawString(0, lastRow, "/", screen.SearchLabelStyle())
	screen.DrawStringLimited(1, lastRow, string(s.input), width-1, screen.SearchTextStyle())

	cursorCol := 1 + StringWidth(string(s.input[:s.cursor]))
	if cursorCol < width {
		var under rune = ' '
		if s.cursor < len(s.input) {
			under = s.input[s.cursor]
		}
		screen.DrawString(cursorCol, lastRow, string(under), screen.SearchCursorStyle())
	}
}
