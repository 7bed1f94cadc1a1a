package ui

// History manages input history for search and command inputs, allowing
// navigation backward and forward through previous entries.
type History struct {
	entries        []string
	currentIndex   int // -1 = not navigating
	maxEntries     int
	temporaryInput string // current input stashed while navigating
}

// NewHistory creates a new History with a maximum number of entries
func NewHistory(maxEntries int) *History {
	return &History{
		entries:      []string{},
		currentIndex: -1,
		maxEntries:   maxEntries,
	}
}

// Add adds an entry to the history, skipping empty entries and duplicate
// consecutive entries, and trimming to the maximum size.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}

	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}

	h.currentIndex = -1
	h.temporaryInput = ""
}

// Previous returns the previous entry in history
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	if h.currentIndex < 0 {
		h.currentIndex = len(h.entries) - 1
	} else if h.currentIndex > 0 {
		h.currentIndex--
	}

	return h.entries[h.currentIndex], true
}

// Next returns the next entry in history, or the stashed input when
// navigating past the most recent entry.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 || h.currentIndex < 0 {
		return "", false
	}

	h.currentIndex++
	if h.currentIndex >= len(h.entries) {
		h.currentIndex = -1
		temp := h.temporaryInput
		h.temporaryInput = ""
		return temp, true
	}

	return h.entries[h.currentIndex], true
}

// Reset resets the navigation state
func (h *History) Reset() {
	h.currentIndex = -1
	h.temporaryInput = ""
}

// SetTemporary stores the current input before navigating history
func (h *History) SetTemporary(input string) {
	h.temporaryInput = input
}

// IsNavigating returns true if currently navigating through history
func (h *History) IsNavigating() bool {
	return h.currentIndex >= 0
}
