package collision

// Duplicate records a token that appeared again after its first occurrence.
type Duplicate struct {
	Token     string // Repeated token
	FirstLine int    // Zero-based line of the first occurrence (the token's id)
	Line      int    // Zero-based line of the repeat
}

// Tracker assigns ids to vocabulary tokens by line number and detects
// repeated tokens. The first occurrence of a token wins; later occurrences
// keep their line slot (ids stay equal to line numbers) but do not remap
// the token.
type Tracker struct {
	ids        map[string]int64
	lines      int
	duplicates []Duplicate
}

// NewTracker creates a tracker sized for an expected number of tokens.
func NewTracker(sizeHint int) *Tracker {
	return &Tracker{
		ids: make(map[string]int64, max(sizeHint, 0)),
	}
}

// Track registers the token on the next line.
// It returns false when the token was already tracked.
func (t *Tracker) Track(token string) bool {
	line := t.lines
	t.lines++

	if first, exists := t.ids[token]; exists {
		t.duplicates = append(t.duplicates, Duplicate{Token: token, FirstLine: int(first), Line: line})
		return false
	}

	t.ids[token] = int64(line)

	return true
}

// IDs returns the token to id mapping. The map is shared with the caller,
// so the tracker must not be used after handing it to a vocabulary.
func (t *Tracker) IDs() map[string]int64 {
	return t.ids
}

// Lines returns the number of tracked lines, repeats included.
func (t *Tracker) Lines() int {
	return t.lines
}

// HasDuplicates reports whether any token was tracked twice.
func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns repeated tokens in the order they were seen.
func (t *Tracker) Duplicates() []Duplicate {
	return t.duplicates
}
