/*
Package boundary classifies runes as "word characters" or not, and decides
whether a given position in a text is a word boundary.

A boundary set is what keeps the scanner from matching "cat" in the middle
of "category": a keyword may only start and end where the surrounding text
transitions between a word character and a non-word character (or the
start/end of the text). The default set is ASCII letters, digits, and
underscore; callers can replace it wholesale.

The classifier is backed by set.UnorderedSet[rune] — small, read far more
often than written, and exactly the membership test that package already
provides.
*/
package boundary

import "github.com/tanagra-dev/flashkw/set"

// Classifier holds the current word-character set and answers membership
// and boundary-position queries against it.
type Classifier struct {
	wordChars *set.UnorderedSet[rune]
}

// NewClassifier returns a Classifier using the default boundary set: ASCII
// letters, digits, and underscore.
func NewClassifier() *Classifier {
	c := &Classifier{wordChars: set.NewUnorderedSet[rune]()}
	c.SetBoundary(defaultBoundaryChars)
	return c
}

const defaultBoundaryChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// IsWordChar reports whether r is currently classified as a word character.
func (c *Classifier) IsWordChar(r rune) bool {
	return c.wordChars.Contain(r)
}

// SetBoundary replaces the boundary set wholesale with the code points of
// chars.
func (c *Classifier) SetBoundary(chars string) {
	c.SetBoundaryRunes([]rune(chars))
}

// SetBoundaryRunes replaces the boundary set wholesale with rs.
func (c *Classifier) SetBoundaryRunes(rs []rune) {
	next := set.NewUnorderedSetFrom(rs)
	c.wordChars = next
}

// Runes returns the current boundary set as single-character strings,
// matching the shape Engine's boundary getter exposes to callers.
func (c *Classifier) Runes() []string {
	items := c.wordChars.Items()
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = string(r)
	}
	return out
}

// IsWordBoundary reports whether position pos in text (a slice of code
// points) is a word boundary: the start or end of the text, or a position
// where the characters on either side are not both word characters. Two
// adjacent non-word characters are still a boundary — this only rules out
// positions strictly inside a run of word characters.
func (c *Classifier) IsWordBoundary(text []rune, pos int) bool {
	if pos <= 0 || pos >= len(text) {
		return true
	}
	return !(c.IsWordChar(text[pos-1]) && c.IsWordChar(text[pos]))
}
