// Package verse provides the Verse and Chapter domain entities.
package verse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ChapterCount is the number of chapters in the corpus.
const ChapterCount = 114

// Revelation types as reported by the verse providers.
const (
	RevelationMeccan  = "Meccan"
	RevelationMedinan = "Medinan"
)

// ChapterInfo represents chapter metadata without its verses.
type ChapterInfo struct {
	Number                 int    // Chapter number (1..114)
	Name                   string // Arabic name
	EnglishName            string // Transliterated name
	EnglishNameTranslation string // Meaning of the name
	NumberOfVerses         int    // Verse count
	RevelationType         string // Meccan or Medinan
}

// Verse represents one numbered unit of text.
// Immutable once loaded.
type Verse struct {
	Number          int         // Global sequence number across the corpus
	NumberInChapter int         // Number within the owning chapter
	Text            string      // Source-language text
	Translation     string      // Translated text (empty when unavailable)
	Juz             int         // Juz (part) number
	Chapter         ChapterInfo // Owning chapter
}

// Key returns the "chapter:verse" reference of the verse.
func (v *Verse) Key() string {
	return strconv.Itoa(v.Chapter.Number) + ":" + strconv.Itoa(v.NumberInChapter)
}

// Chapter is an ordered sequence of verses.
// The order of Verses defines the "next verse" relation.
type Chapter struct {
	ChapterInfo
	Verses []Verse
}

// IndexOf returns the position of the verse with the given global number,
// or -1 if the verse is not part of the chapter.
func (c *Chapter) IndexOf(number int) int {
	for i := range c.Verses {
		if c.Verses[i].Number == number {
			return i
		}
	}
	return -1
}

// Verse returns the verse with the given global number.
func (c *Chapter) Verse(number int) (Verse, bool) {
	i := c.IndexOf(number)
	if i < 0 {
		return Verse{}, false
	}
	return c.Verses[i], true
}

// Next returns the verse following the given one in chapter order.
// Returns false when the verse is the last one or is not in the chapter.
func (c *Chapter) Next(number int) (Verse, bool) {
	i := c.IndexOf(number)
	if i < 0 || i+1 >= len(c.Verses) {
		return Verse{}, false
	}
	return c.Verses[i+1], true
}

// FindByNumberInChapter returns the verse with the given in-chapter number.
func (c *Chapter) FindByNumberInChapter(n int) (Verse, bool) {
	for _, v := range c.Verses {
		if v.NumberInChapter == n {
			return v, true
		}
	}
	return Verse{}, false
}

// HasPrev reports whether a chapter precedes this one.
func (c *ChapterInfo) HasPrev() bool {
	return c.Number > 1
}

// HasNext reports whether a chapter follows this one.
func (c *ChapterInfo) HasNext() bool {
	return c.Number < ChapterCount
}

// ShowsBismillah reports whether the chapter is displayed with a separate
// opening invocation. Chapter 1 carries it as its first verse and chapter 9
// has none.
func (c *ChapterInfo) ShowsBismillah() bool {
	return c.Number != 1 && c.Number != 9
}

// ErrInvalidChapter is returned for chapter numbers outside 1..ChapterCount.
var ErrInvalidChapter = errors.New("invalid chapter number")

// ValidChapterNumber reports whether n addresses an existing chapter.
func ValidChapterNumber(n int) bool {
	return n >= 1 && n <= ChapterCount
}

// NormalizeName tidies a transliterated chapter name for display:
// apostrophe variants are unified and whitespace is collapsed.
func NormalizeName(name string) string {
	replacer := strings.NewReplacer("’", "'", "‘", "'", "`", "'", "ʿ", "'", "ʾ", "'")
	name = replacer.Replace(name)
	return strings.Join(strings.FieldsFunc(name, unicode.IsSpace), " ")
}

// MatchesQuery reports whether the chapter's English name or its translation
// contains the query, case-insensitively. An empty query matches everything.
func (c *ChapterInfo) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.EnglishName), q) ||
		strings.Contains(strings.ToLower(c.EnglishNameTranslation), q)
}

// bismillahRunes is the rune length of the opening invocation (with its
// trailing space) as it prefixes the first verse of most chapters.
const bismillahRunes = 39

// StripBismillah removes the opening invocation that some text editions
// prepend to the first verse of a chapter. Chapter 1 keeps it (it is the
// verse itself) and chapter 9 never has it. Texts no longer than the
// invocation are returned unchanged.
func StripBismillah(chapter, numberInChapter int, text string) string {
	if numberInChapter != 1 || chapter == 1 || chapter == 9 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= bismillahRunes {
		return text
	}
	return strings.TrimLeftFunc(string(runes[bismillahRunes:]), unicode.IsSpace)
}
