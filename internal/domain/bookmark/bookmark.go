// Package bookmark provides the Bookmark domain entity.
package bookmark

import (
	"time"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// Bookmark represents a verse saved by the reader.
type Bookmark struct {
	VerseNumber     int       `json:"ayahNumber"`            // Global verse number (unique key)
	NumberInChapter int       `json:"numberInSurah"`         // Verse number within its chapter
	ChapterNumber   int       `json:"surahNumber"`           // Owning chapter
	ChapterName     string    `json:"surahName"`             // Normalized chapter name
	VerseText       string    `json:"ayahText"`              // Source-language text
	Translation     string    `json:"translation,omitempty"` // Translated text (optional)
	CreatedAt       time.Time `json:"-"`                     // Creation time
	Timestamp       int64     `json:"timestamp"`             // CreatedAt in Unix milliseconds (persisted form)
}

// FromVerse builds an unsaved bookmark for the given verse.
func FromVerse(v verse.Verse) Bookmark {
	return Bookmark{
		VerseNumber:     v.Number,
		NumberInChapter: v.NumberInChapter,
		ChapterNumber:   v.Chapter.Number,
		ChapterName:     verse.NormalizeName(v.Chapter.EnglishName),
		VerseText:       v.Text,
		Translation:     v.Translation,
	}
}

// List is an ordered bookmark list, newest first.
// At most one bookmark exists per verse number.
type List []Bookmark

// Contains reports whether the verse is bookmarked.
func (l List) Contains(verseNumber int) bool {
	for _, b := range l {
		if b.VerseNumber == verseNumber {
			return true
		}
	}
	return false
}

// Add returns the list with b inserted at the front, stamped with now.
// If the verse is already bookmarked the list is returned unchanged and
// added is false.
func (l List) Add(b Bookmark, now time.Time) (List, bool) {
	if l.Contains(b.VerseNumber) {
		return l, false
	}
	b.CreatedAt = now
	b.Timestamp = now.UnixMilli()

	result := make(List, 0, len(l)+1)
	result = append(result, b)
	result = append(result, l...)
	return result, true
}

// Remove returns the list without the bookmark for verseNumber.
// Removing a verse that is not bookmarked returns the list unchanged and
// removed is false.
func (l List) Remove(verseNumber int) (List, bool) {
	if !l.Contains(verseNumber) {
		return l, false
	}
	result := make(List, 0, len(l)-1)
	for _, b := range l {
		if b.VerseNumber != verseNumber {
			result = append(result, b)
		}
	}
	return result, true
}

// Restore fills CreatedAt from the persisted timestamp and drops duplicate
// verse entries, keeping the first (newest) occurrence.
func (l List) Restore() List {
	seen := make(map[int]bool, len(l))
	result := make(List, 0, len(l))
	for _, b := range l {
		if seen[b.VerseNumber] {
			continue
		}
		seen[b.VerseNumber] = true
		b.CreatedAt = time.UnixMilli(b.Timestamp)
		result = append(result, b)
	}
	return result
}
