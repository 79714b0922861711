package bookmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/tilawah/internal/domain/verse"
)

func TestList_Add(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	var l List
	l, added := l.Add(Bookmark{VerseNumber: 10}, now)
	assert.True(t, added)
	l, added = l.Add(Bookmark{VerseNumber: 11}, now.Add(time.Second))
	assert.True(t, added)

	// newest first
	assert.Equal(t, 11, l[0].VerseNumber)
	assert.Equal(t, 10, l[1].VerseNumber)
	assert.Equal(t, now.UnixMilli(), l[1].Timestamp)

	// duplicate is a no-op
	l2, added := l.Add(Bookmark{VerseNumber: 10, ChapterName: "other"}, now.Add(time.Minute))
	assert.False(t, added)
	assert.Len(t, l2, 2)
	assert.Equal(t, l, l2)
}

func TestList_Remove(t *testing.T) {
	l := List{{VerseNumber: 3}, {VerseNumber: 2}, {VerseNumber: 1}}

	l2, removed := l.Remove(2)
	assert.True(t, removed)
	assert.Equal(t, List{{VerseNumber: 3}, {VerseNumber: 1}}, l2)

	l3, removed := l2.Remove(2)
	assert.False(t, removed)
	assert.Len(t, l3, 2)

	// original list is not mutated
	assert.Len(t, l, 3)
}

func TestList_Restore(t *testing.T) {
	l := List{
		{VerseNumber: 5, Timestamp: 2000},
		{VerseNumber: 4, Timestamp: 1500},
		{VerseNumber: 5, Timestamp: 1000},
	}

	restored := l.Restore()
	assert.Len(t, restored, 2)
	assert.Equal(t, int64(2000), restored[0].Timestamp)
	assert.Equal(t, time.UnixMilli(2000), restored[0].CreatedAt)
}

func TestFromVerse(t *testing.T) {
	v := verse.Verse{
		Number:          8,
		NumberInChapter: 1,
		Text:            "text",
		Translation:     "translation",
		Chapter:         verse.ChapterInfo{Number: 2, EnglishName: "Al-Baqara"},
	}

	b := FromVerse(v)
	assert.Equal(t, 8, b.VerseNumber)
	assert.Equal(t, 1, b.NumberInChapter)
	assert.Equal(t, 2, b.ChapterNumber)
	assert.Equal(t, "Al-Baqara", b.ChapterName)
	assert.Equal(t, "translation", b.Translation)
	assert.True(t, b.CreatedAt.IsZero())
}
