package progress

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPushRecentNewestFirst(t *testing.T) {
	var feed []ActivityEntry
	base := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		feed = PushRecent(feed, ActivityEntry{
			Kind:  ActivityLesson,
			Title: "entry " + strconv.Itoa(i),
			Date:  base.AddDate(0, 0, i),
		})
	}

	assert.Len(t, feed, 3)
	assert.Equal(t, "entry 2", feed[0].Title)
	assert.Equal(t, "entry 0", feed[2].Title)
}

func TestPushRecentCapsAtLimit(t *testing.T) {
	var feed []ActivityEntry

	for i := 0; i < RecentActivityLimit+2; i++ {
		feed = PushRecent(feed, ActivityEntry{Title: "entry " + strconv.Itoa(i)})
	}

	assert.Len(t, feed, RecentActivityLimit)
	assert.Equal(t, "entry 6", feed[0].Title)
	assert.Equal(t, "entry 2", feed[RecentActivityLimit-1].Title)
}
