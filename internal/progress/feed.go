package progress

// RecentActivityLimit maximum number of entries retained in the feed
const RecentActivityLimit = 5

// PushRecent insert an entry at the front of the feed and truncate from the
// back. Insertion order is the only ordering key, completions arrive
// chronologically.
func PushRecent(feed []ActivityEntry, entry ActivityEntry) []ActivityEntry {
	feed = append([]ActivityEntry{entry}, feed...)
	if len(feed) > RecentActivityLimit {
		feed = feed[:RecentActivityLimit]
	}
	return feed
}
