package store

import "fmt"

// Key naming conventions. All application data lives under a handful of
// well-known keys:
//
//	poems:collection            the whole poem collection (JSON array)
//	daily_poem:<YYYY-MM-DD>     scheduled poem snapshot for a date
//	analytics:total_views       global view counter
//	analytics:total_shares      global share counter
//	analytics:shares:<platform> per-platform share counter
//	email_subscribers           subscriber records (JSON array)
const (
	CollectionKey  = "poems:collection"
	TotalViewsKey  = "analytics:total_views"
	TotalSharesKey = "analytics:total_shares"
	SubscribersKey = "email_subscribers"
)

// DailyPoemKey returns the schedule key for a YYYY-MM-DD date.
func DailyPoemKey(date string) string {
	return fmt.Sprintf("daily_poem:%s", date)
}

// PlatformSharesKey returns the share counter key for a platform.
func PlatformSharesKey(platform string) string {
	return fmt.Sprintf("analytics:shares:%s", platform)
}
