package models

import "time"

// AnalyticsOverview is the headline block of the analytics report.
type AnalyticsOverview struct {
	TotalPoems           int `json:"totalPoems"`
	ActivePoems          int `json:"activePoems"`
	InactivePoems        int `json:"inactivePoems"`
	TotalViews           int `json:"totalViews"`
	TotalShares          int `json:"totalShares"`
	AvgViewsPerPoem      int `json:"avgViewsPerPoem"`
	EmailSubscribers     int `json:"emailSubscribers"`
	TotalSubscribersEver int `json:"totalSubscribersEver"`
}

// PopularPoem is a summarized entry in the top-views ranking.
type PopularPoem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Views  int    `json:"views"`
	Shares int    `json:"shares"`
}

// AnalyticsReport is computed fresh on every request, never cached.
type AnalyticsReport struct {
	Overview     AnalyticsOverview `json:"overview"`
	Categories   map[string]int    `json:"categories"`
	Authors      map[string]int    `json:"authors"`
	PopularPoems []PopularPoem     `json:"popularPoems"`
	LastUpdated  time.Time         `json:"lastUpdated"`
}

// CategorySummary is one entry of the public categories listing.
type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
