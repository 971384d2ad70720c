package dto

// FeedViewResponse is the rendered state of a feed session
type FeedViewResponse struct {
	SessionID        string                `json:"session_id"`
	Handle           string                `json:"handle"`
	State            string                `json:"state" example:"grid" enums:"grid,empty,error"`
	Loading          bool                  `json:"loading"`
	Error            string                `json:"error,omitempty"`
	ErrorCode        string                `json:"error_code,omitempty"`
	SearchTerm       string                `json:"search_term"`
	SelectedLanguage string                `json:"selected_language"`
	Languages        []string              `json:"languages"`
	Repositories     []*RepositoryResponse `json:"repositories"`
	FilteredCount    int                   `json:"filtered_count"`
	TotalCount       int                   `json:"total_count"`
	VisibleCount     int                   `json:"visible_count"`
	HasMore          bool                  `json:"has_more"`
}

// SearchRequest sets the search term of a session
type SearchRequest struct {
	Term string `json:"term"`
}

// LanguageRequest selects a language; "" selects all
type LanguageRequest struct {
	Language string `json:"language"`
}

// ScrollRequest carries one scroll measurement of the feed container
type ScrollRequest struct {
	ScrollTop    float64 `json:"scroll_top"`
	ClientHeight float64 `json:"client_height"`
	ScrollHeight float64 `json:"scroll_height"`
}

// PageResponse reports whether a page was added, plus the resulting view
type PageResponse struct {
	Loaded bool              `json:"loaded"`
	View   *FeedViewResponse `json:"view"`
}
