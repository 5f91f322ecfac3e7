// Package types defines the core data structures for threadsplit
package types

// SplitResult is the output of chunking one piece of text
type SplitResult struct {
	Tweets   []string `json:"tweets"`
	Warnings []string `json:"warnings"`
}

// ThreadStats summarizes a generated thread
type ThreadStats struct {
	TotalTweets     int     `json:"total_tweets"`
	TotalCharacters int     `json:"total_characters"`
	AvgLength       float64 `json:"avg_length"`
	MaxLength       int     `json:"max_length"`
	MinLength       int     `json:"min_length"`
	TweetsOverLimit int     `json:"tweets_over_limit"`
}

// SplitRequest is the request payload for splitting text into a thread
type SplitRequest struct {
	Text string `json:"text"`
}

// SplitResponse is the response payload for a split
type SplitResponse struct {
	Tweets   []string     `json:"tweets"`
	Warnings []string     `json:"warnings"`
	Stats    *ThreadStats `json:"stats,omitempty"`
	Cached   bool         `json:"cached"`
}

// ThreadRequest carries an already generated thread
type ThreadRequest struct {
	Tweets []string `json:"tweets"`
}

// ExportRequest is the request payload for exporting a thread
type ExportRequest struct {
	Tweets    []string `json:"tweets"`
	Separator string   `json:"separator,omitempty"`
}

// ExportResponse is the response payload for export
type ExportResponse struct {
	Text string `json:"text"`
}

// ValidateResponse lists problems that would block posting
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// PostedSegment is one successfully submitted tweet
type PostedSegment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

// PostResult aggregates the outcome of posting a thread
type PostResult struct {
	SuccessCount int             `json:"success_count"`
	Posted       []PostedSegment `json:"posted_tweets"`
	Errors       []string        `json:"errors"`
	ThreadURL    string          `json:"thread_url,omitempty"`
}
