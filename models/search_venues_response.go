package models

// SearchVenuesResponse is returned by POST /venues/search. The search runs
// as a background job on the BestTime side; only the job handle comes back
// immediately.
type SearchVenuesResponse struct {
	Links        Link        `json:"_links"`
	BoundingBox  BoundingBox `json:"bounding_box"`
	CollectionID string      `json:"collection_id"`
	JobID        string      `json:"job_id"`
	Status       string      `json:"status"`
}
