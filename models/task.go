package models

// FollowUpPayload is the payload for the booking follow-up task enqueued at
// submission time.
type FollowUpPayload struct {
	Reference string `json:"reference"`
	VenueName string `json:"venueName"`
	UserID    string `json:"userId"`
	EventDate string `json:"eventDate"`
}
