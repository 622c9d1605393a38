package request

// Request bodies use pointer fields so that an omitted key falls back to
// its documented default instead of a zero value. A body that fails to
// parse at all is treated as empty — every field has a default.

// AdmitRequest is the request body for hospital admission.
// duration_minutes defaults to 120, reason to the game's stock string.
type AdmitRequest struct {
	DurationMinutes *int    `json:"duration_minutes"`
	Reason          *string `json:"reason"`
}

// ReleaseRequest is the request body for hospital release.
// method defaults to "natural", cost to 0.
type ReleaseRequest struct {
	Method *string `json:"method"`
	Cost   *int    `json:"cost"`
}
