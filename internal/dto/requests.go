package dto

// SelectEventRequest switches the session's selected marathon. An empty
// id clears the selection.
type SelectEventRequest struct {
	EventID string `json:"eventId"`
}

// SortRequest changes the submission list ordering.
type SortRequest struct {
	Mode *int `json:"mode" validate:"required,min=0,max=2"`
}

// FilterRequest toggles hiding of rejected runs.
type FilterRequest struct {
	HideRejected *bool `json:"hideRejected" validate:"required"`
}

// ToggleRequest expands or collapses description rows. Either All is
// set, or Kind and ID name a single row.
type ToggleRequest struct {
	All  bool   `json:"all"`
	Kind string `json:"kind" validate:"required_without=All,omitempty,oneof=game category"`
	ID   int64  `json:"id"`
}
