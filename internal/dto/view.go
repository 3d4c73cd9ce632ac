// Package dto carries the derived view shapes served to clients.
package dto

// GameClass values mirror the viewer's row colouring: "validated",
// "bonus", "backup", "rejected", or "" while selection is pending.
const (
	ClassValidated = "validated"
	ClassBonus     = "bonus"
	ClassBackup    = "backup"
	ClassRejected  = "rejected"
	ClassPending   = ""
)

// Sort modes for the submission list.
const (
	SortBySubmission = 0
	SortByNameAsc    = 1
	SortByNameDesc   = 2
)

// OpponentRow is a race/co-op partner under a category row.
type OpponentRow struct {
	Name     string `json:"name"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// CategoryRow is one run configuration with its selection outcome.
type CategoryRow struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Estimate    string        `json:"estimate"`
	EstimateRaw string        `json:"estimateRaw"`
	Description string        `json:"description,omitempty"`
	VideoURL    string        `json:"videoUrl,omitempty"`
	Type        string        `json:"type"`
	Status      string        `json:"status"`
	Class       string        `json:"class"`
	Opponents   []OpponentRow `json:"opponents,omitempty"`
}

// GameRow is one submitted game with its derived display state.
type GameRow struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Runner      string        `json:"runner"`
	Console     string        `json:"console"`
	Ratio       string        `json:"ratio,omitempty"`
	Emulated    bool          `json:"emulated"`
	Description string        `json:"description,omitempty"`
	Class       string        `json:"class"`
	Categories  []CategoryRow `json:"categories"`
}

// ScheduleEntry is either a date separator or one schedule line.
// Kind is "date" for separators and "run" for lines.
type ScheduleEntry struct {
	Kind     string   `json:"kind"`
	Date     string   `json:"date,omitempty"`
	Time     string   `json:"time,omitempty"`
	Title    string   `json:"title,omitempty"`
	Category string   `json:"category,omitempty"`
	Estimate string   `json:"estimate,omitempty"`
	Setup    bool     `json:"setup,omitempty"`
	Runners  []string `json:"runners,omitempty"`
}

const (
	ScheduleEntryDate = "date"
	ScheduleEntryRun  = "run"
)

// EventInfo is the marathon header shown above the submission list.
type EventInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Onsite         bool   `json:"onsite"`
	Location       string `json:"location,omitempty"`
	Country        string `json:"country,omitempty"`
	Language       string `json:"language,omitempty"`
	Description    string `json:"description,omitempty"`
	SelectionDone  bool   `json:"selectionDone"`
	ScheduleDone   bool   `json:"scheduleDone"`
	HasMultiplayer bool   `json:"hasMultiplayer"`
}

// EventView is the assembled read model for one marathon.
type EventView struct {
	Event           *EventInfo      `json:"event,omitempty"`
	SubmissionCount int             `json:"submissionCount"`
	Games           []GameRow       `json:"games"`
	Schedule        []ScheduleEntry `json:"schedule,omitempty"`
}

// SessionView is the full state snapshot of one viewer session.
type SessionView struct {
	SessionID    string `json:"sessionId"`
	EventID      string `json:"eventId"`
	Status       string `json:"status"`
	Loading      bool   `json:"loading"`
	SortMode     int    `json:"sortMode"`
	HideRejected bool   `json:"hideRejected"`

	Event              *EventInfo      `json:"event,omitempty"`
	Games              []GameRow       `json:"games"`
	Schedule           []ScheduleEntry `json:"schedule,omitempty"`
	ExpandedGames      []int64         `json:"expandedGames,omitempty"`
	ExpandedCategories []int64         `json:"expandedCategories,omitempty"`
	AllExpanded        bool            `json:"allExpanded"`
}
