package models

import "time"

// SelectionStatus is the organiser's decision for a submitted category.
type SelectionStatus string

const (
	SelectionTodo      SelectionStatus = "TODO"
	SelectionValidated SelectionStatus = "VALIDATED"
	SelectionRejected  SelectionStatus = "REJECTED"
	SelectionBonus     SelectionStatus = "BONUS"
	SelectionBackup    SelectionStatus = "BACKUP"
)

// MissingUserLabel is shown when the platform returns a game or opponent
// without its user record. Kept verbatim from the original viewer.
const MissingUserLabel = "★取得失敗★"

// User is a platform account reference as embedded in games, opponents
// and schedule lines.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	UsernameJapanese string `json:"usernameJapanese"`
	Enabled          bool   `json:"enabled"`
	TwitterName      string `json:"twitterName"`
	TwitchName       string `json:"twitchName"`
	SpeedruncomName  string `json:"speedruncomName"`
}

// DisplayName resolves the preferred display name: the Japanese username
// when present, otherwise the plain username. A nil user yields the
// fixed missing-data label.
func (u *User) DisplayName() string {
	if u == nil {
		return MissingUserLabel
	}
	if u.UsernameJapanese != "" {
		return u.UsernameJapanese
	}
	return u.Username
}

// EventSummary is one selectable marathon in the catalog.
type EventSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Onsite    bool      `json:"onsite"`
	Location  *string   `json:"location"`
	Country   *string   `json:"country"`
	Language  string    `json:"language"`
}

// EventDetail is the full marathon record fetched once per selection.
type EventDetail struct {
	EventSummary

	Description          string `json:"description"`
	Creator              *User  `json:"creator"`
	Moderators           []User `json:"moderators"`
	SelectionDone        bool   `json:"selectionDone"`
	ScheduleDone         bool   `json:"scheduleDone"`
	HasMultiplayer       bool   `json:"hasMultiplayer"`
	MaxGamesPerRunner    int    `json:"maxGamesPerRunner"`
	MaxCategoriesPerGame int    `json:"maxCategoriesPerGame"`
}

// EventList is the categorized current/upcoming marathon listing.
type EventList struct {
	Live []EventSummary `json:"live"`
	Open []EventSummary `json:"open"`
	Next []EventSummary `json:"next"`
}

// TimeRange is an opponent availability window.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Opponent is a race or co-op partner attached to a category.
type Opponent struct {
	ID             int64       `json:"id"`
	User           *User       `json:"user"`
	Video          string      `json:"video"`
	Availabilities []TimeRange `json:"availabilities"`
}

// Category is one run configuration inside a submitted game. Estimate is
// the raw abbreviated duration string, e.g. "PT4H30M".
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Estimate    string     `json:"estimate"`
	Description string     `json:"description"`
	Video       string     `json:"video"`
	Type        string     `json:"type"`
	Opponents   []Opponent `json:"opponentDtos"`
}

// GameSubmission is a runner's proposed game with its categories.
// User may be missing on broken upstream records.
type GameSubmission struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Console     string     `json:"console"`
	Ratio       string     `json:"ratio"`
	Emulated    bool       `json:"emulated"`
	User        *User      `json:"user"`
	Categories  []Category `json:"categories"`
}

// Selection is the organiser decision for one category.
type Selection struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"categoryId"`
	Status     SelectionStatus `json:"status"`
}

// SelectionMap maps category id to its selection result. A category
// missing from the map counts as TODO.
type SelectionMap map[int64]Selection

// StatusFor returns the effective status for a category id.
func (m SelectionMap) StatusFor(categoryID int64) SelectionStatus {
	if sel, ok := m[categoryID]; ok {
		return sel.Status
	}
	return SelectionTodo
}

// ScheduleLine is one timed slot of a published schedule, pre-sorted by
// date upstream.
type ScheduleLine struct {
	ID             int64     `json:"id"`
	Date           time.Time `json:"date"`
	CategoryID     *int64    `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	GameName       string    `json:"gameName"`
	Estimate       string    `json:"estimate"`
	SetupBlock     bool      `json:"setupBlock"`
	SetupBlockText string    `json:"setupBlockText"`
	SetupTime      string    `json:"setupTime"`
	Runners        []User    `json:"runners"`
	Type           string    `json:"type"`
	Position       int       `json:"position"`
}

// Schedule is the published running order for a marathon.
type Schedule struct {
	ID    int64          `json:"id"`
	Lines []ScheduleLine `json:"lines"`
}
