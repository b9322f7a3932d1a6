package catalog

import (
	"sort"
	"strconv"
)

// Episode is a row of the episodes table.
type Episode struct {
	ID            ID     `json:"id"`
	EpisodeNumber int    `json:"episode_number"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	Assignee      string `json:"assignee"`
}

// StatusClass selects the badge style for an episode status.
type StatusClass int

const (
	StatusToDo StatusClass = iota
	StatusInProgress
	StatusDone
)

// Recognized status values. Anything else renders with the To Do style.
const (
	StatusDoneValue       = "Done"
	StatusInProgressValue = "In Progress"
	StatusToDoValue       = "To Do"
)

const unassignedEpisode = "-"

// ClassifyStatus maps a raw status to its badge class. Matching is exact.
func ClassifyStatus(status string) StatusClass {
	switch status {
	case StatusDoneValue:
		return StatusDone
	case StatusInProgressValue:
		return StatusInProgress
	default:
		return StatusToDo
	}
}

// DisplayTitle returns the title, or "Episode N" when it is missing.
func (e Episode) DisplayTitle() string {
	if e.Title == "" {
		return "Episode " + strconv.Itoa(e.EpisodeNumber)
	}
	return e.Title
}

// StatusClass returns the badge class for the episode.
func (e Episode) StatusClass() StatusClass {
	return ClassifyStatus(e.Status)
}

// BadgeText returns the raw status, or "To Do" when it is missing.
func (e Episode) BadgeText() string {
	if e.Status == "" {
		return StatusToDoValue
	}
	return e.Status
}

// AssigneeLabel returns the assignee, or "-".
func (e Episode) AssigneeLabel() string {
	if e.Assignee == "" {
		return unassignedEpisode
	}
	return e.Assignee
}

// SortEpisodes orders episodes by episode number, keeping the remote order
// for equal numbers.
func SortEpisodes(eps []Episode) {
	sort.SliceStable(eps, func(i, j int) bool {
		return eps[i].EpisodeNumber < eps[j].EpisodeNumber
	})
}
