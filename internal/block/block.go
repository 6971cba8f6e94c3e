// Package block defines the time block domain type and the sources that supply it.
package block

import (
	"strings"
	"time"
)

// Category tags a block for icon selection.
type Category string

const (
	CategoryFitness  Category = "fitness"
	CategoryPersonal Category = "personal"
	CategoryFood     Category = "food"
	CategoryWork     Category = "work"
	CategoryMeeting  Category = "meeting"
	CategoryOther    Category = "other"
)

// ParseCategory maps a tag to a Category. Unknown tags map to CategoryOther.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFitness:
		return CategoryFitness
	case CategoryPersonal:
		return CategoryPersonal
	case CategoryFood:
		return CategoryFood
	case CategoryWork:
		return CategoryWork
	case CategoryMeeting:
		return CategoryMeeting
	default:
		return CategoryOther
	}
}

// Icon returns the glyph drawn on the block's color bar.
func (c Category) Icon() string {
	switch c {
	case CategoryFitness:
		return "♥"
	case CategoryPersonal:
		return "⌂"
	case CategoryFood:
		return "☼"
	case CategoryWork:
		return "■"
	default:
		return "★"
	}
}

// DefaultColor returns the theme token used when a block names no color.
func (c Category) DefaultColor() string {
	switch c {
	case CategoryFitness:
		return "workout"
	case CategoryPersonal:
		return "water"
	case CategoryFood:
		return "food"
	case CategoryWork:
		return "work"
	case CategoryMeeting:
		return "meeting"
	default:
		return ""
	}
}

// TimeBlock is a scheduled activity shown on the timeline.
type TimeBlock struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	Color     string // theme token or "#rrggbb", resolved by the presentation layer
	Completed bool
	Category  Category
}

// Duration returns End minus Start. It is negative for inverted blocks.
func (b TimeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Sample returns the built-in schedule for Monday 2025-01-06.
func Sample() []TimeBlock {
	day := func(h, m int) time.Time {
		return time.Date(2025, time.January, 6, h, m, 0, 0, time.Local)
	}
	return []TimeBlock{
		{
			ID:        "1",
			Title:     "Morning workout",
			Start:     day(7, 45),
			End:       day(8, 15),
			Color:     "workout",
			Completed: true,
			Category:  CategoryFitness,
		},
		{
			ID:       "2",
			Title:    "Shower",
			Start:    day(8, 15),
			End:      day(8, 30),
			Color:    "water",
			Category: CategoryPersonal,
		},
		{
			ID:       "3",
			Title:    "Breakfast",
			Start:    day(8, 30),
			End:      day(9, 0),
			Color:    "food",
			Category: CategoryFood,
		},
		{
			ID:       "4",
			Title:    "Project planning",
			Start:    day(10, 0),
			End:      day(11, 0),
			Color:    "work",
			Category: CategoryWork,
		},
		{
			ID:       "5",
			Title:    "Standup meeting",
			Start:    day(10, 0),
			End:      day(10, 15),
			Color:    "meeting",
			Category: CategoryMeeting,
		},
	}
}
