package models

import "time"

// UtilityFilter holds the optional list predicates for utilities.
type UtilityFilter struct {
	Query    string
	Category *int64
	Console  *int64
	OS       *int64
}

// UtilityListItem is one row of the utilities list view.
type UtilityListItem struct {
	UtilKey      int64      `json:"utilkey"`
	Title        string     `json:"title"`
	Version      *string    `json:"version"`
	Description  *string    `json:"description"`
	CategoryKey  *int64     `json:"categorykey"`
	ConsoleKey   *int64     `json:"consolekey"`
	GameKey      *int64     `json:"gamekey"`
	OS           *int64     `json:"os"`
	CategoryName *string    `json:"category_name"`
	ConsoleName  *string    `json:"console_name"`
	GameTitle    *string    `json:"game_title"`
	OSName       *string    `json:"os_name"`
	Downloads    int64      `json:"downloads"`
	RelDate      *int64     `json:"reldate"`
	Created      *time.Time `json:"created"`
	LastMod      *time.Time `json:"lastmod"`
}

// UtilityDetail is the full utility record.
type UtilityDetail struct {
	UtilityListItem
	AuthorKey *int64  `json:"authorkey"`
	License   *string `json:"license"`
	Source    *string `json:"source"`
	Filename  *string `json:"filename"`
	NoFile    int     `json:"nofile"`
}
