package models

import "time"

// DocumentFilter holds the optional list predicates for documents.
type DocumentFilter struct {
	Query      string
	Category   *int64
	Console    *int64
	SkillLevel *int64
}

// DocumentListItem is one row of the documents list view.
type DocumentListItem struct {
	DocKey       int64      `json:"dockey"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	CategoryKey  *int64     `json:"categorykey"`
	ConsoleKey   *int64     `json:"consolekey"`
	GameKey      *int64     `json:"gamekey"`
	ExpLevel     *int64     `json:"explevel"`
	CategoryName *string    `json:"category_name"`
	ConsoleName  *string    `json:"console_name"`
	GameTitle    *string    `json:"game_title"`
	SkillLevel   *string    `json:"skill_level"`
	Downloads    int64      `json:"downloads"`
	Created      *time.Time `json:"created"`
	LastMod      *time.Time `json:"lastmod"`
}

// DocumentDetail is the full document record.
type DocumentDetail struct {
	DocumentListItem
	AuthorKey *int64  `json:"authorkey"`
	Version   *string `json:"version"`
	Filename  *string `json:"filename"`
	RelDate   *int64  `json:"reldate"`
	NoFile    int     `json:"nofile"`
}
