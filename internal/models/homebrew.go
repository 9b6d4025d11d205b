package models

import "time"

// HomebrewFilter holds the optional list predicates for homebrew projects.
type HomebrewFilter struct {
	Query    string
	Category *int64
	Platform *int64
}

// HomebrewListItem is one row of the homebrew list view.
type HomebrewListItem struct {
	HomebrewKey  int64      `json:"homebrewkey"`
	Title        string     `json:"title"`
	Version      *string    `json:"version"`
	Description  *string    `json:"description"`
	CategoryKey  *int64     `json:"categorykey"`
	PlatformKey  *int64     `json:"platformkey"`
	CategoryName *string    `json:"category_name"`
	PlatformName *string    `json:"platform_name"`
	Downloads    int64      `json:"downloads"`
	RelDate      *string    `json:"reldate"`
	Created      *time.Time `json:"created"`
	LastMod      *time.Time `json:"lastmod"`
}

// HomebrewDetail is the full homebrew record including the content-type
// flags and source availability block.
type HomebrewDetail struct {
	HomebrewListItem
	AuthorKey      *int64  `json:"authorkey"`
	Filename       *string `json:"filename"`
	TitleScreen    *string `json:"titlescreen"`
	Readme         *string `json:"readme"`
	NoFile         int     `json:"nofile"`
	NoReadme       int     `json:"noreadme"`
	Graphics       int     `json:"graphics"`
	Sound          int     `json:"sound"`
	Controller     int     `json:"controller"`
	Addon          int     `json:"addon"`
	Other          int     `json:"other"`
	SourceIncluded int     `json:"source_included"`
	SourceLang     *string `json:"source_lang"`
	SourceUtility  *string `json:"source_utility"`
	SourceLicense  *string `json:"source_licenseid"`
	SourceURL      *string `json:"source_url"`
}
