package models

import "time"

// TranslationFilter holds the optional list predicates for translations.
// Query matches against the joined game title since translations carry no
// title of their own.
type TranslationFilter struct {
	Query    string
	Game     *int64
	Console  *int64
	Language *int64
	Status   *int64
}

// TranslationListItem is one row of the translations list view.
type TranslationListItem struct {
	TransKey     int64      `json:"transkey"`
	Version      *string    `json:"version"`
	Description  *string    `json:"description"`
	GameKey      *int64     `json:"gamekey"`
	ConsoleKey   *int64     `json:"consolekey"`
	Language     *int64     `json:"language"`
	PatchStatus  *int64     `json:"patchstatus"`
	GameTitle    *string    `json:"game_title"`
	ConsoleName  *string    `json:"console_name"`
	LanguageName *string    `json:"language_name"`
	StatusName   *string    `json:"status_name"`
	Downloads    int64      `json:"downloads"`
	ReleaseDate  *string    `json:"releasedate"`
	Created      *time.Time `json:"created"`
	LastMod      *time.Time `json:"lastmod"`
}

// TranslationDetail is the full translation record.
type TranslationDetail struct {
	TranslationListItem
	GroupKey   *int64  `json:"groupkey"`
	PatchHint  *string `json:"patch_hint"`
	Filename   *string `json:"filename"`
	Filesize   *int64  `json:"filesize"`
	PatchType  *string `json:"patchtype"`
	HintsKey   *int64  `json:"hintskey"`
	NoFile     int     `json:"nofile"`
	NoReadme   int     `json:"noreadme"`
	ImageCount int     `json:"image_count"`
}

// TransImage is one screenshot attached to a translation.
type TransImage struct {
	ImageID  int64   `json:"imageid"`
	Filename string  `json:"filename"`
	Caption  *string `json:"caption"`
}
