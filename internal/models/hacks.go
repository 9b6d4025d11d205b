package models

import "time"

// HackFilter holds the optional list predicates for ROM hacks.
type HackFilter struct {
	Query    string
	Game     *int64
	Console  *int64
	Category *int64
}

// HackListItem is one row of the hacks list view, foreign keys resolved.
type HackListItem struct {
	HackKey      int64      `json:"hackkey"`
	HackTitle    string     `json:"hacktitle"`
	Version      *string    `json:"version"`
	Description  *string    `json:"description"`
	GameKey      *int64     `json:"gamekey"`
	ConsoleKey   *int64     `json:"consolekey"`
	Category     *int64     `json:"category"`
	GameTitle    *string    `json:"game_title"`
	ConsoleName  *string    `json:"console_name"`
	CategoryName *string    `json:"category_name"`
	Downloads    int64      `json:"downloads"`
	ReleaseDate  *string    `json:"releasedate"`
	Created      *time.Time `json:"created"`
	LastMod      *time.Time `json:"lastmod"`
}

// HackDetail is the full hack record. Filesize and PatchType are not stored
// in the archive and are always null; they stay in the shape for clients.
type HackDetail struct {
	HackListItem
	AuthorKey  *int64  `json:"authorkey"`
	PatchHint  *string `json:"patch_hint"`
	Filename   *string `json:"filename"`
	Filesize   *int64  `json:"filesize"`
	PatchType  *string `json:"patchtype"`
	HintsKey   *int64  `json:"hintskey"`
	NoFile     int     `json:"nofile"`
	ImageCount int     `json:"image_count"`
}

// HackImage is one screenshot attached to a hack.
type HackImage struct {
	ImageID  int64   `json:"imageid"`
	Filename string  `json:"filename"`
	Caption  *string `json:"caption"`
}
