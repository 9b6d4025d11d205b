package models

// GameFilter holds the optional list predicates for games. Nil fields
// contribute no predicate. HasHacks/HasTranslations only filter when true,
// matching the precomputed existence flags on gamedata.
type GameFilter struct {
	Query           string
	Platform        *int64
	Genre           *int64
	HasHacks        *bool
	HasTranslations *bool
}

// GameListItem is one row of the games list view, foreign keys resolved.
type GameListItem struct {
	GameKey      int64   `json:"gamekey"`
	GameTitle    string  `json:"gametitle"`
	JapTitle     *string `json:"japtitle"`
	Publisher    *string `json:"publisher"`
	PlatformID   *int64  `json:"platformid"`
	GenreID      *int64  `json:"genreid"`
	PlatformName *string `json:"platform_name"`
	GenreName    *string `json:"genre_name"`
	TransExist   int     `json:"transexist"`
	HackExist    int     `json:"hackexist"`
	UtilExist    int     `json:"utilexist"`
	DocExist     int     `json:"docexist"`
}

// GameDetail extends the list view with live child-content counts.
// HackCount and TranslationCount are computed by counting child rows, not by
// trusting the exist flags. UtilityCount and DocumentCount are not wired up
// yet and always report zero to keep the response shape stable.
// TODO: compute utility/document counts once the frontend consumes them.
type GameDetail struct {
	GameListItem
	HackCount        int `json:"hack_count"`
	TranslationCount int `json:"translation_count"`
	UtilityCount     int `json:"utility_count"`
	DocumentCount    int `json:"document_count"`
}
