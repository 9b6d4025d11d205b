package models

// Lookup tables are loaded once and used to decode foreign keys into display
// text. All of them share the id+description shape; Console carries two
// extra columns.

type Console struct {
	ConsoleID    int64   `json:"consoleid"`
	Description  string  `json:"description"`
	Manufacturer *string `json:"manufacturer"`
	Abb          *string `json:"abb"`
}

type Genre struct {
	GenreID     int64  `json:"genreid"`
	Description string `json:"description"`
}

type Language struct {
	LanguageID  int64  `json:"languageid"`
	Description string `json:"description"`
}

type PatchStatus struct {
	StatusID    int64  `json:"statusid"`
	Description string `json:"description"`
}

// Category covers the four per-content category tables (documents, hacks,
// utilities, homebrew); they are structurally identical.
type Category struct {
	CategoryID  int64  `json:"categoryid"`
	Description string `json:"description"`
}

type SkillLevel struct {
	LevelID     int64  `json:"levelid"`
	Description string `json:"description"`
}

type OS struct {
	OSID        int64  `json:"osid"`
	Description string `json:"description"`
}

type License struct {
	LicenseID   int64  `json:"licenseid"`
	Description string `json:"description"`
}

type Section struct {
	SectionID   int64  `json:"sectionid"`
	Description string `json:"description"`
}

type PatchHint struct {
	HintID      int64  `json:"hintid"`
	Description string `json:"description"`
}

// AllMetadata is the combined bootstrap payload returned by GET /metadata.
type AllMetadata struct {
	Consoles           []Console     `json:"consoles"`
	Genres             []Genre       `json:"genres"`
	Languages          []Language    `json:"languages"`
	PatchStatuses      []PatchStatus `json:"patch_statuses"`
	HackCategories     []Category    `json:"hack_categories"`
	UtilCategories     []Category    `json:"util_categories"`
	DocCategories      []Category    `json:"doc_categories"`
	HomebrewCategories []Category    `json:"homebrew_categories"`
	SkillLevels        []SkillLevel  `json:"skill_levels"`
	OperatingSystems   []OS          `json:"operating_systems"`
}
