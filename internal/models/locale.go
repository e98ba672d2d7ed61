package models

// Locale carries the caller's presentation preferences. It never affects decisions.
type Locale struct {
	Language string `json:"language"`
	TimeZone string `json:"time_zone"`
}
