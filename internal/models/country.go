package models

// Country is a named pool of phone numbers available to users.
// Numbers holds the raw pool as newline-separated entries; UsedNumbers must
// never exceed TotalNumbers.
type Country struct {
	BaseModel
	Name         string `json:"name"`
	Code         string `json:"code"`
	FlagURL      string `json:"flag_url"`
	TotalNumbers int    `json:"total_numbers"`
	UsedNumbers  int    `json:"used_numbers"`
	Numbers      string `json:"-"`
}
