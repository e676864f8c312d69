package domain

// Country is an entry of the country reference table.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// CountryStat aggregates the users of one nationality. It is derived on
// every read and never stored.
type CountryStat struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Flag       string `json:"flag"`
	UserCount  int    `json:"userCount"`
	TotalScore int    `json:"totalScore"`
}
