package country

var defaultEntries = []Entry{
	{"AR", "Argentina"},
	{"AT", "Austria"},
	{"AU", "Australia"},
	{"BD", "Bangladesh"},
	{"BE", "Belgium"},
	{"BR", "Brazil"},
	{"CA", "Canada"},
	{"CH", "Switzerland"},
	{"CL", "Chile"},
	{"CN", "China"},
	{"CO", "Colombia"},
	{"CZ", "Czechia"},
	{"DE", "Germany"},
	{"DK", "Denmark"},
	{"EG", "Egypt"},
	{"ES", "Spain"},
	{"FI", "Finland"},
	{"FR", "France"},
	{"GB", "United Kingdom"},
	{"GH", "Ghana"},
	{"GR", "Greece"},
	{"HU", "Hungary"},
	{"ID", "Indonesia"},
	{"IE", "Ireland"},
	{"IL", "Israel"},
	{"IN", "India"},
	{"IT", "Italy"},
	{"JP", "Japan"},
	{"KE", "Kenya"},
	{"KR", "South Korea"},
	{"MA", "Morocco"},
	{"MX", "Mexico"},
	{"MY", "Malaysia"},
	{"NG", "Nigeria"},
	{"NL", "Netherlands"},
	{"NO", "Norway"},
	{"NZ", "New Zealand"},
	{"PE", "Peru"},
	{"PH", "Philippines"},
	{"PK", "Pakistan"},
	{"PL", "Poland"},
	{"PT", "Portugal"},
	{"RO", "Romania"},
	{"RU", "Russia"},
	{"SA", "Saudi Arabia"},
	{"SE", "Sweden"},
	{"SG", "Singapore"},
	{"TH", "Thailand"},
	{"TR", "Turkey"},
	{"UA", "Ukraine"},
	{"AE", "United Arab Emirates"},
	{"US", "United States"},
	{"VN", "Vietnam"},
	{"ZA", "South Africa"},
}
