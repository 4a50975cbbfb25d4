package templates

type CountryGroup struct {
	Name      string
	Countries []string
}

// RateCard is one side of the comparison. Figures are preformatted.
type RateCard struct {
	Title     string
	High      string
	Average   string
	Note      string
	Highlight bool
}

type HomePageData struct {
	Groups      []CountryGroup
	Selected    string
	Cards       []RateCard
	Unavailable bool
	Year        int
}

type TeamMember struct {
	Name string
	Role string
	Bio  string
}

type TeamPageData struct {
	Members []TeamMember
	Year    int
}
