// Package team holds the management roster shown on the team page.
package team

// Member is one person on the roster.
type Member struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

const executiveRole = "Executive Member"

var roster = []Member{
	{
		Name: "Ahmed Sakr",
		Role: executiveRole,
		Bio: "Ahmed Sakr is a seasoned financial expert with over 15 years of experience in investment banking and fixed income markets. " +
			"With extensive international exposure, Ahmed specializes in developing robust investment strategies and managing complex risk profiles across global markets. " +
			"His strategic approach to navigating diverse financial landscapes has been instrumental in optimizing portfolio performance and mitigating risks for clients worldwide.",
	},
	{
		Name: "Samar Gad",
		Role: executiveRole,
		Bio: "Samar Gad is a distinguished business development and investor relations professional with extensive experience in the financial sector. " +
			"Her exceptional ability to forge strategic partnerships and communicate complex financial products to diverse stakeholders has been instrumental in AGYAL's growth. " +
			"Samar's expertise in sales strategy, client relationship management, and market positioning has helped establish AGYAL as a trusted name in the fixed income investment space across multiple regions.",
	},
}

// Roster returns the team in display order. Callers get their own copy.
func Roster() []Member {
	out := make([]Member, len(roster))
	copy(out, roster)
	return out
}
