package domain

var weeklyChecklist = [...]string{
	"Update sermon series title",
	"Increment sermon series number",
	"Pluralize “hymns/songs” where there are multiple",
	"Remove duplicate names",
	"Update front page scripture",
	"Add upcoming events from last week's bulletin",
	"Add any new upcoming events and remove old events",
	"Update Bible study books",
	"Update sermon outline",
	"Check sermon outline points (especially the verse numbers!)",
	"Verify bulletin against Planning Center Online",
	"Verify whether call to worship is responsive",
	"Save file in shared folder as `YYYY-MM-DD`",
	"Alert Pastor for review",
}

// Checklist returns the weekly bulletin preparation steps in order.
func Checklist() []string {
	out := make([]string, len(weeklyChecklist))
	copy(out, weeklyChecklist[:])
	return out
}
