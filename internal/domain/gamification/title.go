package gamification

// Milestone titles. A level shows the title of the highest milestone at or below it.
//
//nolint:gochecknoglobals
var milestones = []struct {
	level int
	title string
}{
	{30, "Legend"},
	{25, "Champion"},
	{20, "Veteran"},
	{15, "Explorer"},
	{10, "Adventurer"},
	{5, "Rookie"},
	{1, "Noob"},
}

// TitleForLevel never returns an empty string; levels below 1 get the level 1 title.
func TitleForLevel(level int) string {
	for _, milestone := range milestones {
		if level >= milestone.level {
			return milestone.title
		}
	}

	return milestones[len(milestones)-1].title
}
