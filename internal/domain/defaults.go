package domain

// SeedTask is a task a fresh dashboard starts with.
type SeedTask struct {
	Text      string
	Completed bool
}

// DefaultSeedTasks returns the tasks shown on a fresh dashboard.
func DefaultSeedTasks() []SeedTask {
	return []SeedTask{
		{Text: "Research Methods Assignment", Completed: true},
		{Text: "Develop React components"},
		{Text: "Integrate Gemini API"},
	}
}

// DefaultNotes is the Scratchpad's initial text.
const DefaultNotes = "Project Ideas:\n" +
	"- AI-powered schedule optimization.\n" +
	"- Pomodoro timer with ambient sounds.\n" +
	"- Integration with calendar for smart to-do lists."
