package config

// Layout constants.
const (
	// MinPanelWidth is the minimum width of the statistics panel.
	MinPanelWidth = 40

	// TargetTaskWidth is the preferred width for task names in lists.
	TargetTaskWidth = 36

	// MinTaskWidth is the minimum width for task names.
	MinTaskWidth = 10
)

// Display limits.
const (
	// MaxVisibleEntries limits today's entries shown before the list is cut.
	MaxVisibleEntries = 12

	// MaxSuggestions limits autocomplete suggestions under the task input.
	MaxSuggestions = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTaskNameLength is the maximum task name length accepted by the input.
	MaxTaskNameLength = 255
)
