package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Question
	Drum
)

var icons = map[Icon]iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "*",
		kaomoji: "(－‸ლ)",
		squares: "🟨",
	},
	Question: {
		emoji:   "🤔",
		nerd:    "",
		plain:   "?",
		kaomoji: "(￢ ￢)",
		squares: "🟦",
	},
	Drum: {
		emoji:   "🥁",
		nerd:    "吏",
		plain:   "#",
		kaomoji: "ドン(o°▽°)o",
		squares: "⬜",
	},
}
