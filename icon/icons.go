package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota
	Go
	Fail
	Success
	Warn
	Progress
	Search
	Link
	Mark
	Play
	Shuffle
	Genre
	History
	Empty
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "🟦",
	},
	Go: {
		emoji:   "🐹",
		nerd:    "",
		plain:   "Go",
		kaomoji: "ʕ◔ϖ◔ʔ",
		squares: "🟦",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・ω・)",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(¬‿¬)",
		squares: "🟫",
	},
	Mark: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(｀・ω・´)",
		squares: "🟧",
	},
	Play: {
		emoji:   "📺",
		nerd:    "",
		plain:   ">",
		kaomoji: "(°▽°)",
		squares: "🟩",
	},
	Shuffle: {
		emoji:   "🎲",
		nerd:    "",
		plain:   "*",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟪",
	},
	Genre: {
		emoji:   "🏷️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟨",
	},
	History: {
		emoji:   "📜",
		nerd:    "",
		plain:   "H",
		kaomoji: "(ーー;)",
		squares: "🟫",
	},
	Empty: {
		emoji:   "🕳️",
		nerd:    "",
		plain:   "-",
		kaomoji: "(´･_･`)",
		squares: "⬛",
	},
}
