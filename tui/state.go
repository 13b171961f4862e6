package tui

type state int

const (
	loadingState state = iota
	playingState
	emptyState
	errorState
	keywordState
	historyState
)
