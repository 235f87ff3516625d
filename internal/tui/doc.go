// Package tui implements the interactive terminal interface for playing a
// game: the city scoreboard, the proposal picker, and the turn-by-turn
// negotiation log.
package tui
