// Package hints holds the flavour-text lookup table. Every entry is a
// translation key resolved through gotext; the game logic only ever handles keys.
package hints

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
)

// Pool names a category of interchangeable hints
type Pool int

// Hint pools
const (
	WaypointGood Pool = iota
	WaypointBad
	OverworldGood
	OverworldBad
)

// Message keys surfaced by the game outside of waypoint hints
const (
	TreasureOffer    = "TREASURE_OFFER"
	TreasureTaken    = "TREASURE_TAKEN"
	TreasureDeclined = "TREASURE_DECLINED"
	ExitWithoutLoot  = "EXIT_WITHOUT_TREASURE"
	MissionComplete  = "MISSION_COMPLETE"
	MissionSummary   = "MISSION_SUMMARY"
	UnknownCommand   = "UNKNOWN_COMMAND"
	MapDumped        = "MAP_DUMPED"
	MapDumpFailed    = "MAP_DUMP_FAILED"
	EntranceOpen     = "ENTRANCE_OPEN"
	MazeTooSmall     = "MAZE_TOO_SMALL"
	MazeSizeTooSmall = "MAZE_SIZE_TOO_SMALL"
	MazeReset        = "MAZE_RESET"
	MazeWelcome      = "MAZE_WELCOME"
)

// Status label keys used by renderers
const (
	LabelPosition       = "LABEL_POSITION"
	LabelSteps          = "LABEL_STEPS"
	LabelWaypoints      = "LABEL_WAYPOINTS"
	LabelTreasureHeld   = "LABEL_TREASURE_HELD"
	LabelTreasureHidden = "LABEL_TREASURE_HIDDEN"
	LabelWon            = "LABEL_WON"
	LabelPlaying        = "LABEL_PLAYING"
	LabelControls       = "LABEL_CONTROLS"
)

var pools = map[Pool][]string{
	WaypointGood: {
		"HINT_GOOD_1",
		"HINT_GOOD_2",
		"HINT_GOOD_3",
		"HINT_GOOD_4",
		"HINT_GOOD_5",
	},
	WaypointBad: {
		"HINT_BAD_1",
		"HINT_BAD_2",
		"HINT_BAD_3",
		"HINT_BAD_4",
		"HINT_BAD_5",
	},
	OverworldGood: {
		"MAP_GOOD_1",
		"MAP_GOOD_2",
		"MAP_GOOD_3",
		"HINT_GOOD_1",
		"HINT_GOOD_3",
	},
	OverworldBad: {
		"MAP_BAD_1",
		"MAP_BAD_2",
		"MAP_BAD_3",
		"HINT_BAD_2",
		"HINT_BAD_1",
	},
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since keys are picked at runtime from the pools.
var dynamicGet = gotext.Get

// Keys returns the keys in a pool
func Keys(pool Pool) []string {
	return pools[pool]
}

// Pick draws a key uniformly at random from a pool
func Pick(rng *rand.Rand, pool Pool) string {
	keys := pools[pool]
	return keys[rng.Intn(len(keys))]
}

// Text resolves a key to display text in the configured locale.
// Unknown keys come back unchanged.
func Text(key string) string {
	if key == "" {
		return ""
	}
	return dynamicGet(key)
}

// Textf resolves a key whose translation carries format verbs
func Textf(key string, args ...any) string {
	if key == "" {
		return ""
	}
	return dynamicGet(key, args...)
}

// Configure loads translations from dir/<lang>/LC_MESSAGES/default.po
func Configure(dir, lang string) {
	gotext.Configure(dir, lang, "default")
}
