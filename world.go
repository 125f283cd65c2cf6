package mcplay

import (
	"fmt"
	"strings"

	"github.com/gstoney/mcplay/config"
	"github.com/gstoney/mcplay/packet"
)

type Gamemode uint8

const (
	GamemodeSurvival Gamemode = iota
	GamemodeCreative
	GamemodeAdventure
	GamemodeSpectator
)

// HardcoreFlag is or-ed into the gamemode byte of Join Game.
const HardcoreFlag uint8 = 0x08

func (g Gamemode) String() string {
	switch g {
	case GamemodeSurvival:
		return "survival"
	case GamemodeCreative:
		return "creative"
	case GamemodeAdventure:
		return "adventure"
	case GamemodeSpectator:
		return "spectator"
	default:
		return fmt.Sprintf("Gamemode(%d)", uint8(g))
	}
}

func ParseGamemode(s string) (Gamemode, error) {
	switch strings.ToLower(s) {
	case "survival", "s", "0":
		return GamemodeSurvival, nil
	case "creative", "c", "1":
		return GamemodeCreative, nil
	case "adventure", "a", "2":
		return GamemodeAdventure, nil
	case "spectator", "sp", "3":
		return GamemodeSpectator, nil
	}
	return 0, fmt.Errorf("unknown gamemode %q", s)
}

// Abilities returns the Player Abilities flags a player in g starts with.
func (g Gamemode) Abilities() int8 {
	switch g {
	case GamemodeCreative:
		return packet.AbilityInvulnerable | packet.AbilityAllowFlying | packet.AbilityCreative
	case GamemodeSpectator:
		return packet.AbilityInvulnerable | packet.AbilityFlying | packet.AbilityAllowFlying
	default:
		return 0
	}
}

type Dimension int32

const (
	DimensionNether    Dimension = -1
	DimensionOverworld Dimension = 0
	DimensionEnd       Dimension = 1
)

func (d Dimension) String() string {
	switch d {
	case DimensionNether:
		return "nether"
	case DimensionOverworld:
		return "overworld"
	case DimensionEnd:
		return "end"
	default:
		return fmt.Sprintf("Dimension(%d)", int32(d))
	}
}

func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(s) {
	case "nether", "the_nether":
		return DimensionNether, nil
	case "overworld":
		return DimensionOverworld, nil
	case "end", "the_end":
		return DimensionEnd, nil
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

type Difficulty uint8

const (
	DifficultyPeaceful Difficulty = iota
	DifficultyEasy
	DifficultyNormal
	DifficultyHard
)

var difficultyNames = [...]string{"peaceful", "easy", "normal", "hard"}

func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", uint8(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(s)
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// LevelType is the level type name sent in Join Game.
type LevelType string

const (
	LevelDefault     LevelType = "default"
	LevelFlat        LevelType = "flat"
	LevelLargeBiomes LevelType = "largeBiomes"
	LevelAmplified   LevelType = "amplified"
	LevelDefault11   LevelType = "default_1_1"
)

func ParseLevelType(s string) (LevelType, error) {
	for _, lt := range []LevelType{LevelDefault, LevelFlat, LevelLargeBiomes, LevelAmplified, LevelDefault11} {
		if strings.EqualFold(s, string(lt)) {
			return lt, nil
		}
	}
	return "", fmt.Errorf("unknown level type %q", s)
}

// World is what a joining player is told about the world.
type World struct {
	Gamemode         Gamemode
	Hardcore         bool
	Dimension        Dimension
	Difficulty       Difficulty
	LevelType        LevelType
	MaxPlayers       uint8
	ReducedDebugInfo bool
	Spawn            packet.Position
}

// DefaultWorld is a peaceful, flat creative overworld.
func DefaultWorld() World {
	return World{
		Gamemode:   GamemodeCreative,
		Dimension:  DimensionOverworld,
		Difficulty: DifficultyPeaceful,
		LevelType:  LevelFlat,
		MaxPlayers: 20,
	}
}

// NewWorld parses the [world] section of the configuration.
func NewWorld(cfg config.WorldConfig) (w World, err error) {
	if w.Gamemode, err = ParseGamemode(cfg.Gamemode); err != nil {
		return World{}, fmt.Errorf("world.gamemode: %w", err)
	}
	if w.Dimension, err = ParseDimension(cfg.Dimension); err != nil {
		return World{}, fmt.Errorf("world.dimension: %w", err)
	}
	if w.Difficulty, err = ParseDifficulty(cfg.Difficulty); err != nil {
		return World{}, fmt.Errorf("world.difficulty: %w", err)
	}
	if w.LevelType, err = ParseLevelType(cfg.LevelType); err != nil {
		return World{}, fmt.Errorf("world.level_type: %w", err)
	}
	if cfg.MaxPlayers < 0 || cfg.MaxPlayers > 0xFF {
		return World{}, fmt.Errorf("world.max_players: %w", packet.ErrOutOfRange)
	}

	w.Hardcore = cfg.Hardcore
	w.MaxPlayers = uint8(cfg.MaxPlayers)
	w.ReducedDebugInfo = cfg.ReducedDebugInfo
	w.Spawn = packet.Position{X: cfg.SpawnX, Y: cfg.SpawnY, Z: cfg.SpawnZ}
	if !w.Spawn.Valid() {
		return World{}, fmt.Errorf("world spawn: %w", packet.ErrOutOfRange)
	}
	return w, nil
}

// JoinGame builds the Join Game packet for the player with entityID.
func (w World) JoinGame(entityID int32) *packet.JoinGame {
	mode := uint8(w.Gamemode)
	if w.Hardcore {
		mode |= HardcoreFlag
	}
	return &packet.JoinGame{
		EntityID:         entityID,
		Gamemode:         mode,
		Dimension:        int32(w.Dimension),
		Difficulty:       uint8(w.Difficulty),
		MaxPlayers:       w.MaxPlayers,
		LevelType:        string(w.LevelType),
		ReducedDebugInfo: w.ReducedDebugInfo,
	}
}
