package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gstoney/mcplay/packet"
)

// DefaultPlayerUUID is handed to every player. It is a placeholder, not
// the result of any authentication.
const DefaultPlayerUUID = "8e383e9f-608e-4556-97c9-61312c741ea0"

// Config holds the server configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Status  StatusConfig  `toml:"status"`
	Login   LoginConfig   `toml:"login"`
	World   WorldConfig   `toml:"world"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
}

type ServerConfig struct {
	Addr         string `toml:"addr"`
	Brand        string `toml:"brand"`
	MaxPacketLen int32  `toml:"max_packet_len"`
}

// StatusConfig is what the server list ping reports.
type StatusConfig struct {
	VersionName string `toml:"version_name"`
	Protocol    int    `toml:"protocol"`
	MaxPlayers  int    `toml:"max_players"`
	Description string `toml:"description"`
}

type LoginConfig struct {
	PlayerUUID string `toml:"player_uuid"`
}

type WorldConfig struct {
	Gamemode         string `toml:"gamemode"` // survival, creative, adventure, spectator
	Hardcore         bool   `toml:"hardcore"`
	Dimension        string `toml:"dimension"`  // nether, overworld, end
	Difficulty       string `toml:"difficulty"` // peaceful, easy, normal, hard
	LevelType        string `toml:"level_type"`
	MaxPlayers       int    `toml:"max_players"`
	ReducedDebugInfo bool   `toml:"reduced_debug_info"`
	SpawnX           int32  `toml:"spawn_x"`
	SpawnY           int16  `toml:"spawn_y"`
	SpawnZ           int32  `toml:"spawn_z"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

type MetricsConfig struct {
	Addr string `toml:"addr"` // empty disables the HTTP endpoint
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         "0.0.0.0:25565",
			Brand:        "mcplay",
			MaxPacketLen: 1 << 21,
		},
		Status: StatusConfig{
			VersionName: "1.13.1",
			Protocol:    404,
			MaxPlayers:  100,
			Description: "A Minecraft Server",
		},
		Login: LoginConfig{
			PlayerUUID: DefaultPlayerUUID,
		},
		World: WorldConfig{
			Gamemode:   "creative",
			Dimension:  "overworld",
			Difficulty: "peaceful",
			LevelType:  "flat",
			MaxPlayers: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// LoadEnvFiles loads .env style files into the process environment.
// Variables that are already set are left alone. Missing files are
// ignored when optional is set.
func LoadEnvFiles(optional bool, files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from MCPLAY_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("MCPLAY_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("MCPLAY_BRAND"); ok {
		c.Server.Brand = v
	}
	if v, ok := os.LookupEnv("MCPLAY_MOTD"); ok {
		c.Status.Description = v
	}
	if v, ok := os.LookupEnv("MCPLAY_PLAYER_UUID"); ok {
		c.Login.PlayerUUID = v
	}
	if v, ok := os.LookupEnv("MCPLAY_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("MCPLAY_METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}
	if v, ok := os.LookupEnv("MCPLAY_MAX_PLAYERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MCPLAY_MAX_PLAYERS: %w", err)
		}
		c.Status.MaxPlayers = n
		c.World.MaxPlayers = n
	}
	return nil
}

// Validate checks values the server cannot start with. Enum names under
// [world] are checked where they are parsed.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("server.addr: %w", err)
	}
	if c.Server.MaxPacketLen <= 0 {
		return fmt.Errorf("server.max_packet_len must be positive, got %d", c.Server.MaxPacketLen)
	}
	if len(c.Server.Brand) > 32767 {
		return errors.New("server.brand is too long")
	}
	if c.Status.Protocol < 0 || c.Status.Protocol > 0xFFFF {
		return fmt.Errorf("status.protocol out of range: %d", c.Status.Protocol)
	}
	if _, err := uuid.Parse(c.Login.PlayerUUID); err != nil {
		return fmt.Errorf("login.player_uuid: %w", err)
	}
	if c.World.MaxPlayers < 0 || c.World.MaxPlayers > 255 {
		return fmt.Errorf("world.max_players must fit in a byte, got %d", c.World.MaxPlayers)
	}
	spawn := packet.Position{X: c.World.SpawnX, Y: c.World.SpawnY, Z: c.World.SpawnZ}
	if !spawn.Valid() {
		return fmt.Errorf("world spawn (%d, %d, %d) is outside the world", spawn.X, spawn.Y, spawn.Z)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return fmt.Errorf("metrics.addr: %w", err)
		}
	}
	return nil
}

// PlayerUUID returns the parsed login UUID. Call Validate first.
func (c *Config) PlayerUUID() uuid.UUID {
	return uuid.MustParse(c.Login.PlayerUUID)
}
