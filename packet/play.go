package packet

import (
	"fmt"
	"io"
	"strings"
)

// @gen:r,w
type JoinGame struct {
	EntityID         int32  `field:"Int"`
	Gamemode         uint8  `field:"UnsignedByte"`
	Dimension        int32  `field:"Int"`
	Difficulty       uint8  `field:"UnsignedByte"`
	MaxPlayers       uint8  `field:"UnsignedByte"`
	LevelType        string `field:"String" max:"16"`
	ReducedDebugInfo bool   `field:"Boolean"`
}

func (p JoinGame) ID() int32 {
	return 0x25
}

// BrandChannel carries the implementation name of each side.
const BrandChannel = "minecraft:brand"

// Channel adds the minecraft namespace to channel names that have none.
func Channel(name string) string {
	if !strings.Contains(name, ":") {
		return "minecraft:" + name
	}
	return name
}

// @gen:r,w
type ServerPluginMessage struct {
	Channel string `field:"String" max:"MaxChannelLen"`
	Data    []byte `field:"Rest"`
}

func (p ServerPluginMessage) ID() int32 {
	return 0x19
}

// @gen:r,w
type ClientPluginMessage struct {
	Channel string `field:"String" max:"MaxChannelLen"`
	Data    []byte `field:"Rest"`
}

func (p ClientPluginMessage) ID() int32 {
	return 0x0A
}

// @gen:r,w
type SpawnPosition struct {
	Location Position `field:"Position"`
}

func (p SpawnPosition) ID() int32 {
	return 0x49
}

// Player ability flags.
const (
	AbilityInvulnerable int8 = 1 << iota
	AbilityFlying
	AbilityAllowFlying
	AbilityCreative
)

// @gen:r,w
type PlayerAbilities struct {
	Flags        int8    `field:"Byte"`
	FlyingSpeed  float32 `field:"Float"`
	WalkingSpeed float32 `field:"Float"`
}

func (p PlayerAbilities) ID() int32 {
	return 0x2E
}

type ChatMode int32

const (
	ChatEnabled ChatMode = iota
	ChatCommandsOnly
	ChatHidden
)

func (m ChatMode) String() string {
	switch m {
	case ChatEnabled:
		return "enabled"
	case ChatCommandsOnly:
		return "commands_only"
	case ChatHidden:
		return "hidden"
	}
	return fmt.Sprintf("ChatMode(%d)", int32(m))
}

func WriteChatMode(w io.Writer, v ChatMode) error {
	return WriteVarInt(w, int32(v))
}

func ReadChatMode(r Reader) (v ChatMode, err error) {
	raw, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if raw < int32(ChatEnabled) || raw > int32(ChatHidden) {
		err = fmt.Errorf("%w: chat mode %d", ErrInvalidData, raw)
		return
	}
	return ChatMode(raw), nil
}

type MainHand int32

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

func (h MainHand) String() string {
	switch h {
	case MainHandLeft:
		return "left"
	case MainHandRight:
		return "right"
	}
	return fmt.Sprintf("MainHand(%d)", int32(h))
}

func WriteMainHand(w io.Writer, v MainHand) error {
	return WriteVarInt(w, int32(v))
}

func ReadMainHand(r Reader) (v MainHand, err error) {
	raw, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if raw != int32(MainHandLeft) && raw != int32(MainHandRight) {
		err = fmt.Errorf("%w: main hand %d", ErrInvalidData, raw)
		return
	}
	return MainHand(raw), nil
}

// @gen:r,w
type ClientSettings struct {
	Locale             string   `field:"String" max:"16"`
	ViewDistance       int8     `field:"Byte"`
	ChatMode           ChatMode `field:"ChatMode"`
	ChatColors         bool     `field:"Boolean"`
	DisplayedSkinParts uint8    `field:"UnsignedByte"`
	MainHand           MainHand `field:"MainHand"`
}

func (p ClientSettings) ID() int32 {
	return 0x04
}

// @gen:r,w
type PlayerPositionAndLook struct {
	X          float64 `field:"Double"`
	Y          float64 `field:"Double"`
	Z          float64 `field:"Double"`
	Yaw        float32 `field:"Float"`
	Pitch      float32 `field:"Float"`
	Flags      int8    `field:"Byte"`
	TeleportID int32   `field:"VarInt"`
}

func (p PlayerPositionAndLook) ID() int32 {
	return 0x32
}

// @gen:r,w
type TeleportConfirm struct {
	TeleportID int32 `field:"VarInt"`
}

func (p TeleportConfirm) ID() int32 {
	return 0x00
}
