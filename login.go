package mcplay

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gstoney/mcplay/packet"
)

// handleLogin accepts the player without authentication and walks the
// client through the packets it needs before it can spawn.
func (c *Conn) handleLogin() error {
	var start packet.LoginStart
	if err := c.expect(&start); err != nil {
		return err
	}
	c.Session.Username = start.Name
	c.Session.PlayerUUID = c.opts.PlayerUUID
	c.log = c.log.With().Str("player", start.Name).Logger()

	if err := c.send(&packet.LoginSuccess{
		UUID:     c.Session.PlayerUUID.String(),
		Username: start.Name,
	}); err != nil {
		return err
	}
	if err := c.setState(StatePlay); err != nil {
		return err
	}

	if err := c.joinGame(); err != nil {
		return err
	}
	if err := c.readClientSettings(); err != nil {
		return err
	}
	if err := c.readClientPluginMessage(); err != nil {
		return err
	}
	if err := c.teleportToSpawn(); err != nil {
		return err
	}

	c.log.Info().
		Stringer("uuid", c.Session.PlayerUUID).
		Int32("entity", c.Session.EntityID).
		Msg("login done")
	return nil
}

// joinGame sends Join Game, the server brand, the spawn point and the
// player abilities.
func (c *Conn) joinGame() error {
	w := c.opts.World
	c.Session.EntityID = c.opts.Counters.NextEntityID()

	if err := c.send(w.JoinGame(c.Session.EntityID)); err != nil {
		return err
	}

	var brand bytes.Buffer
	if err := packet.WriteString(&brand, c.opts.Brand); err != nil {
		return err
	}
	if err := c.send(&packet.ServerPluginMessage{
		Channel: packet.BrandChannel,
		Data:    brand.Bytes(),
	}); err != nil {
		return err
	}

	if err := c.send(&packet.SpawnPosition{Location: w.Spawn}); err != nil {
		return err
	}

	return c.send(&packet.PlayerAbilities{
		Flags:        w.Gamemode.Abilities(),
		FlyingSpeed:  0.05,
		WalkingSpeed: 0.1,
	})
}

func (c *Conn) readClientSettings() error {
	var settings packet.ClientSettings
	if err := c.expect(&settings); err != nil {
		return err
	}
	settings.Locale = strings.ToLower(settings.Locale)
	c.Session.Settings = settings

	c.log.Debug().
		Str("locale", settings.Locale).
		Int8("view_distance", settings.ViewDistance).
		Stringer("chat", settings.ChatMode).
		Stringer("hand", settings.MainHand).
		Msg("client settings")
	return nil
}

func (c *Conn) readClientPluginMessage() error {
	var msg packet.ClientPluginMessage
	if err := c.expect(&msg); err != nil {
		return err
	}

	channel := packet.Channel(msg.Channel)
	if channel != packet.BrandChannel {
		c.log.Warn().Str("channel", channel).Msg("unknown plugin message channel")
		return nil
	}

	r := packet.NewFrameReader(msg.Data)
	brand, err := packet.ReadString(&r, packet.MaxTextLen)
	if err != nil {
		return fmt.Errorf("client brand: %w", err)
	}
	c.Session.ClientBrand = brand
	c.log.Info().Str("brand", brand).Msg("client brand")
	return nil
}

// teleportToSpawn places the player at the spawn point, waits for the
// client to confirm it, then sends the position once more.
func (c *Conn) teleportToSpawn() error {
	id, err := c.sendPosition()
	if err != nil {
		return err
	}

	var confirm packet.TeleportConfirm
	if err := c.expect(&confirm); err != nil {
		return err
	}
	if confirm.TeleportID != id {
		return fmt.Errorf("%w: sent %d, got %d", ErrTeleportMismatch, id, confirm.TeleportID)
	}
	c.log.Debug().Int32("teleport", id).Msg("teleport confirmed")

	_, err = c.sendPosition()
	return err
}

func (c *Conn) sendPosition() (teleportID int32, err error) {
	spawn := c.opts.World.Spawn
	teleportID = c.opts.Counters.NextTeleportID()

	err = c.send(&packet.PlayerPositionAndLook{
		X:          float64(spawn.X),
		Y:          float64(spawn.Y),
		Z:          float64(spawn.Z),
		Flags:      0,
		TeleportID: teleportID,
	})
	return teleportID, err
}
