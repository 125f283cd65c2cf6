package mcplay

import (
	"encoding/json"
	"fmt"

	"github.com/gstoney/mcplay/packet"
)

// StatusResponse is the JSON document of the server list ping.
type StatusResponse struct {
	Version     StatusVersion     `json:"version"`
	Players     StatusPlayers     `json:"players"`
	Description StatusDescription `json:"description"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type StatusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []PlayerSample `json:"sample"`
}

type PlayerSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type StatusDescription struct {
	Text string `json:"text"`
}

// MarshalJSON keeps an empty sample as [] rather than null.
func (p StatusPlayers) MarshalJSON() ([]byte, error) {
	type plain StatusPlayers
	if p.Sample == nil {
		p.Sample = []PlayerSample{}
	}
	return json.Marshal(plain(p))
}

func (o *Options) statusResponse() StatusResponse {
	return StatusResponse{
		Version: StatusVersion{
			Name:     o.Status.VersionName,
			Protocol: o.Status.Protocol,
		},
		Players: StatusPlayers{
			Max:    o.Status.MaxPlayers,
			Online: o.Online(),
		},
		Description: StatusDescription{
			Text: o.Status.Description,
		},
	}
}

// handleStatus answers one status request and one ping, then ends the
// connection.
func (c *Conn) handleStatus() error {
	if err := c.expect(&packet.StatusReqPacket{}); err != nil {
		return err
	}

	body, err := json.Marshal(c.opts.statusResponse())
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	if err := c.send(&packet.StatusRespPacket{Response: string(body)}); err != nil {
		return err
	}

	var ping packet.PingReqPacket
	if err := c.expect(&ping); err != nil {
		return err
	}
	if err := c.send(&packet.PongRespPacket{Payload: ping.Payload}); err != nil {
		return err
	}

	c.log.Info().Msg("answered status ping")
	return nil
}
