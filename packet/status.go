package packet

// @gen:r,w
type StatusReqPacket struct{}

func (p StatusReqPacket) ID() int32 {
	return 0x00
}

// @gen:r,w
type StatusRespPacket struct {
	Response string `field:"String" max:"MaxTextLen"` // JSON
}

func (p StatusRespPacket) ID() int32 {
	return 0x00
}

// @gen:r,w
type PingReqPacket struct {
	Payload int64 `field:"Long"`
}

func (p PingReqPacket) ID() int32 {
	return 0x01
}

// @gen:r,w
type PongRespPacket struct {
	Payload int64 `field:"Long"`
}

func (p PongRespPacket) ID() int32 {
	return 0x01
}
