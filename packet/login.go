package packet

// @gen:r,w
type LoginStart struct {
	Name string `field:"String" max:"MaxUsernameLen"`
}

func (p LoginStart) ID() int32 {
	return 0x00
}

// @gen:r,w
type LoginSuccess struct {
	UUID     string `field:"String" max:"36"` // hyphenated
	Username string `field:"String" max:"MaxUsernameLen"`
}

func (p LoginSuccess) ID() int32 {
	return 0x02
}
