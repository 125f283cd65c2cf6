package packet

import (
	"bytes"
	"errors"
	"testing"
)

func TestHandshakeEncode(t *testing.T) {
	var buf bytes.Buffer
	p := HandshakePacket{
		ProtocolVersion: 404,
		ServerAddr:      "localhost",
		ServerPort:      25565,
		NextState:       IntentLogin,
	}
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{
		0x00,       // packet id
		0x94, 0x03, // 404
		9, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
		0x63, 0xdd, // 25565
		0x02,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Encode expected %x, got %x", want, buf.Bytes())
	}

	// Decode starts after the id, where the framer leaves the cursor.
	r := NewFrameReader(want[1:])
	var got HandshakePacket
	if err := got.Decode(&r); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != p {
		t.Errorf("Decode expected %+v, got %+v", p, got)
	}
}

func TestLoginStartRejectsLongName(t *testing.T) {
	var buf bytes.Buffer
	WriteString(&buf, "seventeen_chars__")

	r := NewFrameReader(buf.Bytes())
	var p LoginStart
	if err := p.Decode(&r); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Decode expected ErrTooLarge, got %v", err)
	}
}

var clientSettingsTc = []TestCase[ClientSettings]{
	{
		desc: "Valid settings",
		v: ClientSettings{
			Locale:             "en_us",
			ViewDistance:       8,
			ChatMode:           ChatCommandsOnly,
			ChatColors:         true,
			DisplayedSkinParts: 0x7f,
			MainHand:           MainHandRight,
		},
		ser: []byte{5, 'e', 'n', '_', 'u', 's', 8, 0x01, 0x01, 0x7f, 0x01},
	},
	{
		desc:      "Chat mode outside enum",
		expectErr: ErrInvalidData,
		ser:       []byte{5, 'e', 'n', '_', 'u', 's', 8, 0x03, 0x01, 0x7f, 0x01},
	},
	{
		desc:      "Main hand outside enum",
		expectErr: ErrInvalidData,
		ser:       []byte{5, 'e', 'n', '_', 'u', 's', 8, 0x00, 0x01, 0x7f, 0x02},
	},
	{
		desc:      "Chat colors not a boolean",
		expectErr: ErrInvalidData,
		ser:       []byte{5, 'e', 'n', '_', 'u', 's', 8, 0x00, 0x05, 0x7f, 0x01},
	},
	{
		desc:      "Missing main hand",
		expectErr: ErrTruncated,
		ser:       []byte{5, 'e', 'n', '_', 'u', 's', 8, 0x00, 0x01, 0x7f},
	},
}

func TestClientSettingsDecode(t *testing.T) {
	for _, tC := range clientSettingsTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			var got ClientSettings
			err := got.Decode(&r)

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("Decode expected error %v, got %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("Decode expected %+v, got %+v", tC.v, got)
			}
		})
	}
}

func TestPluginMessageCarriesRestOfPayload(t *testing.T) {
	var brand bytes.Buffer
	WriteString(&brand, "vanilla")

	var buf bytes.Buffer
	p := ServerPluginMessage{Channel: BrandChannel, Data: brand.Bytes()}
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	r := NewFrameReader(buf.Bytes()[1:])
	var got ClientPluginMessage
	if err := got.Decode(&r); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Channel != BrandChannel || !bytes.Equal(got.Data, brand.Bytes()) {
		t.Errorf("Decode got %q %x", got.Channel, got.Data)
	}

	dr := NewFrameReader(got.Data)
	name, err := ReadString(&dr, MaxTextLen)
	if err != nil || name != "vanilla" {
		t.Errorf("brand payload decoded to %q, %v", name, err)
	}
}

func TestChannel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"brand", "minecraft:brand"},
		{"minecraft:brand", "minecraft:brand"},
		{"fml:handshake", "fml:handshake"},
	}
	for _, tt := range tests {
		if got := Channel(tt.in); got != tt.want {
			t.Errorf("Channel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
