package variant

import "dsipanel/internal/panel"

// Model identifiers as they appear in the platform description.
const (
	// ModelLF101 is the current LF101-800x1280-AMA binding: the full
	// vendor init sequence runs during prepare.
	ModelLF101 = "luckfox,lf101-8001280-ama"

	// ModelLF101R1 is the earliest shipped revision of the same module,
	// which deferred the init sequence to enable and expected a
	// switchable supply and a reported mounting orientation.
	ModelLF101R1 = "luckfox,lf101-8001280-ama-r1"
)

// 10.1inch 800x1280, https://www.luckfox.com/EN-LF101-8001280-AMA
var lf101Mode = panel.TimingMode{
	ClockKHz: 69907,

	HActive:     800,
	HFrontPorch: 40,
	HSyncWidth:  20,
	HBackPorch:  20,

	VActive:     1280,
	VFrontPorch: 20,
	VSyncWidth:  4,
	VBackPorch:  20,

	WidthMM:  135,
	HeightMM: 216,
}

// lf101InitTable is the vendor-supplied bring-up sequence for the JD9365
// class controller on this module. Pages 0x01/0x02 carry gamma and GIP
// timing, page 0x04 power settings; the final user-page writes end with a
// parameterized sleep-out. The values are the vendor's; do not edit them
// without new panel vendor data.
var lf101InitTable = panel.Table{
	panel.Cmd(0xE0, 0x00),
	panel.Cmd(0xE1, 0x93),
	panel.Cmd(0xE2, 0x65),
	panel.Cmd(0xE3, 0xF8),
	panel.Cmd(0x80, 0x03),

	panel.Cmd(0xE0, 0x01),
	panel.Cmd(0x00, 0x00),
	panel.Cmd(0x01, 0x3B),
	panel.Cmd(0x0C, 0x74),
	panel.Cmd(0x17, 0x00),
	panel.Cmd(0x18, 0xAF),
	panel.Cmd(0x19, 0x00),
	panel.Cmd(0x1A, 0x00),
	panel.Cmd(0x1B, 0xAF),
	panel.Cmd(0x1C, 0x00),
	panel.Cmd(0x35, 0x26),
	panel.Cmd(0x37, 0x09),
	panel.Cmd(0x38, 0x04),
	panel.Cmd(0x39, 0x00),
	panel.Cmd(0x3A, 0x01),
	panel.Cmd(0x3C, 0x78),
	panel.Cmd(0x3D, 0xFF),
	panel.Cmd(0x3E, 0xFF),
	panel.Cmd(0x3F, 0x7F),
	panel.Cmd(0x40, 0x06),
	panel.Cmd(0x41, 0xA0),
	panel.Cmd(0x42, 0x81),
	panel.Cmd(0x43, 0x14),
	panel.Cmd(0x44, 0x23),
	panel.Cmd(0x45, 0x28),
	panel.Cmd(0x55, 0x02),
	panel.Cmd(0x57, 0x69),
	panel.Cmd(0x59, 0x0A),
	panel.Cmd(0x5A, 0x2A),
	panel.Cmd(0x5B, 0x17),
	panel.Cmd(0x5D, 0x7F),
	panel.Cmd(0x5E, 0x6B),
	panel.Cmd(0x5F, 0x5C),
	panel.Cmd(0x60, 0x4F),
	panel.Cmd(0x61, 0x4D),
	panel.Cmd(0x62, 0x3F),
	panel.Cmd(0x63, 0x42),
	panel.Cmd(0x64, 0x2B),
	panel.Cmd(0x65, 0x44),
	panel.Cmd(0x66, 0x43),
	panel.Cmd(0x67, 0x43),
	panel.Cmd(0x68, 0x63),
	panel.Cmd(0x69, 0x52),
	panel.Cmd(0x6A, 0x5A),
	panel.Cmd(0x6B, 0x4F),
	panel.Cmd(0x6C, 0x4E),
	panel.Cmd(0x6D, 0x20),
	panel.Cmd(0x6E, 0x0F),
	panel.Cmd(0x6F, 0x00),
	panel.Cmd(0x70, 0x7F),
	panel.Cmd(0x71, 0x6B),
	panel.Cmd(0x72, 0x5C),
	panel.Cmd(0x73, 0x4F),
	panel.Cmd(0x74, 0x4D),
	panel.Cmd(0x75, 0x3F),
	panel.Cmd(0x76, 0x42),
	panel.Cmd(0x77, 0x2B),
	panel.Cmd(0x78, 0x44),
	panel.Cmd(0x79, 0x43),
	panel.Cmd(0x7A, 0x43),
	panel.Cmd(0x7B, 0x63),
	panel.Cmd(0x7C, 0x52),
	panel.Cmd(0x7D, 0x5A),
	panel.Cmd(0x7E, 0x4F),
	panel.Cmd(0x7F, 0x4E),
	panel.Cmd(0x80, 0x20),
	panel.Cmd(0x81, 0x0F),
	panel.Cmd(0x82, 0x00),

	panel.Cmd(0xE0, 0x02),
	panel.Cmd(0x00, 0x02),
	panel.Cmd(0x01, 0x02),
	panel.Cmd(0x02, 0x00),
	panel.Cmd(0x03, 0x00),
	panel.Cmd(0x04, 0x1E),
	panel.Cmd(0x05, 0x1E),
	panel.Cmd(0x06, 0x1F),
	panel.Cmd(0x07, 0x1F),
	panel.Cmd(0x08, 0x1F),
	panel.Cmd(0x09, 0x17),
	panel.Cmd(0x0A, 0x17),
	panel.Cmd(0x0B, 0x37),
	panel.Cmd(0x0C, 0x37),
	panel.Cmd(0x0D, 0x47),
	panel.Cmd(0x0E, 0x47),
	panel.Cmd(0x0F, 0x45),
	panel.Cmd(0x10, 0x45),
	panel.Cmd(0x11, 0x4B),
	panel.Cmd(0x12, 0x4B),
	panel.Cmd(0x13, 0x49),
	panel.Cmd(0x14, 0x49),
	panel.Cmd(0x15, 0x1F),
	panel.Cmd(0x16, 0x01),
	panel.Cmd(0x17, 0x01),
	panel.Cmd(0x18, 0x00),
	panel.Cmd(0x19, 0x00),
	panel.Cmd(0x1A, 0x1E),
	panel.Cmd(0x1B, 0x1E),
	panel.Cmd(0x1C, 0x1F),
	panel.Cmd(0x1D, 0x1F),
	panel.Cmd(0x1E, 0x1F),
	panel.Cmd(0x1F, 0x17),
	panel.Cmd(0x20, 0x17),
	panel.Cmd(0x21, 0x37),
	panel.Cmd(0x22, 0x37),
	panel.Cmd(0x23, 0x46),
	panel.Cmd(0x24, 0x46),
	panel.Cmd(0x25, 0x44),
	panel.Cmd(0x26, 0x44),
	panel.Cmd(0x27, 0x4A),
	panel.Cmd(0x28, 0x4A),
	panel.Cmd(0x29, 0x48),
	panel.Cmd(0x2A, 0x48),
	panel.Cmd(0x2B, 0x1F),
	panel.Cmd(0x2C, 0x01),
	panel.Cmd(0x2D, 0x01),
	panel.Cmd(0x2E, 0x00),
	panel.Cmd(0x2F, 0x00),
	panel.Cmd(0x30, 0x1F),
	panel.Cmd(0x31, 0x1F),
	panel.Cmd(0x32, 0x1E),
	panel.Cmd(0x33, 0x1E),
	panel.Cmd(0x34, 0x1F),
	panel.Cmd(0x35, 0x17),
	panel.Cmd(0x36, 0x17),
	panel.Cmd(0x37, 0x37),
	panel.Cmd(0x38, 0x37),
	panel.Cmd(0x39, 0x08),
	panel.Cmd(0x3A, 0x08),
	panel.Cmd(0x3B, 0x0A),
	panel.Cmd(0x3C, 0x0A),
	panel.Cmd(0x3D, 0x04),
	panel.Cmd(0x3E, 0x04),
	panel.Cmd(0x3F, 0x06),
	panel.Cmd(0x40, 0x06),
	panel.Cmd(0x41, 0x1F),
	panel.Cmd(0x42, 0x02),
	panel.Cmd(0x43, 0x02),
	panel.Cmd(0x44, 0x00),
	panel.Cmd(0x45, 0x00),
	panel.Cmd(0x46, 0x1F),
	panel.Cmd(0x47, 0x1F),
	panel.Cmd(0x48, 0x1E),
	panel.Cmd(0x49, 0x1E),
	panel.Cmd(0x4A, 0x1F),
	panel.Cmd(0x4B, 0x17),
	panel.Cmd(0x4C, 0x17),
	panel.Cmd(0x4D, 0x37),
	panel.Cmd(0x4E, 0x37),
	panel.Cmd(0x4F, 0x09),
	panel.Cmd(0x50, 0x09),
	panel.Cmd(0x51, 0x0B),
	panel.Cmd(0x52, 0x0B),
	panel.Cmd(0x53, 0x05),
	panel.Cmd(0x54, 0x05),
	panel.Cmd(0x55, 0x07),
	panel.Cmd(0x56, 0x07),
	panel.Cmd(0x57, 0x1F),
	panel.Cmd(0x58, 0x40),
	panel.Cmd(0x5B, 0x30),
	panel.Cmd(0x5C, 0x16),
	panel.Cmd(0x5D, 0x34),
	panel.Cmd(0x5E, 0x05),
	panel.Cmd(0x5F, 0x02),
	panel.Cmd(0x63, 0x00),
	panel.Cmd(0x64, 0x6A),
	panel.Cmd(0x67, 0x73),
	panel.Cmd(0x68, 0x1D),
	panel.Cmd(0x69, 0x08),
	panel.Cmd(0x6A, 0x6A),
	panel.Cmd(0x6B, 0x08),
	panel.Cmd(0x6C, 0x00),
	panel.Cmd(0x6D, 0x00),
	panel.Cmd(0x6E, 0x00),
	panel.Cmd(0x6F, 0x88),
	panel.Cmd(0x75, 0xFF),
	panel.Cmd(0x77, 0xDD),
	panel.Cmd(0x78, 0x3F),
	panel.Cmd(0x79, 0x15),
	panel.Cmd(0x7A, 0x17),
	panel.Cmd(0x7D, 0x14),
	panel.Cmd(0x7E, 0x82),

	panel.Cmd(0xE0, 0x04),
	panel.Cmd(0x00, 0x0E),
	panel.Cmd(0x02, 0xB3),
	panel.Cmd(0x09, 0x61),
	panel.Cmd(0x0E, 0x48),

	panel.Cmd(0xE0, 0x00),
	panel.Cmd(0xE6, 0x02),
	panel.Cmd(0xE7, 0x0C),
	panel.Cmd(0x11, 0x00),
}

func init() {
	Register(Variant{
		Model: ModelLF101,
		Mode:  lf101Mode,
		Config: panel.Config{
			Lanes:         4,
			PixelFormat:   0x77, // 24bpp RGB888
			AddressMode:   0x00,
			InitInPrepare: true,
		},
		Table: lf101InitTable,
	})

	Register(Variant{
		Model: ModelLF101R1,
		Mode:  lf101Mode,
		Config: panel.Config{
			Lanes:          4,
			PixelFormat:    0x77,
			AddressMode:    0x00,
			InitInPrepare:  false,
			HasOrientation: true,
			Orientation:    panel.OrientationNormal,
		},
		Table: lf101InitTable,
	})
}
