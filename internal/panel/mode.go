package panel

// TimingMode describes the video timings and physical dimensions of one
// panel variant. It is selected once at configuration time and never
// mutated; the display pipeline reads it through Panel.Mode.
type TimingMode struct {
	// ClockKHz is the pixel clock in kHz.
	ClockKHz int

	HActive     int
	HFrontPorch int
	HSyncWidth  int
	HBackPorch  int

	VActive     int
	VFrontPorch int
	VSyncWidth  int
	VBackPorch  int

	WidthMM  int
	HeightMM int
}

// HTotal is the full line length including blanking.
func (m TimingMode) HTotal() int {
	return m.HActive + m.HFrontPorch + m.HSyncWidth + m.HBackPorch
}

// VTotal is the full frame height including blanking.
func (m TimingMode) VTotal() int {
	return m.VActive + m.VFrontPorch + m.VSyncWidth + m.VBackPorch
}

// VRefresh derives the refresh rate in Hz from the pixel clock and the
// total raster size, rounded to the nearest integer.
func (m TimingMode) VRefresh() int {
	total := m.HTotal() * m.VTotal()
	if total <= 0 {
		return 0
	}
	return (m.ClockKHz*1000 + total/2) / total
}
