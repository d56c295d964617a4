package consts

const (
	VBE     = 0.7   // Silicon base-emitter drop (V)
	THERMAL = 0.025 // Thermal voltage at room temperature (V)
)
