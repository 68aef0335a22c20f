package engine

import "fmt"

// FormatHMS renders whole seconds as HH:MM:SS. Hours are never truncated.
func FormatHMS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

const farewellPrefix = "⏰ "

// Farewell returns the message shown when a mode's loop ends
func Farewell(mode Mode, reason Reason) string {
	switch mode {
	case ModeClock:
		return farewellPrefix + "Relógio Terminado!"
	case ModeStopwatch:
		return farewellPrefix + "Cronómetro parado."
	case ModeCountdown:
		if reason == ReasonExpired {
			return farewellPrefix + "Acabou o tempo"
		}
		return farewellPrefix + "Contagem Interrompida"
	default:
		return ""
	}
}
