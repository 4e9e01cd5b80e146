package solve

import (
	"time"

	"github.com/abhisek/solvo/internal/wizard"
)

// transitionDoneMsg is sent when a step submission (including any
// generation call) has finished.
type transitionDoneMsg struct {
	Sess wizard.Session
}

// spinnerTickMsg is sent at short intervals to animate the waiting spinner.
type spinnerTickMsg time.Time
