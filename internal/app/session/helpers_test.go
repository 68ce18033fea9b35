package session_test

import "github.com/jsamuelsen11/exclusive-events/internal/domain/availability"

func christmas() availability.Calendar {
	return availability.Calendar{
		Slots: []availability.Slot{{Date: "2024-12-25", Available: true, Type: availability.TypeWeekend}},
	}
}
