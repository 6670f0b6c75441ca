package servicefabric

import (
	"fmt"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// TimeOfDay defines an hour and minute of the day specified in 24 hour time.
type TimeOfDay struct {
	// Represents the hour of the day. Value must be between 0 and 23 inclusive.
	Hour int32 `json:"Hour"`

	// Represents the minute of the hour. Value must be between 0 to 59 inclusive.
	Minute int32 `json:"Minute"`
}

func NewTimeOfDay(hour int32, minute int32) (*TimeOfDay, error) {
	timeOfDay := TimeOfDay{Hour: hour, Minute: minute}

	if err := timeOfDay.Validate(); err != nil {
		return nil, err
	}

	return &timeOfDay, nil
}

func (t TimeOfDay) Validate() error {
	return validation.First(
		validation.InRange("hour", t.Hour, 0, 23),
		validation.InRange("minute", t.Minute, 0, 59))
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Hour < other.Hour || (t.Hour == other.Hour && t.Minute < other.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
