package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// BackupScheduleDescription describes the backup schedule parameters.
type BackupScheduleDescription interface {
	ScheduleKind() BackupScheduleKind
	Validate() error
}

// FrequencyBasedBackupScheduleDescription describes the frequency based backup schedule.
type FrequencyBasedBackupScheduleDescription struct {
	// Defines the interval with which backups are periodically taken. It should be specified in ISO8601
	// format. Timespan in seconds is not supported and will be ignored while creating the policy.
	Interval string `json:"Interval"`
}

func NewFrequencyBasedBackupScheduleDescription(interval string) (*FrequencyBasedBackupScheduleDescription, error) {
	description := FrequencyBasedBackupScheduleDescription{Interval: interval}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d FrequencyBasedBackupScheduleDescription) ScheduleKind() BackupScheduleKind {
	return BackupScheduleKindFrequencyBased
}

func (d FrequencyBasedBackupScheduleDescription) Validate() error {
	return validation.RequiredString("interval", d.Interval)
}

func (d FrequencyBasedBackupScheduleDescription) MarshalJSON() ([]byte, error) {
	type alias FrequencyBasedBackupScheduleDescription
	return marshalKinded("ScheduleKind", string(d.ScheduleKind()), alias(d))
}

// TimeBasedBackupScheduleDescription describes the time based backup schedule.
type TimeBasedBackupScheduleDescription struct {
	// Describes the frequency with which to run the time based backup schedule.
	ScheduleFrequencyType BackupScheduleFrequencyType `json:"ScheduleFrequencyType"`

	// List of days of a week when to trigger the periodic backup. This is valid only when the backup
	// schedule frequency type is weekly.
	RunDays []DayOfWeek `json:"RunDays,omitempty"`

	// Represents the list of exact time during the day in ISO8601 format. Like '19:00:00' will represent
	// '7PM' during the day. Date specified along with time will be ignored.
	RunTimes []time.Time `json:"RunTimes"`
}

func NewTimeBasedBackupScheduleDescription(
	scheduleFrequencyType BackupScheduleFrequencyType,
	runTimes []time.Time,
	runDays []DayOfWeek) (*TimeBasedBackupScheduleDescription, error) {
	description := TimeBasedBackupScheduleDescription{
		ScheduleFrequencyType: scheduleFrequencyType,
		RunDays:               runDays,
		RunTimes:              runTimes,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d TimeBasedBackupScheduleDescription) ScheduleKind() BackupScheduleKind {
	return BackupScheduleKindTimeBased
}

func (d TimeBasedBackupScheduleDescription) Validate() error {
	return validation.First(
		validation.RequiredString("scheduleFrequencyType", string(d.ScheduleFrequencyType)),
		validation.RequiredSlice("runTimes", d.RunTimes))
}

func (d TimeBasedBackupScheduleDescription) MarshalJSON() ([]byte, error) {
	type alias TimeBasedBackupScheduleDescription
	return marshalKinded("ScheduleKind", string(d.ScheduleKind()), alias(d))
}

var backupScheduleFamily = family[BackupScheduleDescription]{
	name:          "BackupScheduleDescription",
	discriminator: "ScheduleKind",
	variants: map[string]func() BackupScheduleDescription{
		string(BackupScheduleKindFrequencyBased): func() BackupScheduleDescription { return &FrequencyBasedBackupScheduleDescription{} },
		string(BackupScheduleKindTimeBased):      func() BackupScheduleDescription { return &TimeBasedBackupScheduleDescription{} },
	},
}

// UnmarshalBackupScheduleDescription decodes a backup schedule payload into its concrete variant.
func UnmarshalBackupScheduleDescription(data []byte) (BackupScheduleDescription, error) {
	return backupScheduleFamily.decode(data)
}
