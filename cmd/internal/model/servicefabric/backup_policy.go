package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// BackupPolicyDescription describes a backup policy for configuring periodic backup.
type BackupPolicyDescription struct {
	// The unique name identifying this backup policy.
	Name string `json:"Name"`

	// Specifies whether to trigger restore automatically using the latest available backup in case the
	// partition experiences a data loss event.
	AutoRestoreOnDataLoss bool `json:"AutoRestoreOnDataLoss"`

	// Defines the maximum number of incremental backups to be taken between two full backups. This is
	// just the upper limit. A full backup may be taken before specified number of incremental backups
	// are completed in one of the following conditions
	// - The replica has never taken a full backup since it has become primary,
	// - Some of the log records since the last backup has been truncated, or
	// - Replica passed the MaxAccumulatedBackupLogSizeInMB limit.
	MaxIncrementalBackups int32 `json:"MaxIncrementalBackups"`

	// Describes the backup schedule parameters.
	Schedule BackupScheduleDescription `json:"Schedule"`

	// Describes the details of backup storage where to store the periodic backups.
	Storage BackupStorageDescription `json:"Storage"`

	// Describes the policy to retain backups in storage.
	RetentionPolicy RetentionPolicyDescription `json:"RetentionPolicy,omitempty"`
}

func NewBackupPolicyDescription(
	name string,
	autoRestoreOnDataLoss bool,
	maxIncrementalBackups int32,
	schedule BackupScheduleDescription,
	storage BackupStorageDescription,
	retentionPolicy RetentionPolicyDescription) (*BackupPolicyDescription, error) {
	description := BackupPolicyDescription{
		Name:                  name,
		AutoRestoreOnDataLoss: autoRestoreOnDataLoss,
		MaxIncrementalBackups: maxIncrementalBackups,
		Schedule:              schedule,
		Storage:               storage,
		RetentionPolicy:       retentionPolicy,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

// Validate checks the policy and the nested schedule, storage and retention descriptions.
func (d BackupPolicyDescription) Validate() error {
	err := validation.First(
		validation.RequiredString("name", d.Name),
		validation.InRange("maxIncrementalBackups", d.MaxIncrementalBackups, 0, 255),
		validation.Required("schedule", d.Schedule),
		validation.Required("storage", d.Storage))

	if err != nil {
		return err
	}

	if err := d.Schedule.Validate(); err != nil {
		return err
	}

	if err := d.Storage.Validate(); err != nil {
		return err
	}

	if d.RetentionPolicy != nil {
		return d.RetentionPolicy.Validate()
	}

	return nil
}

func (d *BackupPolicyDescription) UnmarshalJSON(data []byte) error {
	type alias BackupPolicyDescription
	aux := struct {
		*alias
		Schedule        json.RawMessage `json:"Schedule"`
		Storage         json.RawMessage `json:"Storage"`
		RetentionPolicy json.RawMessage `json:"RetentionPolicy"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	schedule, err := UnmarshalBackupScheduleDescription(aux.Schedule)
	if err != nil {
		return err
	}

	storage, err := UnmarshalBackupStorageDescription(aux.Storage)
	if err != nil {
		return err
	}

	retentionPolicy, err := UnmarshalRetentionPolicyDescription(aux.RetentionPolicy)
	if err != nil {
		return err
	}

	d.Schedule = schedule
	d.Storage = storage
	d.RetentionPolicy = retentionPolicy

	return nil
}

// PagedBackupPolicyDescriptionList is the list of backup policies configured in the cluster.
type PagedBackupPolicyDescriptionList = PagedList[BackupPolicyDescription]
