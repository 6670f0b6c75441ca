package servicefabric

import (
	"encoding/json"
	"github.com/google/uuid"
	"time"
)

// Epoch is an epoch is a configuration number for the partition as a whole. When the configuration of
// the replica set changes, for example when the Primary replica changes, the operations that are
// replicated from the new Primary replica are said to be a new Epoch from the ones which were sent by
// the old Primary replica.
type Epoch struct {
	// The current configuration number of this Epoch. The configuration number is an increasing value
	// that is updated whenever the configuration of this replica set changes.
	ConfigurationVersion *string `json:"ConfigurationVersion,omitempty"`

	// The current data loss number of this Epoch. The data loss number property is an increasing value
	// which is updated whenever data loss is suspected, as when loss of a quorum of replicas in the
	// replica set that includes the Primary replica.
	DataLossVersion *string `json:"DataLossVersion,omitempty"`
}

// BackupInfo represents a backup point which can be used to trigger a restore.
type BackupInfo struct {
	BackupId                *uuid.UUID           `json:"BackupId,omitempty"`
	BackupChainId           *uuid.UUID           `json:"BackupChainId,omitempty"`
	ApplicationName         *string              `json:"ApplicationName,omitempty"`
	ServiceName             *string              `json:"ServiceName,omitempty"`
	PartitionInformation    PartitionInformation `json:"PartitionInformation,omitempty"`
	BackupLocation          *string              `json:"BackupLocation,omitempty"`
	BackupType              *BackupType          `json:"BackupType,omitempty"`
	EpochOfLastBackupRecord *Epoch               `json:"EpochOfLastBackupRecord,omitempty"`
	LsnOfLastBackupRecord   *string              `json:"LsnOfLastBackupRecord,omitempty"`
	CreationTimeUtc         *time.Time           `json:"CreationTimeUtc,omitempty"`
	ServiceManifestVersion  *string              `json:"ServiceManifestVersion,omitempty"`
	FailureError            *FabricErrorBody     `json:"FailureError,omitempty"`
}

func (b *BackupInfo) UnmarshalJSON(data []byte) error {
	type alias BackupInfo
	aux := struct {
		*alias
		PartitionInformation json.RawMessage `json:"PartitionInformation"`
	}{alias: (*alias)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	partitionInformation, err := UnmarshalPartitionInformation(aux.PartitionInformation)
	if err != nil {
		return err
	}

	b.PartitionInformation = partitionInformation

	return nil
}

// PagedBackupInfoList is the list of backups and the continuation token to fetch the next page.
type PagedBackupInfoList = PagedList[BackupInfo]
