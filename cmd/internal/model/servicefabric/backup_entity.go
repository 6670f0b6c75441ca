package servicefabric

import "github.com/google/uuid"

// BackupEntity describes the Service Fabric entity that is configured for backup.
type BackupEntity interface {
	EntityKind() BackupEntityKind
}

// ApplicationBackupEntity identifies the Service Fabric application which is being backed up.
type ApplicationBackupEntity struct {
	// The name of the application, including the 'fabric:' URI scheme.
	ApplicationName *string `json:"ApplicationName,omitempty"`
}

func NewApplicationBackupEntity(applicationName *string) *ApplicationBackupEntity {
	return &ApplicationBackupEntity{ApplicationName: applicationName}
}

func (e ApplicationBackupEntity) EntityKind() BackupEntityKind {
	return BackupEntityKindApplication
}

func (e ApplicationBackupEntity) MarshalJSON() ([]byte, error) {
	type alias ApplicationBackupEntity
	return marshalKinded("EntityKind", string(e.EntityKind()), alias(e))
}

// ServiceBackupEntity identifies the Service Fabric stateful service which is being backed up.
type ServiceBackupEntity struct {
	// The full name of the service with 'fabric:' URI scheme.
	ServiceName *string `json:"ServiceName,omitempty"`
}

func NewServiceBackupEntity(serviceName *string) *ServiceBackupEntity {
	return &ServiceBackupEntity{ServiceName: serviceName}
}

func (e ServiceBackupEntity) EntityKind() BackupEntityKind {
	return BackupEntityKindService
}

func (e ServiceBackupEntity) MarshalJSON() ([]byte, error) {
	type alias ServiceBackupEntity
	return marshalKinded("EntityKind", string(e.EntityKind()), alias(e))
}

// PartitionBackupEntity identifies the Service Fabric stateful partition which is being backed up.
type PartitionBackupEntity struct {
	// The full name of the service with 'fabric:' URI scheme.
	ServiceName *string `json:"ServiceName,omitempty"`

	// The partition ID identifying the partition.
	PartitionId *uuid.UUID `json:"PartitionId,omitempty"`
}

func NewPartitionBackupEntity(serviceName *string, partitionId *uuid.UUID) *PartitionBackupEntity {
	return &PartitionBackupEntity{ServiceName: serviceName, PartitionId: partitionId}
}

func (e PartitionBackupEntity) EntityKind() BackupEntityKind {
	return BackupEntityKindPartition
}

func (e PartitionBackupEntity) MarshalJSON() ([]byte, error) {
	type alias PartitionBackupEntity
	return marshalKinded("EntityKind", string(e.EntityKind()), alias(e))
}

var backupEntityFamily = family[BackupEntity]{
	name:          "BackupEntity",
	discriminator: "EntityKind",
	variants: map[string]func() BackupEntity{
		string(BackupEntityKindApplication): func() BackupEntity { return &ApplicationBackupEntity{} },
		string(BackupEntityKindService):     func() BackupEntity { return &ServiceBackupEntity{} },
		string(BackupEntityKindPartition):   func() BackupEntity { return &PartitionBackupEntity{} },
	},
}

// UnmarshalBackupEntity decodes a backup entity payload into its concrete variant.
func UnmarshalBackupEntity(data []byte) (BackupEntity, error) {
	return backupEntityFamily.decode(data)
}

// BackupSuspensionInfo describes the backup suspension details.
type BackupSuspensionInfo struct {
	// Indicates whether periodic backup is suspended at this level or not.
	IsSuspended *bool `json:"IsSuspended,omitempty"`

	// Specifies the scope at which the backup suspension was applied.
	SuspensionInheritedFrom *BackupSuspensionScope `json:"SuspensionInheritedFrom,omitempty"`
}

// BackupConfigurationInfo describes the backup configuration information of an entity.
type BackupConfigurationInfo interface {
	ConfigurationKind() BackupEntityKind
	GetPolicyName() *string
}

// BackupConfigurationInfoBase holds the fields shared by the backup configuration variants.
type BackupConfigurationInfoBase struct {
	// The name of the backup policy which is applicable to this Service Fabric application or service
	// or partition.
	PolicyName *string `json:"PolicyName,omitempty"`

	// Specifies the scope at which the backup policy is applied.
	PolicyInheritedFrom *BackupPolicyScope `json:"PolicyInheritedFrom,omitempty"`

	// Describes the backup suspension details.
	SuspensionInfo *BackupSuspensionInfo `json:"SuspensionInfo,omitempty"`
}

func (b BackupConfigurationInfoBase) GetPolicyName() *string {
	return b.PolicyName
}

// ApplicationBackupConfigurationInfo is the backup configuration information for a specific Service
// Fabric application specifying what backup policy is being applied and suspend description, if any.
type ApplicationBackupConfigurationInfo struct {
	BackupConfigurationInfoBase

	// The name of the application, including the 'fabric:' URI scheme.
	ApplicationName *string `json:"ApplicationName,omitempty"`
}

func (i ApplicationBackupConfigurationInfo) ConfigurationKind() BackupEntityKind {
	return BackupEntityKindApplication
}

func (i ApplicationBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias ApplicationBackupConfigurationInfo
	return marshalKinded("Kind", string(i.ConfigurationKind()), alias(i))
}

// ServiceBackupConfigurationInfo is the backup configuration information for a specific Service
// Fabric service specifying what backup policy is being applied and suspend description, if any.
type ServiceBackupConfigurationInfo struct {
	BackupConfigurationInfoBase

	// The full name of the service with 'fabric:' URI scheme.
	ServiceName *string `json:"ServiceName,omitempty"`
}

func (i ServiceBackupConfigurationInfo) ConfigurationKind() BackupEntityKind {
	return BackupEntityKindService
}

func (i ServiceBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias ServiceBackupConfigurationInfo
	return marshalKinded("Kind", string(i.ConfigurationKind()), alias(i))
}

// PartitionBackupConfigurationInfo is the backup configuration information, for a specific partition,
// specifying what backup policy is being applied and suspend description, if any.
type PartitionBackupConfigurationInfo struct {
	BackupConfigurationInfoBase

	// The full name of the service with 'fabric:' URI scheme.
	ServiceName *string `json:"ServiceName,omitempty"`

	// The partition ID identifying the partition.
	PartitionId *uuid.UUID `json:"PartitionId,omitempty"`
}

func (i PartitionBackupConfigurationInfo) ConfigurationKind() BackupEntityKind {
	return BackupEntityKindPartition
}

func (i PartitionBackupConfigurationInfo) MarshalJSON() ([]byte, error) {
	type alias PartitionBackupConfigurationInfo
	return marshalKinded("Kind", string(i.ConfigurationKind()), alias(i))
}

var backupConfigurationInfoFamily = family[BackupConfigurationInfo]{
	name:          "BackupConfigurationInfo",
	discriminator: "Kind",
	variants: map[string]func() BackupConfigurationInfo{
		string(BackupEntityKindApplication): func() BackupConfigurationInfo { return &ApplicationBackupConfigurationInfo{} },
		string(BackupEntityKindService):     func() BackupConfigurationInfo { return &ServiceBackupConfigurationInfo{} },
		string(BackupEntityKindPartition):   func() BackupConfigurationInfo { return &PartitionBackupConfigurationInfo{} },
	},
}

// UnmarshalBackupConfigurationInfo decodes a backup configuration payload into its concrete variant.
func UnmarshalBackupConfigurationInfo(data []byte) (BackupConfigurationInfo, error) {
	return backupConfigurationInfoFamily.decode(data)
}

// PagedBackupConfigurationInfoList is the list of backup configuration information for the entities
// below an application or service.
type PagedBackupConfigurationInfoList struct {
	ContinuationToken string                    `json:"ContinuationToken,omitempty"`
	Items             []BackupConfigurationInfo `json:"Items"`
}

func (l *PagedBackupConfigurationInfoList) UnmarshalJSON(data []byte) error {
	page, err := decodePagedList(data, backupConfigurationInfoFamily)
	if err != nil {
		return err
	}

	l.ContinuationToken = page.ContinuationToken
	l.Items = page.Items

	return nil
}

func (l PagedBackupConfigurationInfoList) HasMore() bool {
	return l.ContinuationToken != ""
}
