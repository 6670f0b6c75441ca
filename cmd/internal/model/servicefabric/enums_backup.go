package servicefabric

// BackupStorageKind - The kind of backup storage, where backups are saved.
type BackupStorageKind string

const (
	// BackupStorageKindInvalid - Indicates an invalid backup storage kind. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupStorageKindInvalid BackupStorageKind = "Invalid"
	// BackupStorageKindFileShare - Indicates file/ SMB share to be used as backup storage. The value is 1.
	BackupStorageKindFileShare BackupStorageKind = "FileShare"
	// BackupStorageKindAzureBlobStore - Indicates Azure blob store to be used as backup storage. The value is 2.
	BackupStorageKindAzureBlobStore BackupStorageKind = "AzureBlobStore"
	// BackupStorageKindDsmsAzureBlobStore - Indicates Dsms Azure blob store to be used as backup storage. The value is 3.
	BackupStorageKindDsmsAzureBlobStore BackupStorageKind = "DsmsAzureBlobStore"
	// BackupStorageKindManagedIdentityAzureBlobStore - Indicates Azure blob store to be used as backup storage using managed identity. The value is 4.
	BackupStorageKindManagedIdentityAzureBlobStore BackupStorageKind = "ManagedIdentityAzureBlobStore"
)

// PossibleBackupStorageKindValues returns the possible values for the BackupStorageKind const type.
func PossibleBackupStorageKindValues() []BackupStorageKind {
	return []BackupStorageKind{
		BackupStorageKindInvalid,
		BackupStorageKindFileShare,
		BackupStorageKindAzureBlobStore,
		BackupStorageKindDsmsAzureBlobStore,
		BackupStorageKindManagedIdentityAzureBlobStore,
	}
}

// BackupScheduleKind - The kind of backup schedule, time based or frequency based.
type BackupScheduleKind string

const (
	// BackupScheduleKindInvalid - Indicates an invalid backup schedule kind. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupScheduleKindInvalid BackupScheduleKind = "Invalid"
	// BackupScheduleKindTimeBased - Indicates a time-based backup schedule. The value is 1.
	BackupScheduleKindTimeBased BackupScheduleKind = "TimeBased"
	// BackupScheduleKindFrequencyBased - Indicates a frequency-based backup schedule. The value is 2.
	BackupScheduleKindFrequencyBased BackupScheduleKind = "FrequencyBased"
)

// PossibleBackupScheduleKindValues returns the possible values for the BackupScheduleKind const type.
func PossibleBackupScheduleKindValues() []BackupScheduleKind {
	return []BackupScheduleKind{
		BackupScheduleKindInvalid,
		BackupScheduleKindTimeBased,
		BackupScheduleKindFrequencyBased,
	}
}

// BackupScheduleFrequencyType - Describes the frequency with which to run the time based backup schedule.
type BackupScheduleFrequencyType string

const (
	// BackupScheduleFrequencyTypeInvalid - Indicates an invalid backup schedule frequency type. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupScheduleFrequencyTypeInvalid BackupScheduleFrequencyType = "Invalid"
	// BackupScheduleFrequencyTypeDaily - Indicates that the time based backup schedule is repeated at a daily frequency. The value is 1.
	BackupScheduleFrequencyTypeDaily BackupScheduleFrequencyType = "Daily"
	// BackupScheduleFrequencyTypeWeekly - Indicates that the time based backup schedule is repeated at a weekly frequency. The value is 2.
	BackupScheduleFrequencyTypeWeekly BackupScheduleFrequencyType = "Weekly"
)

// PossibleBackupScheduleFrequencyTypeValues returns the possible values for the BackupScheduleFrequencyType const type.
func PossibleBackupScheduleFrequencyTypeValues() []BackupScheduleFrequencyType {
	return []BackupScheduleFrequencyType{
		BackupScheduleFrequencyTypeInvalid,
		BackupScheduleFrequencyTypeDaily,
		BackupScheduleFrequencyTypeWeekly,
	}
}

// DayOfWeek - Describes the days in a week.
type DayOfWeek string

const (
	// DayOfWeekSunday - Indicates the Day referred is Sunday. The value is 0.
	DayOfWeekSunday DayOfWeek = "Sunday"
	// DayOfWeekMonday - Indicates the Day referred is Monday. The value is 1.
	DayOfWeekMonday DayOfWeek = "Monday"
	// DayOfWeekTuesday - Indicates the Day referred is Tuesday. The value is 2.
	DayOfWeekTuesday DayOfWeek = "Tuesday"
	// DayOfWeekWednesday - Indicates the Day referred is Wednesday. The value is 3.
	DayOfWeekWednesday DayOfWeek = "Wednesday"
	// DayOfWeekThursday - Indicates the Day referred is Thursday. The value is 4.
	DayOfWeekThursday DayOfWeek = "Thursday"
	// DayOfWeekFriday - Indicates the Day referred is Friday. The value is 5.
	DayOfWeekFriday DayOfWeek = "Friday"
	// DayOfWeekSaturday - Indicates the Day referred is Saturday. The value is 6.
	DayOfWeekSaturday DayOfWeek = "Saturday"
)

// PossibleDayOfWeekValues returns the possible values for the DayOfWeek const type.
func PossibleDayOfWeekValues() []DayOfWeek {
	return []DayOfWeek{
		DayOfWeekSunday,
		DayOfWeekMonday,
		DayOfWeekTuesday,
		DayOfWeekWednesday,
		DayOfWeekThursday,
		DayOfWeekFriday,
		DayOfWeekSaturday,
	}
}

// BackupState - Represents the current state of the partition backup operation.
type BackupState string

const (
	// BackupStateInvalid - Indicates an invalid backup state. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupStateInvalid BackupState = "Invalid"
	// BackupStateAccepted - Operation has been validated and accepted. Backup is yet to be triggered. The value is 1.
	BackupStateAccepted BackupState = "Accepted"
	// BackupStateBackupInProgress - Backup operation has been triggered and is under process. The value is 2.
	BackupStateBackupInProgress BackupState = "BackupInProgress"
	// BackupStateSuccess - Operation completed with success. The value is 3.
	BackupStateSuccess BackupState = "Success"
	// BackupStateFailure - Operation completed with failure. The value is 4.
	BackupStateFailure BackupState = "Failure"
	// BackupStateTimeout - Operation timed out. The value is 5.
	BackupStateTimeout BackupState = "Timeout"
)

// PossibleBackupStateValues returns the possible values for the BackupState const type.
func PossibleBackupStateValues() []BackupState {
	return []BackupState{
		BackupStateInvalid,
		BackupStateAccepted,
		BackupStateBackupInProgress,
		BackupStateSuccess,
		BackupStateFailure,
		BackupStateTimeout,
	}
}

// BackupEntityKind - The entity type of a Service Fabric entity such as Application, Service or a Partition where periodic backups can be enabled.
type BackupEntityKind string

const (
	// BackupEntityKindInvalid - Indicates an invalid entity kind. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupEntityKindInvalid BackupEntityKind = "Invalid"
	// BackupEntityKindPartition - Indicates the entity is a Service Fabric partition. The value is 1.
	BackupEntityKindPartition BackupEntityKind = "Partition"
	// BackupEntityKindService - Indicates the entity is a Service Fabric service. The value is 2.
	BackupEntityKindService BackupEntityKind = "Service"
	// BackupEntityKindApplication - Indicates the entity is a Service Fabric application. The value is 3.
	BackupEntityKindApplication BackupEntityKind = "Application"
)

// PossibleBackupEntityKindValues returns the possible values for the BackupEntityKind const type.
func PossibleBackupEntityKindValues() []BackupEntityKind {
	return []BackupEntityKind{
		BackupEntityKindInvalid,
		BackupEntityKindPartition,
		BackupEntityKindService,
		BackupEntityKindApplication,
	}
}

// BackupPolicyScope - Specifies the scope at which the backup policy is applied.
type BackupPolicyScope string

const (
	// BackupPolicyScopeInvalid - Indicates an invalid backup policy scope type. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupPolicyScopeInvalid BackupPolicyScope = "Invalid"
	// BackupPolicyScopePartition - Indicates the backup policy is applied at partition level. Hence overriding any policy which may have applied at partition's service or application level. The value is 1.
	BackupPolicyScopePartition BackupPolicyScope = "Partition"
	// BackupPolicyScopeService - Indicates the backup policy is applied at service level. All partitions of the service inherit this policy unless explicitly overridden at partition level. The value is 2.
	BackupPolicyScopeService BackupPolicyScope = "Service"
	// BackupPolicyScopeApplication - Indicates the backup policy is applied at application level. All services and partitions of the application inherit this policy unless explicitly overridden at service or partition level. The value is 3.
	BackupPolicyScopeApplication BackupPolicyScope = "Application"
)

// PossibleBackupPolicyScopeValues returns the possible values for the BackupPolicyScope const type.
func PossibleBackupPolicyScopeValues() []BackupPolicyScope {
	return []BackupPolicyScope{
		BackupPolicyScopeInvalid,
		BackupPolicyScopePartition,
		BackupPolicyScopeService,
		BackupPolicyScopeApplication,
	}
}

// BackupSuspensionScope - Specifies the scope at which the backup suspension was applied.
type BackupSuspensionScope string

const (
	// BackupSuspensionScopeInvalid - Indicates an invalid backup suspension scope type also indicating entity is not suspended. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupSuspensionScopeInvalid BackupSuspensionScope = "Invalid"
	// BackupSuspensionScopePartition - Indicates the backup suspension is applied at partition level. The value is 1.
	BackupSuspensionScopePartition BackupSuspensionScope = "Partition"
	// BackupSuspensionScopeService - Indicates the backup suspension is applied at service level. All partitions of the service are hence suspended for backup. The value is 2.
	BackupSuspensionScopeService BackupSuspensionScope = "Service"
	// BackupSuspensionScopeApplication - Indicates the backup suspension is applied at application level. All services and partitions of the application are hence suspended for backup. The value is 3.
	BackupSuspensionScopeApplication BackupSuspensionScope = "Application"
)

// PossibleBackupSuspensionScopeValues returns the possible values for the BackupSuspensionScope const type.
func PossibleBackupSuspensionScopeValues() []BackupSuspensionScope {
	return []BackupSuspensionScope{
		BackupSuspensionScopeInvalid,
		BackupSuspensionScopePartition,
		BackupSuspensionScopeService,
		BackupSuspensionScopeApplication,
	}
}

// RetentionPolicyType - The type of retention policy. Currently only "Basic" retention policy is supported.
type RetentionPolicyType string

const (
	// RetentionPolicyTypeBasic - Indicates a basic retention policy type. The value is 0.
	RetentionPolicyTypeBasic RetentionPolicyType = "Basic"
	// RetentionPolicyTypeInvalid - Indicates an invalid retention policy type. The value is 1.
	RetentionPolicyTypeInvalid RetentionPolicyType = "Invalid"
)

// PossibleRetentionPolicyTypeValues returns the possible values for the RetentionPolicyType const type.
func PossibleRetentionPolicyTypeValues() []RetentionPolicyType {
	return []RetentionPolicyType{
		RetentionPolicyTypeBasic,
		RetentionPolicyTypeInvalid,
	}
}

// BackupType - Describes the type of backup, whether its full or incremental.
type BackupType string

const (
	// BackupTypeInvalid - Indicates an invalid backup type. All Service Fabric enumerations have the invalid type. The value is 0.
	BackupTypeInvalid BackupType = "Invalid"
	// BackupTypeFull - Indicates a full backup. The value is 1.
	BackupTypeFull BackupType = "Full"
	// BackupTypeIncremental - Indicates an incremental backup. A backup chain is comprised of a full backup followed by 0 or more incremental backups. The value is 2.
	BackupTypeIncremental BackupType = "Incremental"
)

// PossibleBackupTypeValues returns the possible values for the BackupType const type.
func PossibleBackupTypeValues() []BackupType {
	return []BackupType{
		BackupTypeInvalid,
		BackupTypeFull,
		BackupTypeIncremental,
	}
}

// ManagedIdentityType - The type of managed identity to be used to connect to Azure Blob Store via Managed Identity.
type ManagedIdentityType string

const (
	// ManagedIdentityTypeInvalid - Indicates an invalid managed identity type. All Service Fabric enumerations have the invalid type. The value is 0.
	ManagedIdentityTypeInvalid ManagedIdentityType = "Invalid"
	// ManagedIdentityTypeVMSS - Indicates VMSS managed identity should be used to connect to Azure blob store. The value is 1.
	ManagedIdentityTypeVMSS ManagedIdentityType = "VMSS"
	// ManagedIdentityTypeCluster - Indicates cluster managed identity should be used to connect to Azure blob store. The value is 2.
	ManagedIdentityTypeCluster ManagedIdentityType = "Cluster"
)

// PossibleManagedIdentityTypeValues returns the possible values for the ManagedIdentityType const type.
func PossibleManagedIdentityTypeValues() []ManagedIdentityType {
	return []ManagedIdentityType{
		ManagedIdentityTypeInvalid,
		ManagedIdentityTypeVMSS,
		ManagedIdentityTypeCluster,
	}
}
