package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// BackupStorageDescription describes the parameters for the backup storage.
type BackupStorageDescription interface {
	StorageKind() BackupStorageKind
	GetFriendlyName() *string
	Validate() error
}

// BackupStorageDescriptionBase holds the fields shared by every backup storage variant.
type BackupStorageDescriptionBase struct {
	// Friendly name for this backup storage.
	FriendlyName *string `json:"FriendlyName,omitempty"`
}

func (b BackupStorageDescriptionBase) GetFriendlyName() *string {
	return b.FriendlyName
}

// AzureBlobBackupStorageDescription describes the parameters for Azure blob store used for storing
// and enumerating backups.
type AzureBlobBackupStorageDescription struct {
	BackupStorageDescriptionBase

	// The connection string to connect to the Azure blob store.
	ConnectionString string `json:"ConnectionString"`

	// The name of the container in the blob store to store and enumerate backups from.
	ContainerName string `json:"ContainerName"`
}

func NewAzureBlobBackupStorageDescription(connectionString string, containerName string, friendlyName *string) (*AzureBlobBackupStorageDescription, error) {
	description := AzureBlobBackupStorageDescription{
		BackupStorageDescriptionBase: BackupStorageDescriptionBase{FriendlyName: friendlyName},
		ConnectionString:             connectionString,
		ContainerName:                containerName,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d AzureBlobBackupStorageDescription) StorageKind() BackupStorageKind {
	return BackupStorageKindAzureBlobStore
}

func (d AzureBlobBackupStorageDescription) Validate() error {
	return validation.First(
		validation.RequiredString("connectionString", d.ConnectionString),
		validation.RequiredString("containerName", d.ContainerName))
}

func (d AzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias AzureBlobBackupStorageDescription
	return marshalKinded("StorageKind", string(d.StorageKind()), alias(d))
}

// FileShareBackupStorageDescription describes the parameters for file share storage used for storing
// or enumerating backups.
type FileShareBackupStorageDescription struct {
	BackupStorageDescriptionBase

	// UNC path of the file share where to store or enumerate backups from.
	Path string `json:"Path"`

	// Primary user name to access the file share.
	PrimaryUserName *string `json:"PrimaryUserName,omitempty"`

	// Primary password to access the share location.
	PrimaryPassword *string `json:"PrimaryPassword,omitempty"`

	// Secondary user name to access the file share.
	SecondaryUserName *string `json:"SecondaryUserName,omitempty"`

	// Secondary password to access the share location.
	SecondaryPassword *string `json:"SecondaryPassword,omitempty"`
}

func NewFileShareBackupStorageDescription(
	path string,
	friendlyName *string,
	primaryUserName *string,
	primaryPassword *string,
	secondaryUserName *string,
	secondaryPassword *string) (*FileShareBackupStorageDescription, error) {
	description := FileShareBackupStorageDescription{
		BackupStorageDescriptionBase: BackupStorageDescriptionBase{FriendlyName: friendlyName},
		Path:                         path,
		PrimaryUserName:              primaryUserName,
		PrimaryPassword:              primaryPassword,
		SecondaryUserName:            secondaryUserName,
		SecondaryPassword:            secondaryPassword,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d FileShareBackupStorageDescription) StorageKind() BackupStorageKind {
	return BackupStorageKindFileShare
}

func (d FileShareBackupStorageDescription) Validate() error {
	return validation.RequiredString("path", d.Path)
}

func (d FileShareBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias FileShareBackupStorageDescription
	return marshalKinded("StorageKind", string(d.StorageKind()), alias(d))
}

// DsmsAzureBlobBackupStorageDescription describes the parameters for Dsms Azure blob store used for
// storing and enumerating backups.
type DsmsAzureBlobBackupStorageDescription struct {
	BackupStorageDescriptionBase

	// The source location of the storage credentials to connect to the Dsms Azure blob store.
	StorageCredentialsSourceLocation string `json:"StorageCredentialsSourceLocation"`

	// The name of the container in the blob store to store and enumerate backups from.
	ContainerName string `json:"ContainerName"`
}

func NewDsmsAzureBlobBackupStorageDescription(storageCredentialsSourceLocation string, containerName string, friendlyName *string) (*DsmsAzureBlobBackupStorageDescription, error) {
	description := DsmsAzureBlobBackupStorageDescription{
		BackupStorageDescriptionBase:     BackupStorageDescriptionBase{FriendlyName: friendlyName},
		StorageCredentialsSourceLocation: storageCredentialsSourceLocation,
		ContainerName:                    containerName,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d DsmsAzureBlobBackupStorageDescription) StorageKind() BackupStorageKind {
	return BackupStorageKindDsmsAzureBlobStore
}

func (d DsmsAzureBlobBackupStorageDescription) Validate() error {
	return validation.First(
		validation.RequiredString("storageCredentialsSourceLocation", d.StorageCredentialsSourceLocation),
		validation.RequiredString("containerName", d.ContainerName))
}

func (d DsmsAzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias DsmsAzureBlobBackupStorageDescription
	return marshalKinded("StorageKind", string(d.StorageKind()), alias(d))
}

// ManagedIdentityAzureBlobBackupStorageDescription describes the parameters for Azure blob store
// (connected using managed identity) used for storing and enumerating backups.
type ManagedIdentityAzureBlobBackupStorageDescription struct {
	BackupStorageDescriptionBase

	// The type of managed identity to be used to connect to Azure Blob Store via Managed Identity.
	ManagedIdentityType ManagedIdentityType `json:"ManagedIdentityType"`

	// The Blob Service Uri to connect to the Azure blob store.
	BlobServiceUri string `json:"BlobServiceUri"`

	// The name of the container in the blob store to store and enumerate backups from.
	ContainerName string `json:"ContainerName"`
}

func NewManagedIdentityAzureBlobBackupStorageDescription(
	managedIdentityType ManagedIdentityType,
	blobServiceUri string,
	containerName string,
	friendlyName *string) (*ManagedIdentityAzureBlobBackupStorageDescription, error) {
	description := ManagedIdentityAzureBlobBackupStorageDescription{
		BackupStorageDescriptionBase: BackupStorageDescriptionBase{FriendlyName: friendlyName},
		ManagedIdentityType:          managedIdentityType,
		BlobServiceUri:               blobServiceUri,
		ContainerName:                containerName,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d ManagedIdentityAzureBlobBackupStorageDescription) StorageKind() BackupStorageKind {
	return BackupStorageKindManagedIdentityAzureBlobStore
}

func (d ManagedIdentityAzureBlobBackupStorageDescription) Validate() error {
	return validation.First(
		validation.RequiredString("managedIdentityType", string(d.ManagedIdentityType)),
		validation.RequiredString("blobServiceUri", d.BlobServiceUri),
		validation.RequiredString("containerName", d.ContainerName))
}

func (d ManagedIdentityAzureBlobBackupStorageDescription) MarshalJSON() ([]byte, error) {
	type alias ManagedIdentityAzureBlobBackupStorageDescription
	return marshalKinded("StorageKind", string(d.StorageKind()), alias(d))
}

var backupStorageFamily = family[BackupStorageDescription]{
	name:          "BackupStorageDescription",
	discriminator: "StorageKind",
	variants: map[string]func() BackupStorageDescription{
		string(BackupStorageKindAzureBlobStore): func() BackupStorageDescription { return &AzureBlobBackupStorageDescription{} },
		string(BackupStorageKindFileShare):      func() BackupStorageDescription { return &FileShareBackupStorageDescription{} },
		string(BackupStorageKindDsmsAzureBlobStore): func() BackupStorageDescription {
			return &DsmsAzureBlobBackupStorageDescription{}
		},
		string(BackupStorageKindManagedIdentityAzureBlobStore): func() BackupStorageDescription {
			return &ManagedIdentityAzureBlobBackupStorageDescription{}
		},
	},
}

// UnmarshalBackupStorageDescription decodes a backup storage payload into its concrete variant.
func UnmarshalBackupStorageDescription(data []byte) (BackupStorageDescription, error) {
	return backupStorageFamily.decode(data)
}
