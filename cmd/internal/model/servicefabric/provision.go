package servicefabric

import "github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"

// ProvisionApplicationTypeDescription represents the type of registration or provision requested, and
// if the operation needs to be asynchronous or not. Supported types of provision operations are from
// either image store or external store.
type ProvisionApplicationTypeDescription interface {
	ProvisionApplicationTypeKind() ProvisionApplicationTypeKind
	IsAsync() bool
	Validate() error
}

// ProvisionApplicationTypeBase holds the flag shared by the provision kinds.
type ProvisionApplicationTypeBase struct {
	// Indicates whether or not provisioning should occur asynchronously. When set to true, the
	// provision operation returns when the request is accepted by the system, and the provision
	// operation continues without any timeout limit. The default value is false.
	Async bool `json:"Async"`
}

func (p ProvisionApplicationTypeBase) IsAsync() bool {
	return p.Async
}

// ImageStorePathProvisionDescription describes the operation to register or provision an application
// type using an application package uploaded to the Service Fabric image store.
type ImageStorePathProvisionDescription struct {
	ProvisionApplicationTypeBase

	// The relative path for the application package in the image store specified during the prior
	// upload operation.
	ApplicationTypeBuildPath string `json:"ApplicationTypeBuildPath"`

	// The kind of action that needs to be taken for cleaning up the application package after
	// successful provision.
	ApplicationPackageCleanupPolicy *ApplicationPackageCleanupPolicy `json:"ApplicationPackageCleanupPolicy,omitempty"`
}

func NewImageStorePathProvisionDescription(async bool, applicationTypeBuildPath string, cleanupPolicy *ApplicationPackageCleanupPolicy) (*ImageStorePathProvisionDescription, error) {
	description := ImageStorePathProvisionDescription{
		ProvisionApplicationTypeBase:    ProvisionApplicationTypeBase{Async: async},
		ApplicationTypeBuildPath:        applicationTypeBuildPath,
		ApplicationPackageCleanupPolicy: cleanupPolicy,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d ImageStorePathProvisionDescription) Validate() error {
	return validation.RequiredString("applicationTypeBuildPath", d.ApplicationTypeBuildPath)
}

func (d ImageStorePathProvisionDescription) ProvisionApplicationTypeKind() ProvisionApplicationTypeKind {
	return ProvisionApplicationTypeKindImageStorePath
}

func (d ImageStorePathProvisionDescription) MarshalJSON() ([]byte, error) {
	type alias ImageStorePathProvisionDescription
	return marshalKinded("Kind", string(d.ProvisionApplicationTypeKind()), alias(d))
}

// ExternalStoreProvisionApplicationTypeDescription describes the operation to register or provision
// an application type using an application package from an external store instead of a package
// uploaded to the Service Fabric image store.
type ExternalStoreProvisionApplicationTypeDescription struct {
	ProvisionApplicationTypeBase

	// The path to the '.sfpkg' application package from where the application package can be
	// downloaded using HTTP or HTTPS protocols.
	ApplicationPackageDownloadUri string `json:"ApplicationPackageDownloadUri"`

	// The application type name represents the name of the application type found in the application
	// manifest.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// The application type version represents the version of the application type found in the
	// application manifest.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`
}

func NewExternalStoreProvisionApplicationTypeDescription(async bool, downloadUri string, typeName string, typeVersion string) (*ExternalStoreProvisionApplicationTypeDescription, error) {
	description := ExternalStoreProvisionApplicationTypeDescription{
		ProvisionApplicationTypeBase:  ProvisionApplicationTypeBase{Async: async},
		ApplicationPackageDownloadUri: downloadUri,
		ApplicationTypeName:           typeName,
		ApplicationTypeVersion:        typeVersion,
	}

	if err := description.Validate(); err != nil {
		return nil, err
	}

	return &description, nil
}

func (d ExternalStoreProvisionApplicationTypeDescription) Validate() error {
	return validation.First(
		validation.RequiredString("applicationPackageDownloadUri", d.ApplicationPackageDownloadUri),
		validation.RequiredString("applicationTypeName", d.ApplicationTypeName),
		validation.RequiredString("applicationTypeVersion", d.ApplicationTypeVersion))
}

func (d ExternalStoreProvisionApplicationTypeDescription) ProvisionApplicationTypeKind() ProvisionApplicationTypeKind {
	return ProvisionApplicationTypeKindExternalStore
}

func (d ExternalStoreProvisionApplicationTypeDescription) MarshalJSON() ([]byte, error) {
	type alias ExternalStoreProvisionApplicationTypeDescription
	return marshalKinded("Kind", string(d.ProvisionApplicationTypeKind()), alias(d))
}

var provisionApplicationTypeFamily = family[ProvisionApplicationTypeDescription]{
	name:          "ProvisionApplicationTypeDescription",
	discriminator: "Kind",
	variants: map[string]func() ProvisionApplicationTypeDescription{
		string(ProvisionApplicationTypeKindImageStorePath): func() ProvisionApplicationTypeDescription {
			return &ImageStorePathProvisionDescription{}
		},
		string(ProvisionApplicationTypeKindExternalStore): func() ProvisionApplicationTypeDescription {
			return &ExternalStoreProvisionApplicationTypeDescription{}
		},
	},
}

// UnmarshalProvisionApplicationTypeDescription decodes a provision request into its concrete variant.
func UnmarshalProvisionApplicationTypeDescription(data []byte) (ProvisionApplicationTypeDescription, error) {
	return provisionApplicationTypeFamily.decode(data)
}
