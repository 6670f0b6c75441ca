package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// SecretResourceProperties describes the properties of a secret resource.
type SecretResourceProperties interface {
	SecretKind() SecretKind
	GetStatus() *ResourceStatus
}

// SecretResourcePropertiesBase holds the properties shared by the secret kinds.
type SecretResourcePropertiesBase struct {
	// User readable description of the secret.
	Description *string `json:"description,omitempty"`

	// Status of the resource.
	Status *ResourceStatus `json:"status,omitempty"`

	// Gives additional information about the current status of the secret.
	StatusDetails *string `json:"statusDetails,omitempty"`

	// The type of the content stored in the secret value. The value of this property is opaque to
	// Service Fabric. Once set, the value of this property cannot be changed.
	ContentType *string `json:"contentType,omitempty"`
}

func (p SecretResourcePropertiesBase) GetStatus() *ResourceStatus {
	return p.Status
}

// InlinedValueSecretResourceProperties describes the properties of a secret resource whose value is
// provided explicitly as plaintext. The secret resource may have multiple values, each being uniquely
// versioned. The secret value of each version is stored encrypted, and delivered as plaintext into the
// context of applications referencing it.
type InlinedValueSecretResourceProperties struct {
	SecretResourcePropertiesBase
}

func NewInlinedValueSecretResourceProperties(description *string, contentType *string) *InlinedValueSecretResourceProperties {
	return &InlinedValueSecretResourceProperties{SecretResourcePropertiesBase{Description: description, ContentType: contentType}}
}

func (p InlinedValueSecretResourceProperties) SecretKind() SecretKind {
	return SecretKindInlinedValue
}

func (p InlinedValueSecretResourceProperties) MarshalJSON() ([]byte, error) {
	type alias InlinedValueSecretResourceProperties
	return marshalKinded("kind", string(p.SecretKind()), alias(p))
}

// KeyVaultVersionedReferenceSecretResourceProperties describes the properties of a secret resource
// whose value is a reference to a versioned Azure Key Vault secret.
type KeyVaultVersionedReferenceSecretResourceProperties struct {
	SecretResourcePropertiesBase
}

func NewKeyVaultVersionedReferenceSecretResourceProperties(description *string, contentType *string) *KeyVaultVersionedReferenceSecretResourceProperties {
	return &KeyVaultVersionedReferenceSecretResourceProperties{SecretResourcePropertiesBase{Description: description, ContentType: contentType}}
}

func (p KeyVaultVersionedReferenceSecretResourceProperties) SecretKind() SecretKind {
	return SecretKindKeyVaultVersionedReference
}

func (p KeyVaultVersionedReferenceSecretResourceProperties) MarshalJSON() ([]byte, error) {
	type alias KeyVaultVersionedReferenceSecretResourceProperties
	return marshalKinded("kind", string(p.SecretKind()), alias(p))
}

var secretResourcePropertiesFamily = family[SecretResourceProperties]{
	name:          "SecretResourceProperties",
	discriminator: "kind",
	variants: map[string]func() SecretResourceProperties{
		string(SecretKindInlinedValue): func() SecretResourceProperties { return &InlinedValueSecretResourceProperties{} },
		string(SecretKindKeyVaultVersionedReference): func() SecretResourceProperties {
			return &KeyVaultVersionedReferenceSecretResourceProperties{}
		},
	},
}

// UnmarshalSecretResourceProperties decodes a secret properties payload into its concrete variant.
func UnmarshalSecretResourceProperties(data []byte) (SecretResourceProperties, error) {
	return secretResourcePropertiesFamily.decode(data)
}

// SecretResourceDescription describes a secret resource.
type SecretResourceDescription struct {
	// Describes the properties of a secret resource.
	Properties SecretResourceProperties `json:"properties"`

	// Name of the Secret resource.
	Name string `json:"name"`
}

func NewSecretResourceDescription(properties SecretResourceProperties, name string) (*SecretResourceDescription, error) {
	err := validation.First(
		validation.Required("properties", properties),
		validation.RequiredString("name", name))

	if err != nil {
		return nil, err
	}

	return &SecretResourceDescription{Properties: properties, Name: name}, nil
}

func (d *SecretResourceDescription) UnmarshalJSON(data []byte) error {
	type alias SecretResourceDescription
	aux := struct {
		*alias
		Properties json.RawMessage `json:"properties"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	properties, err := UnmarshalSecretResourceProperties(aux.Properties)
	if err != nil {
		return err
	}

	d.Properties = properties

	return nil
}

// SecretValue holds the actual value of a secret resource version.
type SecretValue struct {
	// The actual value of the secret.
	Value *string `json:"value,omitempty"`
}
