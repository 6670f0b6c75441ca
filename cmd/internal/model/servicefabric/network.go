package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// NetworkResourceProperties describes properties of a network resource.
type NetworkResourceProperties interface {
	NetworkKind() NetworkKind
	GetStatus() *ResourceStatus
}

// LocalNetworkResourceProperties is information about a Service Fabric container network local to a
// single Service Fabric cluster.
type LocalNetworkResourceProperties struct {
	// User readable description of the network.
	Description *string `json:"description,omitempty"`

	// Status of the network.
	Status *ResourceStatus `json:"status,omitempty"`

	// Gives additional information about the current status of the network.
	StatusDetails *string `json:"statusDetails,omitempty"`

	// Address space for the local container network.
	NetworkAddressPrefix *string `json:"networkAddressPrefix,omitempty"`
}

func NewLocalNetworkResourceProperties(description *string, networkAddressPrefix *string) *LocalNetworkResourceProperties {
	return &LocalNetworkResourceProperties{Description: description, NetworkAddressPrefix: networkAddressPrefix}
}

func (p LocalNetworkResourceProperties) NetworkKind() NetworkKind {
	return NetworkKindLocal
}

func (p LocalNetworkResourceProperties) GetStatus() *ResourceStatus {
	return p.Status
}

// SetStatus records the status reported by the cluster. It is the only field patched after
// construction.
func (p *LocalNetworkResourceProperties) SetStatus(status ResourceStatus, statusDetails *string) {
	p.Status = &status
	p.StatusDetails = statusDetails
}

func (p LocalNetworkResourceProperties) MarshalJSON() ([]byte, error) {
	type alias LocalNetworkResourceProperties
	return marshalKinded("kind", string(p.NetworkKind()), alias(p))
}

var networkResourcePropertiesFamily = family[NetworkResourceProperties]{
	name:          "NetworkResourceProperties",
	discriminator: "kind",
	variants: map[string]func() NetworkResourceProperties{
		string(NetworkKindLocal): func() NetworkResourceProperties { return &LocalNetworkResourceProperties{} },
	},
}

// UnmarshalNetworkResourceProperties decodes a network properties payload into its concrete variant.
func UnmarshalNetworkResourceProperties(data []byte) (NetworkResourceProperties, error) {
	return networkResourcePropertiesFamily.decode(data)
}

// NetworkResourceDescription describes a network resource.
type NetworkResourceDescription struct {
	// Name of the Network resource.
	Name string `json:"name"`

	// Describes properties of a network resource.
	Properties NetworkResourceProperties `json:"properties"`
}

func NewNetworkResourceDescription(name string, properties NetworkResourceProperties) (*NetworkResourceDescription, error) {
	err := validation.First(
		validation.RequiredString("name", name),
		validation.Required("properties", properties))

	if err != nil {
		return nil, err
	}

	return &NetworkResourceDescription{Name: name, Properties: properties}, nil
}

func (d *NetworkResourceDescription) UnmarshalJSON(data []byte) error {
	type alias NetworkResourceDescription
	aux := struct {
		*alias
		Properties json.RawMessage `json:"properties"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	properties, err := UnmarshalNetworkResourceProperties(aux.Properties)
	if err != nil {
		return err
	}

	d.Properties = properties

	return nil
}
