package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// ScalingMechanismDescription describes the mechanism for performing a scaling operation.
type ScalingMechanismDescription interface {
	ScalingMechanismKind() ScalingMechanismKind
	Validate() error
}

// PartitionInstanceCountScaleMechanism represents a scaling mechanism for adding or removing instances
// of stateless service partition.
type PartitionInstanceCountScaleMechanism struct {
	// Minimum number of instances of the partition.
	MinInstanceCount int32 `json:"MinInstanceCount"`

	// Maximum number of instances of the partition.
	MaxInstanceCount int32 `json:"MaxInstanceCount"`

	// The number of instances to add or remove during a scaling operation.
	ScaleIncrement int32 `json:"ScaleIncrement"`
}

func NewPartitionInstanceCountScaleMechanism(minInstanceCount int32, maxInstanceCount int32, scaleIncrement int32) (*PartitionInstanceCountScaleMechanism, error) {
	mechanism := PartitionInstanceCountScaleMechanism{
		MinInstanceCount: minInstanceCount,
		MaxInstanceCount: maxInstanceCount,
		ScaleIncrement:   scaleIncrement,
	}

	if err := mechanism.Validate(); err != nil {
		return nil, err
	}

	return &mechanism, nil
}

func (m PartitionInstanceCountScaleMechanism) Validate() error {
	return validation.First(
		validation.AtLeast("minInstanceCount", m.MinInstanceCount, 0),
		validation.AtLeast("maxInstanceCount", m.MaxInstanceCount, -1))
}

func (m PartitionInstanceCountScaleMechanism) ScalingMechanismKind() ScalingMechanismKind {
	return ScalingMechanismKindPartitionInstanceCount
}

func (m PartitionInstanceCountScaleMechanism) MarshalJSON() ([]byte, error) {
	type alias PartitionInstanceCountScaleMechanism
	return marshalKinded("Kind", string(m.ScalingMechanismKind()), alias(m))
}

// AddRemoveIncrementalNamedPartitionScalingMechanism represents a scaling mechanism for adding or
// removing named partitions of a stateless service. Partition names are in the format '0','1',...,'N-1'.
type AddRemoveIncrementalNamedPartitionScalingMechanism struct {
	// Minimum number of named partitions of the service.
	MinPartitionCount int32 `json:"MinPartitionCount"`

	// Maximum number of named partitions of the service.
	MaxPartitionCount int32 `json:"MaxPartitionCount"`

	// The number of instances to add or remove during a scaling operation.
	ScaleIncrement int32 `json:"ScaleIncrement"`
}

func NewAddRemoveIncrementalNamedPartitionScalingMechanism(minPartitionCount int32, maxPartitionCount int32, scaleIncrement int32) (*AddRemoveIncrementalNamedPartitionScalingMechanism, error) {
	mechanism := AddRemoveIncrementalNamedPartitionScalingMechanism{
		MinPartitionCount: minPartitionCount,
		MaxPartitionCount: maxPartitionCount,
		ScaleIncrement:    scaleIncrement,
	}

	if err := mechanism.Validate(); err != nil {
		return nil, err
	}

	return &mechanism, nil
}

func (m AddRemoveIncrementalNamedPartitionScalingMechanism) Validate() error {
	return validation.First(
		validation.AtLeast("minPartitionCount", m.MinPartitionCount, 1),
		validation.AtLeast("maxPartitionCount", m.MaxPartitionCount, 1))
}

func (m AddRemoveIncrementalNamedPartitionScalingMechanism) ScalingMechanismKind() ScalingMechanismKind {
	return ScalingMechanismKindAddRemoveIncrementalNamedPartition
}

func (m AddRemoveIncrementalNamedPartitionScalingMechanism) MarshalJSON() ([]byte, error) {
	type alias AddRemoveIncrementalNamedPartitionScalingMechanism
	return marshalKinded("Kind", string(m.ScalingMechanismKind()), alias(m))
}

var scalingMechanismFamily = family[ScalingMechanismDescription]{
	name:          "ScalingMechanismDescription",
	discriminator: "Kind",
	variants: map[string]func() ScalingMechanismDescription{
		string(ScalingMechanismKindPartitionInstanceCount): func() ScalingMechanismDescription {
			return &PartitionInstanceCountScaleMechanism{}
		},
		string(ScalingMechanismKindAddRemoveIncrementalNamedPartition): func() ScalingMechanismDescription {
			return &AddRemoveIncrementalNamedPartitionScalingMechanism{}
		},
	},
}

// UnmarshalScalingMechanismDescription decodes a scaling mechanism payload into its concrete variant.
func UnmarshalScalingMechanismDescription(data []byte) (ScalingMechanismDescription, error) {
	return scalingMechanismFamily.decode(data)
}

// ScalingTriggerDescription describes the trigger for performing a scaling operation.
type ScalingTriggerDescription interface {
	ScalingTriggerKind() ScalingTriggerKind
	Validate() error
}

// LoadScalingTrigger holds the load thresholds shared by the load based triggers.
type LoadScalingTrigger struct {
	// The name of the metric for which usage should be tracked.
	MetricName string `json:"MetricName"`

	// The lower limit of the load below which a scale in operation should be performed.
	LowerLoadThreshold string `json:"LowerLoadThreshold"`

	// The upper limit of the load beyond which a scale out operation should be performed.
	UpperLoadThreshold string `json:"UpperLoadThreshold"`

	// The period in seconds on which a decision is made whether to scale or not.
	ScaleIntervalInSeconds int64 `json:"ScaleIntervalInSeconds"`
}

func (t LoadScalingTrigger) Validate() error {
	return validation.First(
		validation.RequiredString("metricName", t.MetricName),
		validation.RequiredString("lowerLoadThreshold", t.LowerLoadThreshold),
		validation.RequiredString("upperLoadThreshold", t.UpperLoadThreshold),
		validation.InRange("scaleIntervalInSeconds", t.ScaleIntervalInSeconds, 0, 4294967295))
}

// AveragePartitionLoadScalingTrigger represents a scaling trigger related to an average load of a
// metric/resource of a partition.
type AveragePartitionLoadScalingTrigger struct {
	LoadScalingTrigger
}

func NewAveragePartitionLoadScalingTrigger(metricName string, lowerLoadThreshold string, upperLoadThreshold string, scaleIntervalInSeconds int64) (*AveragePartitionLoadScalingTrigger, error) {
	trigger := AveragePartitionLoadScalingTrigger{LoadScalingTrigger{
		MetricName:             metricName,
		LowerLoadThreshold:     lowerLoadThreshold,
		UpperLoadThreshold:     upperLoadThreshold,
		ScaleIntervalInSeconds: scaleIntervalInSeconds,
	}}

	if err := trigger.Validate(); err != nil {
		return nil, err
	}

	return &trigger, nil
}

func (t AveragePartitionLoadScalingTrigger) ScalingTriggerKind() ScalingTriggerKind {
	return ScalingTriggerKindAveragePartitionLoad
}

func (t AveragePartitionLoadScalingTrigger) MarshalJSON() ([]byte, error) {
	type alias AveragePartitionLoadScalingTrigger
	return marshalKinded("Kind", string(t.ScalingTriggerKind()), alias(t))
}

// AverageServiceLoadScalingTrigger represents a scaling policy related to an average load of a
// metric/resource of a service.
type AverageServiceLoadScalingTrigger struct {
	LoadScalingTrigger

	// Flag determines whether only the load of primary replica should be considered for scaling. If set
	// to true, then trigger will only consider the load of primary replicas of stateful service. If set
	// to false, trigger will consider load of all replicas. This parameter cannot be set to true for
	// stateless service.
	UseOnlyPrimaryLoad bool `json:"UseOnlyPrimaryLoad"`
}

func NewAverageServiceLoadScalingTrigger(metricName string, lowerLoadThreshold string, upperLoadThreshold string, scaleIntervalInSeconds int64, useOnlyPrimaryLoad bool) (*AverageServiceLoadScalingTrigger, error) {
	trigger := AverageServiceLoadScalingTrigger{
		LoadScalingTrigger: LoadScalingTrigger{
			MetricName:             metricName,
			LowerLoadThreshold:     lowerLoadThreshold,
			UpperLoadThreshold:     upperLoadThreshold,
			ScaleIntervalInSeconds: scaleIntervalInSeconds,
		},
		UseOnlyPrimaryLoad: useOnlyPrimaryLoad,
	}

	if err := trigger.Validate(); err != nil {
		return nil, err
	}

	return &trigger, nil
}

func (t AverageServiceLoadScalingTrigger) ScalingTriggerKind() ScalingTriggerKind {
	return ScalingTriggerKindAverageServiceLoad
}

func (t AverageServiceLoadScalingTrigger) MarshalJSON() ([]byte, error) {
	type alias AverageServiceLoadScalingTrigger
	return marshalKinded("Kind", string(t.ScalingTriggerKind()), alias(t))
}

var scalingTriggerFamily = family[ScalingTriggerDescription]{
	name:          "ScalingTriggerDescription",
	discriminator: "Kind",
	variants: map[string]func() ScalingTriggerDescription{
		string(ScalingTriggerKindAveragePartitionLoad): func() ScalingTriggerDescription { return &AveragePartitionLoadScalingTrigger{} },
		string(ScalingTriggerKindAverageServiceLoad):   func() ScalingTriggerDescription { return &AverageServiceLoadScalingTrigger{} },
	},
}

// UnmarshalScalingTriggerDescription decodes a scaling trigger payload into its concrete variant.
func UnmarshalScalingTriggerDescription(data []byte) (ScalingTriggerDescription, error) {
	return scalingTriggerFamily.decode(data)
}

// ScalingPolicyDescription describes how the scaling should be performed.
type ScalingPolicyDescription struct {
	// Specifies the trigger associated with this scaling policy.
	ScalingTrigger ScalingTriggerDescription `json:"ScalingTrigger"`

	// Specifies the mechanism associated with this scaling policy.
	ScalingMechanism ScalingMechanismDescription `json:"ScalingMechanism"`
}

func NewScalingPolicyDescription(scalingTrigger ScalingTriggerDescription, scalingMechanism ScalingMechanismDescription) (*ScalingPolicyDescription, error) {
	policy := ScalingPolicyDescription{ScalingTrigger: scalingTrigger, ScalingMechanism: scalingMechanism}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &policy, nil
}

func (p ScalingPolicyDescription) Validate() error {
	err := validation.First(
		validation.Required("scalingTrigger", p.ScalingTrigger),
		validation.Required("scalingMechanism", p.ScalingMechanism))

	if err != nil {
		return err
	}

	return validation.First(p.ScalingTrigger.Validate(), p.ScalingMechanism.Validate())
}

func (p *ScalingPolicyDescription) UnmarshalJSON(data []byte) error {
	aux := struct {
		ScalingTrigger   json.RawMessage `json:"ScalingTrigger"`
		ScalingMechanism json.RawMessage `json:"ScalingMechanism"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	trigger, err := UnmarshalScalingTriggerDescription(aux.ScalingTrigger)
	if err != nil {
		return err
	}

	mechanism, err := UnmarshalScalingMechanismDescription(aux.ScalingMechanism)
	if err != nil {
		return err
	}

	p.ScalingTrigger = trigger
	p.ScalingMechanism = mechanism

	return nil
}
