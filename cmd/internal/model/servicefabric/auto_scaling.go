package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
)

// AutoScalingMechanism describes the mechanism for performing auto scaling operation. Derived classes
// will describe the actual mechanism.
type AutoScalingMechanism interface {
	AutoScalingMechanismKind() AutoScalingMechanismKind
	Validate() error
}

// AddRemoveReplicaScalingMechanism describes the horizontal auto scaling mechanism that adds or removes
// replicas (containers or container groups).
type AddRemoveReplicaScalingMechanism struct {
	// Minimum number of containers (scale down won't be performed below this number).
	MinCount int32 `json:"minCount"`

	// Maximum number of containers (scale up won't be performed above this number).
	MaxCount int32 `json:"maxCount"`

	// Each time auto scaling is performed, this number of containers will be added or removed.
	ScaleIncrement int32 `json:"scaleIncrement"`
}

func NewAddRemoveReplicaScalingMechanism(minCount int32, maxCount int32, scaleIncrement int32) (*AddRemoveReplicaScalingMechanism, error) {
	mechanism := AddRemoveReplicaScalingMechanism{MinCount: minCount, MaxCount: maxCount, ScaleIncrement: scaleIncrement}

	if err := mechanism.Validate(); err != nil {
		return nil, err
	}

	return &mechanism, nil
}

func (m AddRemoveReplicaScalingMechanism) Validate() error {
	return validation.First(
		validation.AtLeast("minCount", m.MinCount, 0),
		validation.AtLeast("maxCount", m.MaxCount, 0))
}

func (m AddRemoveReplicaScalingMechanism) AutoScalingMechanismKind() AutoScalingMechanismKind {
	return AutoScalingMechanismKindAddRemoveReplica
}

func (m AddRemoveReplicaScalingMechanism) MarshalJSON() ([]byte, error) {
	type alias AddRemoveReplicaScalingMechanism
	return marshalKinded("kind", string(m.AutoScalingMechanismKind()), alias(m))
}

var autoScalingMechanismFamily = family[AutoScalingMechanism]{
	name:          "AutoScalingMechanism",
	discriminator: "kind",
	variants: map[string]func() AutoScalingMechanism{
		string(AutoScalingMechanismKindAddRemoveReplica): func() AutoScalingMechanism { return &AddRemoveReplicaScalingMechanism{} },
	},
}

// UnmarshalAutoScalingMechanism decodes an auto scaling mechanism payload into its concrete variant.
func UnmarshalAutoScalingMechanism(data []byte) (AutoScalingMechanism, error) {
	return autoScalingMechanismFamily.decode(data)
}

// AutoScalingMetric describes the metric that is used for triggering auto scaling operation.
type AutoScalingMetric interface {
	AutoScalingMetricKind() AutoScalingMetricKind
}

// AutoScalingResourceMetric describes the resource that is used for triggering auto scaling.
type AutoScalingResourceMetric struct {
	// Name of the resource.
	Name AutoScalingResourceMetricName `json:"name"`
}

func NewAutoScalingResourceMetric(name AutoScalingResourceMetricName) (*AutoScalingResourceMetric, error) {
	if err := validation.RequiredString("name", string(name)); err != nil {
		return nil, err
	}

	return &AutoScalingResourceMetric{Name: name}, nil
}

func (m AutoScalingResourceMetric) AutoScalingMetricKind() AutoScalingMetricKind {
	return AutoScalingMetricKindResource
}

func (m AutoScalingResourceMetric) MarshalJSON() ([]byte, error) {
	type alias AutoScalingResourceMetric
	return marshalKinded("kind", string(m.AutoScalingMetricKind()), alias(m))
}

var autoScalingMetricFamily = family[AutoScalingMetric]{
	name:          "AutoScalingMetric",
	discriminator: "kind",
	variants: map[string]func() AutoScalingMetric{
		string(AutoScalingMetricKindResource): func() AutoScalingMetric { return &AutoScalingResourceMetric{} },
	},
}

// UnmarshalAutoScalingMetric decodes an auto scaling metric payload into its concrete variant.
func UnmarshalAutoScalingMetric(data []byte) (AutoScalingMetric, error) {
	return autoScalingMetricFamily.decode(data)
}

// AutoScalingTrigger describes the trigger for performing auto scaling operation.
type AutoScalingTrigger interface {
	AutoScalingTriggerKind() AutoScalingTriggerKind
	Validate() error
}

// AverageLoadScalingTrigger describes the average load trigger used for auto scaling.
type AverageLoadScalingTrigger struct {
	// Description of the metric that is used for scaling.
	Metric AutoScalingMetric `json:"metric"`

	// Lower load threshold (if average load is below this threshold, service will scale down).
	LowerLoadThreshold float64 `json:"lowerLoadThreshold"`

	// Upper load threshold (if average load is above this threshold, service will scale up).
	UpperLoadThreshold float64 `json:"upperLoadThreshold"`

	// Scale interval that indicates how often will this trigger be checked.
	ScaleIntervalInSeconds int32 `json:"scaleIntervalInSeconds"`
}

func NewAverageLoadScalingTrigger(metric AutoScalingMetric, lowerLoadThreshold float64, upperLoadThreshold float64, scaleIntervalInSeconds int32) (*AverageLoadScalingTrigger, error) {
	trigger := AverageLoadScalingTrigger{
		Metric:                 metric,
		LowerLoadThreshold:     lowerLoadThreshold,
		UpperLoadThreshold:     upperLoadThreshold,
		ScaleIntervalInSeconds: scaleIntervalInSeconds,
	}

	if err := trigger.Validate(); err != nil {
		return nil, err
	}

	return &trigger, nil
}

func (t AverageLoadScalingTrigger) Validate() error {
	return validation.First(
		validation.Required("metric", t.Metric),
		validation.AtLeast("scaleIntervalInSeconds", t.ScaleIntervalInSeconds, 60))
}

func (t AverageLoadScalingTrigger) AutoScalingTriggerKind() AutoScalingTriggerKind {
	return AutoScalingTriggerKindAverageLoad
}

func (t AverageLoadScalingTrigger) MarshalJSON() ([]byte, error) {
	type alias AverageLoadScalingTrigger
	return marshalKinded("kind", string(t.AutoScalingTriggerKind()), alias(t))
}

func (t *AverageLoadScalingTrigger) UnmarshalJSON(data []byte) error {
	type alias AverageLoadScalingTrigger
	aux := struct {
		*alias
		Metric json.RawMessage `json:"metric"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	metric, err := UnmarshalAutoScalingMetric(aux.Metric)
	if err != nil {
		return err
	}

	t.Metric = metric

	return nil
}

var autoScalingTriggerFamily = family[AutoScalingTrigger]{
	name:          "AutoScalingTrigger",
	discriminator: "kind",
	variants: map[string]func() AutoScalingTrigger{
		string(AutoScalingTriggerKindAverageLoad): func() AutoScalingTrigger { return &AverageLoadScalingTrigger{} },
	},
}

// UnmarshalAutoScalingTrigger decodes an auto scaling trigger payload into its concrete variant.
func UnmarshalAutoScalingTrigger(data []byte) (AutoScalingTrigger, error) {
	return autoScalingTriggerFamily.decode(data)
}

// AutoScalingPolicy describes the auto scaling policy.
type AutoScalingPolicy struct {
	// The name of the auto scaling policy.
	Name string `json:"name"`

	// Determines when auto scaling operation will be invoked.
	Trigger AutoScalingTrigger `json:"trigger"`

	// The mechanism that is used to scale when auto scaling operation is invoked.
	Mechanism AutoScalingMechanism `json:"mechanism"`
}

func NewAutoScalingPolicy(name string, trigger AutoScalingTrigger, mechanism AutoScalingMechanism) (*AutoScalingPolicy, error) {
	policy := AutoScalingPolicy{Name: name, Trigger: trigger, Mechanism: mechanism}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &policy, nil
}

func (p AutoScalingPolicy) Validate() error {
	err := validation.First(
		validation.RequiredString("name", p.Name),
		validation.Required("trigger", p.Trigger),
		validation.Required("mechanism", p.Mechanism))

	if err != nil {
		return err
	}

	return validation.First(p.Trigger.Validate(), p.Mechanism.Validate())
}

func (p *AutoScalingPolicy) UnmarshalJSON(data []byte) error {
	type alias AutoScalingPolicy
	aux := struct {
		*alias
		Trigger   json.RawMessage `json:"trigger"`
		Mechanism json.RawMessage `json:"mechanism"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	trigger, err := UnmarshalAutoScalingTrigger(aux.Trigger)
	if err != nil {
		return err
	}

	mechanism, err := UnmarshalAutoScalingMechanism(aux.Mechanism)
	if err != nil {
		return err
	}

	p.Trigger = trigger
	p.Mechanism = mechanism

	return nil
}
