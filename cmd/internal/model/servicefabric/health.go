package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// HealthStateCount represents information about how many health entities are in Ok, Warning and Error
// health state.
type HealthStateCount struct {
	// The number of health entities with aggregated health state Ok.
	OkCount int64 `json:"OkCount"`

	// The number of health entities with aggregated health state Warning.
	WarningCount int64 `json:"WarningCount"`

	// The number of health entities with aggregated health state Error.
	ErrorCount int64 `json:"ErrorCount"`
}

func NewHealthStateCount(okCount int64, warningCount int64, errorCount int64) (*HealthStateCount, error) {
	count := HealthStateCount{
		OkCount:      okCount,
		WarningCount: warningCount,
		ErrorCount:   errorCount,
	}

	if err := count.Validate(); err != nil {
		return nil, err
	}

	return &count, nil
}

func (c HealthStateCount) Validate() error {
	return validation.First(
		validation.AtLeast("okCount", c.OkCount, 0),
		validation.AtLeast("warningCount", c.WarningCount, 0),
		validation.AtLeast("errorCount", c.ErrorCount, 0))
}

// Total is the number of entities across all health states.
func (c HealthStateCount) Total() int64 {
	return c.OkCount + c.WarningCount + c.ErrorCount
}

// EntityKindHealthStateCount represents health state count for entities of the specified entity kind.
type EntityKindHealthStateCount struct {
	// The entity kind for which health states are evaluated.
	EntityKind *EntityKind `json:"EntityKind,omitempty"`

	// The health state count for the entities of the specified kind.
	HealthStateCount *HealthStateCount `json:"HealthStateCount,omitempty"`
}

// HealthStatistics contains the health state counts for the children of an entity, grouped by entity
// kind.
type HealthStatistics struct {
	// List of health state counts per entity kind, which keeps track of how many children of the queried
	// entity are in Ok, Warning and Error state.
	HealthStateCountList []EntityKindHealthStateCount `json:"HealthStateCountList,omitempty"`
}

// CountFor returns the health state count reported for kind, or nil when the statistics do not include it.
func (s HealthStatistics) CountFor(kind EntityKind) *HealthStateCount {
	for _, count := range s.HealthStateCountList {
		if count.EntityKind != nil && *count.EntityKind == kind {
			return count.HealthStateCount
		}
	}

	return nil
}

// HealthInformation represents common health report information. It is included in all health reports
// sent to health store and in all health events returned by health queries.
type HealthInformation struct {
	// The source name that identifies the client/watchdog/system component that generated the health
	// information.
	SourceId string `json:"SourceId"`

	// The property of the health information. An entity can have health reports for different
	// properties.
	Property string `json:"Property"`

	// The health state of a Service Fabric entity such as Cluster, Node, Application, Service,
	// Partition, Replica etc.
	HealthState HealthState `json:"HealthState"`

	// The duration for which this health report is valid. This field uses ISO8601 format for
	// specifying the duration.
	TimeToLiveInMilliSeconds *string `json:"TimeToLiveInMilliSeconds,omitempty"`

	// The description of the health information. It represents free text used to add human readable
	// information about the report. The maximum string length for the description is 4096 characters.
	Description *string `json:"Description,omitempty"`

	// The sequence number for this health report as a numeric string.
	SequenceNumber *string `json:"SequenceNumber,omitempty"`

	// Value that indicates whether the report is removed from health store when it expires.
	RemoveWhenExpired *bool `json:"RemoveWhenExpired,omitempty"`

	// A health report ID which identifies the health report and can be used to find more detailed
	// information about a specific health event at aka.ms/sfhealthid
	HealthReportId *string `json:"HealthReportId,omitempty"`
}

func NewHealthInformation(sourceId string, property string, healthState HealthState) (*HealthInformation, error) {
	information := HealthInformation{
		SourceId:    sourceId,
		Property:    property,
		HealthState: healthState,
	}

	if err := information.Validate(); err != nil {
		return nil, err
	}

	return &information, nil
}

func (h HealthInformation) Validate() error {
	return validation.First(
		validation.RequiredString("sourceId", h.SourceId),
		validation.RequiredString("property", h.Property),
		validation.RequiredString("healthState", string(h.HealthState)))
}

// HealthEvent represents health information reported on a health entity, such as cluster,
// application or node, with additional metadata added by the Health Manager.
type HealthEvent struct {
	HealthInformation

	// Returns true if the health event is expired, otherwise false.
	IsExpired *bool `json:"IsExpired,omitempty"`

	// The date and time when the health report was sent by the source.
	SourceUtcTimestamp *time.Time `json:"SourceUtcTimestamp,omitempty"`

	// The date and time when the health report was last modified by the health store.
	LastModifiedUtcTimestamp *time.Time `json:"LastModifiedUtcTimestamp,omitempty"`

	// If the current health state is 'Ok', this property returns the time at which the health report
	// was first reported with 'Ok'.
	LastOkTransitionAt *time.Time `json:"LastOkTransitionAt,omitempty"`

	// If the current health state is 'Warning', this property represents the time at which the health
	// report was first reported with 'Warning'.
	LastWarningTransitionAt *time.Time `json:"LastWarningTransitionAt,omitempty"`

	// If the current health state is 'Error', this property represents the time at which the health
	// report was first reported with 'Error'.
	LastErrorTransitionAt *time.Time `json:"LastErrorTransitionAt,omitempty"`
}

// ApplicationTypeHealthPolicyMapItem defines an item in ApplicationTypeHealthPolicyMap.
type ApplicationTypeHealthPolicyMapItem struct {
	// The key of the application type health policy map item. This is the name of the application type.
	Key string `json:"Key"`

	// The value of the application type health policy map item. The max percent unhealthy applications
	// allowed for the application type. Must be between zero and 100.
	Value int32 `json:"Value"`
}

func NewApplicationTypeHealthPolicyMapItem(key string, value int32) (*ApplicationTypeHealthPolicyMapItem, error) {
	item := ApplicationTypeHealthPolicyMapItem{Key: key, Value: value}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return &item, nil
}

func (i ApplicationTypeHealthPolicyMapItem) Validate() error {
	return validation.First(
		validation.RequiredString("key", i.Key),
		validation.InRange("value", i.Value, 0, 100))
}

// NodeTypeHealthPolicyMapItem defines an item in NodeTypeHealthPolicyMap.
type NodeTypeHealthPolicyMapItem struct {
	// The key of the node type health policy map item. This is the name of the node type.
	Key string `json:"Key"`

	// The value of the node type health policy map item. If the percentage is respected but there is
	// at least one unhealthy node in the node type, the health is evaluated as Warning.
	Value int32 `json:"Value"`
}

func (i NodeTypeHealthPolicyMapItem) Validate() error {
	return validation.First(
		validation.RequiredString("key", i.Key),
		validation.InRange("value", i.Value, 0, 100))
}

// ClusterHealthPolicy defines a health policy used to evaluate the health of the cluster or of a
// cluster node.
type ClusterHealthPolicy struct {
	// Indicates whether warnings are treated with the same severity as errors.
	ConsiderWarningAsError *bool `json:"ConsiderWarningAsError,omitempty"`

	// The maximum allowed percentage of unhealthy nodes before reporting an error. For example, to
	// allow 10% of nodes to be unhealthy, this value would be 10.
	MaxPercentUnhealthyNodes *int32 `json:"MaxPercentUnhealthyNodes,omitempty"`

	// The maximum allowed percentage of unhealthy applications before reporting an error. For example,
	// to allow 10% of applications to be unhealthy, this value would be 10.
	MaxPercentUnhealthyApplications *int32 `json:"MaxPercentUnhealthyApplications,omitempty"`

	// Defines a map with max percentage unhealthy applications for specific application types.
	ApplicationTypeHealthPolicyMap []ApplicationTypeHealthPolicyMapItem `json:"ApplicationTypeHealthPolicyMap,omitempty"`

	// Defines a map with max percentage unhealthy nodes for specific node types.
	NodeTypeHealthPolicyMap []NodeTypeHealthPolicyMapItem `json:"NodeTypeHealthPolicyMap,omitempty"`
}

func (p ClusterHealthPolicy) Validate() error {
	if p.MaxPercentUnhealthyNodes != nil {
		if err := validation.InRange("maxPercentUnhealthyNodes", *p.MaxPercentUnhealthyNodes, 0, 100); err != nil {
			return err
		}
	}

	if p.MaxPercentUnhealthyApplications != nil {
		if err := validation.InRange("maxPercentUnhealthyApplications", *p.MaxPercentUnhealthyApplications, 0, 100); err != nil {
			return err
		}
	}

	for _, item := range p.ApplicationTypeHealthPolicyMap {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for _, item := range p.NodeTypeHealthPolicyMap {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// NodeHealthState represents the health state of a node, which contains the node identifier and its
// aggregated health state.
type NodeHealthState struct {
	AggregatedHealthState *HealthState `json:"AggregatedHealthState,omitempty"`
	Name                  *string      `json:"Name,omitempty"`
	Id                    *NodeId      `json:"Id,omitempty"`
}

// ApplicationHealthState represents the health state of an application, which contains the
// application identifier and the aggregated health state.
type ApplicationHealthState struct {
	AggregatedHealthState *HealthState `json:"AggregatedHealthState,omitempty"`
	Name                  *string      `json:"Name,omitempty"`
}

// ClusterHealth represents the health of the cluster. Contains the cluster aggregated health state,
// the cluster application and node health states as well as the health events and the unhealthy
// evaluations.
type ClusterHealth struct {
	// The HealthState representing the aggregated health state of the entity computed by Health
	// Manager.
	AggregatedHealthState *HealthState `json:"AggregatedHealthState,omitempty"`

	// The list of health events reported on the entity.
	HealthEvents []HealthEvent `json:"HealthEvents,omitempty"`

	// The unhealthy evaluations that show why the current aggregated health state was returned by
	// Health Manager.
	UnhealthyEvaluations []HealthEvaluationWrapper `json:"UnhealthyEvaluations,omitempty"`

	// Shows the health statistics for all children types of the queried entity.
	HealthStatistics *HealthStatistics `json:"HealthStatistics,omitempty"`

	// Cluster node health states as found in the health store.
	NodeHealthStates []NodeHealthState `json:"NodeHealthStates,omitempty"`

	// Cluster application health states as found in the health store.
	ApplicationHealthStates []ApplicationHealthState `json:"ApplicationHealthStates,omitempty"`
}
