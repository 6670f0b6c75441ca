package servicefabric

// ScalingMechanismKind - Enumerates the ways that a service can be scaled.
type ScalingMechanismKind string

const (
	// ScalingMechanismKindInvalid - Indicates the scaling mechanism is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ScalingMechanismKindInvalid ScalingMechanismKind = "Invalid"
	// ScalingMechanismKindPartitionInstanceCount - Indicates a mechanism for scaling where new instances are added or removed from a partition. The value is 1.
	ScalingMechanismKindPartitionInstanceCount ScalingMechanismKind = "PartitionInstanceCount"
	// ScalingMechanismKindAddRemoveIncrementalNamedPartition - Indicates a mechanism for scaling where new named partitions are added or removed from a service. The value is 2.
	ScalingMechanismKindAddRemoveIncrementalNamedPartition ScalingMechanismKind = "AddRemoveIncrementalNamedPartition"
)

// PossibleScalingMechanismKindValues returns the possible values for the ScalingMechanismKind const type.
func PossibleScalingMechanismKindValues() []ScalingMechanismKind {
	return []ScalingMechanismKind{
		ScalingMechanismKindInvalid,
		ScalingMechanismKindPartitionInstanceCount,
		ScalingMechanismKindAddRemoveIncrementalNamedPartition,
	}
}

// ScalingTriggerKind - Enumerates the ways that a service can be scaled.
type ScalingTriggerKind string

const (
	// ScalingTriggerKindInvalid - Indicates the scaling trigger is invalid. All Service Fabric enumerations have the invalid type. The value is 0.
	ScalingTriggerKindInvalid ScalingTriggerKind = "Invalid"
	// ScalingTriggerKindAveragePartitionLoad - Indicates a trigger where scaling decisions are made based on average load of a partition. The value is 1.
	ScalingTriggerKindAveragePartitionLoad ScalingTriggerKind = "AveragePartitionLoad"
	// ScalingTriggerKindAverageServiceLoad - Indicates a trigger where scaling decisions are made based on average load of a service. The value is 2.
	ScalingTriggerKindAverageServiceLoad ScalingTriggerKind = "AverageServiceLoad"
)

// PossibleScalingTriggerKindValues returns the possible values for the ScalingTriggerKind const type.
func PossibleScalingTriggerKindValues() []ScalingTriggerKind {
	return []ScalingTriggerKind{
		ScalingTriggerKindInvalid,
		ScalingTriggerKindAveragePartitionLoad,
		ScalingTriggerKindAverageServiceLoad,
	}
}

// AutoScalingMechanismKind - Enumerates the mechanisms for auto scaling.
type AutoScalingMechanismKind string

const (
	// AutoScalingMechanismKindAddRemoveReplica - Indicates that scaling should be performed by adding or removing replicas.
	AutoScalingMechanismKindAddRemoveReplica AutoScalingMechanismKind = "AddRemoveReplica"
)

// PossibleAutoScalingMechanismKindValues returns the possible values for the AutoScalingMechanismKind const type.
func PossibleAutoScalingMechanismKindValues() []AutoScalingMechanismKind {
	return []AutoScalingMechanismKind{
		AutoScalingMechanismKindAddRemoveReplica,
	}
}

// AutoScalingTriggerKind - Enumerates the triggers for auto scaling.
type AutoScalingTriggerKind string

const (
	// AutoScalingTriggerKindAverageLoad - Indicates that scaling should be performed based on average load of all replicas in the service.
	AutoScalingTriggerKindAverageLoad AutoScalingTriggerKind = "AverageLoad"
)

// PossibleAutoScalingTriggerKindValues returns the possible values for the AutoScalingTriggerKind const type.
func PossibleAutoScalingTriggerKindValues() []AutoScalingTriggerKind {
	return []AutoScalingTriggerKind{
		AutoScalingTriggerKindAverageLoad,
	}
}

// AutoScalingMetricKind - Enumerates the metrics that are used for triggering auto scaling.
type AutoScalingMetricKind string

const (
	// AutoScalingMetricKindResource - Indicates that the metric is one of resources, like cpu or memory.
	AutoScalingMetricKindResource AutoScalingMetricKind = "Resource"
)

// PossibleAutoScalingMetricKindValues returns the possible values for the AutoScalingMetricKind const type.
func PossibleAutoScalingMetricKindValues() []AutoScalingMetricKind {
	return []AutoScalingMetricKind{
		AutoScalingMetricKindResource,
	}
}

// AutoScalingResourceMetricName - Enumerates the resources which are used for auto scaling.
type AutoScalingResourceMetricName string

const (
	// AutoScalingResourceMetricNameCpu - Indicates that the resource is CPU cores.
	AutoScalingResourceMetricNameCpu AutoScalingResourceMetricName = "cpu"
	// AutoScalingResourceMetricNameMemoryInGB - Indicates that the resource is memory in GB.
	AutoScalingResourceMetricNameMemoryInGB AutoScalingResourceMetricName = "memoryInGB"
)

// PossibleAutoScalingResourceMetricNameValues returns the possible values for the AutoScalingResourceMetricName const type.
func PossibleAutoScalingResourceMetricNameValues() []AutoScalingResourceMetricName {
	return []AutoScalingResourceMetricName{
		AutoScalingResourceMetricNameCpu,
		AutoScalingResourceMetricNameMemoryInGB,
	}
}
