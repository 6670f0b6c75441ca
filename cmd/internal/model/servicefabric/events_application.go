package servicefabric

import (
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// ApplicationCreatedEvent describes the Application Created event.
type ApplicationCreatedEvent struct {
	ApplicationEventBase

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Application type version.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`

	// Application definition kind.
	ApplicationDefinitionKind string `json:"ApplicationDefinitionKind"`
}

func (e ApplicationCreatedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationCreated
}

func (e ApplicationCreatedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validation.RequiredString("applicationTypeName", e.ApplicationTypeName),
		validation.RequiredString("applicationTypeVersion", e.ApplicationTypeVersion),
		validation.RequiredString("applicationDefinitionKind", e.ApplicationDefinitionKind))
}

func (e ApplicationCreatedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationCreatedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationDeletedEvent describes the Application Deleted event.
type ApplicationDeletedEvent struct {
	ApplicationEventBase

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Application type version.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`
}

func (e ApplicationDeletedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationDeleted
}

func (e ApplicationDeletedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validation.RequiredString("applicationTypeName", e.ApplicationTypeName),
		validation.RequiredString("applicationTypeVersion", e.ApplicationTypeVersion))
}

func (e ApplicationDeletedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationDeletedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationNewHealthReportEvent describes the Application Health Report Created event.
type ApplicationNewHealthReportEvent struct {
	ApplicationEventBase
	HealthReportFields

	// Id of Application instance.
	ApplicationInstanceId int64 `json:"ApplicationInstanceId"`
}

func (e ApplicationNewHealthReportEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationNewHealthReport
}

func (e ApplicationNewHealthReportEvent) Validate() error {
	return validation.First(e.ApplicationEventBase.Validate(), e.validateReport())
}

func (e ApplicationNewHealthReportEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationNewHealthReportEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationHealthReportExpiredEvent describes the Application Health Report Expired event.
type ApplicationHealthReportExpiredEvent struct {
	ApplicationEventBase
	HealthReportFields

	// Id of Application instance.
	ApplicationInstanceId int64 `json:"ApplicationInstanceId"`
}

func (e ApplicationHealthReportExpiredEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationHealthReportExpired
}

func (e ApplicationHealthReportExpiredEvent) Validate() error {
	return validation.First(e.ApplicationEventBase.Validate(), e.validateReport())
}

func (e ApplicationHealthReportExpiredEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationHealthReportExpiredEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationUpgradeStartedEvent describes the Application Upgrade Started event.
type ApplicationUpgradeStartedEvent struct {
	ApplicationEventBase

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Current Application type version.
	CurrentApplicationTypeVersion string `json:"CurrentApplicationTypeVersion"`

	// Target Application type version.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`

	// Type of upgrade.
	UpgradeType string `json:"UpgradeType"`

	// Mode of upgrade.
	RollingUpgradeMode string `json:"RollingUpgradeMode"`

	// Action if failed.
	FailureAction string `json:"FailureAction"`
}

func (e ApplicationUpgradeStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationUpgradeStarted
}

func (e ApplicationUpgradeStartedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validation.RequiredString("applicationTypeName", e.ApplicationTypeName),
		validation.RequiredString("currentApplicationTypeVersion", e.CurrentApplicationTypeVersion),
		validation.RequiredString("applicationTypeVersion", e.ApplicationTypeVersion),
		validation.RequiredString("upgradeType", e.UpgradeType),
		validation.RequiredString("rollingUpgradeMode", e.RollingUpgradeMode),
		validation.RequiredString("failureAction", e.FailureAction))
}

func (e ApplicationUpgradeStartedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationUpgradeStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationUpgradeCompletedEvent describes the Application Upgrade Completed event.
type ApplicationUpgradeCompletedEvent struct {
	ApplicationEventBase

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Application type version.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`

	// Overall upgrade time in milli-seconds.
	OverallUpgradeElapsedTimeInMs float64 `json:"OverallUpgradeElapsedTimeInMs"`
}

func (e ApplicationUpgradeCompletedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationUpgradeCompleted
}

func (e ApplicationUpgradeCompletedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validation.RequiredString("applicationTypeName", e.ApplicationTypeName),
		validation.RequiredString("applicationTypeVersion", e.ApplicationTypeVersion))
}

func (e ApplicationUpgradeCompletedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationUpgradeCompletedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationUpgradeRollbackStartedEvent describes the Application Upgrade Rollback Started event.
type ApplicationUpgradeRollbackStartedEvent struct {
	ApplicationEventBase

	// Application type name.
	ApplicationTypeName string `json:"ApplicationTypeName"`

	// Current Application type version.
	CurrentApplicationTypeVersion string `json:"CurrentApplicationTypeVersion"`

	// Target Application type version.
	ApplicationTypeVersion string `json:"ApplicationTypeVersion"`

	// Describes reason of failure.
	FailureReason string `json:"FailureReason"`

	// Overall upgrade time in milli-seconds.
	OverallUpgradeElapsedTimeInMs float64 `json:"OverallUpgradeElapsedTimeInMs"`
}

func (e ApplicationUpgradeRollbackStartedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationUpgradeRollbackStarted
}

func (e ApplicationUpgradeRollbackStartedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validation.RequiredString("applicationTypeName", e.ApplicationTypeName),
		validation.RequiredString("currentApplicationTypeVersion", e.CurrentApplicationTypeVersion),
		validation.RequiredString("applicationTypeVersion", e.ApplicationTypeVersion),
		validation.RequiredString("failureReason", e.FailureReason))
}

func (e ApplicationUpgradeRollbackStartedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationUpgradeRollbackStartedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationProcessExitedEvent describes the Process Exited event.
type ApplicationProcessExitedEvent struct {
	ApplicationEventBase

	// Name of Service.
	ServiceName string `json:"ServiceName"`

	// Name of Service package.
	ServicePackageName string `json:"ServicePackageName"`

	// Activation Id of Service package. Empty for the default activation.
	ServicePackageActivationId string `json:"ServicePackageActivationId"`

	// Indicates IsExclusive flag.
	IsExclusive bool `json:"IsExclusive"`

	// Name of Code package.
	CodePackageName string `json:"CodePackageName"`

	// Type of EntryPoint.
	EntryPointType string `json:"EntryPointType"`

	// Name of executable.
	ExeName string `json:"ExeName"`

	// Process Id.
	ProcessId int64 `json:"ProcessId"`

	// Host Id.
	HostId string `json:"HostId"`

	// Exit code of process.
	ExitCode int64 `json:"ExitCode"`

	// Indicates if termination is unexpected.
	UnexpectedTermination bool `json:"UnexpectedTermination"`

	// Start time of process.
	StartTime time.Time `json:"StartTime"`
}

func (e ApplicationProcessExitedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationProcessExited
}

func (e ApplicationProcessExitedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validateCodePackageExit(e.ServiceName, e.ServicePackageName, e.CodePackageName, e.EntryPointType, e.HostId),
		validation.RequiredString("exeName", e.ExeName))
}

func (e ApplicationProcessExitedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationProcessExitedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

// ApplicationContainerInstanceExitedEvent describes the Container Exited event.
type ApplicationContainerInstanceExitedEvent struct {
	ApplicationEventBase

	// Name of Service.
	ServiceName string `json:"ServiceName"`

	// Name of Service package.
	ServicePackageName string `json:"ServicePackageName"`

	// Activation Id of Service package. Empty for the default activation.
	ServicePackageActivationId string `json:"ServicePackageActivationId"`

	// Indicates IsExclusive flag.
	IsExclusive bool `json:"IsExclusive"`

	// Name of Code package.
	CodePackageName string `json:"CodePackageName"`

	// Type of EntryPoint.
	EntryPointType string `json:"EntryPointType"`

	// Name of Container image.
	ImageName string `json:"ImageName"`

	// Name of Container.
	ContainerName string `json:"ContainerName"`

	// Host Id.
	HostId string `json:"HostId"`

	// Exit code of process.
	ExitCode int64 `json:"ExitCode"`

	// Indicates if termination is unexpected.
	UnexpectedTermination bool `json:"UnexpectedTermination"`

	// Start time of process.
	StartTime time.Time `json:"StartTime"`
}

func (e ApplicationContainerInstanceExitedEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindApplicationContainerInstanceExited
}

func (e ApplicationContainerInstanceExitedEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		validateCodePackageExit(e.ServiceName, e.ServicePackageName, e.CodePackageName, e.EntryPointType, e.HostId),
		validation.RequiredString("imageName", e.ImageName),
		validation.RequiredString("containerName", e.ContainerName))
}

func (e ApplicationContainerInstanceExitedEvent) MarshalJSON() ([]byte, error) {
	type alias ApplicationContainerInstanceExitedEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}

func validateCodePackageExit(serviceName, servicePackageName, codePackageName, entryPointType, hostId string) error {
	return validation.First(
		validation.RequiredString("serviceName", serviceName),
		validation.RequiredString("servicePackageName", servicePackageName),
		validation.RequiredString("codePackageName", codePackageName),
		validation.RequiredString("entryPointType", entryPointType),
		validation.RequiredString("hostId", hostId))
}

// ChaosCodePackageRestartScheduledEvent describes the Chaos Restart Code Package Fault Scheduled event.
type ChaosCodePackageRestartScheduledEvent struct {
	ApplicationEventBase
	ChaosFaultFields

	// The name of a Service Fabric node.
	NodeName string `json:"NodeName"`

	// Service manifest name.
	ServiceManifestName string `json:"ServiceManifestName"`

	// Code package name.
	CodePackageName string `json:"CodePackageName"`

	// Id of Service package activation.
	ServicePackageActivationId string `json:"ServicePackageActivationId"`
}

func (e ChaosCodePackageRestartScheduledEvent) FabricEventKind() FabricEventKind {
	return FabricEventKindChaosCodePackageRestartScheduled
}

func (e ChaosCodePackageRestartScheduledEvent) Validate() error {
	return validation.First(
		e.ApplicationEventBase.Validate(),
		e.validateFault(),
		validation.RequiredString("nodeName", e.NodeName),
		validation.RequiredString("serviceManifestName", e.ServiceManifestName),
		validation.RequiredString("codePackageName", e.CodePackageName))
}

func (e ChaosCodePackageRestartScheduledEvent) MarshalJSON() ([]byte, error) {
	type alias ChaosCodePackageRestartScheduledEvent
	return marshalKinded("Kind", string(e.FabricEventKind()), alias(e))
}
