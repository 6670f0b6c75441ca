package servicefabric

import (
	"encoding/json"
	"github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"
	"time"
)

// MaxChaosSeconds is the upper bound of the second based chaos parameters.
const MaxChaosSeconds int64 = 4294967295

// ChaosContext describes a map, which is a collection of (string, string) type key-value pairs. The
// map can be used to record information about the Chaos run. There cannot be more than 100 such pairs
// and each string (key or value) can be at most 4095 characters long.
type ChaosContext struct {
	Map map[string]string `json:"Map,omitempty"`
}

// ChaosTargetFilter defines all filters for targeted Chaos faults, for example, faulting only certain
// node types or faulting only certain applications.
type ChaosTargetFilter struct {
	// A list of node types to include in Chaos faults.
	NodeTypeInclusionList []string `json:"NodeTypeInclusionList,omitempty"`

	// A list of application URIs to include in Chaos faults.
	ApplicationInclusionList []string `json:"ApplicationInclusionList,omitempty"`
}

// ChaosParameters defines all the parameters to configure a Chaos run.
type ChaosParameters struct {
	// Total time (in seconds) for which Chaos will run before automatically stopping. The maximum
	// allowed value is 4,294,967,295 (System.UInt32.MaxValue).
	TimeToRunInSeconds *string `json:"TimeToRunInSeconds,omitempty"`

	// The maximum amount of time to wait for all cluster entities to become stable and healthy.
	MaxClusterStabilizationTimeoutInSeconds *int64 `json:"MaxClusterStabilizationTimeoutInSeconds,omitempty"`

	// MaxConcurrentFaults is the maximum number of concurrent faults induced per iteration.
	MaxConcurrentFaults *int64 `json:"MaxConcurrentFaults,omitempty"`

	// Enables or disables the move primary and move secondary faults.
	EnableMoveReplicaFaults *bool `json:"EnableMoveReplicaFaults,omitempty"`

	// Wait time (in seconds) between consecutive faults within a single iteration.
	WaitTimeBetweenFaultsInSeconds *int64 `json:"WaitTimeBetweenFaultsInSeconds,omitempty"`

	// Time-separation (in seconds) between two consecutive iterations of Chaos.
	WaitTimeBetweenIterationsInSeconds *int64 `json:"WaitTimeBetweenIterationsInSeconds,omitempty"`

	// Passed-in cluster health policy is used to validate health of the cluster in between Chaos
	// iterations.
	ClusterHealthPolicy *ClusterHealthPolicy `json:"ClusterHealthPolicy,omitempty"`

	// Describes a map of key-value pairs recorded with the Chaos run.
	Context *ChaosContext `json:"Context,omitempty"`

	// List of cluster entities to target for Chaos faults.
	ChaosTargetFilter *ChaosTargetFilter `json:"ChaosTargetFilter,omitempty"`
}

func (p ChaosParameters) Validate() error {
	bounded := []struct {
		name  string
		value *int64
	}{
		{"maxClusterStabilizationTimeoutInSeconds", p.MaxClusterStabilizationTimeoutInSeconds},
		{"maxConcurrentFaults", p.MaxConcurrentFaults},
		{"waitTimeBetweenFaultsInSeconds", p.WaitTimeBetweenFaultsInSeconds},
		{"waitTimeBetweenIterationsInSeconds", p.WaitTimeBetweenIterationsInSeconds},
	}

	for _, field := range bounded {
		if field.value == nil {
			continue
		}

		if err := validation.InRange(field.name, *field.value, 0, MaxChaosSeconds); err != nil {
			return err
		}
	}

	if p.ClusterHealthPolicy != nil {
		return p.ClusterHealthPolicy.Validate()
	}

	return nil
}

// Chaos contains a description of Chaos.
type Chaos struct {
	// If Chaos is running, these are the parameters Chaos is running with.
	ChaosParameters *ChaosParameters `json:"ChaosParameters,omitempty"`

	// Current status of the Chaos run.
	Status *ChaosStatus `json:"Status,omitempty"`

	// Current status of the schedule.
	ScheduleStatus *ChaosScheduleStatus `json:"ScheduleStatus,omitempty"`
}

// ChaosEvent represents an event generated during a Chaos run.
type ChaosEvent interface {
	ChaosEventKind() ChaosEventKind
	GetTimeStampUtc() time.Time
}

// ChaosEventBase holds the timestamp shared by every chaos event.
type ChaosEventBase struct {
	// The UTC timestamp when this Chaos event was generated.
	TimeStampUtc time.Time `json:"TimeStampUtc"`
}

func (e ChaosEventBase) GetTimeStampUtc() time.Time {
	return e.TimeStampUtc
}

func (e ChaosEventBase) validate() error {
	if e.TimeStampUtc.IsZero() {
		return &validation.ArgumentNullError{Param: "timeStampUtc"}
	}

	return nil
}

// StartedChaosEvent describes a Chaos event that gets generated when Chaos is started.
type StartedChaosEvent struct {
	ChaosEventBase

	// Defines all the parameters to configure a Chaos run.
	ChaosParameters *ChaosParameters `json:"ChaosParameters,omitempty"`
}

func NewStartedChaosEvent(timeStampUtc time.Time, chaosParameters *ChaosParameters) (*StartedChaosEvent, error) {
	event := StartedChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, ChaosParameters: chaosParameters}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e StartedChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindStarted
}

func (e StartedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias StartedChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

// StoppedChaosEvent describes a Chaos event that gets generated when Chaos stops because either the
// user issued a stop or the time to run was up.
type StoppedChaosEvent struct {
	ChaosEventBase

	// Describes why Chaos stopped. Chaos can stop because of StopChaos API call or the timeToRun
	// provided in ChaosParameters is over.
	Reason *string `json:"Reason,omitempty"`
}

func NewStoppedChaosEvent(timeStampUtc time.Time, reason *string) (*StoppedChaosEvent, error) {
	event := StoppedChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, Reason: reason}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e StoppedChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindStopped
}

func (e StoppedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias StoppedChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

// ExecutingFaultsChaosEvent describes a Chaos event that gets generated when Chaos has decided on the
// faults for an iteration. This Chaos event contains the details of the faults as a list of strings.
type ExecutingFaultsChaosEvent struct {
	ChaosEventBase

	// List of string description of the faults that Chaos decided to execute in an iteration.
	Faults []string `json:"Faults,omitempty"`
}

func NewExecutingFaultsChaosEvent(timeStampUtc time.Time, faults []string) (*ExecutingFaultsChaosEvent, error) {
	event := ExecutingFaultsChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, Faults: faults}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e ExecutingFaultsChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindExecutingFaults
}

func (e ExecutingFaultsChaosEvent) MarshalJSON() ([]byte, error) {
	type alias ExecutingFaultsChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

// WaitingChaosEvent describes a Chaos event that gets generated when Chaos is waiting for the cluster
// to become ready for faulting, for example, Chaos may be waiting for the on-going upgrade to finish.
type WaitingChaosEvent struct {
	ChaosEventBase

	// Describes why the WaitingChaosEvent was generated.
	Reason *string `json:"Reason,omitempty"`
}

func NewWaitingChaosEvent(timeStampUtc time.Time, reason *string) (*WaitingChaosEvent, error) {
	event := WaitingChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, Reason: reason}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e WaitingChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindWaiting
}

func (e WaitingChaosEvent) MarshalJSON() ([]byte, error) {
	type alias WaitingChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

// ValidationFailedChaosEvent is a Chaos event corresponding to a failure during validation.
type ValidationFailedChaosEvent struct {
	ChaosEventBase

	// Describes why the ValidationFailedChaosEvent was generated.
	Reason *string `json:"Reason,omitempty"`
}

func NewValidationFailedChaosEvent(timeStampUtc time.Time, reason *string) (*ValidationFailedChaosEvent, error) {
	event := ValidationFailedChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, Reason: reason}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e ValidationFailedChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindValidationFailed
}

func (e ValidationFailedChaosEvent) MarshalJSON() ([]byte, error) {
	type alias ValidationFailedChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

// TestErrorChaosEvent describes a Chaos event that gets generated when an unexpected event occurs in
// the Chaos engine.
type TestErrorChaosEvent struct {
	ChaosEventBase

	// Describes why TestErrorChaosEvent was generated.
	Reason *string `json:"Reason,omitempty"`
}

func NewTestErrorChaosEvent(timeStampUtc time.Time, reason *string) (*TestErrorChaosEvent, error) {
	event := TestErrorChaosEvent{ChaosEventBase: ChaosEventBase{TimeStampUtc: timeStampUtc}, Reason: reason}

	if err := event.validate(); err != nil {
		return nil, err
	}

	return &event, nil
}

func (e TestErrorChaosEvent) ChaosEventKind() ChaosEventKind {
	return ChaosEventKindTestError
}

func (e TestErrorChaosEvent) MarshalJSON() ([]byte, error) {
	type alias TestErrorChaosEvent
	return marshalKinded("Kind", string(e.ChaosEventKind()), alias(e))
}

var chaosEventFamily = family[ChaosEvent]{
	name:          "ChaosEvent",
	discriminator: "Kind",
	variants: map[string]func() ChaosEvent{
		string(ChaosEventKindStarted):          func() ChaosEvent { return &StartedChaosEvent{} },
		string(ChaosEventKindStopped):          func() ChaosEvent { return &StoppedChaosEvent{} },
		string(ChaosEventKindExecutingFaults):  func() ChaosEvent { return &ExecutingFaultsChaosEvent{} },
		string(ChaosEventKindWaiting):          func() ChaosEvent { return &WaitingChaosEvent{} },
		string(ChaosEventKindValidationFailed): func() ChaosEvent { return &ValidationFailedChaosEvent{} },
		string(ChaosEventKindTestError):        func() ChaosEvent { return &TestErrorChaosEvent{} },
	},
}

// UnmarshalChaosEvent decodes a chaos event payload into its concrete variant.
func UnmarshalChaosEvent(data []byte) (ChaosEvent, error) {
	return chaosEventFamily.decode(data)
}

// ChaosEventWrapper is the wrapper object for a Chaos event.
type ChaosEventWrapper struct {
	ChaosEvent ChaosEvent `json:"ChaosEvent,omitempty"`
}

func (w *ChaosEventWrapper) UnmarshalJSON(data []byte) error {
	aux := struct {
		ChaosEvent json.RawMessage `json:"ChaosEvent"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	event, err := UnmarshalChaosEvent(aux.ChaosEvent)
	if err != nil {
		return err
	}

	w.ChaosEvent = event

	return nil
}

// ChaosEventsSegment contains the list of Chaos events and the continuation token to get the next
// segment.
type ChaosEventsSegment struct {
	// The continuation token parameter is used to obtain next set of results.
	ContinuationToken string `json:"ContinuationToken,omitempty"`

	// List of Chaos events that meet the user-supplied criteria.
	History []ChaosEventWrapper `json:"History,omitempty"`
}

func (s ChaosEventsSegment) HasMore() bool {
	return s.ContinuationToken != ""
}

// ChaosScheduleTimeRangeUtc defines the time range to run Chaos within a day.
type ChaosScheduleTimeRangeUtc struct {
	// Defines the UTC time of day at which Chaos starts running.
	StartTime TimeOfDay `json:"StartTime"`

	// Defines the UTC time of day at which Chaos stops running.
	EndTime TimeOfDay `json:"EndTime"`
}

// NewChaosScheduleTimeRangeUtc validates both ends of the range. A start after the end is allowed and
// describes a window that wraps past midnight.
func NewChaosScheduleTimeRangeUtc(startTime TimeOfDay, endTime TimeOfDay) (*ChaosScheduleTimeRangeUtc, error) {
	if err := validation.First(startTime.Validate(), endTime.Validate()); err != nil {
		return nil, err
	}

	return &ChaosScheduleTimeRangeUtc{StartTime: startTime, EndTime: endTime}, nil
}
