package servicefabric

import "github.com/OctopusSolutionsEngineering/ServiceFabricQuery/cmd/internal/validation"

// ExecutionPolicy describes how the service should execute.
type ExecutionPolicy interface {
	ExecutionPolicyType() ExecutionPolicyType
}

// DefaultExecutionPolicy is the default execution policy. Always restart the service if an exit
// occurs.
type DefaultExecutionPolicy struct {
}

func NewDefaultExecutionPolicy() *DefaultExecutionPolicy {
	return &DefaultExecutionPolicy{}
}

func (p DefaultExecutionPolicy) ExecutionPolicyType() ExecutionPolicyType {
	return ExecutionPolicyTypeDefault
}

func (p DefaultExecutionPolicy) MarshalJSON() ([]byte, error) {
	type alias DefaultExecutionPolicy
	return marshalKinded("type", string(p.ExecutionPolicyType()), alias(p))
}

// RunToCompletionExecutionPolicy means the service will perform its desired operation and complete
// successfully. If the service encounters failure, it will restarted based on restart policy
// specified. If the service completes its operation successfully, it will not be restarted again.
type RunToCompletionExecutionPolicy struct {
	// Enumerates the restart policy for RunToCompletionExecutionPolicy
	Restart RestartPolicy `json:"restart"`
}

func NewRunToCompletionExecutionPolicy(restart RestartPolicy) (*RunToCompletionExecutionPolicy, error) {
	if err := validation.RequiredString("restart", string(restart)); err != nil {
		return nil, err
	}

	return &RunToCompletionExecutionPolicy{Restart: restart}, nil
}

func (p RunToCompletionExecutionPolicy) ExecutionPolicyType() ExecutionPolicyType {
	return ExecutionPolicyTypeRunToCompletion
}

func (p RunToCompletionExecutionPolicy) MarshalJSON() ([]byte, error) {
	type alias RunToCompletionExecutionPolicy
	return marshalKinded("type", string(p.ExecutionPolicyType()), alias(p))
}

var executionPolicyFamily = family[ExecutionPolicy]{
	name:          "ExecutionPolicy",
	discriminator: "type",
	variants: map[string]func() ExecutionPolicy{
		string(ExecutionPolicyTypeDefault):         func() ExecutionPolicy { return &DefaultExecutionPolicy{} },
		string(ExecutionPolicyTypeRunToCompletion): func() ExecutionPolicy { return &RunToCompletionExecutionPolicy{} },
	},
}

// UnmarshalExecutionPolicy decodes an execution policy payload into its concrete variant.
func UnmarshalExecutionPolicy(data []byte) (ExecutionPolicy, error) {
	return executionPolicyFamily.decode(data)
}
