package core

import (
	"errors"

	"github.com/zeu5/bandit-testbed/policies"
)

var (
	ErrInvalidActionIndex = errors.New("invalid action index")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrDegenerateUCBState = policies.ErrDegenerateUCBState
)
