package api

import (
	"github.com/lyraproj/dgo/dgo"
)

// An Explainer collects information about a resolution and can present it in the form of a
// human readable explanation of each attempted search step and its outcome.
type Explainer interface {
	dgo.Value
	dgo.Indentable

	// AcceptFound accepts that the current step produced the given address
	AcceptFound(address Address)

	// AcceptNotFound accepts that the current step produced nothing
	AcceptNotFound()

	// AcceptText accepts arbitrary text to be injected into the explanation
	AcceptText(text string)

	// PushStep pushes a node for an attempted search step
	PushStep(step, basePath, name string)

	// Pop pops an explainer node from the stack of explanations
	Pop()
}
