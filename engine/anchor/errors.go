package anchor

import (
	"errors"

	"github.com/npillmayer/anchorlayout/core"
)

// Errors of the layout engine. They are wrapped into coded errors, see
// package core.
var (
	ErrUnresolvedTarget = errors.New("link target not found")
	ErrFrameMismatch    = errors.New("link target is in a different coordinate frame")
	ErrInvalidSelector  = errors.New("invalid target selector")
)

func unresolvedTarget(a *Anchor, t TargetRef) error {
	return core.WrapError(ErrUnresolvedTarget, core.EMISSING,
		"%s: no element for target %s", a, t)
}

func frameMismatch(a *Anchor) error {
	return core.WrapError(ErrFrameMismatch, core.EMISMATCH,
		"%s -> %s: anchors must be in the same coordinate frame", a, a.target)
}

func invalidSelector(a *Anchor, err error) error {
	return core.WrapError(errors.Join(ErrInvalidSelector, err), core.EINVALID,
		"%s: %s", a, core.UserMessage(err))
}
