package message

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// FrameMsg marks a repaint tick. Frame callbacks queued by the scroll throttle
// run when it arrives.
type FrameMsg struct{}
