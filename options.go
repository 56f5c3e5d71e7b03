package brush

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := brush.NewSession(pm,
//	    brush.WithColor(brush.Red),
//	    brush.WithOpacity(0.5),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	stamper     StamperConfig
	color       RGB
	opacity     float32
	mode        BlendMode
	terminalDab bool
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		stamper: DefaultStamperConfig(),
		color:   Black,
		opacity: 1,
		mode:    BlendNormal,
	}
}

// WithStamperConfig sets the dab emission parameters.
func WithStamperConfig(cfg StamperConfig) SessionOption {
	return func(o *sessionOptions) {
		o.stamper = cfg
	}
}

// WithColor sets the paint color.
func WithColor(c RGB) SessionOption {
	return func(o *sessionOptions) {
		o.color = c.Clamp()
	}
}

// WithOpacity sets the stroke opacity ceiling, clamped to [0, 1].
func WithOpacity(opacity float32) SessionOption {
	return func(o *sessionOptions) {
		o.opacity = clamp01(opacity)
	}
}

// WithBlendMode sets the mode used to merge strokes into the target.
func WithBlendMode(m BlendMode) SessionOption {
	return func(o *sessionOptions) {
		o.mode = m
	}
}

// WithTerminalDab makes every stroke end with a dab at its last sample.
func WithTerminalDab(enabled bool) SessionOption {
	return func(o *sessionOptions) {
		o.terminalDab = enabled
	}
}
