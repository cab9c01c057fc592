package simulation

// ==================== Limits ====================

const (
	// DefaultMaxEpisodes bounds a single plan when no limit is configured
	DefaultMaxEpisodes = 100000
	// MaxPlanActions bounds the action sequence of one plan
	MaxPlanActions = 256
)

// ==================== Log Messages ====================

const (
	LogMsgBatchStarted   = "Batch simulation started"
	LogMsgBatchCompleted = "Batch simulation completed"
	LogMsgBatchFailed    = "Batch simulation failed"
)

// ==================== Error Messages ====================

const (
	ErrMsgNilItem           = "plan has no item"
	ErrMsgNoActions         = "plan has no actions"
	ErrMsgTooManyActionsFmt = "plan has %d actions (max %d)"
	ErrMsgEpisodesRangeFmt  = "episodes must be in [1, %d], got %d"
	ErrMsgUnknownActionFmt  = "step %d: unknown action %q: %w"
	ErrMsgEpisodeFailedFmt  = "episode %d step %d (%s): %w"
	ErrMsgEnqueueFailed     = "failed to schedule episode: %w"
)
