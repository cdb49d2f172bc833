package topics

const (
	// Progresso de apostas ao vivo
	LiveProgressUpdates = "live_progress_updates"

	// DLQ
	LiveProgressUpdatesDLQ = "live_progress_updates_dlq"
)
