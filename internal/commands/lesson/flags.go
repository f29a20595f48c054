package lesson

const (
	flagModule      = "module"
	flagModuleUsage = "the id of the module to add the lesson to"

	flagTitle      = "title"
	flagTitleUsage = "the lesson title"

	flagContent      = "content"
	flagContentUsage = "the lesson content"

	flagVideoURL      = "video-url"
	flagVideoURLUsage = "an optional lesson video URL"

	flagOrder      = "order"
	flagOrderUsage = "the position of the lesson within the module"

	flagID = "id"
)
