package login

const (
	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "the SmartLMS username"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the SmartLMS password"
)
