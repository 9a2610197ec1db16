package redis

var (
	WaitReady    = waitReady
	ParseOptions = parseOptions
)
