package config

type Error struct {
	reason string
}

func (e Error) Error() string {
	return "config error: " + e.reason
}
