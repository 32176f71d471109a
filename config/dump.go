package config

const redacted = "<redacted>"

// Dump encodes the loaded config with marshal, hiding credentials.
func Dump(marshal func(any) ([]byte, error)) ([]byte, error) {
	c := C()
	if c.Telegram.Token != "" {
		c.Telegram.Token = redacted
	}
	if c.Telegram.AppHash != "" {
		c.Telegram.AppHash = redacted
	}
	return marshal(c)
}
