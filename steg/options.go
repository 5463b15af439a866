package steg

// codec carries the embedding settings shared by Embed and Extract.
type codec struct {
	sublayer   int
	passphrase string
}

func defaultCodec() *codec {
	return &codec{}
}

// Options configures Embed and Extract. Both sides must use the same
// options to agree on where and how the message is stored.
type Options func(c *codec)

// WithSublayer selects the bit plane carrying the message. The default is
// 0, the least significant bit of every channel byte; higher planes leave
// progressively more visible artifacts.
func WithSublayer(sublayer int) Options {
	return func(c *codec) {
		c.sublayer = sublayer
	}
}

// WithPassphrase seals the message with a key derived from the passphrase
// before embedding, and unseals it after extraction. The empty passphrase
// disables sealing.
func WithPassphrase(passphrase string) Options {
	return func(c *codec) {
		c.passphrase = passphrase
	}
}
