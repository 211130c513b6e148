// README: Human-readable trip code generator.
package trip

import "crypto/rand"

// codeAlphabet avoids visually ambiguous characters (0/O, 1/I/L).
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeLength = 6

// GenerateCode returns a short collision-resistant code such as "MW-7KQ2XN",
// generated once per trip and quoted in notification copy.
func GenerateCode() string {
	var b [codeLength]byte
	_, _ = rand.Read(b[:])
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return "MW-" + string(b[:])
}
