package inktouch

import (
	"os"

	"github.com/google/shlex"
)

func GetEnv(name string, defaultValue string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return defaultValue
	}
	return value
}

// SplitArgs splits a shell-quoted argument string, such as one baked into a
// TinyGo build with -ldflags "-X main.args=...", into separate arguments.
func SplitArgs(s string) ([]string, error) {
	return shlex.Split(s)
}
