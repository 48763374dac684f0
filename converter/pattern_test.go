package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	for _, tc := range []struct {
		ext  string
		want string
	}{
		{ext: "txt", want: "txt$"},
		{ext: "conf.*", want: "conf..*$"},
		{ext: "*.conf", want: ".*.conf$"},
		{ext: "*.*rc", want: ".*.*rc$"},
		{ext: "a*b*c", want: "a.*b*c$"},
		{ext: "", want: "$"},
	} {
		assert.Equal(t, tc.want, Pattern(tc.ext), "ext %q", tc.ext)
	}
}
