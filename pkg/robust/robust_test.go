package robust

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestPrintInvalidUTF8(t *testing.T) {
	msg := "ok\xff\xfe done"
	require.False(t, utf8.ValidString(msg))
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Accept(msg)))
	require.Equal(t, []byte(msg), buf.Bytes())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintError(t *testing.T) {
	err := Print(failWriter{}, Accept("x"))
	require.EqualError(t, err, "robust print: closed")
}

func TestRunesAndNthRune(t *testing.T) {
	cases := []struct {
		in   string
		want []rune
	}{
		{"", nil},
		{"abc", []rune("abc")},
		{"héllo", []rune("héllo")},
		{"\xffa\xe2\x82b", []rune("ab")},
		{"\xe2\x82\xac\xff€", []rune("€€")},
		{"\xef\xbf\xbd", []rune{utf8.RuneError}},
		{"\xff\xfe", nil},
	}
	for _, tc := range cases {
		s := Accept(tc.in)
		require.Equal(t, len(tc.want), Runes(s), "%q", tc.in)
		for i, want := range tc.want {
			idx, ok := Index(s, i)
			require.True(t, ok)
			require.Equal(t, want, NthRune(s, idx), "%q[%d]", tc.in, i)
		}
		_, ok := Index(s, len(tc.want))
		require.False(t, ok)
		_, ok = Index(s, -1)
		require.False(t, ok)
	}
}

func FuzzNthRune(f *testing.F) {
	f.Add("hello")
	f.Add("\xff\xfe€a")
	f.Fuzz(func(t *testing.T, s string) {
		c := Accept(s)
		n := Runes(c)
		if utf8.ValidString(s) {
			require.Equal(t, utf8.RuneCountInString(s), n)
		}
		for i := 0; i < n; i++ {
			idx, ok := Index(c, i)
			require.True(t, ok)
			r := NthRune(c, idx)
			if utf8.ValidString(s) {
				require.Equal(t, []rune(s)[i], r)
			}
		}
	})
}
