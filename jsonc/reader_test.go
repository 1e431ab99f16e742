package jsonc_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc"
)

// readAllWith reads r to the end using a buffer of size n.
func readAllWith(r io.Reader, n int) ([]byte, error) {
	var out []byte
	p := make([]byte, n)
	for {
		m, err := r.Read(p)
		out = append(out, p[:m]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if m == 0 {
			return out, errors.New("zero-length read before end of input")
		}
	}
}

func TestReader(t *testing.T) {
	sources := map[string]func(string) io.Reader{
		"whole":   func(s string) io.Reader { return strings.NewReader(s) },
		"onebyte": func(s string) io.Reader { return iotest.OneByteReader(strings.NewReader(s)) },
		"dataerr": func(s string) io.Reader { return iotest.DataErrReader(strings.NewReader(s)) },
		"half":    func(s string) io.Reader { return iotest.HalfReader(strings.NewReader(s)) },
	}
	for name, src := range sources {
		for _, size := range []int{1, 2, 3, 512} {
			for _, tt := range stripTests {
				got, err := readAllWith(jsonc.NewReader(src(tt.in)), size)
				require.NoError(t, err, "%s/%d/%s", name, size, tt.name)
				assert.Equal(t, tt.want, string(got), "%s/%d/%s", name, size, tt.name)
			}
		}
	}
}

func TestReader_IOTest(t *testing.T) {
	const in = "{\"a\": 1, // c\n\"b\": \"/* s */\" /* x */ }"
	want, err := jsonc.StripString(in)
	require.NoError(t, err)
	require.NoError(t, iotest.TestReader(jsonc.NewReader(strings.NewReader(in)), []byte(want)))
}

func TestReader_LongComment(t *testing.T) {
	in := "/*" + strings.Repeat("a\n", 10000) + "*/1" + "# " + strings.Repeat("b", 10000)
	r := jsonc.NewReader(strings.NewReader(in))
	p := make([]byte, 8)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "1", string(p[:n]))
	n, err = r.Read(p)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)
}

func TestReader_CarryAcrossReads(t *testing.T) {
	r := jsonc.NewReader(strings.NewReader("1/x"))
	p := make([]byte, 1)
	var got []string
	for {
		n, err := r.Read(p)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, 1, n)
		got = append(got, string(p[:n]))
	}
	assert.Equal(t, []string{"1", "/", "x"}, got)
}

func TestReader_TrailingSlash(t *testing.T) {
	got, err := io.ReadAll(jsonc.NewReader(strings.NewReader("[1] /")))
	require.NoError(t, err)
	assert.Equal(t, "[1] /", string(got))
}

func TestReader_Unterminated(t *testing.T) {
	r := jsonc.NewReader(strings.NewReader("1 /* unterminated"), jsonc.Filename("cfg.jsonc"))
	got, err := io.ReadAll(r)
	assert.Equal(t, "1 ", string(got))
	require.Error(t, err)
	assert.True(t, errors.Is(err, jsonc.ErrUnterminatedBlockComment))
	assert.Equal(t, "cfg.jsonc:1:3: jsonc: unterminated block comment", err.Error())

	// sticky
	n, err2 := r.Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	assert.Equal(t, err, err2)
}

func TestReader_SourceError(t *testing.T) {
	boom := errors.New("boom")
	r := jsonc.NewReader(iotest.ErrReader(boom))
	n, err := r.Read(make([]byte, 4))
	assert.Equal(t, 0, n)
	var se *jsonc.SourceError
	require.True(t, errors.As(err, &se))
	assert.True(t, errors.Is(err, boom))
	_, err2 := r.Read(make([]byte, 4))
	assert.Equal(t, err, err2)
}

func TestReader_Timeout(t *testing.T) {
	r := jsonc.NewReader(iotest.TimeoutReader(iotest.OneByteReader(strings.NewReader("12"))))
	p := make([]byte, 4)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "1", string(p[:n]))
	_, err = r.Read(p)
	assert.True(t, errors.Is(err, iotest.ErrTimeout))
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, nil }

func TestReader_NoProgress(t *testing.T) {
	_, err := jsonc.NewReader(emptyReader{}).Read(make([]byte, 1))
	assert.True(t, errors.Is(err, io.ErrNoProgress))
}

func TestReader_EmptyBuffer(t *testing.T) {
	r := jsonc.NewReader(strings.NewReader("1"))
	n, err := r.Read(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
}

func TestReader_StateAndPos(t *testing.T) {
	r := jsonc.NewReader(strings.NewReader("1\n// x"), jsonc.Filename("a.json"))
	assert.Equal(t, jsonc.Normal, r.State())
	_, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, jsonc.LineComment, r.State())
	assert.Equal(t, jsonc.Position{Filename: "a.json", Offset: 6, Line: 2, Column: 5}, r.Pos())
	assert.Equal(t, "a.json:2:5", r.Pos().String())
}

func TestReader_ConsumesOnlyWhatFits(t *testing.T) {
	src := strings.NewReader("1 " + strings.Repeat("x", 10000))
	r := jsonc.NewReader(src)
	p := make([]byte, 1)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "1", string(p[:n]))
	assert.Equal(t, int64(1), src.Size()-int64(src.Len()))

	// the rest of the source is still there for a direct reader
	src = strings.NewReader("12/*c*/345")
	r = jsonc.NewReader(src)
	p = make([]byte, 2)
	n, err = r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, "12", string(p[:n]))
	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "/*c*/345", string(rest))
}

func TestReader_HeldSlashWithOneByteBuffer(t *testing.T) {
	// the '/' held at the end of one read is released with the next byte
	src := strings.NewReader("1/2")
	r := jsonc.NewReader(src)
	got, err := readAllWith(r, 2)
	require.NoError(t, err)
	assert.Equal(t, "1/2", string(got))

	r = jsonc.NewReader(iotest.OneByteReader(strings.NewReader(`"a"/"b"/#c`)))
	got, err = readAllWith(r, 1)
	require.NoError(t, err)
	assert.Equal(t, `"a"/"b"/`, string(got))
}
