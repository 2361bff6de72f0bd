package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/render"
	"github.com/vango-dev/tagkit/pkg/style"
	"github.com/vango-dev/tagkit/pkg/tag"
)

type putCall struct {
	bucket, key, contentType string
	body                     []byte
}

type fakeS3 struct {
	calls []putCall
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, putCall{
		bucket:      aws.ToString(in.Bucket),
		key:         aws.ToString(in.Key),
		contentType: aws.ToString(in.ContentType),
		body:        body,
	})
	return &s3.PutObjectOutput{}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleanName(t *testing.T) {
	for in, want := range map[string]string{
		"index.html":       "index.html",
		"a/./b.html":       "a/b.html",
		"a/../b.css":       "b.css",
		"blog/post/x.html": "blog/post/x.html",
	} {
		got, err := CleanName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "/etc/passwd", "..", "../x", "a/../../x", `a\b`, "."} {
		_, err := CleanName(in)
		assert.ErrorIs(t, err, tag.ErrUsage, in)
	}
}

func TestDirSink(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewDirSink(filepath.Join(dir, "out"))
	require.NoError(t, err)

	loc, err := sink.Put(context.Background(), "css/site.css", "text/css", []byte("p {}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "css", "site.css"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "p {}", string(data))

	_, err = sink.Put(context.Background(), "../escape", "", nil)
	assert.ErrorIs(t, err, tag.ErrUsage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Put(ctx, "late.html", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3Sink(t *testing.T) {
	client := &fakeS3{}
	sink := NewS3Sink(client, "bucket", "site/")

	loc, err := sink.Put(context.Background(), "index.html", "text/html", []byte("<p></p>"))
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/site/index.html", loc)
	require.Len(t, client.calls, 1)
	assert.Equal(t, putCall{bucket: "bucket", key: "site/index.html", contentType: "text/html", body: []byte("<p></p>")}, client.calls[0])

	boom := errors.New("access denied")
	_, err = NewS3Sink(&fakeS3{err: boom}, "b", "").Put(context.Background(), "x", "", nil)
	assert.ErrorIs(t, err, boom)
}

func TestExporter(t *testing.T) {
	client := &fakeS3{}
	ex := New(Config{
		Sink:     NewS3Sink(client, "b", ""),
		Renderer: render.NewRenderer(render.RendererConfig{Logger: quietLogger(), OmitHTMX: true}),
		Logger:   quietLogger(),
	})
	ctx := context.Background()

	_, err := ex.Page(ctx, "index.html", tag.Html(tag.Body("hi")))
	require.NoError(t, err)
	_, err = ex.Fragment(ctx, "part.html", tag.P("x"))
	require.NoError(t, err)
	_, err = ex.StyleSheet(ctx, "site.css", style.New(style.Sel("p", style.Decl("margin", 0))))
	require.NoError(t, err)

	require.Len(t, client.calls, 3)
	assert.Equal(t, "<html><body>hi</body></html>", string(client.calls[0].body))
	assert.Equal(t, "text/html; charset=utf-8", client.calls[0].contentType)
	assert.Equal(t, "<p>x</p>", string(client.calls[1].body))
	assert.Equal(t, "p {\n    margin: 0 px;\n}\n", string(client.calls[2].body))
	assert.Equal(t, "text/css; charset=utf-8", client.calls[2].contentType)
}

func TestExporterErrors(t *testing.T) {
	client := &fakeS3{}
	var logs bytes.Buffer
	ex := New(Config{Sink: NewS3Sink(client, "b", ""), Logger: slog.New(slog.NewTextHandler(&logs, nil))})
	ctx := context.Background()

	_, err := ex.Fragment(ctx, "x.html", tag.Div(1i))
	assert.ErrorIs(t, err, tag.ErrUnrenderable)

	_, err = ex.StyleSheet(ctx, "x.css", style.New(style.Decl("color", "red")))
	assert.ErrorIs(t, err, style.ErrValidation)

	_, err = ex.StyleSheet(ctx, "x.css", nil)
	assert.ErrorIs(t, err, style.ErrUnrenderable)

	_, err = ex.Fragment(ctx, "/abs.html", tag.P())
	assert.ErrorIs(t, err, tag.ErrUsage)
	assert.Contains(t, logs.String(), "export failed")

	assert.Empty(t, client.calls)
	assert.Panics(t, func() { New(Config{}) })
}

type failingSink struct{ err error }

func (f failingSink) Put(context.Context, string, string, []byte) (string, error) {
	return "", f.err
}

func TestExporterWrapsSinkErrors(t *testing.T) {
	boom := errors.New("disk full")
	var logs bytes.Buffer
	ex := New(Config{Sink: failingSink{err: boom}, Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	_, err := ex.Fragment(context.Background(), "part.html", tag.P("x"))
	require.Error(t, err)
	assert.Equal(t, "E002", tkerrors.Code(err))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, logs.String(), "E002")

	// Coded sink errors pass through unchanged.
	coded := tkerrors.New("E002").WithDetail("writing part.html")
	_, err = New(Config{Sink: failingSink{err: coded}, Logger: quietLogger()}).
		Fragment(context.Background(), "part.html", tag.P("x"))
	var te *tkerrors.Error
	require.ErrorAs(t, err, &te)
	assert.Same(t, coded, te)
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	_, err := EnvCredentials().Retrieve(context.Background())
	assert.Error(t, err)

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "tok")
	creds, err := EnvCredentials().Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "tok", creds.SessionToken)
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(S3Options{Region: "eu-west-1", Endpoint: "http://localhost:9000", PathStyle: true})
	opts := client.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}
