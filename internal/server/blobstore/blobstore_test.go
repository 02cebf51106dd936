package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	failPut bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut {
		return nil, errors.New("bucket unavailable")
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(v))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestInline(t *testing.T) {
	ctx := context.Background()
	var st Store = Inline{}

	ref, err := st.Put(ctx, "sealed")
	require.NoError(t, err)
	assert.Equal(t, "sealed", ref)

	got, err := st.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "sealed", got)

	_, err = st.Get(ctx, "s3:drawings/x")
	assert.ErrorIs(t, err, ErrUnknownRef)
	assert.NoError(t, st.Delete(ctx, ref))
}

func TestS3_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	st := newS3WithClient(fake, "sealnotes")
	st.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	ref, err := st.Put(ctx, "sealed-drawing")
	require.NoError(t, err)
	assert.True(t, IsS3Ref(ref))
	assert.True(t, strings.HasPrefix(ref, "s3:drawings/2025/3/1/"), ref)

	got, err := st.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "sealed-drawing", got)

	require.NoError(t, st.Delete(ctx, ref))
	_, err = st.Get(ctx, ref)
	assert.Error(t, err)
}

func TestS3_InlineValuesPassThrough(t *testing.T) {
	ctx := context.Background()
	st := newS3WithClient(newFakeS3(), "b")

	got, err := st.Get(ctx, "legacy-inline")
	require.NoError(t, err)
	assert.Equal(t, "legacy-inline", got)
	assert.NoError(t, st.Delete(ctx, "legacy-inline"))
}

func TestS3_PutError(t *testing.T) {
	fake := newFakeS3()
	fake.failPut = true
	st := newS3WithClient(fake, "b")

	_, err := st.Put(context.Background(), "x")
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestNewS3(t *testing.T) {
	st, err := NewS3(context.Background(), S3Config{
		AccessKey: "a", SecretKey: "s", Bucket: "b", Region: "us-east-1", BaseEndpoint: "http://127.0.0.1:9000/",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", st.bucket)
	assert.NotNil(t, st.client)
}
