package s3

import (
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
	"github.com/ksysoev/htmlidx/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "htmlidx-test"

func newFakeClient(t *testing.T) *awss3.Client {
	t.Helper()

	backend := s3mem.New()
	faker := gofakes3.New(backend)
	srv := httptest.NewServer(faker.Server())
	t.Cleanup(srv.Close)

	client := awss3.New(awss3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		Credentials:  credentials.NewStaticCredentialsProvider("KEY", "SECRET", ""),
		UsePathStyle: true,
	})

	_, err := client.CreateBucket(t.Context(), &awss3.CreateBucketInput{Bucket: aws.String(testBucket)})
	require.NoError(t, err)

	return client
}

func TestStore_WriteReadRoundTrips(t *testing.T) {
	client := newFakeClient(t)
	s := NewWithClient(client, testBucket, "raw/docs")

	docs := []core.Doc{{Title: "Asio", Body: "networking", URL: "https://example/asio.html"}}

	require.NoError(t, s.Write(t.Context(), docs))

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestStore_WriteSkipsDelimiterInContentButKeepsRest(t *testing.T) {
	client := newFakeClient(t)
	s := NewWithClient(client, testBucket, "raw/mixed")

	err := s.Write(t.Context(), []core.Doc{
		{Title: "good", Body: "clean", URL: "https://example/good"},
		{Title: "bad\x03title", Body: "clean", URL: "https://example/bad"},
	})
	require.NoError(t, err)

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].Title)
}

func TestStore_ReadMissingObjectReturnsEmpty(t *testing.T) {
	client := newFakeClient(t)
	s := NewWithClient(client, testBucket, "raw/missing")

	got, err := s.Read(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
}
