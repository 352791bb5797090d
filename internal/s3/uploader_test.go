package s3

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// MockS3Uploader мок для S3 uploader
type MockS3Uploader struct {
	uploadFunc func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error)
}

func (m *MockS3Uploader) UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return m.uploadFunc(input)
}

// MockS3Client мок для S3 клиента
type MockS3Client struct {
	deleteObjectFunc func(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
}

func (m *MockS3Client) DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error) {
	return m.deleteObjectFunc(input)
}

func testConfig() *Config {
	return &Config{
		Region:     "us-east-1",
		AccessKey:  "test-access-key",
		SecretKey:  "test-secret-key",
		Endpoint:   "https://s3.amazonaws.com",
		BucketName: "test-bucket",
	}
}

// TestSuccessfulUpload тестирует успешную загрузку файла в S3
func TestSuccessfulUpload(t *testing.T) {
	mockUploader := &MockS3Uploader{
		uploadFunc: func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
			if aws.StringValue(input.Bucket) != "test-bucket" {
				t.Errorf("Ожидался bucket: test-bucket, получено: %s", aws.StringValue(input.Bucket))
			}
			if aws.StringValue(input.Key) != "lyrics.rr.json" {
				t.Errorf("Ожидался key: lyrics.rr.json, получено: %s", aws.StringValue(input.Key))
			}
			if aws.StringValue(input.ContentType) != ContentType {
				t.Errorf("Ожидался ContentType: %s, получено: %s", ContentType, aws.StringValue(input.ContentType))
			}

			body, err := io.ReadAll(input.Body)
			if err != nil {
				t.Errorf("Ошибка чтения тела запроса: %v", err)
			}
			if string(body) != `{}` {
				t.Errorf("Ожидалось содержимое: {}, получено: %s", string(body))
			}

			return &s3manager.UploadOutput{}, nil
		},
	}

	uploader := NewUploaderWithClients(testConfig(), mockUploader, &MockS3Client{})

	url, err := uploader.UploadFile(context.Background(), strings.NewReader(`{}`), "lyrics.rr.json")
	if err != nil {
		t.Fatalf("Неожиданная ошибка при загрузке: %v", err)
	}

	expectedURL := "https://s3.amazonaws.com/test-bucket/lyrics.rr.json"
	if url != expectedURL {
		t.Errorf("Ожидался URL: %s, получено: %s", expectedURL, url)
	}
}

// TestUploadErrorHandling тестирует обработку ошибок при загрузке
func TestUploadErrorHandling(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"InvalidCredentials", awserr.New("InvalidAccessKeyId", "The AWS Access Key Id you provided does not exist in our records.", nil)},
		{"NetworkError", awserr.New("RequestTimeout", "Request timeout", nil)},
		{"BucketAccessError", awserr.New("AccessDenied", "Access Denied", nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUploader := &MockS3Uploader{
				uploadFunc: func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
					return nil, tc.err
				},
			}

			uploader := NewUploaderWithClients(testConfig(), mockUploader, &MockS3Client{})
			_, err := uploader.UploadFile(context.Background(), strings.NewReader("{}"), "lyrics.rr.json")

			if err == nil {
				t.Fatal("Ожидалась ошибка при загрузке")
			}
			if !strings.Contains(err.Error(), "ошибка загрузки") {
				t.Errorf("Неожиданное сообщение об ошибке: %v", err)
			}
		})
	}
}

// TestKeyPrefix тестирует формирование ключа объекта с префиксом
func TestKeyPrefix(t *testing.T) {
	testCases := []struct {
		name        string
		prefix      string
		inputName   string
		expectedKey string
	}{
		{"NoPrefix", "", "lyrics.rr.json", "lyrics.rr.json"},
		{"PrefixWithSlash", "albums/", "lyrics.rr.json", "albums/lyrics.rr.json"},
		{"PrefixWithoutSlash", "albums", "lyrics.rr.json", "albums/lyrics.rr.json"},
		{"NestedPrefix", "/a/b/", "歌詞.rr.json", "a/b/歌詞.rr.json"},
		{"NameWithSpaces", "", "my album.rr.json", "my album.rr.json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := testConfig()
			config.Prefix = tc.prefix

			var receivedKey string
			mockUploader := &MockS3Uploader{
				uploadFunc: func(input *s3manager.UploadInput) (*s3manager.UploadOutput, error) {
					receivedKey = aws.StringValue(input.Key)
					return &s3manager.UploadOutput{}, nil
				},
			}

			uploader := NewUploaderWithClients(config, mockUploader, &MockS3Client{})
			url, err := uploader.UploadFile(context.Background(), strings.NewReader("{}"), tc.inputName)
			if err != nil {
				t.Fatalf("Ошибка при загрузке: %v", err)
			}

			if receivedKey != tc.expectedKey {
				t.Errorf("Ожидался ключ: %s, получено: %s", tc.expectedKey, receivedKey)
			}
			if !strings.HasSuffix(url, "/test-bucket/"+tc.expectedKey) {
				t.Errorf("Неожиданный URL: %s", url)
			}
		})
	}
}

func TestObjectURLWithoutEndpoint(t *testing.T) {
	config := testConfig()
	config.Endpoint = ""
	config.Region = "eu-west-1"

	uploader := NewUploaderWithClients(config, &MockS3Uploader{}, &MockS3Client{})
	url := uploader.ObjectURL("lyrics.rr.json")

	expectedURL := "https://s3.eu-west-1.amazonaws.com/test-bucket/lyrics.rr.json"
	if url != expectedURL {
		t.Errorf("Ожидался URL: %s, получено: %s", expectedURL, url)
	}
}

// TestNewUploader тестирует создание нового uploader
func TestNewUploader(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		uploader, err := NewUploader(testConfig())
		if err != nil {
			t.Fatalf("Неожиданная ошибка при создании uploader: %v", err)
		}
		if uploader.s3Uploader == nil || uploader.s3Client == nil {
			t.Error("Ожидались инициализированные клиенты S3")
		}
	})

	t.Run("ConfigWithoutEndpoint", func(t *testing.T) {
		config := testConfig()
		config.Endpoint = ""

		if _, err := NewUploader(config); err != nil {
			t.Errorf("Неожиданная ошибка при создании uploader без endpoint: %v", err)
		}
	})
}

// TestDeleteFile тестирует удаление файла
func TestDeleteFile(t *testing.T) {
	t.Run("SuccessfulDelete", func(t *testing.T) {
		config := testConfig()
		config.Prefix = "albums"

		mockClient := &MockS3Client{
			deleteObjectFunc: func(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
				if aws.StringValue(input.Bucket) != "test-bucket" {
					t.Errorf("Ожидался bucket: test-bucket, получено: %s", aws.StringValue(input.Bucket))
				}
				if aws.StringValue(input.Key) != "albums/lyrics.rr.json" {
					t.Errorf("Ожидался key: albums/lyrics.rr.json, получено: %s", aws.StringValue(input.Key))
				}
				return &s3.DeleteObjectOutput{}, nil
			},
		}

		uploader := NewUploaderWithClients(config, &MockS3Uploader{}, mockClient)
		if err := uploader.DeleteFile(context.Background(), "lyrics.rr.json"); err != nil {
			t.Errorf("Неожиданная ошибка при удалении: %v", err)
		}
	})

	t.Run("DeleteError", func(t *testing.T) {
		mockClient := &MockS3Client{
			deleteObjectFunc: func(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
				return nil, awserr.New("NoSuchKey", "The specified key does not exist.", nil)
			},
		}

		uploader := NewUploaderWithClients(testConfig(), &MockS3Uploader{}, mockClient)
		err := uploader.DeleteFile(context.Background(), "missing.rr.json")

		if err == nil {
			t.Fatal("Ожидалась ошибка при удалении")
		}
		if !strings.Contains(err.Error(), "ошибка удаления файла из S3") {
			t.Errorf("Неожиданное сообщение об ошибке: %v", err)
		}
	})
}
