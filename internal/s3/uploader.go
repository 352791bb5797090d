// Package s3 предоставляет функционал для публикации файлов с текстами в Amazon S3
package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ContentType тип содержимого файлов .rr.json
const ContentType = "application/json; charset=utf-8"

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
	Prefix     string // Префикс ключей, например "lyrics/"
}

// ObjectUploader часть s3manager.Uploader, которой пользуется Uploader
type ObjectUploader interface {
	UploadWithContext(ctx context.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// ObjectClient часть клиента S3, которой пользуется Uploader
type ObjectClient interface {
	DeleteObjectWithContext(ctx context.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
}

// Uploader обертка для S3 uploader
type Uploader struct {
	s3Uploader ObjectUploader
	s3Client   ObjectClient
	config     *Config
}

// NewUploader создает новый S3 uploader
func NewUploader(config *Config) (*Uploader, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return NewUploaderWithClients(config, s3manager.NewUploader(sess), s3.New(sess)), nil
}

// NewUploaderWithClients создает uploader поверх готовых клиентов
func NewUploaderWithClients(config *Config, uploader ObjectUploader, client ObjectClient) *Uploader {
	return &Uploader{
		s3Uploader: uploader,
		s3Client:   client,
		config:     config,
	}
}

// Key возвращает ключ объекта с учетом префикса
func (u *Uploader) Key(name string) string {
	prefix := strings.Trim(u.config.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// UploadFile загружает файл в S3 под ключом с префиксом и возвращает его URL
func (u *Uploader) UploadFile(ctx context.Context, reader io.Reader, name string) (string, error) {
	key := u.Key(name)
	_, err := u.s3Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.config.BucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(ContentType),
	})

	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return u.ObjectURL(key), nil
}

// ObjectURL формирует URL объекта
func (u *Uploader) ObjectURL(key string) string {
	endpoint := u.config.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", u.config.Region)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(endpoint, "/"), u.config.BucketName, key)
}

// DeleteFile удаляет файл из S3
func (u *Uploader) DeleteFile(ctx context.Context, name string) error {
	_, err := u.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(u.Key(name)),
	})

	if err != nil {
		return fmt.Errorf("ошибка удаления файла из S3: %w", err)
	}

	return nil
}
