package s3

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImagePresigner hands out short-lived PUT URLs so clients upload profile
// images straight to the bucket instead of through this service.
type ImagePresigner struct {
	presignClient *s3.PresignClient
	endpoint      string
	bucketName    string
}

func NewImagePresigner() (*ImagePresigner, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("AWS_REGION")
	bucketName := os.Getenv("S3_BUCKET_NAME")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	usePathStyle := os.Getenv("S3_USE_PATH_STYLE") == "true"

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               endpoint,
			SigningRegion:     region,
			HostnameImmutable: true,
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(region),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)

	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})

	return &ImagePresigner{
		presignClient: s3.NewPresignClient(s3Client),
		endpoint:      strings.TrimRight(endpoint, "/"),
		bucketName:    bucketName,
	}, nil
}

// PresignedUploadURL returns the URL to PUT the object to and the public URL
// the object will be readable at afterwards.
func (p *ImagePresigner) PresignedUploadURL(objectKey string) (uploadURL string, finalURL string, err error) {
	request, err := p.presignClient.PresignPutObject(
		context.TODO(),
		&s3.PutObjectInput{
			Bucket: aws.String(p.bucketName),
			Key:    aws.String(objectKey),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)

	if err != nil {
		return "", "", err
	}

	return request.URL, p.endpoint + "/" + p.bucketName + "/" + objectKey, nil
}
