package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hiring-backend/config"
	"hiring-backend/db"
	filestore "hiring-backend/lib/file-storage/store"
	"hiring-backend/models"
	dbmodels "hiring-backend/models/db"
	s3client "hiring-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, applicantID string, fileType dbmodels.FileType, fileName, contentType string, file []byte) (fileID string, err error)
	Download(ctx context.Context, fileID string) (rec *dbmodels.FileRecord, body []byte, err error)
	GetResume(ctx context.Context, applicantID string) (rec *dbmodels.FileRecord, body []byte, err error)
	List(applicantID string, fileType dbmodels.FileType) ([]dbmodels.FileRecord, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		store:    filestore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filestore.Provider
}

func (i impl) Upload(ctx context.Context, applicantID string, fileType dbmodels.FileType, fileName, contentType string, file []byte) (fileID string, err error) {
	if i.s3client == nil {
		return "", errors.New("file storage is not configured")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("applicants/%s/%s-%s", applicantID, uuid.NewString(), fileName)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload object")
	}
	return i.store.Create(dbmodels.FileRecord{
		ApplicantID: applicantID,
		FileType:    fileType,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
	})
}

func (i impl) Download(ctx context.Context, fileID string) (rec *dbmodels.FileRecord, body []byte, err error) {
	rec, err = i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.NewNotFound("file not found")
	}
	body, err = i.getObject(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) GetResume(ctx context.Context, applicantID string) (rec *dbmodels.FileRecord, body []byte, err error) {
	rec, err = i.store.GetResume(applicantID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.NewNotFound("resume not found")
	}
	body, err = i.getObject(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) List(applicantID string, fileType dbmodels.FileType) ([]dbmodels.FileRecord, error) {
	return i.store.ListByApplicant(applicantID, fileType)
}

func (i impl) EnsureBucket(ctx context.Context) error {
	if i.s3client == nil {
		return nil
	}
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) getObject(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("file storage is not configured")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch object")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object body")
	}
	return body, nil
}
