package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	MinioStorage     contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
		MinioStorage:     minioStorage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
	}
	doctor.SetCreatedAtUpdatedAt()

	if request.Image != "" {
		objectName, err := uc.uploadImage(ctx, requestID, request.Image)
		if err != nil {
			return nil, err
		}
		doctor.Image = objectName
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.InsertResult{InsertedID: doctorID}, nil
}

func (uc *doctorUsecase) uploadImage(ctx context.Context, requestID, encodedImage string) (string, error) {
	data, ext, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	allowedFormats := strings.Split(uc.InternalConfig.Minio.DoctorImageAllowedFormatsCSV, ",")
	err = utils.ValidateImageFormat(ext, allowedFormats)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	err = utils.ValidateImageSize(data, uc.InternalConfig.Minio.DoctorImageMaxUploadSizeInMB)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	fileName := utils.GenerateFileName(constvars.DoctorImageObjectPrefix, uuid.NewString(), ext)
	objectName, err := uc.MinioStorage.UploadBase64Image(ctx, data, bucketName, fileName, ext)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeObjectStore),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return "", err
	}
	return objectName, nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.ListDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctors, nil
}

func (uc *doctorUsecase) DeleteDoctorByEmail(ctx context.Context, email string) (*responses.DeleteResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctorByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	deleted, err := uc.DoctorRepository.DeleteByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctorByEmail error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.DeleteDoctorByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDeletedCountKey, deleted),
	)
	return &responses.DeleteResult{DeletedCount: deleted}, nil
}
