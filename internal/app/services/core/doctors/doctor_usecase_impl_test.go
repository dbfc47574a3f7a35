package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, fileExtension string) (string, error) {
	args := m.Called(ctx, encodedImage, bucketName, fileName, fileExtension)
	return args.String(0), args.Error(1)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                   "doctors",
			DoctorImageMaxUploadSizeInMB: 1,
			DoctorImageAllowedFormatsCSV: ".png,.jpg,.jpeg",
		},
	}
}

func TestDoctorUsecase_CreateDoctorWithImage(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	storage.On("UploadBase64Image", ctx, mock.Anything, "doctors", mock.MatchedBy(func(fileName string) bool {
		return strings.HasPrefix(fileName, "doctor_") && strings.HasSuffix(fileName, ".png")
	}), ".png").Return("doctor_1.png", nil).Once()
	repo := new(MockDoctorRepository)
	repo.On("CreateDoctor", ctx, mock.MatchedBy(func(doctor *models.Doctor) bool {
		return doctor.Email == "who@x.com" && doctor.Image == "doctor_1.png" && !doctor.CreatedAt.IsZero()
	})).Return("doctor-id", nil).Once()

	result, err := NewDoctorUsecase(repo, storage, testConfig(), zap.NewNop()).CreateDoctor(ctx, &requests.CreateDoctor{
		Name:      "Dr. Who",
		Email:     "who@x.com",
		Specialty: "Dental",
		Image:     "data:image/png;base64,iVBORw0KGgo=",
	})

	require.NoError(t, err)
	assert.Equal(t, "doctor-id", result.InsertedID)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDoctorUsecase_CreateDoctorRejectsImage(t *testing.T) {
	ctx := context.Background()
	images := map[string]string{
		"not a data url":     "iVBORw0KGgo=",
		"format not allowed": "data:image/gif;base64,R0lGODlh",
	}

	for name, image := range images {
		t.Run(name, func(t *testing.T) {
			storage := new(MockStorage)
			repo := new(MockDoctorRepository)

			result, err := NewDoctorUsecase(repo, storage, testConfig(), zap.NewNop()).CreateDoctor(ctx, &requests.CreateDoctor{
				Name: "Dr. Who", Email: "who@x.com", Specialty: "Dental", Image: image,
			})

			assert.Nil(t, result)
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, 400, customErr.StatusCode)
			storage.AssertNotCalled(t, "UploadBase64Image", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
		})
	}
}

func TestDoctorUsecase_CreateDoctorWithoutImage(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)
	repo := new(MockDoctorRepository)
	repo.On("CreateDoctor", ctx, mock.AnythingOfType("*models.Doctor")).Return("doctor-id", nil)

	result, err := NewDoctorUsecase(repo, storage, testConfig(), zap.NewNop()).CreateDoctor(ctx, &requests.CreateDoctor{
		Name: "Dr. Who", Email: "who@x.com", Specialty: "Dental",
	})

	require.NoError(t, err)
	assert.Equal(t, "doctor-id", result.InsertedID)
	storage.AssertNotCalled(t, "UploadBase64Image", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDoctorUsecase_DeleteDoctorByEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDoctorRepository)
	repo.On("DeleteByEmail", ctx, "who@x.com").Return(int64(1), nil)

	result, err := NewDoctorUsecase(repo, new(MockStorage), testConfig(), zap.NewNop()).DeleteDoctorByEmail(ctx, "who@x.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}
