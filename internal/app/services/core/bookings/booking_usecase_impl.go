package bookings

import (
	"context"
	"crypto/sha256"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	AccessPolicy      contracts.AccessPolicy
	IdempotencyStore  contracts.IdempotencyStore
	BookingNotifier   contracts.BookingNotifier
	Log               *zap.Logger
}

// NewBookingUsecase wires the registry. idempotencyStore and bookingNotifier may be nil.
func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	accessPolicy contracts.AccessPolicy,
	idempotencyStore contracts.IdempotencyStore,
	bookingNotifier contracts.BookingNotifier,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		AccessPolicy:      accessPolicy,
		IdempotencyStore:  idempotencyStore,
		BookingNotifier:   bookingNotifier,
		Log:               logger,
	}
}

// CreateBooking stores the booking unless one already exists for the same
// treatment, date and patient, in which case the stored one is returned with
// Success false. The slot is not part of that key.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if request.IdempotencyKey != "" && uc.IdempotencyStore != nil {
		record := new(models.IdempotencyRecord)
		found, err := uc.IdempotencyStore.Lookup(ctx, request.IdempotencyKey, record)
		if err != nil {
			uc.Log.Error("bookingUsecase.CreateBooking error reading idempotency record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeCache),
				zap.Error(err),
			)
			return nil, err
		}
		if found {
			if record.Fingerprint != requestFingerprint(request) || record.Result == nil {
				uc.Log.Warn("bookingUsecase.CreateBooking idempotency key reused for a different request",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeConflict),
				)
				return nil, exceptions.ErrIdempotencyKeyReused(nil)
			}
			uc.Log.Info("bookingUsecase.CreateBooking replayed idempotent response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return record.Result, nil
		}
	}

	existing, err := uc.BookingRepository.FindByKey(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error checking existing booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return uc.conflict(ctx, requestID, request, existing), nil
	}

	booking := &models.Booking{
		Treatment:   request.Treatment,
		Date:        request.Date,
		Patient:     request.Patient,
		Slot:        request.Slot,
		PatientName: request.PatientName,
		Phone:       request.Phone,
		Price:       request.Price,
		CreatedAt:   time.Now(),
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if errors.Is(err, exceptions.ErrDuplicateKey) {
		// lost the race against a concurrent insert, report the winner
		winner, findErr := uc.BookingRepository.FindByKey(ctx, request.Treatment, request.Date, request.Patient)
		if findErr != nil {
			return nil, findErr
		}
		if winner == nil {
			return nil, err
		}
		return uc.conflict(ctx, requestID, request, winner), nil
	}
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return nil, err
	}
	booking.ID = bookingID

	if uc.BookingNotifier != nil {
		err = uc.BookingNotifier.NotifyBookingCreated(ctx, booking)
		if err != nil {
			uc.Log.Warn("bookingUsecase.CreateBooking error publishing booking notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeMessaging),
				zap.String(constvars.LoggingBookingIDKey, bookingID),
				zap.Error(err),
			)
		}
	}

	result := &models.BookingResult{Success: true, ID: bookingID}
	uc.remember(ctx, requestID, request, result)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return result, nil
}

func (uc *bookingUsecase) conflict(ctx context.Context, requestID string, request *requests.CreateBooking, existing *models.Booking) *models.BookingResult {
	uc.Log.Info("bookingUsecase.CreateBooking booking already exists",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeConflict),
		zap.String(constvars.LoggingBookingIDKey, existing.ID),
	)
	result := &models.BookingResult{Success: false, Existing: existing}
	uc.remember(ctx, requestID, request, result)
	return result
}

// requestFingerprint identifies the booking a request asks for, so a key
// replays only for the request that first used it.
func requestFingerprint(request *requests.CreateBooking) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		request.Treatment,
		request.Date,
		request.Patient,
		request.Slot,
	}, "\x00")))
	return hex.EncodeToString(sum[:])
}

// remember failures only cost the replay, the booking outcome stands
func (uc *bookingUsecase) remember(ctx context.Context, requestID string, request *requests.CreateBooking, result *models.BookingResult) {
	if request.IdempotencyKey == "" || uc.IdempotencyStore == nil {
		return
	}
	record := &models.IdempotencyRecord{
		Fingerprint: requestFingerprint(request),
		Result:      result,
	}
	err := uc.IdempotencyStore.Remember(ctx, request.IdempotencyKey, record)
	if err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking error storing idempotency record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeCache),
			zap.Error(err),
		)
	}
}

// ListBookingsByPatient only serves the identity's own bookings.
func (uc *bookingUsecase) ListBookingsByPatient(ctx context.Context, identity *models.Identity, patientEmail string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBookingsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !uc.AccessPolicy.IsSelf(identity, patientEmail) {
		uc.Log.Warn("bookingUsecase.ListBookingsByPatient identity does not match patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeAuth),
		)
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	bookings, err := uc.BookingRepository.FindByPatient(ctx, patientEmail)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookingsByPatient error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.ListBookingsByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingsCountKey, len(bookings)),
	)
	return bookings, nil
}
