package service_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"krown/config"
	krownMocks "krown/infras/krown/mocks"
	otelMocks "krown/infras/otel/mocks"
	bookingMocks "krown/internal/domains/booking/mocks"
	bookingModel "krown/internal/domains/booking/model"
	"krown/internal/domains/notification/model"
	"krown/internal/domains/notification/model/dto"
	"krown/internal/domains/notification/service"
	cacheMocks "krown/shared/cache/mocks"
	"krown/shared/failure"
)

func newService(t *testing.T) (service.Notification, *krownMocks.MockClient, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockClient := krownMocks.NewMockClient(ctrl)
	mockBooking := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockClient, mockBooking, &config.Config{}, mockCache, otelMocks.NewOtel())

	return svc, mockClient, mockBooking
}

func sendRequest(template model.Template) dto.SendRequest {
	return dto.SendRequest{
		BookingID: "b-1",
		UserID:    "u-1",
		Template:  template,
	}
}

func TestNotificationService_Send_Success(t *testing.T) {
	svc, mockClient, mockBooking := newService(t)

	mockBooking.EXPECT().
		Find(gomock.Any(), "c-1", "b-1").
		Return(bookingModel.Booking{BookingID: "b-1", NotificationSent: false}, nil)

	mockClient.EXPECT().
		Post(gomock.Any(), "/push/send", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			payload := body.(dto.PushPayload)
			assert.Equal(t, "u-1", payload.UserID)
			assert.Equal(t, "Booking confirmed", payload.Title)
			assert.Equal(t, "b-1", payload.Data["booking_id"])
			assert.Equal(t, "c-1", payload.Data["cafe_id"])

			return "", nil
		})

	mockBooking.EXPECT().Refresh(gomock.Any(), "c-1")

	err := svc.Send(context.Background(), "c-1", sendRequest(model.TemplateAccepted))

	assert.NoError(t, err)
}

func TestNotificationService_Send_AlreadyNotified(t *testing.T) {
	svc, mockClient, mockBooking := newService(t)

	mockBooking.EXPECT().
		Find(gomock.Any(), "c-1", "b-1").
		Return(bookingModel.Booking{BookingID: "b-1", NotificationSent: true}, nil)

	// The duplicate must be rejected before any network call goes out.
	mockClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Send(context.Background(), "c-1", sendRequest(model.TemplateAccepted))

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestNotificationService_Send_UpstreamRejectsDuplicate(t *testing.T) {
	svc, mockClient, mockBooking := newService(t)

	// A concurrent operator notified between our read and our send; the
	// upstream verdict stands and no refresh is triggered for a failure.
	mockBooking.EXPECT().
		Find(gomock.Any(), "c-1", "b-1").
		Return(bookingModel.Booking{BookingID: "b-1", NotificationSent: false}, nil)

	mockClient.EXPECT().
		Post(gomock.Any(), "/push/send", gomock.Any(), gomock.Nil()).
		Return("", failure.Conflict("notification already sent"))

	mockBooking.EXPECT().Refresh(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Send(context.Background(), "c-1", sendRequest(model.TemplateAccepted))

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestNotificationService_Send_FreeTextOverridesTemplate(t *testing.T) {
	svc, mockClient, mockBooking := newService(t)

	mockBooking.EXPECT().
		Find(gomock.Any(), "c-1", "b-1").
		Return(bookingModel.Booking{BookingID: "b-1"}, nil)

	mockClient.EXPECT().
		Post(gomock.Any(), "/push/send", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			payload := body.(dto.PushPayload)
			assert.Equal(t, "Custom title", payload.Title)
			assert.Equal(t, "Custom body", payload.Body)

			return "", nil
		})

	mockBooking.EXPECT().Refresh(gomock.Any(), "c-1")

	req := sendRequest(model.TemplateRejected)
	req.Title = "Custom title"
	req.Body = "Custom body"

	err := svc.Send(context.Background(), "c-1", req)

	assert.NoError(t, err)
}

func TestNotificationService_Send_UnknownTemplateFallsBackToGeneric(t *testing.T) {
	svc, mockClient, mockBooking := newService(t)

	mockBooking.EXPECT().
		Find(gomock.Any(), "c-1", "b-1").
		Return(bookingModel.Booking{BookingID: "b-1"}, nil)

	mockClient.EXPECT().
		Post(gomock.Any(), "/push/send", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, body any, _ any) (string, error) {
			payload := body.(dto.PushPayload)
			assert.Equal(t, "A message from your cafe", payload.Title)

			return "", nil
		})

	mockBooking.EXPECT().Refresh(gomock.Any(), "c-1")

	err := svc.Send(context.Background(), "c-1", sendRequest(model.Template("unknown")))

	assert.NoError(t, err)
}

func TestNotificationService_History(t *testing.T) {
	svc, mockClient, _ := newService(t)

	want := []model.Notification{
		{NotificationID: "n-1", Title: "Booking confirmed"},
	}

	mockClient.EXPECT().
		Get(gomock.Any(), "/notifications", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) (string, error) {
			assert.Equal(t, "b-1", query.Get("booking_id"))
			assert.Equal(t, "u-1", query.Get("user_id"))

			payload := out.(*dto.HistoryResponse)
			payload.Notifications = want

			return "", nil
		})

	res, err := svc.History(context.Background(), dto.HistoryParams{BookingID: "b-1", UserID: "u-1"})

	assert.NoError(t, err)
	assert.Equal(t, want, res)
}
