package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/MKhiriev/go-payment-system/internal/config"
	"github.com/MKhiriev/go-payment-system/internal/service"
	"github.com/MKhiriev/go-payment-system/internal/validators"
	"github.com/MKhiriev/go-payment-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type formFile struct {
	name        string
	contentType string
	content     []byte
}

// newPayRequest builds a multipart POST /api/payments/pay request.
func newPayRequest(t *testing.T, fields map[string]string, file *formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, validators.FieldCheckFile, file.name))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/payments/pay", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validPayFields() map[string]string {
	return map[string]string{
		validators.FieldFullName:    "Ali Valiyev",
		validators.FieldPhoneNumber: "+998 90 123 45 67",
		validators.FieldTariff:      "Premium",
	}
}

func TestPay_Success(t *testing.T) {
	h, m := newMockedHandler(t)

	content := []byte("%PDF-1.4 receipt")
	m.payments.EXPECT().
		Pay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PayRequest) (models.PaymentResponse, error) {
			assert.Equal(t, "Ali Valiyev", req.FullName)
			assert.Equal(t, "+998 90 123 45 67", req.PhoneNumber)
			assert.Equal(t, "Premium", req.Tariff)

			require.NotNil(t, req.CheckFile)
			assert.Equal(t, "check.pdf", req.CheckFile.FileName)
			assert.Equal(t, "application/pdf", req.CheckFile.ContentType)
			assert.Equal(t, int64(len(content)), req.CheckFile.Size)

			got, err := io.ReadAll(req.CheckFile.Content)
			require.NoError(t, err)
			assert.Equal(t, content, got)

			return models.PaymentResponse{
				ID:            5,
				FullName:      req.FullName,
				PhoneNumber:   "+998901234567",
				Tariff:        req.Tariff,
				CheckFileName: "0190a7d2-0000-7000-8000-000000000000.pdf",
				CreatedAt:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		})

	req := newPayRequest(t, validPayFields(), &formFile{name: "check.pdf", contentType: "application/pdf", content: content})
	rr := httptest.NewRecorder()

	h.pay(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope[models.PaymentResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, msgPaymentRecorded, resp.Message)
	assert.Equal(t, int64(5), resp.Data.ID)
	assert.Equal(t, "0190a7d2-0000-7000-8000-000000000000.pdf", resp.Data.CheckFileName)
}

func TestPay_MissingFilePassesNilReceipt(t *testing.T) {
	h, m := newMockedHandler(t)

	m.payments.EXPECT().
		Pay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.PayRequest) (models.PaymentResponse, error) {
			assert.Nil(t, req.CheckFile)
			return models.PaymentResponse{}, validators.NewValidationError(validators.MsgCheckFileRequired)
		})

	rr := httptest.NewRecorder()
	h.pay(rr, newPayRequest(t, validPayFields(), nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeEnvelope[any](t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, msgValidationFailed, resp.Message)
	assert.Equal(t, []string{validators.MsgCheckFileRequired}, resp.Errors)
}

func TestPay_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing file", err: service.ErrMissingFile, wantStatus: http.StatusBadRequest},
		{name: "processing", err: fmt.Errorf("%w: %w", service.ErrProcessing, errors.New("disk full")), wantStatus: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.payments.EXPECT().Pay(gomock.Any(), gomock.Any()).Return(models.PaymentResponse{}, tt.err)

			req := newPayRequest(t, validPayFields(), &formFile{name: "a.png", contentType: "image/png", content: []byte("png")})
			rr := httptest.NewRecorder()

			h.pay(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.False(t, decodeEnvelope[any](t, rr).Success)
		})
	}
}

func TestPay_BodyOverLimit(t *testing.T) {
	h, _ := newMockedHandler(t)
	h.server = config.Server{MaxUploadSize: 1 << 20}

	big := bytes.Repeat([]byte("a"), int(h.maxBodySize())+1)
	req := newPayRequest(t, validPayFields(), &formFile{name: "big.pdf", contentType: "application/pdf", content: big})
	rr := httptest.NewRecorder()

	h.pay(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeEnvelope[any](t, rr)
	assert.Equal(t, msgValidationFailed, resp.Message)
	assert.Equal(t, []string{fmt.Sprintf(validators.MsgCheckFileTooLarge, 1)}, resp.Errors)
}

func TestPay_NotMultipart(t *testing.T) {
	h, _ := newMockedHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/pay", bytes.NewBufferString(`{"fullName":"Ali"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.pay(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeEnvelope[any](t, rr).Message, ErrInvalidForm.Error())
}

func TestListPayments_Success(t *testing.T) {
	h, m := newMockedHandler(t)

	pageReq := models.PageRequest{PageNumber: 2, PageSize: 1}
	page := models.NewPage([]models.PaymentResponse{{ID: 9}}, 3, pageReq)
	m.payments.EXPECT().ListPayments(gomock.Any(), pageReq).Return(page, nil)

	rr := httptest.NewRecorder()
	h.listPayments(rr, httptest.NewRequest(http.MethodGet, "/api/payments?pageNumber=2&pageSize=1", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeEnvelope[models.Page[models.PaymentResponse]](t, rr)
	assert.Equal(t, msgPaymentsList, resp.Message)
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.True(t, resp.Data.HasPrevious)
	assert.True(t, resp.Data.HasNext)
}

func TestListPayments_Error(t *testing.T) {
	h, m := newMockedHandler(t)
	m.payments.EXPECT().
		ListPayments(gomock.Any(), gomock.Any()).
		Return(models.Page[models.PaymentResponse]{}, fmt.Errorf("%w: %w", service.ErrProcessing, errors.New("timeout")))

	rr := httptest.NewRecorder()
	h.listPayments(rr, httptest.NewRequest(http.MethodGet, "/api/payments", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
