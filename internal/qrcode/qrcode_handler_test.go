package qrcode_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/qrcode"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	qrcodeMock "lt-att-backend/internal/qrcode/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *qrcodeMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := qrcodeMock.NewMockService(ctrl)
	h := qrcode.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("role", domain.RoleManager)
		c.Next()
	})
	r.POST("/qr-codes", h.Generate)
	r.GET("/qr-codes/active", h.GetActive)
	r.DELETE("/qr-codes/:id", h.Deactivate)
	r.POST("/qr-codes/validate", h.Validate)
	r.GET("/qr-codes/:code/image", h.Image)
	return r, svc
}

func TestQRCodeHandler_Generate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(qrcode.QRCodeResponse{ID: "q-1", Code: "abc", Branch: "HQ"}, nil)

		body := `{"type":"checkIn","branch":"HQ","validity_hours":8,"latitude":-6.2,"longitude":106.8}`
		req := httptest.NewRequest(http.MethodPost, "/qr-codes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"abc"`)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		r, _ := setupHandlerTest(t)

		body := `{"type":"checkIn","branch":"HQ","validity_hours":8}`
		req := httptest.NewRequest(http.MethodPost, "/qr-codes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation busy", func(t *testing.T) {
		r, svc := setupHandlerTest(t)
		svc.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(qrcode.QRCodeResponse{}, qrcodeerrors.ErrGenerationInProgress)

		body := `{"type":"checkOut","branch":"HQ","validity_hours":1,"latitude":0,"longitude":0}`
		req := httptest.NewRequest(http.MethodPost, "/qr-codes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestQRCodeHandler_Validate(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(qrcode.ValidateQRCodeResponse{Valid: false, Reason: "EXPIRED"}, nil)

	body := `{"code":"abc","latitude":-6.2,"longitude":106.8}`
	req := httptest.NewRequest(http.MethodPost, "/qr-codes/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reason":"EXPIRED"`)
}

func TestQRCodeHandler_Deactivate(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().Deactivate(gomock.Any(), "missing").Return(qrcodeerrors.ErrInvalidQRCodeID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/qr-codes/missing", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQRCodeHandler_Image(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().Image(gomock.Any(), "abc").Return([]byte("\x89PNG-data"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/qr-codes/abc/image", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}
