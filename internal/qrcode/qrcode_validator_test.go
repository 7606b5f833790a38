package qrcode_test

import (
	"testing"
	"time"

	"lt-att-backend/internal/qrcode"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	"lt-att-backend/internal/shared/geo"

	"github.com/stretchr/testify/assert"
)

// ~111.2 m per 0.001 degree of latitude.
const metersPerMilliDegree = 111.19492664455873

func window(now time.Time) *qrcode.QRCode {
	return &qrcode.QRCode{
		Code:       "abc",
		Type:       qrcode.TypeCheckIn,
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
		IsActive:   true,
		Latitude:   -6.2,
		Longitude:  106.8,
	}
}

func TestAdmit(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	ref := geo.Point{Latitude: -6.2, Longitude: 106.8}

	tests := []struct {
		name   string
		window func() *qrcode.QRCode
		now    time.Time
		at     geo.Point
		radius float64
		want   error
	}{
		{
			name:   "same spot is admitted",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now,
			at:     ref,
			radius: 100,
		},
		{
			name:   "missing code",
			window: func() *qrcode.QRCode { return nil },
			now:    now,
			at:     ref,
			radius: 100,
			want:   qrcodeerrors.ErrInvalidCode,
		},
		{
			name: "inactive code",
			window: func() *qrcode.QRCode {
				w := window(now)
				w.IsActive = false
				return w
			},
			now:    now,
			at:     ref,
			radius: 100,
			want:   qrcodeerrors.ErrInvalidCode,
		},
		{
			name:   "before valid_from",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now.Add(-2 * time.Hour),
			at:     ref,
			radius: 100,
			want:   qrcodeerrors.ErrCodeExpired,
		},
		{
			name:   "after valid_until",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now.Add(time.Hour + time.Second),
			at:     ref,
			radius: 100,
			want:   qrcodeerrors.ErrCodeExpired,
		},
		{
			name:   "exactly at valid_until is still valid",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now.Add(time.Hour),
			at:     ref,
			radius: 100,
		},
		{
			name:   "too far",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now,
			at:     geo.Point{Latitude: -6.201, Longitude: 106.8},
			radius: 100,
			want:   qrcodeerrors.ErrOutOfRange,
		},
		{
			name:   "expired wins over distance",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now.Add(3 * time.Hour),
			at:     geo.Point{Latitude: 0, Longitude: 0},
			radius: 100,
			want:   qrcodeerrors.ErrCodeExpired,
		},
		{
			name:   "invalid coordinates",
			window: func() *qrcode.QRCode { return window(now) },
			now:    now,
			at:     geo.Point{Latitude: 91, Longitude: 0},
			radius: 100,
			want:   qrcodeerrors.ErrInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := qrcode.Admit(tt.window(), tt.now, tt.at, tt.radius)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdmit_RadiusBoundaryIsInclusive(t *testing.T) {
	now := time.Now()
	w := window(now)
	at := geo.Point{Latitude: -6.201, Longitude: 106.8}
	d := geo.Distance(w.Reference(), at)
	assert.InDelta(t, metersPerMilliDegree, d, 0.5)

	assert.NoError(t, qrcode.Admit(w, now, at, d))
	assert.ErrorIs(t, qrcode.Admit(w, now, at, d-0.01), qrcodeerrors.ErrOutOfRange)
}
