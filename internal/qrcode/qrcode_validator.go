package qrcode

import (
	"time"

	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	"lt-att-backend/internal/shared/geo"
)

// Admit runs the scan preconditions in order: the code must exist and be active,
// now must fall inside the validity window, and the scanner must stand within
// radius meters of the window's reference point (distance == radius passes).
func Admit(window *QRCode, now time.Time, at geo.Point, radius float64) error {
	if window == nil || !window.IsActive {
		return qrcodeerrors.ErrInvalidCode
	}
	if !window.ActiveAt(now) {
		return qrcodeerrors.ErrCodeExpired
	}
	if !at.Valid() {
		return qrcodeerrors.ErrInvalidLocation
	}
	if !geo.WithinRadius(window.Reference(), at, radius) {
		return qrcodeerrors.ErrOutOfRange
	}
	return nil
}
