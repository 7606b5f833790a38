package qrcode

type GenerateQRCodeRequest struct {
	Type          string   `json:"type" binding:"required,oneof=checkIn checkOut"`
	Branch        string   `json:"branch" binding:"required"`
	DepartmentID  string   `json:"department_id" binding:"omitempty,uuid"`
	ValidityHours int      `json:"validity_hours" binding:"required,min=1,max=168"`
	Latitude      *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type ValidateQRCodeRequest struct {
	Code      string   `json:"code" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type QRCodeResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Type         string  `json:"type"`
	Branch       string  `json:"branch"`
	DepartmentID string  `json:"department_id,omitempty"`
	ValidFrom    string  `json:"valid_from"`
	ValidUntil   string  `json:"valid_until"`
	IsActive     bool    `json:"is_active"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CreatedBy    string  `json:"created_by,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

type ValidateQRCodeResponse struct {
	Valid  bool            `json:"valid"`
	Reason string          `json:"reason,omitempty"`
	QRCode *QRCodeResponse `json:"qr_code,omitempty"`
}
