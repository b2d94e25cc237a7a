package request

import "strings"

// TrackingLookupRequest is the public phone lookup payload.
type TrackingLookupRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (r TrackingLookupRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}
