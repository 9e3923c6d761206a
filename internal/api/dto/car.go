package dto

import "time"

type CarResponse struct {
	CarID       int        `json:"car_id"`
	Capacity    int        `json:"capacity"`
	Flight      string     `json:"flight,omitempty"`
	Airline     string     `json:"airline,omitempty"`
	Destination string     `json:"destination,omitempty"`
	ETA         *time.Time `json:"eta,omitempty"`
	DriverName  string     `json:"driver_name,omitempty"`
	DriverPhone string     `json:"driver_phone,omitempty"`
	Passengers  []int64    `json:"passengers"`
}

type ListCarsResponse struct {
	Cars []CarResponse `json:"cars"`
}

type UpdateCarRequest struct {
	Capacity    *int    `json:"capacity"`
	DriverName  *string `json:"driver_name"`
	DriverPhone *string `json:"driver_phone"`
}

type AssignRequest struct {
	Capacity int `json:"capacity"`
}

type ReconcileResponse struct {
	Updated int `json:"updated"`
}
